package main

import (
	"fmt"
	"strconv"

	"github.com/benjidennett/lego-app/internal/entities"
	"github.com/benjidennett/lego-app/internal/repository"
	"github.com/benjidennett/lego-app/internal/usecase"

	"github.com/spf13/cobra"
)

func stageCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stage",
		Short: "Manage the competition stage",
		Long: "Move the stage forwards or backwards. This is for advanced usage " +
			"only and should not be required while running the event itself.",
	}
	cmd.AddCommand(stageSetCmd(), stageGetCmd(), stageResetCmd())
	return cmd
}

func stageSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <0-4>",
		Short: "Set the current stage and recompute active teams",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ordinal, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid stage: %s", args[0])
			}
			return withApp(cmd.Context(), func(_ repository.Repository, uc usecase.InterfaceUsecase) error {
				stage, err := uc.SetStage(cmd.Context(), cliActor, ordinal)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Successfully set stage to %s (%d).\n", stage, int(stage))
				return nil
			})
		},
	}
}

func stageGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get",
		Short: "Print the current stage",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd.Context(), func(_ repository.Repository, uc usecase.InterfaceUsecase) error {
				stage, err := uc.Stage(cmd.Context())
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%d %s\n", int(stage), stage)
				return nil
			})
		},
	}
}

func stageResetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Reset the stage to round_1",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd.Context(), func(_ repository.Repository, uc usecase.InterfaceUsecase) error {
				if _, err := uc.SetStage(cmd.Context(), cliActor, int(entities.StageRound1)); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), "Successfully reset stage.")
				return nil
			})
		},
	}
}
