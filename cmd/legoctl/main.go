// Package main is the administrative CLI for the scoring service. It
// talks to the same store as the server and covers event-day setup:
// teams, accounts and the competition stage.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/benjidennett/lego-app/config"
	"github.com/benjidennett/lego-app/internal/entities"
	"github.com/benjidennett/lego-app/internal/repository"
	"github.com/benjidennett/lego-app/internal/usecase"
	"github.com/benjidennett/lego-app/pkg/logger"

	"github.com/spf13/cobra"
)

// cliActor is the implicit operator identity; anyone with store
// credentials already has full control.
var cliActor = entities.User{Username: "legoctl", IsAdmin: true}

func main() {
	root := &cobra.Command{
		Use:           "legoctl",
		Short:         "Administer the competition scoring service",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(initCmd(), teamCmd(), userCmd(), stageCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// withApp opens the repository and usecase layer for one command run.
func withApp(ctx context.Context, fn func(repo repository.Repository, uc usecase.InterfaceUsecase) error) error {
	cfg, err := config.NewConfig()
	if err != nil {
		return err
	}

	log, err := logger.New("warn")
	if err != nil {
		return err
	}

	repo, err := repository.New(ctx, "postgres", log, cfg)
	if err != nil {
		return err
	}
	if err := repo.OnStart(ctx); err != nil {
		return err
	}
	defer func() { _ = repo.OnStop(context.Background()) }()

	uc := usecase.New(log, ctx, repo, cfg.HTTP.RequestTimeout,
		entities.Variant(cfg.Competition.Variant), cfg.Competition.ConfirmTTL)

	return fn(repo, uc)
}

func initCmd() *cobra.Command {
	var adminPassword, judgePassword string

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialise the application",
		Long: "Initialise the application by running migrations, creating the " +
			"default Admin and Judge accounts, the practice team and the initial stage.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd.Context(), func(repo repository.Repository, uc usecase.InterfaceUsecase) error {
				out := cmd.OutOrStdout()
				fmt.Fprintln(out, "Initialising application...")

				if _, err := uc.CreateUser(cmd.Context(), cliActor, "Admin", adminPassword, false, true); err != nil {
					return fmt.Errorf("create admin: %w", err)
				}
				if _, err := uc.CreateUser(cmd.Context(), cliActor, "Judge", judgePassword, true, false); err != nil {
					return fmt.Errorf("create judge: %w", err)
				}
				fmt.Fprintln(out, "Default users created.")

				practice := entities.Team{
					Number:     entities.PracticeTeamNumber,
					Name:       "Practice",
					IsPractice: true,
					Active:     true,
				}
				if _, err := repo.CreateTeam(cmd.Context(), practice); err != nil {
					return fmt.Errorf("create practice team: %w", err)
				}
				fmt.Fprintln(out, "Practice team created.")

				if _, err := uc.SetStage(cmd.Context(), cliActor, int(entities.StageRound1)); err != nil {
					return fmt.Errorf("set stage: %w", err)
				}
				fmt.Fprintln(out, "Stage set to round_1.")
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&adminPassword, "admin-password", "admin", "password for the Admin account")
	cmd.Flags().StringVar(&judgePassword, "judge-password", "judge", "password for the Judge account")
	return cmd
}
