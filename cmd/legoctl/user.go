package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/benjidennett/lego-app/internal/repository"
	"github.com/benjidennett/lego-app/internal/usecase"

	"github.com/spf13/cobra"
)

func userCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "user",
		Short: "Manage accounts",
	}
	cmd.AddCommand(userNewCmd(), userLsCmd(), userRmCmd(), userPasswordCmd())
	return cmd
}

func userNewCmd() *cobra.Command {
	var password string
	var judge, admin bool

	cmd := &cobra.Command{
		Use:   "new <username>",
		Short: "Create an account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd.Context(), func(_ repository.Repository, uc usecase.InterfaceUsecase) error {
				_, err := uc.CreateUser(cmd.Context(), cliActor, args[0], password, judge, admin)
				return err
			})
		},
	}

	cmd.Flags().StringVarP(&password, "password", "p", "", "password for the account")
	cmd.Flags().BoolVar(&judge, "judge", false, "mark user as a judge")
	cmd.Flags().BoolVar(&admin, "admin", false, "mark user as an admin")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}

func userLsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ls",
		Short: "List accounts",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd.Context(), func(_ repository.Repository, uc usecase.InterfaceUsecase) error {
				users, err := uc.Users(cmd.Context(), cliActor)
				if err != nil {
					return err
				}

				w := tabwriter.NewWriter(cmd.OutOrStdout(), 2, 4, 2, ' ', 0)
				fmt.Fprintln(w, "ID\tUSERNAME\tJUDGE\tADMIN")
				for _, u := range users {
					fmt.Fprintf(w, "%d\t%s\t%t\t%t\n", u.ID, u.Username, u.IsJudge, u.IsAdmin)
				}
				return w.Flush()
			})
		},
	}
}

func userRmCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rm <username>",
		Short: "Remove an account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd.Context(), func(_ repository.Repository, uc usecase.InterfaceUsecase) error {
				return uc.DeleteUser(cmd.Context(), cliActor, args[0])
			})
		},
	}
}

func userPasswordCmd() *cobra.Command {
	var password string

	cmd := &cobra.Command{
		Use:   "password <username>",
		Short: "Reset an account password",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd.Context(), func(_ repository.Repository, uc usecase.InterfaceUsecase) error {
				return uc.SetPassword(cmd.Context(), cliActor, args[0], password)
			})
		},
	}

	cmd.Flags().StringVarP(&password, "password", "p", "", "new password for the account")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}
