package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/benjidennett/lego-app/internal/entities"
	"github.com/benjidennett/lego-app/internal/repository"
	"github.com/benjidennett/lego-app/internal/usecase"

	"github.com/spf13/cobra"
)

func teamCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "team",
		Short: "Manage teams",
	}
	cmd.AddCommand(teamAddCmd(), teamLsCmd(), teamRmCmd(), teamResetCmd())
	return cmd
}

func teamAddCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add <file>",
		Short: "Add teams from a file with one 'number,name' line per team",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fh, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer func() { _ = fh.Close() }()

			return withApp(cmd.Context(), func(_ repository.Repository, uc usecase.InterfaceUsecase) error {
				out := cmd.OutOrStdout()
				scanner := bufio.NewScanner(fh)
				for scanner.Scan() {
					line := strings.TrimSpace(scanner.Text())
					if line == "" {
						continue
					}

					rawNumber, name, ok := strings.Cut(line, ",")
					if !ok {
						return fmt.Errorf("invalid line: %q", line)
					}
					number, err := strconv.Atoi(strings.TrimSpace(rawNumber))
					if err != nil {
						return fmt.Errorf("invalid number: %s", rawNumber)
					}

					name = strings.TrimSpace(name)
					fmt.Fprintf(out, "Adding team: %s (number: %d).\n", name, number)
					if _, err := uc.CreateTeam(cmd.Context(), cliActor, number, name); err != nil {
						return fmt.Errorf("add team %d: %w", number, err)
					}
				}
				return scanner.Err()
			})
		},
	}
}

func teamLsCmd() *cobra.Command {
	var noPractice, active bool

	cmd := &cobra.Command{
		Use:   "ls",
		Short: "List all teams from the database",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd.Context(), func(_ repository.Repository, uc usecase.InterfaceUsecase) error {
				teams, err := uc.Teams(cmd.Context(), entities.TeamFilter{
					ExcludePractice: noPractice,
					ActiveOnly:      active,
				})
				if err != nil {
					return err
				}

				w := tabwriter.NewWriter(cmd.OutOrStdout(), 2, 4, 2, ' ', 0)
				fmt.Fprintln(w, "NUMBER\tNAME\tACTIVE\tBEST")
				for _, t := range teams {
					best := "-"
					if s, ok := t.HighestScore(); ok {
						best = strconv.Itoa(s)
					}
					fmt.Fprintf(w, "%d\t%s\t%t\t%s\n", t.Number, t.Name, t.Active, best)
				}
				return w.Flush()
			})
		},
	}

	cmd.Flags().BoolVar(&noPractice, "no-practice", false, "don't include the practice team")
	cmd.Flags().BoolVar(&active, "active", false, "only show currently active teams")
	return cmd
}

func teamRmCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rm <number>",
		Short: "Remove a team by number",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			number, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid number: %s", args[0])
			}
			return withApp(cmd.Context(), func(_ repository.Repository, uc usecase.InterfaceUsecase) error {
				return uc.DeleteTeam(cmd.Context(), cliActor, number)
			})
		},
	}
}

func teamResetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Remove all non-practice teams",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd.Context(), func(_ repository.Repository, uc usecase.InterfaceUsecase) error {
				removed, err := uc.ResetTeams(cmd.Context(), cliActor)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Removed %d teams.\n", removed)
				return nil
			})
		},
	}
}
