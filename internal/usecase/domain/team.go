// Package domain contains application usecases orchestrating the
// competition scoring logic: team administration.
package domain

import (
	"context"
	"fmt"
	"strings"

	"github.com/benjidennett/lego-app/internal/entities"
)

// CreateTeam registers a competing team. New teams start active so they
// appear on the opening-round scoreboard.
func (u *Usecase) CreateTeam(ctx context.Context, actor entities.User, number int, name string) (*entities.Team, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if !actor.IsAdmin {
		return nil, entities.ErrForbidden
	}

	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: team name is required", entities.ErrValidation)
	}
	if number <= 0 {
		return nil, fmt.Errorf("%w: team number must be positive: %d", entities.ErrValidation, number)
	}

	return u.repo.CreateTeam(ctx, entities.Team{Number: number, Name: name, Active: true})
}

// Teams lists teams, optionally filtered.
func (u *Usecase) Teams(ctx context.Context, filter entities.TeamFilter) ([]entities.Team, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()
	return u.repo.Teams(ctx, filter)
}

// DeleteTeam removes a team by number.
func (u *Usecase) DeleteTeam(ctx context.Context, actor entities.User, number int) error {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if !actor.IsAdmin {
		return entities.ErrForbidden
	}
	return u.repo.DeleteTeam(ctx, number)
}

// ResetTeams removes all non-practice teams between events.
func (u *Usecase) ResetTeams(ctx context.Context, actor entities.User) (int, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if !actor.IsAdmin {
		return 0, entities.ErrForbidden
	}
	return u.repo.ResetTeams(ctx)
}
