// Package repository contains repository interfaces for persistence layers.
package repository

import (
	"context"

	"github.com/benjidennett/lego-app/internal/entities"
)

// LifecycleInterface describes storage startup/shutdown hooks.
type LifecycleInterface interface {
	OnStart(_ context.Context) error
	OnStop(_ context.Context) error
}

// TeamInterface exposes team-related operations.
type TeamInterface interface {
	CreateTeam(ctx context.Context, team entities.Team) (*entities.Team, error)
	TeamByNumber(ctx context.Context, number int) (*entities.Team, error)
	Teams(ctx context.Context, filter entities.TeamFilter) ([]entities.Team, error)
	DeleteTeam(ctx context.Context, number int) error
	ResetTeams(ctx context.Context) (int, error)
	// RecordAttempt writes score into the team's next free attempt slot.
	// The free-slot check and the write run in one transaction holding a
	// row lock on the team, so concurrent submissions for the same team
	// are serialized. Returns the updated team and the 1-based attempt
	// number written, or entities.ErrAttemptsExhausted with no mutation.
	RecordAttempt(ctx context.Context, teamNumber int, score int, note string) (*entities.Team, int, error)
}

// UserInterface exposes user-related operations.
type UserInterface interface {
	CreateUser(ctx context.Context, user entities.User) (*entities.User, error)
	UserByUsername(ctx context.Context, username string) (*entities.User, error)
	Users(ctx context.Context) ([]entities.User, error)
	DeleteUser(ctx context.Context, username string) error
	SetPassword(ctx context.Context, username, passwordHash string) error
}

// StageInterface exposes the durable current-stage value and activation.
type StageInterface interface {
	Stage(ctx context.Context) (entities.Stage, error)
	// SetStageAndActivate persists the stage and recomputes the active
	// flag on all non-practice teams in the same transaction. keep is the
	// number of top-scoring teams that stay active; zero keeps everyone.
	SetStageAndActivate(ctx context.Context, stage entities.Stage, keep int) error
}
