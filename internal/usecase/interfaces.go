package usecase

import (
	"context"

	"github.com/benjidennett/lego-app/internal/entities"
)

// ScoringUsecaseInterface abstracts the score submission workflow.
type ScoringUsecaseInterface interface {
	SubmitScore(ctx context.Context, actor entities.User, sub entities.ScoreSubmission) (entities.ScoreOutcome, error)
}

// StageUsecaseInterface abstracts stage advancement and lookup.
type StageUsecaseInterface interface {
	SetStage(ctx context.Context, actor entities.User, ordinal int) (entities.Stage, error)
	Stage(ctx context.Context) (entities.Stage, error)
}

// ScoreboardUsecaseInterface abstracts the ranked scoreboard view.
type ScoreboardUsecaseInterface interface {
	Scoreboard(ctx context.Context) (entities.ScoreboardView, error)
}

// TeamUsecaseInterface abstracts team administration.
type TeamUsecaseInterface interface {
	CreateTeam(ctx context.Context, actor entities.User, number int, name string) (*entities.Team, error)
	Teams(ctx context.Context, filter entities.TeamFilter) ([]entities.Team, error)
	DeleteTeam(ctx context.Context, actor entities.User, number int) error
	ResetTeams(ctx context.Context, actor entities.User) (int, error)
}

// UserUsecaseInterface abstracts account administration and login.
type UserUsecaseInterface interface {
	Authenticate(ctx context.Context, username, password string) (*entities.User, error)
	CreateUser(ctx context.Context, actor entities.User, username, password string, judge, admin bool) (*entities.User, error)
	Users(ctx context.Context, actor entities.User) ([]entities.User, error)
	DeleteUser(ctx context.Context, actor entities.User, username string) error
	SetPassword(ctx context.Context, actor entities.User, username, password string) error
}
