package usecase

import (
	"context"
	"time"

	"github.com/benjidennett/lego-app/internal/entities"
	"github.com/benjidennett/lego-app/internal/repository"
	"github.com/benjidennett/lego-app/internal/usecase/domain"

	"go.uber.org/zap"
)

// InterfaceUsecase aggregates all usecase interfaces.
type InterfaceUsecase interface {
	ScoringUsecaseInterface
	StageUsecaseInterface
	ScoreboardUsecaseInterface
	TeamUsecaseInterface
	UserUsecaseInterface
}

// New constructs a new usecase layer with its dependencies.
func New(
	log *zap.SugaredLogger,
	ctx context.Context,
	repo repository.Repository,
	timeout time.Duration,
	variant entities.Variant,
	confirmTTL time.Duration,
) InterfaceUsecase {
	return domain.New(log, ctx, repo, timeout, variant, confirmTTL)
}
