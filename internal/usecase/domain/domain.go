// Package domain contains application usecases orchestrating the
// competition scoring logic.
package domain

import (
	"context"
	"time"

	"github.com/benjidennett/lego-app/internal/entities"
	"github.com/benjidennett/lego-app/internal/repository"
	"github.com/benjidennett/lego-app/internal/scoresheet"

	"go.uber.org/zap"
)

// PointsFunc maps raw sheet input to a point value. It must be pure.
type PointsFunc func(scoresheet.Sheet) (int, error)

// Usecase struct implements all usecase interfaces.
type Usecase struct {
	ctx     context.Context
	log     *zap.SugaredLogger
	repo    repository.Repository
	timeout time.Duration
	variant entities.Variant
	points  PointsFunc
	pending *pendingStore
}

// New constructs a new usecase layer with its dependencies.
func New(
	log *zap.SugaredLogger,
	ctx context.Context,
	repo repository.Repository,
	timeout time.Duration,
	variant entities.Variant,
	confirmTTL time.Duration,
) *Usecase {
	return &Usecase{
		ctx:     ctx,
		log:     log,
		repo:    repo,
		timeout: timeout,
		variant: variant,
		points:  scoresheet.Points,
		pending: newPendingStore(confirmTTL),
	}
}

func withTimeout(ctx context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	if d <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, d)
}
