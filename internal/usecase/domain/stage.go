// Package domain contains application usecases orchestrating the
// competition scoring logic: stage advancement and team activation.
package domain

import (
	"context"
	"fmt"

	"github.com/benjidennett/lego-app/internal/entities"
)

// SetStage validates the ordinal against the configured variant, then
// persists the stage and recomputes team activation in one transaction.
func (u *Usecase) SetStage(ctx context.Context, actor entities.User, ordinal int) (entities.Stage, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if !actor.IsAdmin {
		return 0, entities.ErrForbidden
	}

	stage := entities.Stage(ordinal)
	if !stage.Valid() {
		return 0, fmt.Errorf("%w: stage ordinal out of range: %d", entities.ErrValidation, ordinal)
	}
	if !u.variant.Supports(stage) {
		return 0, fmt.Errorf("%w: %s is not run at the %s event", entities.ErrStageUnsupported, stage, u.variant)
	}

	keep := u.variant.AdvanceCount(stage)
	if err := u.repo.SetStageAndActivate(ctx, stage, keep); err != nil {
		return 0, err
	}

	u.log.Infow("stage advanced", "stage", stage.String(), "keep", keep)
	return stage, nil
}

// Stage returns the durable current stage.
func (u *Usecase) Stage(ctx context.Context) (entities.Stage, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()
	return u.repo.Stage(ctx)
}
