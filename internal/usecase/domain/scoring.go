// Package domain contains application usecases orchestrating the
// competition scoring logic: the score submission workflow.
package domain

import (
	"context"
	"fmt"

	"github.com/benjidennett/lego-app/internal/entities"
)

// SubmitScore runs one pass of the confirm-then-commit scoring workflow.
//
// A fresh submission computes the score from the sheet and, for regular
// teams, parks it behind a one-time confirmation token without touching
// the team. Practice attempts auto-confirm. A confirming submission
// redeems the token and commits the held score; the attempt-cap check is
// re-run inside the repository transaction, so racing submissions for
// the same team cannot both land.
func (u *Usecase) SubmitScore(ctx context.Context, actor entities.User, sub entities.ScoreSubmission) (entities.ScoreOutcome, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if !actor.CanScore() {
		return entities.ScoreOutcome{}, entities.ErrForbidden
	}

	if sub.Confirm {
		return u.confirmScore(ctx, sub)
	}

	team, err := u.repo.TeamByNumber(ctx, sub.TeamNumber)
	if err != nil {
		return entities.ScoreOutcome{}, err
	}

	attempt := team.NextAttempt()
	if attempt > entities.MaxAttempts {
		return entities.ScoreOutcome{}, entities.ErrAttemptsExhausted
	}

	score, err := u.points(sub.Sheet)
	if err != nil {
		return entities.ScoreOutcome{}, fmt.Errorf("%w: %v", entities.ErrValidation, err)
	}

	if team.IsPractice {
		return u.commit(ctx, pendingScore{
			teamNumber: team.Number,
			score:      score,
			attempt:    attempt,
			note:       sub.Sheet.Note,
		})
	}

	token := u.pending.put(pendingScore{
		teamNumber: team.Number,
		score:      score,
		attempt:    attempt,
		note:       sub.Sheet.Note,
	})

	u.log.Infow("score calculated", "team", team.Name, "score", score, "attempt", attempt)
	return entities.ScoreOutcome{
		Status:       entities.SubmissionPending,
		TeamNumber:   team.Number,
		TeamName:     team.Name,
		Score:        score,
		Attempt:      attempt,
		ConfirmToken: token,
		Message:      fmt.Sprintf("Confirm score %d for attempt %d", score, attempt),
	}, nil
}

func (u *Usecase) confirmScore(ctx context.Context, sub entities.ScoreSubmission) (entities.ScoreOutcome, error) {
	if sub.ConfirmToken == "" {
		return entities.ScoreOutcome{}, fmt.Errorf("%w: confirm token is required", entities.ErrValidation)
	}

	ps, ok := u.pending.take(sub.ConfirmToken)
	if !ok {
		return entities.ScoreOutcome{}, entities.ErrConfirmationExpired
	}
	if ps.teamNumber != sub.TeamNumber {
		return entities.ScoreOutcome{}, fmt.Errorf("%w: confirm token does not match team", entities.ErrValidation)
	}

	return u.commit(ctx, ps)
}

func (u *Usecase) commit(ctx context.Context, ps pendingScore) (entities.ScoreOutcome, error) {
	team, attempt, err := u.repo.RecordAttempt(ctx, ps.teamNumber, ps.score, ps.note)
	if err != nil {
		return entities.ScoreOutcome{}, err
	}

	u.log.Infow("score committed", "team", team.Name, "score", ps.score, "attempt", attempt)
	return entities.ScoreOutcome{
		Status:     entities.SubmissionCommitted,
		TeamNumber: team.Number,
		TeamName:   team.Name,
		Score:      ps.score,
		Attempt:    attempt,
		Message:    fmt.Sprintf("Submitted for team: %s, score: %d, attempt: %d", team.Name, ps.score, attempt),
	}, nil
}
