package postgres

import (
	"context"
	"fmt"

	"github.com/benjidennett/lego-app/internal/entities"

	"github.com/jackc/pgx/v5"
)

const (
	selectStageQuery = `SELECT stage FROM competition_stage WHERE id=1`
	updateStageQuery = `UPDATE competition_stage SET stage=$1 WHERE id=1`

	activateAllQuery = `UPDATE teams SET active=TRUE WHERE NOT is_practice`

	// Teams without a single recorded attempt score as the integer floor,
	// so they rank below any team with a set attempt. Ties break by team
	// number ascending.
	activateTopQuery = `
WITH ranked AS (
    SELECT id,
           ROW_NUMBER() OVER (
               ORDER BY GREATEST(
                   COALESCE(attempt_1, -2147483648),
                   COALESCE(attempt_2, -2147483648),
                   COALESCE(attempt_3, -2147483648)
               ) DESC,
               number ASC
           ) AS pos
    FROM teams
    WHERE NOT is_practice
)
UPDATE teams t
SET active = (r.pos <= $1)
FROM ranked r
WHERE t.id = r.id`
)

// Stage reads the durable current-stage value.
func (p *Postgres) Stage(ctx context.Context) (entities.Stage, error) {
	var s int
	if err := p.db.QueryRow(ctx, selectStageQuery).Scan(&s); err != nil {
		return 0, fmt.Errorf("get stage: %w", err)
	}
	return entities.Stage(s), nil
}

// SetStageAndActivate persists the new stage and recomputes the active
// flag on all non-practice teams in one transaction. Either both effects
// land or neither does.
func (p *Postgres) SetStageAndActivate(ctx context.Context, stage entities.Stage, keep int) error {
	tx, err := p.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx, updateStageQuery, int(stage)); err != nil {
		return fmt.Errorf("persist stage: %w", err)
	}

	if keep <= 0 {
		if _, err := tx.Exec(ctx, activateAllQuery); err != nil {
			return fmt.Errorf("activate teams: %w", err)
		}
	} else {
		if _, err := tx.Exec(ctx, activateTopQuery, keep); err != nil {
			return fmt.Errorf("activate teams: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return err
	}

	p.log.Infow("stage set", "stage", stage.String(), "ordinal", int(stage), "keep", keep)
	return nil
}
