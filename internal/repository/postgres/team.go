package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/benjidennett/lego-app/internal/entities"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const (
	teamColumns = `id, number, name, is_practice, active,
attempt_1, attempt_1_note, attempt_2, attempt_2_note, attempt_3, attempt_3_note`

	insertTeamQuery = `INSERT INTO teams(number, name, is_practice, active)
VALUES ($1, $2, $3, $4) RETURNING id`
	selectTeamQuery          = `SELECT ` + teamColumns + ` FROM teams WHERE number=$1`
	selectTeamForUpdateQuery = `SELECT ` + teamColumns + ` FROM teams WHERE number=$1 FOR UPDATE`
	deleteTeamQuery          = `DELETE FROM teams WHERE number=$1`
	resetTeamsQuery          = `DELETE FROM teams WHERE NOT is_practice`

	updateAttempt1Query = `UPDATE teams SET attempt_1=$1, attempt_1_note=$2 WHERE id=$3`
	updateAttempt2Query = `UPDATE teams SET attempt_2=$1, attempt_2_note=$2 WHERE id=$3`
	updateAttempt3Query = `UPDATE teams SET attempt_3=$1, attempt_3_note=$2 WHERE id=$3`
)

func scanTeam(row pgx.Row) (*entities.Team, error) {
	var t entities.Team
	var scores [entities.MaxAttempts]*int
	var notes [entities.MaxAttempts]*string

	err := row.Scan(&t.ID, &t.Number, &t.Name, &t.IsPractice, &t.Active,
		&scores[0], &notes[0], &scores[1], &notes[1], &scores[2], &notes[2])
	if err != nil {
		return nil, err
	}

	for i, s := range scores {
		if s == nil {
			continue
		}
		a := entities.Attempt{Score: *s}
		if notes[i] != nil {
			a.Note = *notes[i]
		}
		t.Attempts[i] = &a
	}
	return &t, nil
}

// CreateTeam inserts a team. Number and name are unique; a partial unique
// index keeps the practice team a singleton.
func (p *Postgres) CreateTeam(ctx context.Context, team entities.Team) (*entities.Team, error) {
	err := p.db.QueryRow(ctx, insertTeamQuery, team.Number, team.Name, team.IsPractice, team.Active).
		Scan(&team.ID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			if pgErr.ConstraintName == "teams_one_practice" {
				return nil, entities.ErrPracticeTeamExists
			}
			return nil, entities.ErrTeamExists
		}
		return nil, fmt.Errorf("insert team: %w", err)
	}

	p.log.Infow("team created", "number", team.Number, "name", team.Name, "practice", team.IsPractice)
	return &team, nil
}

// TeamByNumber fetches a single team.
func (p *Postgres) TeamByNumber(ctx context.Context, number int) (*entities.Team, error) {
	t, err := scanTeam(p.db.QueryRow(ctx, selectTeamQuery, number))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrTeamNotFound
		}
		return nil, fmt.Errorf("get team: %w", err)
	}
	return t, nil
}

// Teams lists teams ordered by number.
func (p *Postgres) Teams(ctx context.Context, filter entities.TeamFilter) ([]entities.Team, error) {
	query := `SELECT ` + teamColumns + ` FROM teams`
	conds := make([]string, 0, 2)
	if filter.ExcludePractice {
		conds = append(conds, "NOT is_practice")
	}
	if filter.ActiveOnly {
		conds = append(conds, "active")
	}
	for i, c := range conds {
		if i == 0 {
			query += " WHERE " + c
		} else {
			query += " AND " + c
		}
	}
	query += " ORDER BY number ASC"

	rows, err := p.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list teams: %w", err)
	}
	defer rows.Close()

	teams := make([]entities.Team, 0)
	for rows.Next() {
		t, err := scanTeam(rows)
		if err != nil {
			return nil, fmt.Errorf("scan team: %w", err)
		}
		teams = append(teams, *t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate teams: %w", err)
	}
	return teams, nil
}

// DeleteTeam removes a team by number.
func (p *Postgres) DeleteTeam(ctx context.Context, number int) error {
	tag, err := p.db.Exec(ctx, deleteTeamQuery, number)
	if err != nil {
		return fmt.Errorf("delete team: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return entities.ErrTeamNotFound
	}
	p.log.Infow("team deleted", "number", number)
	return nil
}

// ResetTeams removes all non-practice teams.
func (p *Postgres) ResetTeams(ctx context.Context) (int, error) {
	tag, err := p.db.Exec(ctx, resetTeamsQuery)
	if err != nil {
		return 0, fmt.Errorf("reset teams: %w", err)
	}
	n := int(tag.RowsAffected())
	p.log.Infow("teams reset", "removed", n)
	return n, nil
}

// RecordAttempt writes score into the team's next free attempt slot. The
// team row is locked for the duration of the transaction so the slot
// check and the write cannot interleave with a concurrent submission.
func (p *Postgres) RecordAttempt(ctx context.Context, teamNumber int, score int, note string) (*entities.Team, int, error) {
	tx, err := p.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, 0, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	team, err := scanTeam(tx.QueryRow(ctx, selectTeamForUpdateQuery, teamNumber))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, 0, entities.ErrTeamNotFound
		}
		return nil, 0, fmt.Errorf("lock team: %w", err)
	}

	slot := 0
	for i, a := range team.Attempts {
		if a == nil {
			slot = i + 1
			break
		}
	}
	if slot == 0 {
		return nil, 0, entities.ErrAttemptsExhausted
	}

	var updateQuery string
	switch slot {
	case 1:
		updateQuery = updateAttempt1Query
	case 2:
		updateQuery = updateAttempt2Query
	case 3:
		updateQuery = updateAttempt3Query
	}

	if _, err := tx.Exec(ctx, updateQuery, score, note, team.ID); err != nil {
		return nil, 0, fmt.Errorf("write attempt: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, 0, err
	}

	team.Attempts[slot-1] = &entities.Attempt{Score: score, Note: note}
	p.log.Infow("attempt recorded", "team", team.Name, "attempt", slot, "score", score)
	return team, slot, nil
}
