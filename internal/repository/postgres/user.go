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
	insertUserQuery = `INSERT INTO users(username, password_hash, is_judge, is_admin)
VALUES ($1, $2, $3, $4) RETURNING id`
	selectUserQuery     = `SELECT id, username, password_hash, is_judge, is_admin FROM users WHERE username=$1`
	selectUsersQuery    = `SELECT id, username, password_hash, is_judge, is_admin FROM users ORDER BY id ASC`
	deleteUserQuery     = `DELETE FROM users WHERE username=$1`
	updatePasswordQuery = `UPDATE users SET password_hash=$2 WHERE username=$1`
)

// CreateUser inserts a user with a pre-hashed password.
func (p *Postgres) CreateUser(ctx context.Context, user entities.User) (*entities.User, error) {
	err := p.db.QueryRow(ctx, insertUserQuery, user.Username, user.PasswordHash, user.IsJudge, user.IsAdmin).
		Scan(&user.ID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, entities.ErrUserExists
		}
		return nil, fmt.Errorf("insert user: %w", err)
	}

	p.log.Infow("user created", "username", user.Username, "judge", user.IsJudge, "admin", user.IsAdmin)
	return &user, nil
}

// UserByUsername fetches a user by unique username.
func (p *Postgres) UserByUsername(ctx context.Context, username string) (*entities.User, error) {
	var u entities.User
	err := p.db.QueryRow(ctx, selectUserQuery, username).
		Scan(&u.ID, &u.Username, &u.PasswordHash, &u.IsJudge, &u.IsAdmin)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrUserNotFound
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return &u, nil
}

// Users lists all accounts.
func (p *Postgres) Users(ctx context.Context) ([]entities.User, error) {
	rows, err := p.db.Query(ctx, selectUsersQuery)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()

	users := make([]entities.User, 0)
	for rows.Next() {
		var u entities.User
		if err := rows.Scan(&u.ID, &u.Username, &u.PasswordHash, &u.IsJudge, &u.IsAdmin); err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate users: %w", err)
	}
	return users, nil
}

// DeleteUser removes an account by username.
func (p *Postgres) DeleteUser(ctx context.Context, username string) error {
	tag, err := p.db.Exec(ctx, deleteUserQuery, username)
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return entities.ErrUserNotFound
	}
	p.log.Infow("user deleted", "username", username)
	return nil
}

// SetPassword replaces the stored password hash.
func (p *Postgres) SetPassword(ctx context.Context, username, passwordHash string) error {
	tag, err := p.db.Exec(ctx, updatePasswordQuery, username, passwordHash)
	if err != nil {
		return fmt.Errorf("set password: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return entities.ErrUserNotFound
	}
	p.log.Infow("password updated", "username", username)
	return nil
}
