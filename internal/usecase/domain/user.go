// Package domain contains application usecases orchestrating the
// competition scoring logic: accounts and authentication.
package domain

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/benjidennett/lego-app/internal/entities"

	"golang.org/x/crypto/bcrypt"
)

// Authenticate verifies credentials. Unknown usernames and wrong
// passwords are indistinguishable to the caller.
func (u *Usecase) Authenticate(ctx context.Context, username, password string) (*entities.User, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if username == "" || password == "" {
		return nil, entities.ErrInvalidCredentials
	}

	usr, err := u.repo.UserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, entities.ErrUserNotFound) {
			return nil, entities.ErrInvalidCredentials
		}
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(usr.PasswordHash), []byte(password)) != nil {
		return nil, entities.ErrInvalidCredentials
	}
	return usr, nil
}

// CreateUser registers an account with a bcrypt-hashed password.
func (u *Usecase) CreateUser(ctx context.Context, actor entities.User, username, password string, judge, admin bool) (*entities.User, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if !actor.IsAdmin {
		return nil, entities.ErrForbidden
	}

	username = strings.TrimSpace(username)
	if username == "" {
		return nil, fmt.Errorf("%w: username is required", entities.ErrValidation)
	}
	if password == "" {
		return nil, fmt.Errorf("%w: password is required", entities.ErrValidation)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	return u.repo.CreateUser(ctx, entities.User{
		Username:     username,
		PasswordHash: string(hash),
		IsJudge:      judge,
		IsAdmin:      admin,
	})
}

// Users lists all accounts.
func (u *Usecase) Users(ctx context.Context, actor entities.User) ([]entities.User, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if !actor.IsAdmin {
		return nil, entities.ErrForbidden
	}
	return u.repo.Users(ctx)
}

// DeleteUser removes an account.
func (u *Usecase) DeleteUser(ctx context.Context, actor entities.User, username string) error {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if !actor.IsAdmin {
		return entities.ErrForbidden
	}
	if username == "" {
		return fmt.Errorf("%w: username is required", entities.ErrValidation)
	}
	return u.repo.DeleteUser(ctx, username)
}

// SetPassword resets an account password.
func (u *Usecase) SetPassword(ctx context.Context, actor entities.User, username, password string) error {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if !actor.IsAdmin {
		return entities.ErrForbidden
	}
	if username == "" || password == "" {
		return fmt.Errorf("%w: username and password are required", entities.ErrValidation)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	return u.repo.SetPassword(ctx, username, string(hash))
}
