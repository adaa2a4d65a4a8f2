// Package entities contains core business entities and errors.
package entities

import "errors"

var (
	// ErrValidation signals failed input validation.
	ErrValidation = errors.New("invalid argument")
	// ErrAttemptsExhausted is returned when a team already has three recorded attempts.
	ErrAttemptsExhausted = errors.New("no attempts remaining")
	// ErrStageUnsupported signals a stage the configured variant forbids.
	ErrStageUnsupported = errors.New("stage unsupported for variant")
	// ErrForbidden signals the acting user lacks the required role.
	ErrForbidden = errors.New("forbidden")
	// ErrInvalidCredentials signals a failed login.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrConfirmationExpired signals a confirmation token that is unknown or already used.
	ErrConfirmationExpired = errors.New("confirmation expired")
	// ErrTeamExists signals team number or name conflict.
	ErrTeamExists = errors.New("team exists")
	// ErrTeamNotFound signals missing team.
	ErrTeamNotFound = errors.New("team not found")
	// ErrUserExists signals username conflict.
	ErrUserExists = errors.New("user exists")
	// ErrUserNotFound is returned when a user does not exist.
	ErrUserNotFound = errors.New("user not found")
	// ErrPracticeTeamExists signals an attempt to register a second practice team.
	ErrPracticeTeamExists = errors.New("practice team exists")
)
