// Package entities contains core business entities.
package entities

// User is a domain representation of a judge, admin or plain account.
// PasswordHash holds a bcrypt digest, never plaintext.
type User struct {
	ID           int64
	Username     string
	PasswordHash string
	IsJudge      bool
	IsAdmin      bool
}

// CanScore reports whether the user may submit scores.
func (u User) CanScore() bool {
	return u.IsJudge || u.IsAdmin
}
