package domain

import (
	"strings"
	"time"
)

// User represents a registered account.
// The plaintext password never appears here; only its hash.
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
}

// NewUser builds a User that has not been stored yet.
// The store assigns ID and CreatedAt on insert.
func NewUser(name, email, passwordHash string) (*User, error) {
	user := &User{
		Name:         name,
		Email:        email,
		PasswordHash: passwordHash,
	}
	if err := user.Validate(); err != nil {
		return nil, err
	}
	return user, nil
}

// Validate checks that the fields required for persistence are present.
// Email is compared exactly, so it is checked for emptiness only.
func (u *User) Validate() error {
	if strings.TrimSpace(u.Name) == "" {
		return NewValidationError("name", "is required", ErrEmptyField)
	}
	if strings.TrimSpace(u.Email) == "" {
		return NewValidationError("email", "is required", ErrEmptyField)
	}
	if u.PasswordHash == "" {
		return NewValidationError("password", "hash is required", ErrEmptyField)
	}
	return nil
}
