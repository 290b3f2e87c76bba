package entities

import (
	"strings"
	"time"

	pkgerrors "teachback-backend/pkg/errors"
)

// User is a registered account. The password is stored only as a bcrypt
// hash computed at the application boundary.
type User struct {
	id           string
	email        string
	name         string
	passwordHash string
	createdAt    time.Time
}

// NewUser creates a user with an already-hashed password
func NewUser(id, email, name, passwordHash string, createdAt time.Time) (*User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if id == "" {
		return nil, pkgerrors.NewValidationError("user id cannot be empty")
	}
	if email == "" || !strings.Contains(email, "@") {
		return nil, pkgerrors.NewValidationError("email is invalid")
	}
	if passwordHash == "" {
		return nil, pkgerrors.NewValidationError("password hash cannot be empty")
	}
	if name == "" {
		// Default the display name to the mailbox part of the address
		name = email[:strings.Index(email, "@")]
	}

	return &User{
		id:           id,
		email:        email,
		name:         name,
		passwordHash: passwordHash,
		createdAt:    createdAt,
	}, nil
}

// ID returns the user's unique identifier
func (u *User) ID() string {
	return u.id
}

// Email returns the user's email address, lowercased
func (u *User) Email() string {
	return u.email
}

// Name returns the user's display name
func (u *User) Name() string {
	return u.name
}

// PasswordHash returns the bcrypt hash for credential checks
func (u *User) PasswordHash() string {
	return u.passwordHash
}

// CreatedAt returns when the account was created
func (u *User) CreatedAt() time.Time {
	return u.createdAt
}
