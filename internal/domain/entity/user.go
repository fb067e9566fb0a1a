package entity

import (
	"strings"
	"time"

	errs "github.com/fintrack-app/fintrack-backend/internal/domain/error"
	coreport "github.com/fintrack-app/fintrack-backend/internal/domain/port/core"
)

// User represents an account holder. PasswordHash is a salted one-way hash
// and must never leave the backend.
type User struct {
	ID           uint64
	Name         string
	Email        string
	PasswordHash string
	ProfileImage *string // filename under the uploads root, nil when unset
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NewUser creates a user with the given profile data and an already-hashed password.
// Users are normally created outside this system; this constructor backs the
// development seed.
func NewUser(name, email, passwordHash string, timeProvider coreport.TimeProvider) (*User, error) {
	if strings.TrimSpace(name) == "" || strings.TrimSpace(email) == "" {
		return nil, errs.ErrMissingFields
	}
	if passwordHash == "" {
		return nil, errs.ErrMissingFields
	}

	now := timeProvider.Now()
	return &User{
		Name:         name,
		Email:        email,
		PasswordHash: passwordHash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}, nil
}

// HasProfileImage reports whether the user currently references a stored image file
func (u *User) HasProfileImage() bool {
	return u.ProfileImage != nil && *u.ProfileImage != ""
}
