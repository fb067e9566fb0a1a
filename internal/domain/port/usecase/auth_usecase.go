package usecase

import "context"

// LoginResult is the profile returned on successful authentication.
// The password hash is deliberately absent.
type LoginResult struct {
	UserID       uint64
	Name         string
	Email        string
	ProfileImage *string
}

// AuthUseCase defines the authentication business logic
type AuthUseCase interface {
	// Login verifies an email/password pair and returns the user's profile
	Login(ctx context.Context, email, password string) (*LoginResult, error)
}
