package auth

import (
	"context"
	"errors"

	errs "github.com/fintrack-app/fintrack-backend/internal/domain/error"
	coreport "github.com/fintrack-app/fintrack-backend/internal/domain/port/core"
	"github.com/fintrack-app/fintrack-backend/internal/domain/port/persistence"
	usecaseport "github.com/fintrack-app/fintrack-backend/internal/domain/port/usecase"
)

// AuthUseCase implements the authentication business logic
type AuthUseCase struct {
	userRepo persistence.UserRepository
	hasher   coreport.PasswordHasher
	logger   coreport.Logger
}

// NewAuthUseCase creates a new auth use case instance
func NewAuthUseCase(
	userRepo persistence.UserRepository,
	hasher coreport.PasswordHasher,
	logger coreport.Logger,
) usecaseport.AuthUseCase {
	return &AuthUseCase{
		userRepo: userRepo,
		hasher:   hasher,
		logger:   logger,
	}
}

// Login verifies an email/password pair against the stored user record.
// The password is never logged and never compared as a raw string.
func (u *AuthUseCase) Login(ctx context.Context, email, password string) (*usecaseport.LoginResult, error) {
	if email == "" || password == "" {
		return nil, errs.ErrMissingFields
	}

	user, err := u.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, errs.ErrUserNotFound) {
			u.logger.Warn("Login attempt for unknown email", map[string]any{
				"email": email,
			})
			return nil, err
		}
		u.logger.Error("Failed to look up user for login", map[string]any{
			"email": email,
			"error": err.Error(),
		})
		return nil, err
	}

	if err := u.hasher.Verify(user.PasswordHash, password); err != nil {
		u.logger.Warn("Login attempt with wrong password", map[string]any{
			"user_id": user.ID,
		})
		return nil, errs.ErrInvalidCredential
	}

	u.logger.Info("User logged in", map[string]any{
		"user_id": user.ID,
	})

	return &usecaseport.LoginResult{
		UserID:       user.ID,
		Name:         user.Name,
		Email:        user.Email,
		ProfileImage: user.ProfileImage,
	}, nil
}
