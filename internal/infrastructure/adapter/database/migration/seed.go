package migration

import (
	"context"
	"errors"

	"github.com/fintrack-app/fintrack-backend/internal/domain/entity"
	errs "github.com/fintrack-app/fintrack-backend/internal/domain/error"
	coreport "github.com/fintrack-app/fintrack-backend/internal/domain/port/core"
	"github.com/fintrack-app/fintrack-backend/internal/domain/port/persistence"
)

// Development seed account. User creation is otherwise out of scope for this
// backend, so a fresh dev database would be unusable without it.
const (
	seedUserName     = "Test User"
	seedUserEmail    = "test@example.com"
	seedUserPassword = "password123"
)

// SeedDevUser creates the development login account if it does not exist yet.
// Never called in production.
func SeedDevUser(
	ctx context.Context,
	users persistence.UserRepository,
	hasher coreport.PasswordHasher,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) error {
	_, err := users.GetByEmail(ctx, seedUserEmail)
	if err == nil {
		return nil // already seeded
	}
	if !errors.Is(err, errs.ErrUserNotFound) {
		return err
	}

	passwordHash, err := hasher.Hash(seedUserPassword)
	if err != nil {
		return err
	}

	user, err := entity.NewUser(seedUserName, seedUserEmail, passwordHash, timeProvider)
	if err != nil {
		return err
	}

	if err := users.Create(ctx, user); err != nil {
		return err
	}

	logger.Info("Seeded development user", map[string]any{
		"email": seedUserEmail,
	})
	return nil
}
