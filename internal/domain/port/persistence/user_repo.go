package persistence

import (
	"context"

	"github.com/fintrack-app/fintrack-backend/internal/domain/entity"
)

// UserRepository defines persistence operations for users
type UserRepository interface {
	// GetByID retrieves a user by ID
	GetByID(ctx context.Context, id uint64) (*entity.User, error)
	// GetByEmail retrieves a user by exact email match
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	// Create inserts a new user (used by seeding only)
	Create(ctx context.Context, user *entity.User) error
	// UpdateProfileImage sets or clears (nil) the user's profile image reference
	UpdateProfileImage(ctx context.Context, userID uint64, filename *string) error
}
