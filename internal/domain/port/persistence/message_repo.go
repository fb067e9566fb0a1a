package persistence

import (
	"context"

	"github.com/fintrack-app/fintrack-backend/internal/domain/entity"
)

// MessageRepository defines persistence operations for notification messages
type MessageRepository interface {
	// Create inserts a notification message row
	Create(ctx context.Context, message *entity.Message) error
}
