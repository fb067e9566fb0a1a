package repository

import (
	"context"
	"fmt"

	"github.com/fintrack-app/fintrack-backend/internal/domain/entity"
	errs "github.com/fintrack-app/fintrack-backend/internal/domain/error"
	coreport "github.com/fintrack-app/fintrack-backend/internal/domain/port/core"
	"github.com/fintrack-app/fintrack-backend/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

// MessageRepository implements the MessageRepository port using GORM
type MessageRepository struct {
	db     *gorm.DB
	logger coreport.Logger
}

// NewMessageRepository creates a new MessageRepository instance
func NewMessageRepository(db *gorm.DB, logger coreport.Logger) *MessageRepository {
	return &MessageRepository{
		db:     db,
		logger: logger,
	}
}

// Create inserts a notification message row. Callers treat failures as
// best-effort, so this only reports the error without classifying it.
func (r *MessageRepository) Create(ctx context.Context, message *entity.Message) error {
	messageModel := model.Message{
		UserID:  message.UserID,
		Title:   message.Title,
		Content: message.Content,
	}

	result := r.db.WithContext(ctx).Create(&messageModel)
	if result.Error != nil {
		return fmt.Errorf("%w: %s", errs.ErrInternalServer, result.Error.Error())
	}

	message.ID = messageModel.ID
	return nil
}
