package repository

import (
	"context"
	"fmt"

	"github.com/fintrack-app/fintrack-backend/internal/domain/entity"
	errs "github.com/fintrack-app/fintrack-backend/internal/domain/error"
	coreport "github.com/fintrack-app/fintrack-backend/internal/domain/port/core"
	"github.com/fintrack-app/fintrack-backend/internal/infrastructure/adapter/database"
	"github.com/fintrack-app/fintrack-backend/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

// TransactionRepository implements the TransactionRepository port using GORM
type TransactionRepository struct {
	db          *gorm.DB
	logger      coreport.Logger
	errorMapper *database.ErrorMapper
}

// NewTransactionRepository creates a new TransactionRepository instance
func NewTransactionRepository(db *gorm.DB, errorMapper *database.ErrorMapper, logger coreport.Logger) *TransactionRepository {
	return &TransactionRepository{
		db:          db,
		logger:      logger,
		errorMapper: errorMapper,
	}
}

// handleDatabaseError maps driver errors to domain errors at the boundary
func (r *TransactionRepository) handleDatabaseError(operation string, err error) error {
	r.logger.Error(fmt.Sprintf("Database error when %s", operation), map[string]any{
		"error": err.Error(),
	})
	return fmt.Errorf("%w: %s", r.errorMapper.MapError(err, operation), err.Error())
}

// Create inserts a new transaction row
func (r *TransactionRepository) Create(ctx context.Context, transaction *entity.Transaction) error {
	transactionModel := model.Transaction{
		UserID:    transaction.UserID,
		Type:      string(transaction.Type),
		Amount:    transaction.Amount,
		Note:      transaction.Note,
		CreatedAt: transaction.CreatedAt,
	}

	result := r.db.WithContext(ctx).Create(&transactionModel)
	if result.Error != nil {
		return r.handleDatabaseError("creating transaction", result.Error)
	}

	transaction.ID = transactionModel.ID
	return nil
}

// Update changes type/amount/note of the row matching both ID and UserID.
// The ownership filter is part of the statement, not a separate read.
func (r *TransactionRepository) Update(ctx context.Context, transaction *entity.Transaction) error {
	result := r.db.WithContext(ctx).Model(&model.Transaction{}).
		Where("id = ? AND user_id = ?", transaction.ID, transaction.UserID).
		Updates(map[string]interface{}{
			"type":   string(transaction.Type),
			"amount": transaction.Amount,
			"note":   transaction.Note,
		})

	if result.Error != nil {
		return r.handleDatabaseError("updating transaction", result.Error)
	}
	if result.RowsAffected == 0 {
		return errs.ErrTransactionNotFound
	}
	return nil
}

// Delete removes the row matching both id and userID
func (r *TransactionRepository) Delete(ctx context.Context, id, userID uint64) error {
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&model.Transaction{})

	if result.Error != nil {
		return r.handleDatabaseError("deleting transaction", result.Error)
	}
	if result.RowsAffected == 0 {
		return errs.ErrTransactionNotFound
	}
	return nil
}

// SumAmountByType returns the total amount of the user's transactions of the
// given type. COALESCE keeps users without rows at 0 instead of NULL.
func (r *TransactionRepository) SumAmountByType(ctx context.Context, userID uint64, transactionType entity.TransactionType) (float64, error) {
	var total float64
	result := r.db.WithContext(ctx).Model(&model.Transaction{}).
		Where("user_id = ? AND type = ?", userID, string(transactionType)).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&total)

	if result.Error != nil {
		return 0, r.handleDatabaseError("summing transactions", result.Error)
	}
	return total, nil
}
