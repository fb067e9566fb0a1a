package persistence

import (
	"context"

	"github.com/fintrack-app/fintrack-backend/internal/domain/entity"
)

// TransactionRepository defines persistence operations for transactions.
// Every mutation filters by both transaction ID and owning user ID.
type TransactionRepository interface {
	// Create inserts a new transaction row
	Create(ctx context.Context, transaction *entity.Transaction) error
	// Update changes type/amount/note of the row matching ID and UserID.
	// Returns ErrTransactionNotFound when no owned row matched.
	Update(ctx context.Context, transaction *entity.Transaction) error
	// Delete removes the row matching id and userID.
	// Returns ErrTransactionNotFound when no owned row matched.
	Delete(ctx context.Context, id, userID uint64) error
	// SumAmountByType returns the total amount of the user's transactions of
	// the given type, 0 when there are none.
	SumAmountByType(ctx context.Context, userID uint64, transactionType entity.TransactionType) (float64, error)
}
