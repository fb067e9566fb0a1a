package usecase

import "context"

// CreateTransactionInput carries the wire-format fields of a create request.
// Amount stays a string until validation parses it.
type CreateTransactionInput struct {
	UserID uint64
	Type   string
	Amount string
	Note   string
}

// UpdateTransactionInput carries the wire-format fields of an update request
type UpdateTransactionInput struct {
	ID     uint64
	UserID uint64
	Type   string
	Amount string
	Note   string
}

// TransactionUseCase defines the transaction CRUD business logic
type TransactionUseCase interface {
	// Create validates the input and inserts a transaction, then attempts a
	// best-effort notification message insert
	Create(ctx context.Context, input CreateTransactionInput) error
	// Update changes type/amount/note of a transaction owned by the user
	Update(ctx context.Context, input UpdateTransactionInput) error
	// Delete removes a transaction owned by the user
	Delete(ctx context.Context, id, userID uint64) error
}
