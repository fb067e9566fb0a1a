package entity

import (
	"fmt"
	"time"

	errs "github.com/fintrack-app/fintrack-backend/internal/domain/error"
	coreport "github.com/fintrack-app/fintrack-backend/internal/domain/port/core"
)

// TransactionType is the kind of a transaction
type TransactionType string

// Transaction types. Exactly two variants, anything else is rejected.
const (
	TypeIncome  TransactionType = "income"
	TypeExpense TransactionType = "expense"
)

// Transaction represents a single income or expense entry owned by a user.
// ID, UserID and CreatedAt are immutable after creation; only Type, Amount
// and Note may change on update.
type Transaction struct {
	ID        uint64
	UserID    uint64
	Type      TransactionType
	Amount    float64
	Note      string
	CreatedAt time.Time
}

// NewTransaction creates a transaction with a server-assigned creation timestamp
func NewTransaction(
	userID uint64,
	transactionType string,
	amount float64,
	note string,
	timeProvider coreport.TimeProvider,
) (*Transaction, error) {
	if userID == 0 {
		return nil, errs.ErrInvalidUserID
	}
	if !IsValidTransactionType(transactionType) {
		return nil, fmt.Errorf("%w: %s", errs.ErrInvalidTransactionType, transactionType)
	}

	return &Transaction{
		UserID:    userID,
		Type:      TransactionType(transactionType),
		Amount:    amount,
		Note:      note,
		CreatedAt: timeProvider.Now(),
	}, nil
}

// IsIncome returns true if this transaction adds to the user's balance
func (t *Transaction) IsIncome() bool {
	return t.Type == TypeIncome
}

// IsExpense returns true if this transaction subtracts from the user's balance
func (t *Transaction) IsExpense() bool {
	return t.Type == TypeExpense
}

// IsValidTransactionType validates the type against the two allowed variants
func IsValidTransactionType(transactionType string) bool {
	return transactionType == string(TypeIncome) || transactionType == string(TypeExpense)
}
