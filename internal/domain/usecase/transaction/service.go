package transaction

import (
	"context"

	"github.com/fintrack-app/fintrack-backend/internal/domain/entity"
	coreport "github.com/fintrack-app/fintrack-backend/internal/domain/port/core"
	"github.com/fintrack-app/fintrack-backend/internal/domain/port/persistence"
	usecaseport "github.com/fintrack-app/fintrack-backend/internal/domain/port/usecase"
)

// notificationTitle is the stored title of the message written after a
// successful create. Kept in Indonesian for the existing mobile clients.
const notificationTitle = "Transaksi baru berhasil ditambahkan"

// Service implements the transaction CRUD business logic
type Service struct {
	transactions persistence.TransactionRepository
	messages     persistence.MessageRepository
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
	validator    *Validator
}

// NewService creates a new transaction service instance
func NewService(
	transactions persistence.TransactionRepository,
	messages persistence.MessageRepository,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) usecaseport.TransactionUseCase {
	return &Service{
		transactions: transactions,
		messages:     messages,
		timeProvider: timeProvider,
		logger:       logger,
		validator:    NewValidator(),
	}
}

// Create validates the input, inserts one transaction row with a
// server-assigned timestamp, then attempts a best-effort notification insert.
// Notification failure never alters the success outcome: the create+notify
// pair is intentionally not atomic.
func (s *Service) Create(ctx context.Context, input usecaseport.CreateTransactionInput) error {
	amount, err := s.validator.ValidateCreate(input.UserID, input.Type, input.Amount)
	if err != nil {
		return err
	}

	transaction, err := entity.NewTransaction(input.UserID, input.Type, amount, input.Note, s.timeProvider)
	if err != nil {
		return err
	}

	if err := s.transactions.Create(ctx, transaction); err != nil {
		s.logger.Error("Failed to create transaction", map[string]any{
			"user_id": input.UserID,
			"type":    input.Type,
			"error":   err.Error(),
		})
		return err
	}

	s.notify(ctx, input.UserID, input.Note)

	s.logger.Info("Transaction created", map[string]any{
		"user_id": input.UserID,
		"type":    input.Type,
		"amount":  amount,
	})
	return nil
}

// notify writes the companion notification message. Failures are swallowed.
func (s *Service) notify(ctx context.Context, userID uint64, note string) {
	message := entity.NewMessage(userID, notificationTitle, note)
	if err := s.messages.Create(ctx, message); err != nil {
		s.logger.Warn("Best-effort notification insert failed", map[string]any{
			"user_id": userID,
			"error":   err.Error(),
		})
	}
}

// Update changes type/amount/note of the row matching both ID and UserID.
// Zero rows affected reads as not-found-or-not-owned, the same policy delete
// uses.
func (s *Service) Update(ctx context.Context, input usecaseport.UpdateTransactionInput) error {
	amount, err := s.validator.ValidateUpdate(input.ID, input.UserID, input.Type, input.Amount)
	if err != nil {
		return err
	}

	transaction, err := entity.NewTransaction(input.UserID, input.Type, amount, input.Note, s.timeProvider)
	if err != nil {
		return err
	}
	transaction.ID = input.ID

	if err := s.transactions.Update(ctx, transaction); err != nil {
		return err
	}

	s.logger.Info("Transaction updated", map[string]any{
		"transaction_id": input.ID,
		"user_id":        input.UserID,
	})
	return nil
}

// Delete removes the row matching both id and userID
func (s *Service) Delete(ctx context.Context, id, userID uint64) error {
	if err := s.validator.ValidateDelete(id, userID); err != nil {
		return err
	}

	if err := s.transactions.Delete(ctx, id, userID); err != nil {
		return err
	}

	s.logger.Info("Transaction deleted", map[string]any{
		"transaction_id": id,
		"user_id":        userID,
	})
	return nil
}
