package dashboard

import (
	"context"

	"github.com/fintrack-app/fintrack-backend/internal/domain/entity"
	errs "github.com/fintrack-app/fintrack-backend/internal/domain/error"
	coreport "github.com/fintrack-app/fintrack-backend/internal/domain/port/core"
	"github.com/fintrack-app/fintrack-backend/internal/domain/port/persistence"
	usecaseport "github.com/fintrack-app/fintrack-backend/internal/domain/port/usecase"
)

// DashboardUseCase implements the balance aggregation logic
type DashboardUseCase struct {
	transactions persistence.TransactionRepository
	logger       coreport.Logger
}

// NewDashboardUseCase creates a new dashboard use case instance
func NewDashboardUseCase(
	transactions persistence.TransactionRepository,
	logger coreport.Logger,
) usecaseport.DashboardUseCase {
	return &DashboardUseCase{
		transactions: transactions,
		logger:       logger,
	}
}

// Summary computes total income, total expense and their difference for a
// user. Users with no transactions get all zeroes.
func (u *DashboardUseCase) Summary(ctx context.Context, userID uint64) (*usecaseport.BalanceSummary, error) {
	if userID == 0 {
		return nil, errs.ErrInvalidUserID
	}

	income, err := u.transactions.SumAmountByType(ctx, userID, entity.TypeIncome)
	if err != nil {
		u.logger.Error("Failed to sum income", map[string]any{
			"user_id": userID,
			"error":   err.Error(),
		})
		return nil, err
	}

	expense, err := u.transactions.SumAmountByType(ctx, userID, entity.TypeExpense)
	if err != nil {
		u.logger.Error("Failed to sum expense", map[string]any{
			"user_id": userID,
			"error":   err.Error(),
		})
		return nil, err
	}

	return &usecaseport.BalanceSummary{
		Balance:      income - expense,
		TotalIncome:  income,
		TotalExpense: expense,
	}, nil
}
