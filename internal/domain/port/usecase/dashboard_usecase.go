package usecase

import "context"

// BalanceSummary aggregates a user's transactions into a balance overview
type BalanceSummary struct {
	Balance      float64
	TotalIncome  float64
	TotalExpense float64
}

// DashboardUseCase defines the dashboard aggregation logic
type DashboardUseCase interface {
	// Summary computes income/expense totals and their difference for a user
	Summary(ctx context.Context, userID uint64) (*BalanceSummary, error)
}
