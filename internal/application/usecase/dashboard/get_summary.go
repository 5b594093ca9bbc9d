// Package dashboard contains dashboard-related use cases.
package dashboard

import (
	"context"
	"fmt"

	"github.com/expense-daddy/backend/internal/application/adapter"
	"github.com/expense-daddy/backend/internal/domain/entity"
)

// RecentExpenseCount is the number of recent daily expenses on the home screen.
const RecentExpenseCount = 5

// GetSummaryOutput represents the output of getting the dashboard summary.
type GetSummaryOutput struct {
	Date           string
	Currency       string
	Profile        entity.UserProfile
	Summary        Summary
	Categories     []CategoryBreakdownItem
	TopCategories  []CategoryBreakdownItem
	NoSpendDays    int
	Weekly         []DailySpending
	RecentExpenses []entity.Expense
	Goals          []GoalProgress
}

// GetSummaryUseCase handles computing the dashboard summary.
type GetSummaryUseCase struct {
	snapshots SnapshotProvider
	clock     adapter.Clock
}

// NewGetSummaryUseCase creates a new GetSummaryUseCase instance.
func NewGetSummaryUseCase(snapshots SnapshotProvider, clock adapter.Clock) *GetSummaryUseCase {
	return &GetSummaryUseCase{
		snapshots: snapshots,
		clock:     clock,
	}
}

// Execute loads a fresh snapshot and derives every dashboard figure from it.
func (uc *GetSummaryUseCase) Execute(ctx context.Context) (*GetSummaryOutput, error) {
	snapshot, err := uc.snapshots.Execute(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load snapshot: %w", err)
	}

	now := uc.clock.Now()
	categories := CategoryBreakdown(snapshot.Expenses, now)

	recent := DailyExpenses(snapshot.Expenses)
	if len(recent) > RecentExpenseCount {
		recent = recent[:RecentExpenseCount]
	}

	return &GetSummaryOutput{
		Date:           DayKey(now),
		Currency:       snapshot.Profile.Currency,
		Profile:        snapshot.Profile,
		Summary:        ComputeSummary(*snapshot, now),
		Categories:     categories,
		TopCategories:  TopCategories(categories),
		NoSpendDays:    CountNoSpendDays(snapshot.Expenses, now),
		Weekly:         WeeklySpending(snapshot.Expenses, now),
		RecentExpenses: recent,
		Goals:          GoalsProgress(snapshot.SavingsGoals),
	}, nil
}
