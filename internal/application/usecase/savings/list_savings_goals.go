// Package savings contains savings goal use cases.
package savings

import (
	"context"
	"fmt"

	"github.com/expense-daddy/backend/internal/application/adapter"
	"github.com/expense-daddy/backend/internal/domain/entity"
)

// GoalWithProgress pairs a goal with its completion percentage, capped at 100.
type GoalWithProgress struct {
	Goal     entity.SavingsGoal
	Progress float64
}

// ListSavingsGoalsOutput represents the output of listing savings goals.
type ListSavingsGoalsOutput struct {
	Goals []GoalWithProgress
}

// ListSavingsGoalsUseCase handles listing savings goals.
type ListSavingsGoalsUseCase struct {
	goalRepo adapter.SavingsGoalRepository
}

// NewListSavingsGoalsUseCase creates a new ListSavingsGoalsUseCase instance.
func NewListSavingsGoalsUseCase(goalRepo adapter.SavingsGoalRepository) *ListSavingsGoalsUseCase {
	return &ListSavingsGoalsUseCase{
		goalRepo: goalRepo,
	}
}

// Execute lists goals in insertion order.
func (uc *ListSavingsGoalsUseCase) Execute(ctx context.Context) (*ListSavingsGoalsOutput, error) {
	goals, err := uc.goalRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list savings goals: %w", err)
	}

	items := make([]GoalWithProgress, 0, len(goals))
	for _, g := range goals {
		items = append(items, GoalWithProgress{
			Goal:     g,
			Progress: Progress(g),
		})
	}

	return &ListSavingsGoalsOutput{
		Goals: items,
	}, nil
}

// Progress returns currentAmount/targetAmount as a percentage capped at 100.
// A goal without a positive target has no progress.
func Progress(g entity.SavingsGoal) float64 {
	if g.TargetAmount <= 0 {
		return 0
	}
	return min(g.CurrentAmount/g.TargetAmount*100, 100)
}
