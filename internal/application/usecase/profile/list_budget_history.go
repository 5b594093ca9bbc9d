// Package profile contains user profile and budget use cases.
package profile

import (
	"context"
	"fmt"

	"github.com/expense-daddy/backend/internal/application/adapter"
	"github.com/expense-daddy/backend/internal/domain/entity"
)

// ListBudgetHistoryOutput represents the output of listing budget history.
type ListBudgetHistoryOutput struct {
	History []entity.BudgetHistory
}

// ListBudgetHistoryUseCase handles listing monthly budget changes.
type ListBudgetHistoryUseCase struct {
	historyRepo adapter.BudgetHistoryRepository
}

// NewListBudgetHistoryUseCase creates a new ListBudgetHistoryUseCase instance.
func NewListBudgetHistoryUseCase(historyRepo adapter.BudgetHistoryRepository) *ListBudgetHistoryUseCase {
	return &ListBudgetHistoryUseCase{
		historyRepo: historyRepo,
	}
}

// Execute lists budget history entries, newest first.
func (uc *ListBudgetHistoryUseCase) Execute(ctx context.Context) (*ListBudgetHistoryOutput, error) {
	history, err := uc.historyRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list budget history: %w", err)
	}

	return &ListBudgetHistoryOutput{
		History: history,
	}, nil
}
