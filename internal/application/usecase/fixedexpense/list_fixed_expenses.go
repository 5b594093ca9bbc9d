// Package fixedexpense contains fixed expense use cases.
package fixedexpense

import (
	"context"
	"fmt"

	"github.com/expense-daddy/backend/internal/application/adapter"
	"github.com/expense-daddy/backend/internal/domain/entity"
)

// ListFixedExpensesOutput represents the output of listing fixed expenses.
type ListFixedExpensesOutput struct {
	FixedExpenses []entity.FixedExpense
}

// ListFixedExpensesUseCase handles listing fixed expenses.
type ListFixedExpensesUseCase struct {
	fixedRepo adapter.FixedExpenseRepository
}

// NewListFixedExpensesUseCase creates a new ListFixedExpensesUseCase instance.
func NewListFixedExpensesUseCase(fixedRepo adapter.FixedExpenseRepository) *ListFixedExpensesUseCase {
	return &ListFixedExpensesUseCase{
		fixedRepo: fixedRepo,
	}
}

// Execute lists fixed expenses newest first.
func (uc *ListFixedExpensesUseCase) Execute(ctx context.Context) (*ListFixedExpensesOutput, error) {
	fixed, err := uc.fixedRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list fixed expenses: %w", err)
	}

	return &ListFixedExpensesOutput{
		FixedExpenses: fixed,
	}, nil
}
