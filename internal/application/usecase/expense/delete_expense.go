// Package expense contains expense-related use cases.
package expense

import (
	"context"
	"errors"
	"fmt"

	"github.com/expense-daddy/backend/internal/application/adapter"
	domainerror "github.com/expense-daddy/backend/internal/domain/error"
)

// DeleteExpenseInput represents the input for expense deletion.
type DeleteExpenseInput struct {
	ID string
}

// DeleteExpenseOutput represents the output of expense deletion.
type DeleteExpenseOutput struct {
	Success bool
}

// DeleteExpenseUseCase handles expense deletion logic.
type DeleteExpenseUseCase struct {
	expenseRepo adapter.ExpenseRepository
}

// NewDeleteExpenseUseCase creates a new DeleteExpenseUseCase instance.
func NewDeleteExpenseUseCase(expenseRepo adapter.ExpenseRepository) *DeleteExpenseUseCase {
	return &DeleteExpenseUseCase{
		expenseRepo: expenseRepo,
	}
}

// Execute performs the expense deletion. Deleting an unknown id succeeds.
func (uc *DeleteExpenseUseCase) Execute(ctx context.Context, input DeleteExpenseInput) (*DeleteExpenseOutput, error) {
	if input.ID == "" {
		return nil, domainerror.NewRecordError(domainerror.ErrCodeMissingRecordID, "expense id is required", domainerror.ErrMissingRecordID)
	}

	if err := uc.expenseRepo.Delete(ctx, input.ID); err != nil {
		if errors.Is(err, domainerror.ErrActivityNotRecorded) {
			return &DeleteExpenseOutput{Success: true}, err
		}
		return nil, fmt.Errorf("failed to delete expense: %w", err)
	}

	return &DeleteExpenseOutput{
		Success: true,
	}, nil
}
