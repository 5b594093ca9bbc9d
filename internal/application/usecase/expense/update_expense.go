// Package expense contains expense-related use cases.
package expense

import (
	"context"
	"errors"
	"fmt"

	"github.com/expense-daddy/backend/internal/application/adapter"
	"github.com/expense-daddy/backend/internal/domain/entity"
	domainerror "github.com/expense-daddy/backend/internal/domain/error"
)

// UpdateExpenseInput represents the input for expense update.
type UpdateExpenseInput struct {
	ID    string
	Patch entity.ExpensePatch
}

// UpdateExpenseOutput represents the output of expense update.
type UpdateExpenseOutput struct {
	Expense *entity.Expense
}

// UpdateExpenseUseCase handles expense update logic.
type UpdateExpenseUseCase struct {
	expenseRepo adapter.ExpenseRepository
}

// NewUpdateExpenseUseCase creates a new UpdateExpenseUseCase instance.
func NewUpdateExpenseUseCase(expenseRepo adapter.ExpenseRepository) *UpdateExpenseUseCase {
	return &UpdateExpenseUseCase{
		expenseRepo: expenseRepo,
	}
}

// Execute performs the expense update.
func (uc *UpdateExpenseUseCase) Execute(ctx context.Context, input UpdateExpenseInput) (*UpdateExpenseOutput, error) {
	if input.ID == "" {
		return nil, domainerror.NewRecordError(domainerror.ErrCodeMissingRecordID, "expense id is required", domainerror.ErrMissingRecordID)
	}

	// Validate changed fields
	if err := validatePatch(input.Patch); err != nil {
		return nil, err
	}

	expense, err := uc.expenseRepo.Update(ctx, input.ID, input.Patch)
	if err != nil {
		if errors.Is(err, domainerror.ErrRecordNotFound) {
			return nil, domainerror.NewRecordError(domainerror.ErrCodeRecordNotFound, "expense not found", domainerror.ErrRecordNotFound)
		}
		if errors.Is(err, domainerror.ErrActivityNotRecorded) {
			return &UpdateExpenseOutput{Expense: expense}, err
		}
		return nil, fmt.Errorf("failed to update expense: %w", err)
	}

	return &UpdateExpenseOutput{
		Expense: expense,
	}, nil
}
