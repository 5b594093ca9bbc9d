// Package fixedexpense contains fixed expense use cases.
package fixedexpense

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/expense-daddy/backend/internal/application/adapter"
	"github.com/expense-daddy/backend/internal/domain/entity"
	domainerror "github.com/expense-daddy/backend/internal/domain/error"
)

// UpdateFixedExpenseInput represents the input for fixed expense update.
type UpdateFixedExpenseInput struct {
	ID    string
	Patch entity.FixedExpensePatch
}

// UpdateFixedExpenseOutput represents the output of fixed expense update.
type UpdateFixedExpenseOutput struct {
	FixedExpense *entity.FixedExpense
}

// UpdateFixedExpenseUseCase handles fixed expense update logic.
type UpdateFixedExpenseUseCase struct {
	fixedRepo adapter.FixedExpenseRepository
}

// NewUpdateFixedExpenseUseCase creates a new UpdateFixedExpenseUseCase instance.
func NewUpdateFixedExpenseUseCase(fixedRepo adapter.FixedExpenseRepository) *UpdateFixedExpenseUseCase {
	return &UpdateFixedExpenseUseCase{
		fixedRepo: fixedRepo,
	}
}

// Execute performs the fixed expense update.
func (uc *UpdateFixedExpenseUseCase) Execute(ctx context.Context, input UpdateFixedExpenseInput) (*UpdateFixedExpenseOutput, error) {
	if input.ID == "" {
		return nil, domainerror.NewRecordError(domainerror.ErrCodeMissingRecordID, "fixed expense id is required", domainerror.ErrMissingRecordID)
	}

	if input.Patch.Name != nil && strings.TrimSpace(*input.Patch.Name) == "" {
		return nil, domainerror.NewRecordError(domainerror.ErrCodeMissingName, "name cannot be empty", domainerror.ErrMissingName)
	}

	if input.Patch.Date != nil && !entity.IsValidDate(*input.Patch.Date) {
		return nil, domainerror.NewRecordError(domainerror.ErrCodeInvalidDate, "date must be an ISO 8601 date", domainerror.ErrInvalidDate)
	}

	fixed, err := uc.fixedRepo.Update(ctx, input.ID, input.Patch)
	if err != nil {
		if errors.Is(err, domainerror.ErrRecordNotFound) {
			return nil, domainerror.NewRecordError(domainerror.ErrCodeRecordNotFound, "fixed expense not found", domainerror.ErrRecordNotFound)
		}
		if errors.Is(err, domainerror.ErrActivityNotRecorded) {
			return &UpdateFixedExpenseOutput{FixedExpense: fixed}, err
		}
		return nil, fmt.Errorf("failed to update fixed expense: %w", err)
	}

	return &UpdateFixedExpenseOutput{
		FixedExpense: fixed,
	}, nil
}
