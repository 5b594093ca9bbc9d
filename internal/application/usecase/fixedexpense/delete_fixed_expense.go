// Package fixedexpense contains fixed expense use cases.
package fixedexpense

import (
	"context"
	"errors"
	"fmt"

	"github.com/expense-daddy/backend/internal/application/adapter"
	domainerror "github.com/expense-daddy/backend/internal/domain/error"
)

// DeleteFixedExpenseInput represents the input for fixed expense deletion.
type DeleteFixedExpenseInput struct {
	ID string
}

// DeleteFixedExpenseOutput represents the output of fixed expense deletion.
type DeleteFixedExpenseOutput struct {
	Success bool
}

// DeleteFixedExpenseUseCase handles fixed expense deletion logic.
type DeleteFixedExpenseUseCase struct {
	fixedRepo adapter.FixedExpenseRepository
}

// NewDeleteFixedExpenseUseCase creates a new DeleteFixedExpenseUseCase instance.
func NewDeleteFixedExpenseUseCase(fixedRepo adapter.FixedExpenseRepository) *DeleteFixedExpenseUseCase {
	return &DeleteFixedExpenseUseCase{
		fixedRepo: fixedRepo,
	}
}

// Execute performs the fixed expense deletion. Deleting an unknown id succeeds.
func (uc *DeleteFixedExpenseUseCase) Execute(ctx context.Context, input DeleteFixedExpenseInput) (*DeleteFixedExpenseOutput, error) {
	if input.ID == "" {
		return nil, domainerror.NewRecordError(domainerror.ErrCodeMissingRecordID, "fixed expense id is required", domainerror.ErrMissingRecordID)
	}

	if err := uc.fixedRepo.Delete(ctx, input.ID); err != nil {
		if errors.Is(err, domainerror.ErrActivityNotRecorded) {
			return &DeleteFixedExpenseOutput{Success: true}, err
		}
		return nil, fmt.Errorf("failed to delete fixed expense: %w", err)
	}

	return &DeleteFixedExpenseOutput{
		Success: true,
	}, nil
}
