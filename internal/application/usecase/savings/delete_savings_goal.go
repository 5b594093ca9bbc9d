// Package savings contains savings goal use cases.
package savings

import (
	"context"
	"errors"
	"fmt"

	"github.com/expense-daddy/backend/internal/application/adapter"
	domainerror "github.com/expense-daddy/backend/internal/domain/error"
)

// DeleteSavingsGoalInput represents the input for savings goal deletion.
type DeleteSavingsGoalInput struct {
	ID string
}

// DeleteSavingsGoalOutput represents the output of savings goal deletion.
type DeleteSavingsGoalOutput struct {
	Success bool
}

// DeleteSavingsGoalUseCase handles savings goal deletion logic.
type DeleteSavingsGoalUseCase struct {
	goalRepo adapter.SavingsGoalRepository
}

// NewDeleteSavingsGoalUseCase creates a new DeleteSavingsGoalUseCase instance.
func NewDeleteSavingsGoalUseCase(goalRepo adapter.SavingsGoalRepository) *DeleteSavingsGoalUseCase {
	return &DeleteSavingsGoalUseCase{
		goalRepo: goalRepo,
	}
}

// Execute performs the savings goal deletion. Deleting an unknown id succeeds.
func (uc *DeleteSavingsGoalUseCase) Execute(ctx context.Context, input DeleteSavingsGoalInput) (*DeleteSavingsGoalOutput, error) {
	if input.ID == "" {
		return nil, domainerror.NewRecordError(domainerror.ErrCodeMissingRecordID, "goal id is required", domainerror.ErrMissingRecordID)
	}

	if err := uc.goalRepo.Delete(ctx, input.ID); err != nil {
		if errors.Is(err, domainerror.ErrActivityNotRecorded) {
			return &DeleteSavingsGoalOutput{Success: true}, err
		}
		return nil, fmt.Errorf("failed to delete savings goal: %w", err)
	}

	return &DeleteSavingsGoalOutput{
		Success: true,
	}, nil
}
