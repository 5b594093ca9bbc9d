// Package savings contains savings goal use cases.
package savings

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/expense-daddy/backend/internal/application/adapter"
	"github.com/expense-daddy/backend/internal/domain/entity"
	domainerror "github.com/expense-daddy/backend/internal/domain/error"
)

// UpdateSavingsGoalInput represents the input for savings goal update.
type UpdateSavingsGoalInput struct {
	ID    string
	Patch entity.SavingsGoalPatch
}

// UpdateSavingsGoalOutput represents the output of savings goal update.
type UpdateSavingsGoalOutput struct {
	Goal *entity.SavingsGoal
}

// UpdateSavingsGoalUseCase handles savings goal update logic.
type UpdateSavingsGoalUseCase struct {
	goalRepo adapter.SavingsGoalRepository
}

// NewUpdateSavingsGoalUseCase creates a new UpdateSavingsGoalUseCase instance.
func NewUpdateSavingsGoalUseCase(goalRepo adapter.SavingsGoalRepository) *UpdateSavingsGoalUseCase {
	return &UpdateSavingsGoalUseCase{
		goalRepo: goalRepo,
	}
}

// Execute performs the savings goal update. The current amount may exceed the target.
func (uc *UpdateSavingsGoalUseCase) Execute(ctx context.Context, input UpdateSavingsGoalInput) (*UpdateSavingsGoalOutput, error) {
	if input.ID == "" {
		return nil, domainerror.NewRecordError(domainerror.ErrCodeMissingRecordID, "goal id is required", domainerror.ErrMissingRecordID)
	}

	if input.Patch.Name != nil && strings.TrimSpace(*input.Patch.Name) == "" {
		return nil, domainerror.NewRecordError(domainerror.ErrCodeMissingName, "name cannot be empty", domainerror.ErrMissingName)
	}

	goal, err := uc.goalRepo.Update(ctx, input.ID, input.Patch)
	if err != nil {
		if errors.Is(err, domainerror.ErrRecordNotFound) {
			return nil, domainerror.NewRecordError(domainerror.ErrCodeRecordNotFound, "goal not found", domainerror.ErrRecordNotFound)
		}
		if errors.Is(err, domainerror.ErrActivityNotRecorded) {
			return &UpdateSavingsGoalOutput{Goal: goal}, err
		}
		return nil, fmt.Errorf("failed to update savings goal: %w", err)
	}

	return &UpdateSavingsGoalOutput{
		Goal: goal,
	}, nil
}
