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

// CreateSavingsGoalInput represents the input for savings goal creation.
type CreateSavingsGoalInput struct {
	Name          string
	TargetAmount  float64
	CurrentAmount float64
}

// CreateSavingsGoalOutput represents the output of savings goal creation.
type CreateSavingsGoalOutput struct {
	Goal *entity.SavingsGoal
}

// CreateSavingsGoalUseCase handles savings goal creation logic.
type CreateSavingsGoalUseCase struct {
	goalRepo adapter.SavingsGoalRepository
}

// NewCreateSavingsGoalUseCase creates a new CreateSavingsGoalUseCase instance.
func NewCreateSavingsGoalUseCase(goalRepo adapter.SavingsGoalRepository) *CreateSavingsGoalUseCase {
	return &CreateSavingsGoalUseCase{
		goalRepo: goalRepo,
	}
}

// Execute performs the savings goal creation.
func (uc *CreateSavingsGoalUseCase) Execute(ctx context.Context, input CreateSavingsGoalInput) (*CreateSavingsGoalOutput, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, domainerror.NewRecordError(domainerror.ErrCodeMissingName, "name is required", domainerror.ErrMissingName)
	}

	// Validate target amount
	if input.TargetAmount <= 0 {
		return nil, domainerror.NewRecordError(
			domainerror.ErrCodeInvalidTargetAmount,
			"target amount must be greater than zero",
			domainerror.ErrInvalidTargetAmount,
		)
	}

	if input.CurrentAmount < 0 {
		return nil, domainerror.NewRecordError(
			domainerror.ErrCodeInvalidCurrentAmount,
			"current amount cannot be negative",
			domainerror.ErrInvalidCurrentAmount,
		)
	}

	goal, err := uc.goalRepo.Add(ctx, entity.SavingsGoalDraft{
		Name:          name,
		TargetAmount:  input.TargetAmount,
		CurrentAmount: input.CurrentAmount,
	})
	if err != nil {
		if errors.Is(err, domainerror.ErrActivityNotRecorded) {
			return &CreateSavingsGoalOutput{Goal: goal}, err
		}
		return nil, fmt.Errorf("failed to create savings goal: %w", err)
	}

	return &CreateSavingsGoalOutput{
		Goal: goal,
	}, nil
}
