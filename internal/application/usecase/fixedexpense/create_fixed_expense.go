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

// CreateFixedExpenseInput represents the input for fixed expense creation.
type CreateFixedExpenseInput struct {
	Name     string
	Amount   float64
	Category string
	Notes    string
	Date     string
}

// CreateFixedExpenseOutput represents the output of fixed expense creation.
type CreateFixedExpenseOutput struct {
	FixedExpense *entity.FixedExpense
}

// CreateFixedExpenseUseCase handles fixed expense creation logic.
type CreateFixedExpenseUseCase struct {
	fixedRepo adapter.FixedExpenseRepository
}

// NewCreateFixedExpenseUseCase creates a new CreateFixedExpenseUseCase instance.
func NewCreateFixedExpenseUseCase(fixedRepo adapter.FixedExpenseRepository) *CreateFixedExpenseUseCase {
	return &CreateFixedExpenseUseCase{
		fixedRepo: fixedRepo,
	}
}

// Execute performs the fixed expense creation.
func (uc *CreateFixedExpenseUseCase) Execute(ctx context.Context, input CreateFixedExpenseInput) (*CreateFixedExpenseOutput, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, domainerror.NewRecordError(domainerror.ErrCodeMissingName, "name is required", domainerror.ErrMissingName)
	}

	if input.Amount <= 0 {
		return nil, domainerror.NewRecordError(
			domainerror.ErrCodeInvalidAmount,
			"amount must be greater than zero",
			domainerror.ErrInvalidAmount,
		)
	}

	if !entity.IsValidDate(input.Date) {
		return nil, domainerror.NewRecordError(domainerror.ErrCodeInvalidDate, "date must be an ISO 8601 date", domainerror.ErrInvalidDate)
	}

	category := strings.TrimSpace(input.Category)
	if category == "" {
		category = entity.DefaultCategoryName
	}

	fixed, err := uc.fixedRepo.Add(ctx, entity.FixedExpenseDraft{
		Name:     name,
		Amount:   input.Amount,
		Category: category,
		Notes:    input.Notes,
		Date:     input.Date,
	})
	if err != nil {
		if errors.Is(err, domainerror.ErrActivityNotRecorded) {
			return &CreateFixedExpenseOutput{FixedExpense: fixed}, err
		}
		return nil, fmt.Errorf("failed to create fixed expense: %w", err)
	}

	return &CreateFixedExpenseOutput{
		FixedExpense: fixed,
	}, nil
}
