// Package expense contains expense-related use cases.
package expense

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/expense-daddy/backend/internal/application/adapter"
	"github.com/expense-daddy/backend/internal/domain/entity"
	domainerror "github.com/expense-daddy/backend/internal/domain/error"
)

// CreateExpenseInput represents the input for expense creation.
type CreateExpenseInput struct {
	Name          string
	Amount        float64
	Category      string
	Tags          []string
	Notes         string
	Date          string
	IsRecurring   bool
	RecurringType *entity.RecurringType
	ExpenseType   entity.ExpenseType // Optional, defaults to daily
}

// CreateExpenseOutput represents the output of expense creation.
type CreateExpenseOutput struct {
	Expense *entity.Expense
}

// CreateExpenseUseCase handles expense creation logic.
type CreateExpenseUseCase struct {
	expenseRepo adapter.ExpenseRepository
}

// NewCreateExpenseUseCase creates a new CreateExpenseUseCase instance.
func NewCreateExpenseUseCase(expenseRepo adapter.ExpenseRepository) *CreateExpenseUseCase {
	return &CreateExpenseUseCase{
		expenseRepo: expenseRepo,
	}
}

// Execute performs the expense creation. When only the activity entry could not be
// written the created expense is returned together with the error.
func (uc *CreateExpenseUseCase) Execute(ctx context.Context, input CreateExpenseInput) (*CreateExpenseOutput, error) {
	category := strings.TrimSpace(input.Category)
	if category == "" {
		category = entity.DefaultCategoryName
	}

	draft := entity.ExpenseDraft{
		Name:          strings.TrimSpace(input.Name),
		Amount:        input.Amount,
		Category:      category,
		Tags:          input.Tags,
		Notes:         input.Notes,
		Date:          input.Date,
		IsRecurring:   input.IsRecurring,
		RecurringType: input.RecurringType,
		ExpenseType:   input.ExpenseType,
	}

	// Validate expense fields
	if err := validateDraft(draft); err != nil {
		return nil, err
	}

	// Save expense
	expense, err := uc.expenseRepo.Add(ctx, draft)
	if err != nil {
		if errors.Is(err, domainerror.ErrActivityNotRecorded) {
			return &CreateExpenseOutput{Expense: expense}, err
		}
		return nil, fmt.Errorf("failed to create expense: %w", err)
	}

	return &CreateExpenseOutput{
		Expense: expense,
	}, nil
}
