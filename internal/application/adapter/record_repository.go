// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/expense-daddy/backend/internal/domain/entity"
)

// ExpenseRepository defines the interface for expense persistence operations.
// New expenses are stored newest first.
type ExpenseRepository interface {
	// List returns every stored expense in stored order.
	List(ctx context.Context) ([]entity.Expense, error)

	// Add assigns id and createdAt, prepends the expense and records an activity entry.
	Add(ctx context.Context, draft entity.ExpenseDraft) (*entity.Expense, error)

	// Update merges the patch into the stored expense.
	// Returns domainerror.ErrRecordNotFound when no expense has the id.
	Update(ctx context.Context, id string, patch entity.ExpensePatch) (*entity.Expense, error)

	// Delete removes the expense. Deleting an unknown id is a no-op.
	Delete(ctx context.Context, id string) error
}

// LoanRepository defines the interface for loan persistence operations.
// New loans are stored newest first.
type LoanRepository interface {
	// List returns every stored loan in stored order.
	List(ctx context.Context) ([]entity.LoanEntry, error)

	// Add stores a new unpaid loan and records an activity entry.
	Add(ctx context.Context, draft entity.LoanDraft) (*entity.LoanEntry, error)

	// Update merges the patch into the stored loan.
	// Returns domainerror.ErrRecordNotFound when no loan has the id.
	Update(ctx context.Context, id string, patch entity.LoanPatch) (*entity.LoanEntry, error)

	// Delete removes the loan. Deleting an unknown id is a no-op.
	Delete(ctx context.Context, id string) error
}

// FixedExpenseRepository defines the interface for fixed expense persistence operations.
// New fixed expenses are stored newest first.
type FixedExpenseRepository interface {
	// List returns every stored fixed expense in stored order.
	List(ctx context.Context) ([]entity.FixedExpense, error)

	// Add assigns id and createdAt, prepends the fixed expense and records an activity entry.
	Add(ctx context.Context, draft entity.FixedExpenseDraft) (*entity.FixedExpense, error)

	// Update merges the patch into the stored fixed expense.
	// Returns domainerror.ErrRecordNotFound when no fixed expense has the id.
	Update(ctx context.Context, id string, patch entity.FixedExpensePatch) (*entity.FixedExpense, error)

	// Delete removes the fixed expense. Deleting an unknown id is a no-op.
	Delete(ctx context.Context, id string) error
}

// SavingsGoalRepository defines the interface for savings goal persistence operations.
// Goals keep insertion order.
type SavingsGoalRepository interface {
	// List returns every stored goal in insertion order.
	List(ctx context.Context) ([]entity.SavingsGoal, error)

	// Add appends a new goal and records an activity entry.
	Add(ctx context.Context, draft entity.SavingsGoalDraft) (*entity.SavingsGoal, error)

	// Update merges the patch into the stored goal.
	// Returns domainerror.ErrRecordNotFound when no goal has the id.
	Update(ctx context.Context, id string, patch entity.SavingsGoalPatch) (*entity.SavingsGoal, error)

	// Delete removes the goal. Deleting an unknown id is a no-op.
	Delete(ctx context.Context, id string) error
}

// SavedCardRepository defines the interface for saved card persistence operations.
// Cards keep insertion order.
type SavedCardRepository interface {
	// List returns every stored card in insertion order.
	List(ctx context.Context) ([]entity.SavedCard, error)

	// Add appends a new card and records an activity entry.
	Add(ctx context.Context, draft entity.SavedCardDraft) (*entity.SavedCard, error)

	// Update merges the patch into the stored card.
	// Returns domainerror.ErrRecordNotFound when no card has the id.
	Update(ctx context.Context, id string, patch entity.SavedCardPatch) (*entity.SavedCard, error)

	// Delete removes the card. Deleting an unknown id is a no-op.
	Delete(ctx context.Context, id string) error
}
