// Package persistence implements repository interfaces over the key-value store.
package persistence

import (
	"context"
	"slices"

	"github.com/expense-daddy/backend/internal/application/adapter"
	"github.com/expense-daddy/backend/internal/domain/entity"
	domainerror "github.com/expense-daddy/backend/internal/domain/error"
)

// expenseRepository implements the adapter.ExpenseRepository interface.
type expenseRepository struct {
	store    *CollectionStore
	activity adapter.ActivityRecorder
	clock    adapter.Clock
}

// NewExpenseRepository creates a new expense repository instance.
func NewExpenseRepository(store *CollectionStore, activity adapter.ActivityRecorder, clock adapter.Clock) adapter.ExpenseRepository {
	return &expenseRepository{
		store:    store,
		activity: activity,
		clock:    clock,
	}
}

// List returns every stored expense, newest first.
func (r *expenseRepository) List(ctx context.Context) ([]entity.Expense, error) {
	expenses, err := loadCollection(ctx, r.store, entity.CollectionExpenses, []entity.Expense{})
	if err != nil {
		return nil, err
	}
	if expenses == nil {
		expenses = []entity.Expense{}
	}
	return expenses, nil
}

// Add creates a new expense at the head of the collection.
func (r *expenseRepository) Add(ctx context.Context, draft entity.ExpenseDraft) (*entity.Expense, error) {
	expense := entity.NewExpense(draft, r.clock.Now())

	err := mutateCollection(ctx, r.store, entity.CollectionExpenses, []entity.Expense{},
		func(expenses []entity.Expense) ([]entity.Expense, bool, error) {
			return slices.Insert(expenses, 0, *expense), true, nil
		})
	if err != nil {
		return nil, err
	}

	return expense, recordActivity(ctx, r.activity, entity.ActivityExpenseAdded, "Added expense: "+expense.Name, amountOf(expense.Amount))
}

// Update merges the patch into the expense with the given id.
func (r *expenseRepository) Update(ctx context.Context, id string, patch entity.ExpensePatch) (*entity.Expense, error) {
	var updated *entity.Expense

	err := mutateCollection(ctx, r.store, entity.CollectionExpenses, []entity.Expense{},
		func(expenses []entity.Expense) ([]entity.Expense, bool, error) {
			i := slices.IndexFunc(expenses, func(e entity.Expense) bool { return e.ID == id })
			if i == -1 {
				return nil, false, domainerror.ErrRecordNotFound
			}
			patch.Apply(&expenses[i])
			e := expenses[i]
			updated = &e
			return expenses, true, nil
		})
	if err != nil {
		return nil, err
	}

	return updated, recordActivity(ctx, r.activity, entity.ActivityExpenseEdited, "Edited expense: "+updated.Name, amountOf(updated.Amount))
}

// Delete removes the expense with the given id. Unknown ids are ignored.
func (r *expenseRepository) Delete(ctx context.Context, id string) error {
	var deleted *entity.Expense

	err := mutateCollection(ctx, r.store, entity.CollectionExpenses, []entity.Expense{},
		func(expenses []entity.Expense) ([]entity.Expense, bool, error) {
			i := slices.IndexFunc(expenses, func(e entity.Expense) bool { return e.ID == id })
			if i == -1 {
				return expenses, false, nil
			}
			e := expenses[i]
			deleted = &e
			return slices.Delete(expenses, i, i+1), true, nil
		})
	if err != nil || deleted == nil {
		return err
	}

	return recordActivity(ctx, r.activity, entity.ActivityExpenseDeleted, "Deleted expense: "+deleted.Name, amountOf(deleted.Amount))
}
