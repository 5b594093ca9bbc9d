// Package persistence implements repository interfaces over the key-value store.
package persistence

import (
	"context"
	"slices"

	"github.com/expense-daddy/backend/internal/application/adapter"
	"github.com/expense-daddy/backend/internal/domain/entity"
	domainerror "github.com/expense-daddy/backend/internal/domain/error"
)

// fixedExpenseRepository implements the adapter.FixedExpenseRepository interface.
type fixedExpenseRepository struct {
	store    *CollectionStore
	activity adapter.ActivityRecorder
	clock    adapter.Clock
}

// NewFixedExpenseRepository creates a new fixed expense repository instance.
func NewFixedExpenseRepository(store *CollectionStore, activity adapter.ActivityRecorder, clock adapter.Clock) adapter.FixedExpenseRepository {
	return &fixedExpenseRepository{
		store:    store,
		activity: activity,
		clock:    clock,
	}
}

// List returns every stored fixed expense, newest first.
func (r *fixedExpenseRepository) List(ctx context.Context) ([]entity.FixedExpense, error) {
	fixed, err := loadCollection(ctx, r.store, entity.CollectionFixedExpenses, []entity.FixedExpense{})
	if err != nil {
		return nil, err
	}
	if fixed == nil {
		fixed = []entity.FixedExpense{}
	}
	return fixed, nil
}

// Add creates a new fixed expense at the head of the collection.
func (r *fixedExpenseRepository) Add(ctx context.Context, draft entity.FixedExpenseDraft) (*entity.FixedExpense, error) {
	fixed := entity.NewFixedExpense(draft, r.clock.Now())

	err := mutateCollection(ctx, r.store, entity.CollectionFixedExpenses, []entity.FixedExpense{},
		func(items []entity.FixedExpense) ([]entity.FixedExpense, bool, error) {
			return slices.Insert(items, 0, *fixed), true, nil
		})
	if err != nil {
		return nil, err
	}

	return fixed, recordActivity(ctx, r.activity, entity.ActivityFixedAdded, "Added fixed expense: "+fixed.Name, amountOf(fixed.Amount))
}

// Update merges the patch into the fixed expense with the given id.
func (r *fixedExpenseRepository) Update(ctx context.Context, id string, patch entity.FixedExpensePatch) (*entity.FixedExpense, error) {
	var updated *entity.FixedExpense

	err := mutateCollection(ctx, r.store, entity.CollectionFixedExpenses, []entity.FixedExpense{},
		func(items []entity.FixedExpense) ([]entity.FixedExpense, bool, error) {
			i := slices.IndexFunc(items, func(f entity.FixedExpense) bool { return f.ID == id })
			if i == -1 {
				return nil, false, domainerror.ErrRecordNotFound
			}
			patch.Apply(&items[i])
			f := items[i]
			updated = &f
			return items, true, nil
		})
	if err != nil {
		return nil, err
	}

	return updated, recordActivity(ctx, r.activity, entity.ActivityFixedUpdated, "Updated fixed expense: "+updated.Name, amountOf(updated.Amount))
}

// Delete removes the fixed expense with the given id. Unknown ids are ignored.
func (r *fixedExpenseRepository) Delete(ctx context.Context, id string) error {
	var deleted *entity.FixedExpense

	err := mutateCollection(ctx, r.store, entity.CollectionFixedExpenses, []entity.FixedExpense{},
		func(items []entity.FixedExpense) ([]entity.FixedExpense, bool, error) {
			i := slices.IndexFunc(items, func(f entity.FixedExpense) bool { return f.ID == id })
			if i == -1 {
				return items, false, nil
			}
			f := items[i]
			deleted = &f
			return slices.Delete(items, i, i+1), true, nil
		})
	if err != nil || deleted == nil {
		return err
	}

	return recordActivity(ctx, r.activity, entity.ActivityFixedDeleted, "Deleted fixed expense: "+deleted.Name, amountOf(deleted.Amount))
}
