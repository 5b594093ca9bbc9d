// Package persistence implements repository interfaces over the key-value store.
package persistence

import (
	"context"
	"slices"

	"github.com/expense-daddy/backend/internal/application/adapter"
	"github.com/expense-daddy/backend/internal/domain/entity"
)

// budgetHistoryRepository implements the adapter.BudgetHistoryRepository interface.
type budgetHistoryRepository struct {
	store *CollectionStore
	clock adapter.Clock
}

// NewBudgetHistoryRepository creates a new budget history repository instance.
func NewBudgetHistoryRepository(store *CollectionStore, clock adapter.Clock) adapter.BudgetHistoryRepository {
	return &budgetHistoryRepository{
		store: store,
		clock: clock,
	}
}

// List returns the budget history, newest first.
func (r *budgetHistoryRepository) List(ctx context.Context) ([]entity.BudgetHistory, error) {
	history, err := loadCollection(ctx, r.store, entity.CollectionBudgetHistory, []entity.BudgetHistory{})
	if err != nil {
		return nil, err
	}
	if history == nil {
		history = []entity.BudgetHistory{}
	}
	return history, nil
}

// Append prepends a history entry for amount.
func (r *budgetHistoryRepository) Append(ctx context.Context, amount float64) (*entity.BudgetHistory, error) {
	entry := entity.NewBudgetHistory(amount, r.clock.Now())

	err := mutateCollection(ctx, r.store, entity.CollectionBudgetHistory, []entity.BudgetHistory{},
		func(history []entity.BudgetHistory) ([]entity.BudgetHistory, bool, error) {
			return slices.Insert(history, 0, entry), true, nil
		})
	if err != nil {
		return nil, err
	}
	return &entry, nil
}
