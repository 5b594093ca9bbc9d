// Package persistence implements repository interfaces over the key-value store.
package persistence

import (
	"context"

	"github.com/expense-daddy/backend/internal/application/adapter"
	"github.com/expense-daddy/backend/internal/domain/entity"
)

// shoppingListRepository implements the adapter.ShoppingListRepository interface.
type shoppingListRepository struct {
	store *CollectionStore
}

// NewShoppingListRepository creates a new shopping list repository instance.
func NewShoppingListRepository(store *CollectionStore) adapter.ShoppingListRepository {
	return &shoppingListRepository{
		store: store,
	}
}

// Get returns the shopping list.
func (r *shoppingListRepository) Get(ctx context.Context) ([]string, error) {
	items, err := loadCollection(ctx, r.store, entity.CollectionShoppingList, []string{})
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []string{}
	}
	return items, nil
}

// Replace overwrites the shopping list.
func (r *shoppingListRepository) Replace(ctx context.Context, items []string) error {
	if items == nil {
		items = []string{}
	}
	return mutateCollection(ctx, r.store, entity.CollectionShoppingList, []string{},
		func([]string) ([]string, bool, error) {
			return items, true, nil
		})
}
