// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/expense-daddy/backend/internal/domain/entity"
)

// ProfileRepository defines the interface for the singleton user profile.
type ProfileRepository interface {
	// Get returns the stored profile, persisting the default profile first if none exists.
	Get(ctx context.Context) (*entity.UserProfile, error)

	// Update merges the patch into the profile. A changed monthly budget also appends a
	// budget history entry and an activity entry.
	Update(ctx context.Context, patch entity.ProfilePatch) (*entity.UserProfile, error)
}

// BudgetHistoryRepository reads the record of monthly budget values.
type BudgetHistoryRepository interface {
	// List returns the history, newest first.
	List(ctx context.Context) ([]entity.BudgetHistory, error)

	// Append prepends a history entry for amount.
	Append(ctx context.Context, amount float64) (*entity.BudgetHistory, error)
}

// ShoppingListRepository stores the free-form shopping list.
type ShoppingListRepository interface {
	// Get returns the list in stored order.
	Get(ctx context.Context) ([]string, error)

	// Replace overwrites the list.
	Replace(ctx context.Context, items []string) error
}
