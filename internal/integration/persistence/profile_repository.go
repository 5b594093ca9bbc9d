// Package persistence implements repository interfaces over the key-value store.
package persistence

import (
	"context"
	"strconv"

	"github.com/expense-daddy/backend/internal/application/adapter"
	"github.com/expense-daddy/backend/internal/domain/entity"
)

// profileRepository implements the adapter.ProfileRepository interface.
type profileRepository struct {
	store    *CollectionStore
	history  adapter.BudgetHistoryRepository
	activity adapter.ActivityRecorder
}

// NewProfileRepository creates a new profile repository instance.
func NewProfileRepository(store *CollectionStore, history adapter.BudgetHistoryRepository, activity adapter.ActivityRecorder) adapter.ProfileRepository {
	return &profileRepository{
		store:    store,
		history:  history,
		activity: activity,
	}
}

// Get returns the stored profile, materialising the default one on first read.
func (r *profileRepository) Get(ctx context.Context) (*entity.UserProfile, error) {
	profile, err := loadOrCreateCollection(ctx, r.store, entity.CollectionUserProfile, entity.DefaultUserProfile())
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

// Update merges the patch into the profile. When the monthly budget takes a new value the
// value is appended to the budget history and recorded in the activity log.
func (r *profileRepository) Update(ctx context.Context, patch entity.ProfilePatch) (*entity.UserProfile, error) {
	var (
		updated       entity.UserProfile
		budgetChanged bool
	)

	err := mutateCollection(ctx, r.store, entity.CollectionUserProfile, entity.DefaultUserProfile(),
		func(current entity.UserProfile) (entity.UserProfile, bool, error) {
			budgetChanged = patch.ChangesMonthlyBudget(current)
			patch.Apply(&current)
			updated = current
			return current, true, nil
		})
	if err != nil {
		return nil, err
	}

	if !budgetChanged {
		return &updated, nil
	}

	if _, err := r.history.Append(ctx, updated.MonthlyBudget); err != nil {
		return &updated, err
	}

	description := "Budget updated to " + strconv.FormatFloat(updated.MonthlyBudget, 'f', -1, 64)
	return &updated, recordActivity(ctx, r.activity, entity.ActivityBudgetUpdated, description, amountOf(updated.MonthlyBudget))
}
