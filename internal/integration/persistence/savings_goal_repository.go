// Package persistence implements repository interfaces over the key-value store.
package persistence

import (
	"context"
	"slices"

	"github.com/expense-daddy/backend/internal/application/adapter"
	"github.com/expense-daddy/backend/internal/domain/entity"
	domainerror "github.com/expense-daddy/backend/internal/domain/error"
)

// savingsGoalRepository implements the adapter.SavingsGoalRepository interface.
type savingsGoalRepository struct {
	store    *CollectionStore
	activity adapter.ActivityRecorder
	clock    adapter.Clock
}

// NewSavingsGoalRepository creates a new savings goal repository instance.
func NewSavingsGoalRepository(store *CollectionStore, activity adapter.ActivityRecorder, clock adapter.Clock) adapter.SavingsGoalRepository {
	return &savingsGoalRepository{
		store:    store,
		activity: activity,
		clock:    clock,
	}
}

// List returns every stored goal in insertion order.
func (r *savingsGoalRepository) List(ctx context.Context) ([]entity.SavingsGoal, error) {
	goals, err := loadCollection(ctx, r.store, entity.CollectionSavingsGoals, []entity.SavingsGoal{})
	if err != nil {
		return nil, err
	}
	if goals == nil {
		goals = []entity.SavingsGoal{}
	}
	return goals, nil
}

// Add appends a new goal.
func (r *savingsGoalRepository) Add(ctx context.Context, draft entity.SavingsGoalDraft) (*entity.SavingsGoal, error) {
	goal := entity.NewSavingsGoal(draft, r.clock.Now())

	err := mutateCollection(ctx, r.store, entity.CollectionSavingsGoals, []entity.SavingsGoal{},
		func(goals []entity.SavingsGoal) ([]entity.SavingsGoal, bool, error) {
			return append(goals, *goal), true, nil
		})
	if err != nil {
		return nil, err
	}

	return goal, recordActivity(ctx, r.activity, entity.ActivityGoalAdded, "Added goal: "+goal.Name, amountOf(goal.TargetAmount))
}

// Update merges the patch into the goal with the given id.
func (r *savingsGoalRepository) Update(ctx context.Context, id string, patch entity.SavingsGoalPatch) (*entity.SavingsGoal, error) {
	var updated *entity.SavingsGoal

	err := mutateCollection(ctx, r.store, entity.CollectionSavingsGoals, []entity.SavingsGoal{},
		func(goals []entity.SavingsGoal) ([]entity.SavingsGoal, bool, error) {
			i := slices.IndexFunc(goals, func(g entity.SavingsGoal) bool { return g.ID == id })
			if i == -1 {
				return nil, false, domainerror.ErrRecordNotFound
			}
			patch.Apply(&goals[i])
			g := goals[i]
			updated = &g
			return goals, true, nil
		})
	if err != nil {
		return nil, err
	}

	return updated, recordActivity(ctx, r.activity, entity.ActivityGoalUpdated, "Updated goal: "+updated.Name, nil)
}

// Delete removes the goal with the given id. Unknown ids are ignored.
func (r *savingsGoalRepository) Delete(ctx context.Context, id string) error {
	var deleted *entity.SavingsGoal

	err := mutateCollection(ctx, r.store, entity.CollectionSavingsGoals, []entity.SavingsGoal{},
		func(goals []entity.SavingsGoal) ([]entity.SavingsGoal, bool, error) {
			i := slices.IndexFunc(goals, func(g entity.SavingsGoal) bool { return g.ID == id })
			if i == -1 {
				return goals, false, nil
			}
			g := goals[i]
			deleted = &g
			return slices.Delete(goals, i, i+1), true, nil
		})
	if err != nil || deleted == nil {
		return err
	}

	return recordActivity(ctx, r.activity, entity.ActivityGoalDeleted, "Deleted goal: "+deleted.Name, nil)
}
