// Package persistence implements repository interfaces over the key-value store.
package persistence

import (
	"context"
	"errors"
	"log/slog"

	"github.com/expense-daddy/backend/internal/application/adapter"
	"github.com/expense-daddy/backend/internal/domain/entity"
	domainerror "github.com/expense-daddy/backend/internal/domain/error"
)

// activityRepository implements the adapter.ActivityRepository interface.
type activityRepository struct {
	store *CollectionStore
	clock adapter.Clock
}

// NewActivityRepository creates a new activity log repository instance.
func NewActivityRepository(store *CollectionStore, clock adapter.Clock) adapter.ActivityRepository {
	return &activityRepository{
		store: store,
		clock: clock,
	}
}

// List returns the activity log, newest first.
func (r *activityRepository) List(ctx context.Context) ([]entity.ActivityItem, error) {
	items, err := loadCollection(ctx, r.store, entity.CollectionActivityLog, []entity.ActivityItem{})
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []entity.ActivityItem{}
	}
	return items, nil
}

// Record prepends an entry and keeps only the newest MaxActivityLogSize entries.
func (r *activityRepository) Record(ctx context.Context, activityType entity.ActivityType, description string, amount *float64) error {
	item := entity.NewActivityItem(activityType, description, amount, r.clock.Now())

	return mutateCollection(ctx, r.store, entity.CollectionActivityLog, []entity.ActivityItem{},
		func(log []entity.ActivityItem) ([]entity.ActivityItem, bool, error) {
			updated := make([]entity.ActivityItem, 0, min(len(log)+1, entity.MaxActivityLogSize))
			updated = append(updated, item)
			updated = append(updated, log...)
			if len(updated) > entity.MaxActivityLogSize {
				updated = updated[:entity.MaxActivityLogSize]
			}
			return updated, true, nil
		})
}

// recordActivity writes the activity entry of a mutation that has already been persisted.
// A failure is reported as ErrActivityNotRecorded so callers can keep the persisted record.
func recordActivity(ctx context.Context, recorder adapter.ActivityRecorder, activityType entity.ActivityType, description string, amount *float64) error {
	if err := recorder.Record(ctx, activityType, description, amount); err != nil {
		slog.Warn("Failed to record activity", "type", activityType, "error", err)
		return domainerror.NewRecordError(
			domainerror.ErrCodeActivityNotRecorded,
			"change saved but activity was not recorded",
			errors.Join(domainerror.ErrActivityNotRecorded, err),
		)
	}
	return nil
}

func amountOf(v float64) *float64 {
	return &v
}
