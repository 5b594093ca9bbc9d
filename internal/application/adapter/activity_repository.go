// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/expense-daddy/backend/internal/domain/entity"
)

// ActivityRecorder appends entries to the bounded activity log.
type ActivityRecorder interface {
	// Record prepends an entry and truncates the log to entity.MaxActivityLogSize.
	Record(ctx context.Context, activityType entity.ActivityType, description string, amount *float64) error
}

// ActivityRepository reads and appends to the activity log.
type ActivityRepository interface {
	ActivityRecorder

	// List returns the log, newest first.
	List(ctx context.Context) ([]entity.ActivityItem, error)
}
