// Package dashboard contains dashboard-related use cases.
package dashboard

import (
	"context"

	"github.com/expense-daddy/backend/internal/domain/entity"
)

// SnapshotProvider loads every collection the dashboard computes over.
type SnapshotProvider interface {
	// Execute returns a consistent snapshot of all collections.
	Execute(ctx context.Context) (*entity.Snapshot, error)
}
