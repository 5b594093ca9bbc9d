// Package activity contains activity log use cases.
package activity

import (
	"context"
	"fmt"

	"github.com/expense-daddy/backend/internal/application/adapter"
	"github.com/expense-daddy/backend/internal/domain/entity"
)

// ListActivityInput represents the input for listing the activity log.
type ListActivityInput struct {
	Limit int // Optional, 0 returns the whole log
}

// ListActivityOutput represents the output of listing the activity log.
type ListActivityOutput struct {
	Items []entity.ActivityItem
}

// ListActivityUseCase handles listing the activity log.
type ListActivityUseCase struct {
	activityRepo adapter.ActivityRepository
}

// NewListActivityUseCase creates a new ListActivityUseCase instance.
func NewListActivityUseCase(activityRepo adapter.ActivityRepository) *ListActivityUseCase {
	return &ListActivityUseCase{
		activityRepo: activityRepo,
	}
}

// Execute lists activity entries, newest first.
func (uc *ListActivityUseCase) Execute(ctx context.Context, input ListActivityInput) (*ListActivityOutput, error) {
	items, err := uc.activityRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list activity: %w", err)
	}

	if input.Limit > 0 && len(items) > input.Limit {
		items = items[:input.Limit]
	}

	return &ListActivityOutput{
		Items: items,
	}, nil
}
