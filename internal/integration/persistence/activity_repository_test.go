package persistence

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/expense-daddy/backend/internal/domain/entity"
)

func TestActivityRepository_Bound(t *testing.T) {
	ctx := context.Background()
	r := newTestRepos()

	const total = entity.MaxActivityLogSize + 25
	for i := 0; i < total; i++ {
		if err := r.activity.Record(ctx, entity.ActivityExpenseAdded, fmt.Sprintf("entry %d", i), nil); err != nil {
			t.Fatalf("Record #%d: %v", i, err)
		}
		r.clock.Advance(time.Second)
	}

	log, err := r.activity.List(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(log) != entity.MaxActivityLogSize {
		t.Fatalf("expected %d entries, got %d", entity.MaxActivityLogSize, len(log))
	}

	for i, item := range log {
		want := fmt.Sprintf("entry %d", total-1-i)
		if item.Description != want {
			t.Fatalf("entry %d: got %q, want %q", i, item.Description, want)
		}
	}
}

func TestActivityRepository_EmptyList(t *testing.T) {
	r := newTestRepos()

	log, err := r.activity.List(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if log == nil || len(log) != 0 {
		t.Errorf("expected empty non-nil log, got %v", log)
	}
}
