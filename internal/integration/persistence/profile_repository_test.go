package persistence

import (
	"context"
	"errors"
	"testing"

	"github.com/expense-daddy/backend/internal/domain/entity"
	domainerror "github.com/expense-daddy/backend/internal/domain/error"
)

func newProfileRepo(r *testRepos) (*profileRepository, *budgetHistoryRepository) {
	history := NewBudgetHistoryRepository(r.store, r.clock).(*budgetHistoryRepository)
	return NewProfileRepository(r.store, history, r.activity).(*profileRepository), history
}

func TestProfileRepository_Get(t *testing.T) {
	ctx := context.Background()
	r := newTestRepos()
	repo, _ := newProfileRepo(r)

	profile, err := repo.Get(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if *profile != entity.DefaultUserProfile() {
		t.Errorf("expected default profile, got %+v", profile)
	}

	raw, found, err := r.store.ReadRaw(ctx, entity.CollectionUserProfile)
	if err != nil || !found {
		t.Fatalf("expected default profile to be persisted, found=%v err=%v", found, err)
	}
	if string(raw) != `{"name":"User","currency":"$","monthlyBudget":0,"dailyBudgetTarget":0}` {
		t.Errorf("unexpected stored profile: %s", raw)
	}
}

func TestProfileRepository_BudgetHistory(t *testing.T) {
	ctx := context.Background()
	r := newTestRepos()
	repo, history := newProfileRepo(r)

	budget := 500.0
	if _, err := repo.Update(ctx, entity.ProfilePatch{MonthlyBudget: &budget}); err != nil {
		t.Fatalf("first update: %v", err)
	}
	if _, err := repo.Update(ctx, entity.ProfilePatch{MonthlyBudget: &budget}); err != nil {
		t.Fatalf("second update: %v", err)
	}

	entries, err := history.List(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(entries) != 1 || entries[0].Amount != 500 {
		t.Fatalf("expected one history entry of 500, got %+v", entries)
	}

	log, _ := r.activity.List(ctx)
	if len(log) != 1 {
		t.Fatalf("expected one activity entry, got %d", len(log))
	}
	if log[0].Type != entity.ActivityBudgetUpdated || log[0].Description != "Budget updated to 500" {
		t.Errorf("unexpected activity entry: %+v", log[0])
	}

	t.Run("zero to zero writes no history", func(t *testing.T) {
		r := newTestRepos()
		repo, history := newProfileRepo(r)
		zero := 0.0
		name := "Sam"

		updated, err := repo.Update(ctx, entity.ProfilePatch{Name: &name, MonthlyBudget: &zero})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if updated.Name != "Sam" {
			t.Errorf("expected name to be updated, got %q", updated.Name)
		}
		entries, _ := history.List(ctx)
		if len(entries) != 0 {
			t.Errorf("expected no history entries, got %d", len(entries))
		}
	})

	t.Run("history is newest first", func(t *testing.T) {
		r := newTestRepos()
		repo, history := newProfileRepo(r)
		for _, v := range []float64{100, 200, 300} {
			v := v
			if _, err := repo.Update(ctx, entity.ProfilePatch{MonthlyBudget: &v}); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		}
		entries, _ := history.List(ctx)
		if len(entries) != 3 || entries[0].Amount != 300 || entries[2].Amount != 100 {
			t.Errorf("unexpected history order: %+v", entries)
		}
	})

	t.Run("failed activity write keeps profile and history", func(t *testing.T) {
		kv := newFlakyStore(entity.CollectionActivityLog)
		store := NewCollectionStore(kv)
		clock := newFixedClock(testNow)
		history := NewBudgetHistoryRepository(store, clock)
		repo := NewProfileRepository(store, history, NewActivityRepository(store, clock))

		v := 750.0
		updated, err := repo.Update(ctx, entity.ProfilePatch{MonthlyBudget: &v})
		if !errors.Is(err, domainerror.ErrActivityNotRecorded) {
			t.Fatalf("expected ErrActivityNotRecorded, got %v", err)
		}
		if updated == nil || updated.MonthlyBudget != 750 {
			t.Errorf("expected updated profile to be returned, got %+v", updated)
		}
		entries, _ := history.List(ctx)
		if len(entries) != 1 {
			t.Errorf("expected history entry to persist, got %d", len(entries))
		}
	})
}
