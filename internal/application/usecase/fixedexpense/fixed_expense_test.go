package fixedexpense

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/expense-daddy/backend/internal/application/adapter"
	"github.com/expense-daddy/backend/internal/domain/entity"
	domainerror "github.com/expense-daddy/backend/internal/domain/error"
	"github.com/expense-daddy/backend/internal/integration/persistence"
)

type stubClock struct{ now time.Time }

func (c stubClock) Now() time.Time { return c.now }

func newFixedRepo() adapter.FixedExpenseRepository {
	store := persistence.NewCollectionStore(persistence.NewMemoryStore())
	clock := stubClock{now: time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)}
	return persistence.NewFixedExpenseRepository(store, persistence.NewActivityRepository(store, clock), clock)
}

func TestFixedExpenseUseCases(t *testing.T) {
	ctx := context.Background()
	repo := newFixedRepo()

	t.Run("create validates amount", func(t *testing.T) {
		_, err := NewCreateFixedExpenseUseCase(repo).Execute(ctx, CreateFixedExpenseInput{Name: "Rent", Amount: -5, Date: "2024-03-01"})
		if !errors.Is(err, domainerror.ErrInvalidAmount) {
			t.Errorf("expected ErrInvalidAmount, got %v", err)
		}
	})

	created, err := NewCreateFixedExpenseUseCase(repo).Execute(ctx, CreateFixedExpenseInput{Name: "Rent", Amount: 900, Date: "2024-03-01"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.FixedExpense.Category != entity.DefaultCategoryName {
		t.Errorf("expected default category, got %q", created.FixedExpense.Category)
	}

	t.Run("update merges amount", func(t *testing.T) {
		amount := 950.0
		output, err := NewUpdateFixedExpenseUseCase(repo).Execute(ctx, UpdateFixedExpenseInput{ID: created.FixedExpense.ID, Patch: entity.FixedExpensePatch{Amount: &amount}})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.FixedExpense.Amount != 950 || output.FixedExpense.Name != "Rent" {
			t.Errorf("unexpected result: %+v", output.FixedExpense)
		}
	})

	t.Run("delete then list is empty", func(t *testing.T) {
		if _, err := NewDeleteFixedExpenseUseCase(repo).Execute(ctx, DeleteFixedExpenseInput{ID: created.FixedExpense.ID}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		output, err := NewListFixedExpensesUseCase(repo).Execute(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(output.FixedExpenses) != 0 {
			t.Errorf("expected empty list, got %d", len(output.FixedExpenses))
		}
	})
}
