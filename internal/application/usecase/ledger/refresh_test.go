package ledger

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/expense-daddy/backend/internal/domain/entity"
	domainerror "github.com/expense-daddy/backend/internal/domain/error"
	"github.com/expense-daddy/backend/internal/integration/persistence"
)

type stubClock struct{ now time.Time }

func (c stubClock) Now() time.Time { return c.now }

func newRepositories(store *persistence.CollectionStore) Repositories {
	clock := stubClock{now: time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)}
	activity := persistence.NewActivityRepository(store, clock)
	history := persistence.NewBudgetHistoryRepository(store, clock)
	return Repositories{
		Expenses:      persistence.NewExpenseRepository(store, activity, clock),
		Loans:         persistence.NewLoanRepository(store, activity, clock),
		FixedExpenses: persistence.NewFixedExpenseRepository(store, activity, clock),
		SavingsGoals:  persistence.NewSavingsGoalRepository(store, activity, clock),
		SavedCards:    persistence.NewSavedCardRepository(store, activity, clock),
		Activity:      activity,
		BudgetHistory: history,
		ShoppingList:  persistence.NewShoppingListRepository(store),
		Profile:       persistence.NewProfileRepository(store, history, activity),
	}
}

func TestRefreshUseCase_Execute(t *testing.T) {
	ctx := context.Background()
	repos := newRepositories(persistence.NewCollectionStore(persistence.NewMemoryStore()))

	if _, err := repos.Expenses.Add(ctx, entity.ExpenseDraft{Name: "Coffee", Amount: 4.5, Category: "Food", Date: "2024-03-15T10:00:00Z"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := repos.Loans.Add(ctx, entity.LoanDraft{Name: "Sam", Amount: 20, Date: "2024-03-01T00:00:00Z"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := repos.ShoppingList.Replace(ctx, []string{"milk"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	snapshot, err := NewRefreshUseCase(repos).Execute(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(snapshot.Expenses) != 1 || snapshot.Expenses[0].Name != "Coffee" {
		t.Errorf("expected one Coffee expense, got %+v", snapshot.Expenses)
	}
	if len(snapshot.Loans) != 1 {
		t.Errorf("expected one loan, got %d", len(snapshot.Loans))
	}
	if len(snapshot.ActivityLog) != 2 {
		t.Errorf("expected two activity entries, got %d", len(snapshot.ActivityLog))
	}
	if len(snapshot.ShoppingList) != 1 {
		t.Errorf("expected one shopping item, got %d", len(snapshot.ShoppingList))
	}
	if snapshot.Profile != entity.DefaultUserProfile() {
		t.Errorf("expected default profile, got %+v", snapshot.Profile)
	}
	if snapshot.FixedExpenses == nil || snapshot.SavingsGoals == nil || snapshot.SavedCards == nil {
		t.Error("expected empty collections to be non-nil")
	}
}

func TestRefreshUseCase_CorruptCollection(t *testing.T) {
	ctx := context.Background()
	store := persistence.NewCollectionStore(persistence.NewMemoryStore())
	if err := store.WriteRaw(ctx, entity.CollectionLoans, []byte("{not json")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err := NewRefreshUseCase(newRepositories(store)).Execute(ctx)
	if !errors.Is(err, domainerror.ErrCorruptCollection) {
		t.Errorf("expected ErrCorruptCollection, got %v", err)
	}
}
