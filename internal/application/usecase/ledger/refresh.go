// Package ledger loads every collection into one consistent in-memory snapshot.
package ledger

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/expense-daddy/backend/internal/application/adapter"
	"github.com/expense-daddy/backend/internal/domain/entity"
)

// Repositories groups the repositories a refresh reads from.
type Repositories struct {
	Expenses      adapter.ExpenseRepository
	Loans         adapter.LoanRepository
	FixedExpenses adapter.FixedExpenseRepository
	SavingsGoals  adapter.SavingsGoalRepository
	SavedCards    adapter.SavedCardRepository
	Activity      adapter.ActivityRepository
	BudgetHistory adapter.BudgetHistoryRepository
	ShoppingList  adapter.ShoppingListRepository
	Profile       adapter.ProfileRepository
}

// RefreshUseCase reads all collections concurrently.
type RefreshUseCase struct {
	repos Repositories
}

// NewRefreshUseCase creates a new RefreshUseCase instance.
func NewRefreshUseCase(repos Repositories) *RefreshUseCase {
	return &RefreshUseCase{
		repos: repos,
	}
}

// Execute returns a snapshot of every collection. Each collection is read once; there is
// no ordering between the reads. The first failing read fails the whole refresh.
func (uc *RefreshUseCase) Execute(ctx context.Context) (*entity.Snapshot, error) {
	var snapshot entity.Snapshot
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() (err error) {
		snapshot.Expenses, err = uc.repos.Expenses.List(gctx)
		return wrap("expenses", err)
	})
	g.Go(func() (err error) {
		snapshot.Loans, err = uc.repos.Loans.List(gctx)
		return wrap("loans", err)
	})
	g.Go(func() (err error) {
		snapshot.FixedExpenses, err = uc.repos.FixedExpenses.List(gctx)
		return wrap("fixed expenses", err)
	})
	g.Go(func() (err error) {
		snapshot.SavingsGoals, err = uc.repos.SavingsGoals.List(gctx)
		return wrap("savings goals", err)
	})
	g.Go(func() (err error) {
		snapshot.SavedCards, err = uc.repos.SavedCards.List(gctx)
		return wrap("saved cards", err)
	})
	g.Go(func() (err error) {
		snapshot.ActivityLog, err = uc.repos.Activity.List(gctx)
		return wrap("activity log", err)
	})
	g.Go(func() (err error) {
		snapshot.BudgetHistory, err = uc.repos.BudgetHistory.List(gctx)
		return wrap("budget history", err)
	})
	g.Go(func() (err error) {
		snapshot.ShoppingList, err = uc.repos.ShoppingList.Get(gctx)
		return wrap("shopping list", err)
	})
	g.Go(func() error {
		profile, err := uc.repos.Profile.Get(gctx)
		if err != nil {
			return wrap("profile", err)
		}
		snapshot.Profile = *profile
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &snapshot, nil
}

func wrap(collection string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("failed to load %s: %w", collection, err)
}
