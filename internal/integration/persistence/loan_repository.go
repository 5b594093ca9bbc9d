// Package persistence implements repository interfaces over the key-value store.
package persistence

import (
	"context"
	"slices"

	"github.com/expense-daddy/backend/internal/application/adapter"
	"github.com/expense-daddy/backend/internal/domain/entity"
	domainerror "github.com/expense-daddy/backend/internal/domain/error"
)

// loanRepository implements the adapter.LoanRepository interface.
type loanRepository struct {
	store    *CollectionStore
	activity adapter.ActivityRecorder
	clock    adapter.Clock
}

// NewLoanRepository creates a new loan repository instance.
func NewLoanRepository(store *CollectionStore, activity adapter.ActivityRecorder, clock adapter.Clock) adapter.LoanRepository {
	return &loanRepository{
		store:    store,
		activity: activity,
		clock:    clock,
	}
}

// List returns every stored loan, newest first.
func (r *loanRepository) List(ctx context.Context) ([]entity.LoanEntry, error) {
	loans, err := loadCollection(ctx, r.store, entity.CollectionLoans, []entity.LoanEntry{})
	if err != nil {
		return nil, err
	}
	if loans == nil {
		loans = []entity.LoanEntry{}
	}
	return loans, nil
}

// Add creates a new unpaid loan at the head of the collection.
func (r *loanRepository) Add(ctx context.Context, draft entity.LoanDraft) (*entity.LoanEntry, error) {
	loan := entity.NewLoanEntry(draft, r.clock.Now())

	err := mutateCollection(ctx, r.store, entity.CollectionLoans, []entity.LoanEntry{},
		func(loans []entity.LoanEntry) ([]entity.LoanEntry, bool, error) {
			return slices.Insert(loans, 0, *loan), true, nil
		})
	if err != nil {
		return nil, err
	}

	return loan, recordActivity(ctx, r.activity, entity.ActivityLoanAdded, "Added loan: "+loan.Name, amountOf(loan.Amount))
}

// Update merges the patch into the loan with the given id. The isPaid/paidDate pairing
// is not checked here.
func (r *loanRepository) Update(ctx context.Context, id string, patch entity.LoanPatch) (*entity.LoanEntry, error) {
	var updated *entity.LoanEntry

	err := mutateCollection(ctx, r.store, entity.CollectionLoans, []entity.LoanEntry{},
		func(loans []entity.LoanEntry) ([]entity.LoanEntry, bool, error) {
			i := slices.IndexFunc(loans, func(l entity.LoanEntry) bool { return l.ID == id })
			if i == -1 {
				return nil, false, domainerror.ErrRecordNotFound
			}
			patch.Apply(&loans[i])
			l := loans[i]
			updated = &l
			return loans, true, nil
		})
	if err != nil {
		return nil, err
	}

	return updated, recordActivity(ctx, r.activity, entity.ActivityLoanUpdated, "Updated loan: "+updated.Name, amountOf(updated.Amount))
}

// Delete removes the loan with the given id. Unknown ids are ignored.
func (r *loanRepository) Delete(ctx context.Context, id string) error {
	var deleted *entity.LoanEntry

	err := mutateCollection(ctx, r.store, entity.CollectionLoans, []entity.LoanEntry{},
		func(loans []entity.LoanEntry) ([]entity.LoanEntry, bool, error) {
			i := slices.IndexFunc(loans, func(l entity.LoanEntry) bool { return l.ID == id })
			if i == -1 {
				return loans, false, nil
			}
			l := loans[i]
			deleted = &l
			return slices.Delete(loans, i, i+1), true, nil
		})
	if err != nil || deleted == nil {
		return err
	}

	return recordActivity(ctx, r.activity, entity.ActivityLoanDeleted, "Deleted loan: "+deleted.Name, amountOf(deleted.Amount))
}
