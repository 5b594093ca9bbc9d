package loan

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/expense-daddy/backend/internal/application/adapter"
	domainerror "github.com/expense-daddy/backend/internal/domain/error"
	"github.com/expense-daddy/backend/internal/integration/persistence"
)

type stubClock struct{ now time.Time }

func (c stubClock) Now() time.Time { return c.now }

var now = time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)

func newLoanRepo() adapter.LoanRepository {
	store := persistence.NewCollectionStore(persistence.NewMemoryStore())
	clock := stubClock{now: now}
	return persistence.NewLoanRepository(store, persistence.NewActivityRepository(store, clock), clock)
}

func TestCreateLoanUseCase(t *testing.T) {
	ctx := context.Background()

	t.Run("rejects non-positive amounts", func(t *testing.T) {
		_, err := NewCreateLoanUseCase(newLoanRepo()).Execute(ctx, CreateLoanInput{Name: "Alice", Amount: 0, Date: "2024-03-01"})
		if !errors.Is(err, domainerror.ErrInvalidAmount) {
			t.Errorf("expected ErrInvalidAmount, got %v", err)
		}
	})

	t.Run("new loan is unpaid", func(t *testing.T) {
		output, err := NewCreateLoanUseCase(newLoanRepo()).Execute(ctx, CreateLoanInput{Name: "Alice", Amount: 100, Date: "2024-03-01"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.Loan.IsPaid || output.Loan.PaidDate != nil {
			t.Errorf("expected unpaid loan, got %+v", output.Loan)
		}
	})
}

func TestMarkLoanPaidUseCase(t *testing.T) {
	ctx := context.Background()
	repo := newLoanRepo()

	created, err := NewCreateLoanUseCase(repo).Execute(ctx, CreateLoanInput{Name: "Alice", Amount: 100, Date: "2024-03-01"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	uc := NewMarkLoanPaidUseCase(repo, stubClock{now: now})

	paid, err := uc.Execute(ctx, MarkLoanPaidInput{ID: created.Loan.ID, IsPaid: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !paid.Loan.IsPaid || paid.Loan.PaidDate == nil || *paid.Loan.PaidDate != "2024-03-15T10:00:00.000Z" {
		t.Errorf("expected paid loan stamped with now, got %+v", paid.Loan)
	}

	unpaid, err := uc.Execute(ctx, MarkLoanPaidInput{ID: created.Loan.ID, IsPaid: false})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if unpaid.Loan.IsPaid || unpaid.Loan.PaidDate != nil {
		t.Errorf("expected paid date to be cleared, got %+v", unpaid.Loan)
	}

	_, err = uc.Execute(ctx, MarkLoanPaidInput{ID: "missing", IsPaid: true})
	var recordErr *domainerror.RecordError
	if !errors.As(err, &recordErr) || recordErr.Code != domainerror.ErrCodeRecordNotFound {
		t.Errorf("expected not found, got %v", err)
	}
}

func TestMarkLoanPaidUseCase_KeepsFirstPaidDate(t *testing.T) {
	ctx := context.Background()
	repo := newLoanRepo()

	created, err := NewCreateLoanUseCase(repo).Execute(ctx, CreateLoanInput{Name: "Alice", Amount: 100, Date: "2024-03-01"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := NewMarkLoanPaidUseCase(repo, stubClock{now: now}).Execute(ctx, MarkLoanPaidInput{ID: created.Loan.ID, IsPaid: true}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	later := now.Add(48 * time.Hour)
	again, err := NewMarkLoanPaidUseCase(repo, stubClock{now: later}).Execute(ctx, MarkLoanPaidInput{ID: created.Loan.ID, IsPaid: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if again.Loan.PaidDate == nil || *again.Loan.PaidDate != "2024-03-15T10:00:00.000Z" {
		t.Errorf("expected original paid date kept, got %+v", again.Loan)
	}

	loans, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(loans) != 1 || loans[0].PaidDate == nil || *loans[0].PaidDate != "2024-03-15T10:00:00.000Z" {
		t.Errorf("expected stored paid date unchanged, got %+v", loans)
	}

	unpaid, err := NewMarkLoanPaidUseCase(repo, stubClock{now: later}).Execute(ctx, MarkLoanPaidInput{ID: created.Loan.ID, IsPaid: false})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if unpaid.Loan.IsPaid || unpaid.Loan.PaidDate != nil {
		t.Errorf("expected paid date cleared, got %+v", unpaid.Loan)
	}
}

func TestDeleteLoanUseCase_Idempotent(t *testing.T) {
	uc := NewDeleteLoanUseCase(newLoanRepo())
	for i := 0; i < 2; i++ {
		if _, err := uc.Execute(context.Background(), DeleteLoanInput{ID: "missing"}); err != nil {
			t.Fatalf("delete #%d: %v", i+1, err)
		}
	}
}
