// Package loan contains loan-related use cases.
package loan

import (
	"context"
	"fmt"
	"slices"

	"github.com/expense-daddy/backend/internal/application/adapter"
	"github.com/expense-daddy/backend/internal/domain/entity"
	domainerror "github.com/expense-daddy/backend/internal/domain/error"
)

// MarkLoanPaidInput represents the input for toggling a loan's paid state.
type MarkLoanPaidInput struct {
	ID     string
	IsPaid bool
}

// MarkLoanPaidUseCase sets isPaid and keeps paidDate consistent with it. Only the
// transition to paid stamps the current time; marking it unpaid clears the date. A loan
// already in the requested state is returned as stored.
type MarkLoanPaidUseCase struct {
	loanRepo adapter.LoanRepository
	clock    adapter.Clock
}

// NewMarkLoanPaidUseCase creates a new MarkLoanPaidUseCase instance.
func NewMarkLoanPaidUseCase(loanRepo adapter.LoanRepository, clock adapter.Clock) *MarkLoanPaidUseCase {
	return &MarkLoanPaidUseCase{
		loanRepo: loanRepo,
		clock:    clock,
	}
}

// Execute performs the paid state change.
func (uc *MarkLoanPaidUseCase) Execute(ctx context.Context, input MarkLoanPaidInput) (*UpdateLoanOutput, error) {
	if input.ID == "" {
		return nil, domainerror.NewRecordError(domainerror.ErrCodeMissingRecordID, "loan id is required", domainerror.ErrMissingRecordID)
	}

	loans, err := uc.loanRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load loans: %w", err)
	}
	i := slices.IndexFunc(loans, func(l entity.LoanEntry) bool { return l.ID == input.ID })
	if i == -1 {
		return handleLoanWriteError(nil, domainerror.ErrRecordNotFound, "failed to mark loan paid")
	}
	if current := loans[i]; current.IsPaid == input.IsPaid {
		return &UpdateLoanOutput{
			Loan: &current,
		}, nil
	}

	isPaid := input.IsPaid
	patch := entity.LoanPatch{IsPaid: &isPaid}
	if isPaid {
		paidDate := entity.Timestamp(uc.clock.Now())
		patch.PaidDate = &paidDate
	} else {
		patch.ClearPaidDate = true
	}

	loan, err := uc.loanRepo.Update(ctx, input.ID, patch)
	if err != nil {
		return handleLoanWriteError(loan, err, "failed to mark loan paid")
	}

	return &UpdateLoanOutput{
		Loan: loan,
	}, nil
}
