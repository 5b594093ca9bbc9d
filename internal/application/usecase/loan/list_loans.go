// Package loan contains loan-related use cases.
package loan

import (
	"context"
	"fmt"

	"github.com/expense-daddy/backend/internal/application/adapter"
	"github.com/expense-daddy/backend/internal/domain/entity"
)

// ListLoansOutput represents the output of listing loans.
type ListLoansOutput struct {
	Loans []entity.LoanEntry
}

// ListLoansUseCase handles listing loans.
type ListLoansUseCase struct {
	loanRepo adapter.LoanRepository
}

// NewListLoansUseCase creates a new ListLoansUseCase instance.
func NewListLoansUseCase(loanRepo adapter.LoanRepository) *ListLoansUseCase {
	return &ListLoansUseCase{
		loanRepo: loanRepo,
	}
}

// Execute lists loans newest first.
func (uc *ListLoansUseCase) Execute(ctx context.Context) (*ListLoansOutput, error) {
	loans, err := uc.loanRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list loans: %w", err)
	}

	return &ListLoansOutput{
		Loans: loans,
	}, nil
}
