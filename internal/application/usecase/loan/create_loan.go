// Package loan contains loan-related use cases.
package loan

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/expense-daddy/backend/internal/application/adapter"
	"github.com/expense-daddy/backend/internal/domain/entity"
	domainerror "github.com/expense-daddy/backend/internal/domain/error"
)

// CreateLoanInput represents the input for loan creation.
type CreateLoanInput struct {
	Name   string
	Amount float64
	Notes  string
	Date   string
}

// CreateLoanOutput represents the output of loan creation.
type CreateLoanOutput struct {
	Loan *entity.LoanEntry
}

// CreateLoanUseCase handles loan creation logic.
type CreateLoanUseCase struct {
	loanRepo adapter.LoanRepository
}

// NewCreateLoanUseCase creates a new CreateLoanUseCase instance.
func NewCreateLoanUseCase(loanRepo adapter.LoanRepository) *CreateLoanUseCase {
	return &CreateLoanUseCase{
		loanRepo: loanRepo,
	}
}

// Execute performs the loan creation. New loans always start unpaid.
func (uc *CreateLoanUseCase) Execute(ctx context.Context, input CreateLoanInput) (*CreateLoanOutput, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, domainerror.NewRecordError(domainerror.ErrCodeMissingName, "name is required", domainerror.ErrMissingName)
	}

	// Validate amount
	if input.Amount <= 0 {
		return nil, domainerror.NewRecordError(
			domainerror.ErrCodeInvalidAmount,
			"amount must be greater than zero",
			domainerror.ErrInvalidAmount,
		)
	}

	if !entity.IsValidDate(input.Date) {
		return nil, domainerror.NewRecordError(domainerror.ErrCodeInvalidDate, "date must be an ISO 8601 date", domainerror.ErrInvalidDate)
	}

	loan, err := uc.loanRepo.Add(ctx, entity.LoanDraft{
		Name:   name,
		Amount: input.Amount,
		Notes:  input.Notes,
		Date:   input.Date,
	})
	if err != nil {
		if errors.Is(err, domainerror.ErrActivityNotRecorded) {
			return &CreateLoanOutput{Loan: loan}, err
		}
		return nil, fmt.Errorf("failed to create loan: %w", err)
	}

	return &CreateLoanOutput{
		Loan: loan,
	}, nil
}
