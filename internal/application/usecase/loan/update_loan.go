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

// UpdateLoanInput represents the input for loan update.
type UpdateLoanInput struct {
	ID    string
	Patch entity.LoanPatch
}

// UpdateLoanOutput represents the output of loan update.
type UpdateLoanOutput struct {
	Loan *entity.LoanEntry
}

// UpdateLoanUseCase handles loan update logic. Use MarkLoanPaidUseCase to change the
// paid state together with its date.
type UpdateLoanUseCase struct {
	loanRepo adapter.LoanRepository
}

// NewUpdateLoanUseCase creates a new UpdateLoanUseCase instance.
func NewUpdateLoanUseCase(loanRepo adapter.LoanRepository) *UpdateLoanUseCase {
	return &UpdateLoanUseCase{
		loanRepo: loanRepo,
	}
}

// Execute performs the loan update.
func (uc *UpdateLoanUseCase) Execute(ctx context.Context, input UpdateLoanInput) (*UpdateLoanOutput, error) {
	if input.ID == "" {
		return nil, domainerror.NewRecordError(domainerror.ErrCodeMissingRecordID, "loan id is required", domainerror.ErrMissingRecordID)
	}

	if input.Patch.Name != nil && strings.TrimSpace(*input.Patch.Name) == "" {
		return nil, domainerror.NewRecordError(domainerror.ErrCodeMissingName, "name cannot be empty", domainerror.ErrMissingName)
	}

	if input.Patch.Date != nil && !entity.IsValidDate(*input.Patch.Date) {
		return nil, domainerror.NewRecordError(domainerror.ErrCodeInvalidDate, "date must be an ISO 8601 date", domainerror.ErrInvalidDate)
	}

	loan, err := uc.loanRepo.Update(ctx, input.ID, input.Patch)
	if err != nil {
		return handleLoanWriteError(loan, err, "failed to update loan")
	}

	return &UpdateLoanOutput{
		Loan: loan,
	}, nil
}

// handleLoanWriteError maps repository errors of loan updates.
func handleLoanWriteError(loan *entity.LoanEntry, err error, action string) (*UpdateLoanOutput, error) {
	if errors.Is(err, domainerror.ErrRecordNotFound) {
		return nil, domainerror.NewRecordError(domainerror.ErrCodeRecordNotFound, "loan not found", domainerror.ErrRecordNotFound)
	}
	if errors.Is(err, domainerror.ErrActivityNotRecorded) {
		return &UpdateLoanOutput{Loan: loan}, err
	}
	return nil, fmt.Errorf("%s: %w", action, err)
}
