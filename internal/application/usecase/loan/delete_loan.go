// Package loan contains loan-related use cases.
package loan

import (
	"context"
	"errors"
	"fmt"

	"github.com/expense-daddy/backend/internal/application/adapter"
	domainerror "github.com/expense-daddy/backend/internal/domain/error"
)

// DeleteLoanInput represents the input for loan deletion.
type DeleteLoanInput struct {
	ID string
}

// DeleteLoanOutput represents the output of loan deletion.
type DeleteLoanOutput struct {
	Success bool
}

// DeleteLoanUseCase handles loan deletion logic.
type DeleteLoanUseCase struct {
	loanRepo adapter.LoanRepository
}

// NewDeleteLoanUseCase creates a new DeleteLoanUseCase instance.
func NewDeleteLoanUseCase(loanRepo adapter.LoanRepository) *DeleteLoanUseCase {
	return &DeleteLoanUseCase{
		loanRepo: loanRepo,
	}
}

// Execute performs the loan deletion. Deleting an unknown id succeeds.
func (uc *DeleteLoanUseCase) Execute(ctx context.Context, input DeleteLoanInput) (*DeleteLoanOutput, error) {
	if input.ID == "" {
		return nil, domainerror.NewRecordError(domainerror.ErrCodeMissingRecordID, "loan id is required", domainerror.ErrMissingRecordID)
	}

	if err := uc.loanRepo.Delete(ctx, input.ID); err != nil {
		if errors.Is(err, domainerror.ErrActivityNotRecorded) {
			return &DeleteLoanOutput{Success: true}, err
		}
		return nil, fmt.Errorf("failed to delete loan: %w", err)
	}

	return &DeleteLoanOutput{
		Success: true,
	}, nil
}
