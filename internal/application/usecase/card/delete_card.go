// Package card contains saved card use cases.
package card

import (
	"context"
	"errors"
	"fmt"

	"github.com/expense-daddy/backend/internal/application/adapter"
	domainerror "github.com/expense-daddy/backend/internal/domain/error"
)

// DeleteCardInput represents the input for removing a saved card.
type DeleteCardInput struct {
	ID string
}

// DeleteCardOutput represents the output of removing a saved card.
type DeleteCardOutput struct {
	Success bool
}

// DeleteCardUseCase handles saved card removal.
type DeleteCardUseCase struct {
	cardRepo adapter.SavedCardRepository
}

// NewDeleteCardUseCase creates a new DeleteCardUseCase instance.
func NewDeleteCardUseCase(cardRepo adapter.SavedCardRepository) *DeleteCardUseCase {
	return &DeleteCardUseCase{
		cardRepo: cardRepo,
	}
}

// Execute performs the card removal. Removing an unknown id succeeds.
func (uc *DeleteCardUseCase) Execute(ctx context.Context, input DeleteCardInput) (*DeleteCardOutput, error) {
	if input.ID == "" {
		return nil, domainerror.NewRecordError(domainerror.ErrCodeMissingRecordID, "card id is required", domainerror.ErrMissingRecordID)
	}

	if err := uc.cardRepo.Delete(ctx, input.ID); err != nil {
		if errors.Is(err, domainerror.ErrActivityNotRecorded) {
			return &DeleteCardOutput{Success: true}, err
		}
		return nil, fmt.Errorf("failed to delete card: %w", err)
	}

	return &DeleteCardOutput{
		Success: true,
	}, nil
}
