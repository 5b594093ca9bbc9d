// Package card contains saved card use cases.
package card

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/expense-daddy/backend/internal/application/adapter"
	"github.com/expense-daddy/backend/internal/domain/entity"
	domainerror "github.com/expense-daddy/backend/internal/domain/error"
)

// UpdateCardInput represents the input for updating a saved card.
type UpdateCardInput struct {
	ID    string
	Patch entity.SavedCardPatch
}

// UpdateCardOutput represents the output of updating a saved card.
type UpdateCardOutput struct {
	Card *entity.SavedCard
}

// UpdateCardUseCase handles saved card updates.
type UpdateCardUseCase struct {
	cardRepo adapter.SavedCardRepository
}

// NewUpdateCardUseCase creates a new UpdateCardUseCase instance.
func NewUpdateCardUseCase(cardRepo adapter.SavedCardRepository) *UpdateCardUseCase {
	return &UpdateCardUseCase{
		cardRepo: cardRepo,
	}
}

// Execute performs the card update.
func (uc *UpdateCardUseCase) Execute(ctx context.Context, input UpdateCardInput) (*UpdateCardOutput, error) {
	if input.ID == "" {
		return nil, domainerror.NewRecordError(domainerror.ErrCodeMissingRecordID, "card id is required", domainerror.ErrMissingRecordID)
	}

	patch := input.Patch
	if patch.CardName != nil && strings.TrimSpace(*patch.CardName) == "" {
		return nil, domainerror.NewCardError(domainerror.ErrCodeMissingCardName, "card name cannot be empty", domainerror.ErrMissingCardName)
	}
	if patch.CardNumber != nil {
		if err := validateCardNumber(*patch.CardNumber); err != nil {
			return nil, err
		}
	}
	if patch.ExpiryDate != nil {
		if err := validateExpiry(*patch.ExpiryDate); err != nil {
			return nil, err
		}
	}
	if patch.CardType != nil {
		if err := validateCardType(*patch.CardType); err != nil {
			return nil, err
		}
	}

	card, err := uc.cardRepo.Update(ctx, input.ID, patch)
	if err != nil {
		if errors.Is(err, domainerror.ErrRecordNotFound) {
			return nil, domainerror.NewCardError(domainerror.ErrCodeCardNotFound, "card not found", domainerror.ErrRecordNotFound)
		}
		if errors.Is(err, domainerror.ErrActivityNotRecorded) {
			return &UpdateCardOutput{Card: card}, err
		}
		return nil, fmt.Errorf("failed to update card: %w", err)
	}

	return &UpdateCardOutput{
		Card: card,
	}, nil
}
