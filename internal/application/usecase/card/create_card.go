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

// CreateCardInput represents the input for saving a card.
type CreateCardInput struct {
	CardName   string
	CardNumber string
	ExpiryDate string
	CardType   entity.CardType // Optional, detected from the number when empty
	IsDefault  bool
}

// CreateCardOutput represents the output of saving a card.
type CreateCardOutput struct {
	Card *entity.SavedCard
}

// CreateCardUseCase handles saving a card.
type CreateCardUseCase struct {
	cardRepo adapter.SavedCardRepository
}

// NewCreateCardUseCase creates a new CreateCardUseCase instance.
func NewCreateCardUseCase(cardRepo adapter.SavedCardRepository) *CreateCardUseCase {
	return &CreateCardUseCase{
		cardRepo: cardRepo,
	}
}

// Execute performs the card creation.
func (uc *CreateCardUseCase) Execute(ctx context.Context, input CreateCardInput) (*CreateCardOutput, error) {
	name := strings.TrimSpace(input.CardName)
	if name == "" {
		return nil, domainerror.NewCardError(domainerror.ErrCodeMissingCardName, "card name is required", domainerror.ErrMissingCardName)
	}

	if err := validateCardNumber(input.CardNumber); err != nil {
		return nil, err
	}

	if err := validateExpiry(input.ExpiryDate); err != nil {
		return nil, err
	}

	// Detect card type from the number when not supplied
	cardType := input.CardType
	if cardType == "" {
		cardType = entity.DetectCardType(input.CardNumber)
	}
	if err := validateCardType(cardType); err != nil {
		return nil, err
	}

	card, err := uc.cardRepo.Add(ctx, entity.SavedCardDraft{
		CardName:   name,
		CardNumber: input.CardNumber,
		ExpiryDate: input.ExpiryDate,
		CardType:   cardType,
		IsDefault:  input.IsDefault,
	})
	if err != nil {
		if errors.Is(err, domainerror.ErrActivityNotRecorded) {
			return &CreateCardOutput{Card: card}, err
		}
		return nil, fmt.Errorf("failed to save card: %w", err)
	}

	return &CreateCardOutput{
		Card: card,
	}, nil
}
