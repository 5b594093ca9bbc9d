// Package card contains saved card use cases.
package card

import (
	"context"
	"fmt"

	"github.com/expense-daddy/backend/internal/application/adapter"
	"github.com/expense-daddy/backend/internal/domain/entity"
)

// ListCardsOutput represents the output of listing saved cards.
type ListCardsOutput struct {
	Cards []entity.SavedCard
}

// ListCardsUseCase handles listing saved cards.
type ListCardsUseCase struct {
	cardRepo adapter.SavedCardRepository
}

// NewListCardsUseCase creates a new ListCardsUseCase instance.
func NewListCardsUseCase(cardRepo adapter.SavedCardRepository) *ListCardsUseCase {
	return &ListCardsUseCase{
		cardRepo: cardRepo,
	}
}

// Execute lists cards in insertion order.
func (uc *ListCardsUseCase) Execute(ctx context.Context) (*ListCardsOutput, error) {
	cards, err := uc.cardRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list cards: %w", err)
	}

	return &ListCardsOutput{
		Cards: cards,
	}, nil
}
