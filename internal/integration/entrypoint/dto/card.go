// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"github.com/expense-daddy/backend/internal/domain/entity"
)

// CreateCardRequest represents the request body for saving a card.
type CreateCardRequest struct {
	CardName   string `json:"card_name" binding:"required"`
	CardNumber string `json:"card_number" binding:"required"`
	ExpiryDate string `json:"expiry_date" binding:"required"`
	CardType   string `json:"card_type"`
	IsDefault  bool   `json:"is_default"`
}

// UpdateCardRequest represents the request body for updating a saved card.
type UpdateCardRequest struct {
	CardName   *string `json:"card_name,omitempty"`
	CardNumber *string `json:"card_number,omitempty"`
	ExpiryDate *string `json:"expiry_date,omitempty"`
	CardType   *string `json:"card_type,omitempty"`
	IsDefault  *bool   `json:"is_default,omitempty"`
}

// CardResponse represents a single saved card in API responses. The full number is
// never returned.
type CardResponse struct {
	ID           string `json:"id"`
	CardName     string `json:"card_name"`
	MaskedNumber string `json:"masked_number"`
	ExpiryDate   string `json:"expiry_date"`
	CardType     string `json:"card_type"`
	IsDefault    bool   `json:"is_default"`
}

// CardListResponse represents the response for listing saved cards.
type CardListResponse struct {
	Cards []CardResponse `json:"cards"`
}

// ToPatch converts the request into an entity patch.
func (r UpdateCardRequest) ToPatch() entity.SavedCardPatch {
	patch := entity.SavedCardPatch{
		CardName:   r.CardName,
		CardNumber: r.CardNumber,
		ExpiryDate: r.ExpiryDate,
		IsDefault:  r.IsDefault,
	}
	if r.CardType != nil {
		cardType := entity.CardType(*r.CardType)
		patch.CardType = &cardType
	}
	return patch
}

// ToCardResponse converts a domain SavedCard entity to a CardResponse DTO.
func ToCardResponse(c *entity.SavedCard) CardResponse {
	return CardResponse{
		ID:           c.ID,
		CardName:     c.CardName,
		MaskedNumber: entity.MaskCardNumber(c.CardNumber),
		ExpiryDate:   c.ExpiryDate,
		CardType:     string(c.CardType),
		IsDefault:    c.IsDefault,
	}
}

// ToCardListResponse converts a list of saved cards to CardListResponse.
func ToCardListResponse(cards []entity.SavedCard) CardListResponse {
	items := make([]CardResponse, len(cards))
	for i := range cards {
		items[i] = ToCardResponse(&cards[i])
	}
	return CardListResponse{
		Cards: items,
	}
}
