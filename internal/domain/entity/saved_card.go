package entity

import (
	"strings"
	"time"
)

// CardType is the card network of a saved card.
type CardType string

const (
	CardTypeVisa       CardType = "visa"
	CardTypeMastercard CardType = "mastercard"
	CardTypeAmex       CardType = "amex"
	CardTypeOther      CardType = "other"
)

// IsValid reports whether t is one of the known card networks.
func (t CardType) IsValid() bool {
	switch t {
	case CardTypeVisa, CardTypeMastercard, CardTypeAmex, CardTypeOther:
		return true
	}
	return false
}

// SavedCard is a payment card kept for reference. Several cards may be marked default.
type SavedCard struct {
	ID         string   `json:"id"`
	CardName   string   `json:"cardName"`
	CardNumber string   `json:"cardNumber"`
	ExpiryDate string   `json:"expiryDate"`
	CardType   CardType `json:"cardType"`
	IsDefault  bool     `json:"isDefault"`
}

// SavedCardDraft holds the caller-supplied fields of a new card.
type SavedCardDraft struct {
	CardName   string
	CardNumber string
	ExpiryDate string
	CardType   CardType
	IsDefault  bool
}

// NewSavedCard creates a SavedCard from a draft. The card number is stored without spaces.
func NewSavedCard(draft SavedCardDraft, now time.Time) *SavedCard {
	return &SavedCard{
		ID:         NewID(now),
		CardName:   draft.CardName,
		CardNumber: NormalizeCardNumber(draft.CardNumber),
		ExpiryDate: draft.ExpiryDate,
		CardType:   draft.CardType,
		IsDefault:  draft.IsDefault,
	}
}

// SavedCardPatch lists the fields an update may change.
type SavedCardPatch struct {
	CardName   *string
	CardNumber *string
	ExpiryDate *string
	CardType   *CardType
	IsDefault  *bool
}

// Apply merges the patch into c.
func (p SavedCardPatch) Apply(c *SavedCard) {
	if p.CardName != nil {
		c.CardName = *p.CardName
	}
	if p.CardNumber != nil {
		c.CardNumber = NormalizeCardNumber(*p.CardNumber)
	}
	if p.ExpiryDate != nil {
		c.ExpiryDate = *p.ExpiryDate
	}
	if p.CardType != nil {
		c.CardType = *p.CardType
	}
	if p.IsDefault != nil {
		c.IsDefault = *p.IsDefault
	}
}

// NormalizeCardNumber strips all whitespace from a card number.
func NormalizeCardNumber(number string) string {
	return strings.Join(strings.Fields(number), "")
}

// DetectCardType infers the card network from the leading digits.
func DetectCardType(number string) CardType {
	clean := NormalizeCardNumber(number)
	if len(clean) == 0 {
		return CardTypeOther
	}
	if clean[0] == '4' {
		return CardTypeVisa
	}
	if len(clean) >= 2 {
		prefix := clean[:2]
		switch {
		case prefix >= "51" && prefix <= "55", prefix >= "22" && prefix <= "27":
			return CardTypeMastercard
		case prefix == "34" || prefix == "37":
			return CardTypeAmex
		}
	}
	return CardTypeOther
}

// MaskCardNumber hides all but the last four digits.
func MaskCardNumber(number string) string {
	clean := NormalizeCardNumber(number)
	if len(clean) < 4 {
		return clean
	}
	return "•••• " + clean[len(clean)-4:]
}
