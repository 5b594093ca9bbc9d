// Package card contains saved card use cases.
package card

import (
	"regexp"

	"github.com/expense-daddy/backend/internal/domain/entity"
	domainerror "github.com/expense-daddy/backend/internal/domain/error"
)

var (
	cardNumberPattern = regexp.MustCompile(`^[0-9]{4,19}$`)
	expiryPattern     = regexp.MustCompile(`^(0[1-9]|1[0-2])/[0-9]{2}$`)
)

func validateCardNumber(number string) error {
	if !cardNumberPattern.MatchString(entity.NormalizeCardNumber(number)) {
		return domainerror.NewCardError(
			domainerror.ErrCodeInvalidCardNumber,
			"card number must contain 4 to 19 digits",
			domainerror.ErrInvalidCardNumber,
		)
	}
	return nil
}

func validateExpiry(expiry string) error {
	if !expiryPattern.MatchString(expiry) {
		return domainerror.NewCardError(
			domainerror.ErrCodeInvalidExpiryDate,
			"expiry date must be in MM/YY format",
			domainerror.ErrInvalidExpiryDate,
		)
	}
	return nil
}

func validateCardType(cardType entity.CardType) error {
	if !cardType.IsValid() {
		return domainerror.NewCardError(
			domainerror.ErrCodeInvalidCardType,
			"card type must be 'visa', 'mastercard', 'amex', or 'other'",
			domainerror.ErrInvalidCardType,
		)
	}
	return nil
}
