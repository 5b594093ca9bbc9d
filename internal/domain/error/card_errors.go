package error

import "errors"

// Saved card domain errors.
var (
	// ErrMissingCardName is returned when a card is saved without a name.
	ErrMissingCardName = errors.New("card name is required")

	// ErrInvalidCardNumber is returned when the card number is not 4 to 19 digits.
	ErrInvalidCardNumber = errors.New("card number must contain 4 to 19 digits")

	// ErrInvalidExpiryDate is returned when the expiry date is not MM/YY.
	ErrInvalidExpiryDate = errors.New("expiry date must be in MM/YY format")

	// ErrInvalidCardType is returned when the card type is not a known network.
	ErrInvalidCardType = errors.New("card type must be: visa, mastercard, amex, or other")
)

// CardErrorCode defines error codes for saved card errors.
// Format: CRD-XXYYYY where XX is category and YYYY is specific error.
type CardErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeMissingCardName   CardErrorCode = "CRD-010001"
	ErrCodeInvalidCardNumber CardErrorCode = "CRD-010002"
	ErrCodeInvalidExpiryDate CardErrorCode = "CRD-010003"
	ErrCodeInvalidCardType   CardErrorCode = "CRD-010004"
	ErrCodeCardNotFound      CardErrorCode = "CRD-010005"
)

// CardError represents a saved card error with code and message.
type CardError struct {
	Code    CardErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *CardError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *CardError) Unwrap() error {
	return e.Err
}

// NewCardError creates a new CardError with the given code and message.
func NewCardError(code CardErrorCode, message string, err error) *CardError {
	return &CardError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
