package error

import "errors"

// Profile domain errors.
var (
	// ErrInvalidMonthlyBudget is returned when the monthly budget is negative.
	ErrInvalidMonthlyBudget = errors.New("monthly budget cannot be negative")

	// ErrInvalidDailyBudgetTarget is returned when the daily budget target is negative.
	ErrInvalidDailyBudgetTarget = errors.New("daily budget target cannot be negative")

	// ErrMissingCurrency is returned when the currency symbol is set to an empty string.
	ErrMissingCurrency = errors.New("currency is required")

	// ErrMissingProfileName is returned when the profile name is set to an empty string.
	ErrMissingProfileName = errors.New("profile name is required")
)

// ProfileErrorCode defines error codes for profile errors.
// Format: PRF-XXYYYY where XX is category and YYYY is specific error.
type ProfileErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidMonthlyBudget     ProfileErrorCode = "PRF-010001"
	ErrCodeInvalidDailyBudgetTarget ProfileErrorCode = "PRF-010002"
	ErrCodeMissingCurrency          ProfileErrorCode = "PRF-010003"
	ErrCodeMissingProfileName       ProfileErrorCode = "PRF-010004"
)

// ProfileError represents a profile error with code and message.
type ProfileError struct {
	Code    ProfileErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ProfileError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *ProfileError) Unwrap() error {
	return e.Err
}

// NewProfileError creates a new ProfileError with the given code and message.
func NewProfileError(code ProfileErrorCode, message string, err error) *ProfileError {
	return &ProfileError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
