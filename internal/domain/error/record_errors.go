// Package error defines domain-specific errors for the ExpenseDaddy data layer.
package error

import "errors"

// Record domain errors shared by expenses, loans, fixed expenses and savings goals.
var (
	// ErrRecordNotFound is returned when an update references an id that is not stored.
	ErrRecordNotFound = errors.New("record not found")

	// ErrMissingRecordID is returned when an operation is called without an id.
	ErrMissingRecordID = errors.New("record id is required")

	// ErrMissingName is returned when a record is created without a name.
	ErrMissingName = errors.New("name is required")

	// ErrInvalidAmount is returned when an amount is zero or negative.
	ErrInvalidAmount = errors.New("amount must be greater than zero")

	// ErrInvalidDate is returned when a date does not start with YYYY-MM-DD.
	ErrInvalidDate = errors.New("invalid date, expected ISO 8601")

	// ErrInvalidExpenseType is returned when the expense type is not daily, fixed or loan.
	ErrInvalidExpenseType = errors.New("expense type must be: daily, fixed, or loan")

	// ErrInvalidRecurringType is returned when the recurrence is not daily, weekly or monthly.
	ErrInvalidRecurringType = errors.New("recurring type must be: daily, weekly, or monthly")

	// ErrMissingRecurringType is returned when a recurring expense has no cadence.
	ErrMissingRecurringType = errors.New("recurring type is required for recurring expenses")

	// ErrInvalidTargetAmount is returned when a savings goal target is zero or negative.
	ErrInvalidTargetAmount = errors.New("target amount must be greater than zero")

	// ErrInvalidCurrentAmount is returned when a savings goal balance is negative.
	ErrInvalidCurrentAmount = errors.New("current amount cannot be negative")

	// ErrActivityNotRecorded is returned when a mutation was persisted but its activity entry was not.
	ErrActivityNotRecorded = errors.New("activity not recorded")
)

// RecordErrorCode defines error codes for record errors.
// Format: REC-XXYYYY where XX is category and YYYY is specific error.
type RecordErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeRecordNotFound        RecordErrorCode = "REC-010001"
	ErrCodeMissingRecordID       RecordErrorCode = "REC-010002"
	ErrCodeMissingName           RecordErrorCode = "REC-010003"
	ErrCodeInvalidAmount         RecordErrorCode = "REC-010004"
	ErrCodeInvalidDate           RecordErrorCode = "REC-010005"
	ErrCodeInvalidExpenseType    RecordErrorCode = "REC-010006"
	ErrCodeInvalidRecurringType  RecordErrorCode = "REC-010007"
	ErrCodeMissingRecurringType  RecordErrorCode = "REC-010008"
	ErrCodeInvalidTargetAmount   RecordErrorCode = "REC-010009"
	ErrCodeInvalidCurrentAmount  RecordErrorCode = "REC-010010"
	ErrCodeMissingRecordFields   RecordErrorCode = "REC-010011"

	// Side effect errors (02XXXX)
	ErrCodeActivityNotRecorded RecordErrorCode = "REC-020001"
)

// RecordError represents a record error with code and message.
type RecordError struct {
	Code    RecordErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *RecordError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *RecordError) Unwrap() error {
	return e.Err
}

// NewRecordError creates a new RecordError with the given code and message.
func NewRecordError(code RecordErrorCode, message string, err error) *RecordError {
	return &RecordError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
