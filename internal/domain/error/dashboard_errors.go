package error

import "errors"

// Dashboard domain errors.
var (
	// ErrInvalidCalendarYear is returned when the calendar year is missing or out of range.
	ErrInvalidCalendarYear = errors.New("year must be between 1970 and 9999")

	// ErrInvalidCalendarMonth is returned when the calendar month is not 1 to 12.
	ErrInvalidCalendarMonth = errors.New("month must be between 1 and 12")
)

// DashboardErrorCode defines error codes for dashboard errors.
// Format: DSH-XXYYYY where XX is category and YYYY is specific error.
type DashboardErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidCalendarYear  DashboardErrorCode = "DSH-010001"
	ErrCodeInvalidCalendarMonth DashboardErrorCode = "DSH-010002"

	// Internal errors (99XXXX)
	ErrCodeDashboardInternalError DashboardErrorCode = "DSH-990001"
)

// DashboardError represents a dashboard error with code and message.
type DashboardError struct {
	Code    DashboardErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *DashboardError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *DashboardError) Unwrap() error {
	return e.Err
}

// NewDashboardError creates a new DashboardError with the given code and message.
func NewDashboardError(code DashboardErrorCode, message string, err error) *DashboardError {
	return &DashboardError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
