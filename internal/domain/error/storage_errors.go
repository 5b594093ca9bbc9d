package error

import (
	"errors"
	"fmt"
)

// Storage domain errors.
var (
	// ErrStorageUnavailable is returned when the underlying key-value store cannot be reached.
	ErrStorageUnavailable = errors.New("storage unavailable")

	// ErrCorruptCollection is returned when a stored collection cannot be decoded.
	ErrCorruptCollection = errors.New("stored collection is corrupt")
)

// StorageErrorCode defines error codes for storage errors.
// Format: STO-XXYYYY where XX is category and YYYY is specific error.
type StorageErrorCode string

const (
	// I/O errors (01XXXX)
	ErrCodeStorageRead  StorageErrorCode = "STO-010001"
	ErrCodeStorageWrite StorageErrorCode = "STO-010002"

	// Encoding errors (02XXXX)
	ErrCodeCorruptCollection StorageErrorCode = "STO-020001"
	ErrCodeEncodeCollection  StorageErrorCode = "STO-020002"
)

// StorageError represents a key-value store failure for a single key.
type StorageError struct {
	Code    StorageErrorCode
	Message string
	Key     string
	Err     error
}

// Error implements the error interface.
func (e *StorageError) Error() string {
	msg := e.Message
	if e.Key != "" {
		msg += " (" + e.Key + ")"
	}
	if e.Err != nil {
		return msg + ": " + e.Err.Error()
	}
	return msg
}

// Unwrap returns the underlying error.
func (e *StorageError) Unwrap() error {
	return e.Err
}

// NewStorageError creates a new StorageError with the given code and message.
func NewStorageError(code StorageErrorCode, message, key string, err error) *StorageError {
	return &StorageError{
		Code:    code,
		Message: message,
		Key:     key,
		Err:     err,
	}
}

// NewUnavailableError wraps a backend failure so that it matches ErrStorageUnavailable.
func NewUnavailableError(code StorageErrorCode, key string, cause error) *StorageError {
	return NewStorageError(code, "storage operation failed", key, fmt.Errorf("%w: %w", ErrStorageUnavailable, cause))
}
