package error

import "errors"

// Backup domain errors.
var (
	// ErrInvalidBackupFile is returned when a document cannot be parsed or was not produced by this app.
	ErrInvalidBackupFile = errors.New("Invalid backup file")

	// ErrPartialImport is returned when an import failed after some collections were overwritten.
	ErrPartialImport = errors.New("import stopped after a partial write")
)

// BackupErrorCode defines error codes for backup errors.
// Format: BKP-XXYYYY where XX is category and YYYY is specific error.
type BackupErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidBackupFile BackupErrorCode = "BKP-010001"
	ErrCodeEmptyBackupFile   BackupErrorCode = "BKP-010002"

	// Write errors (02XXXX)
	ErrCodePartialImport BackupErrorCode = "BKP-020001"

	// Internal errors (99XXXX)
	ErrCodeBackupInternalError BackupErrorCode = "BKP-990001"
)

// BackupError represents a backup error with code and message.
// Written lists the collection keys overwritten before an import stopped.
type BackupError struct {
	Code    BackupErrorCode
	Message string
	Written []string
	Err     error
}

// Error implements the error interface.
func (e *BackupError) Error() string {
	if e.Err != nil && e.Err.Error() != e.Message {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *BackupError) Unwrap() error {
	return e.Err
}

// NewBackupError creates a new BackupError with the given code and message.
func NewBackupError(code BackupErrorCode, message string, err error) *BackupError {
	return &BackupError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// NewInvalidBackupFileError creates the error reported for unreadable or foreign documents.
func NewInvalidBackupFileError() *BackupError {
	return NewBackupError(ErrCodeInvalidBackupFile, ErrInvalidBackupFile.Error(), ErrInvalidBackupFile)
}
