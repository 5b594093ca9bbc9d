// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	domainerror "github.com/expense-daddy/backend/internal/domain/error"
	"github.com/expense-daddy/backend/internal/integration/entrypoint/dto"
)

// ActivityRecordedHeader is set to "false" when a change was saved but its activity log
// entry was not.
const ActivityRecordedHeader = "X-Activity-Recorded"

// activityNotRecorded reports whether err only signals a missing activity log entry. The
// primary write succeeded in that case, so the caller responds with success.
func activityNotRecorded(ctx *gin.Context, err error) bool {
	if !errors.Is(err, domainerror.ErrActivityNotRecorded) {
		return false
	}
	slog.Warn("Change saved without activity entry",
		"method", ctx.Request.Method,
		"path", ctx.FullPath(),
		"error", err,
	)
	ctx.Header(ActivityRecordedHeader, "false")
	return true
}

// bindError responds to a request body that could not be bound.
func bindError(ctx *gin.Context, err error) {
	ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
		Error: "Invalid request body: " + err.Error(),
		Code:  string(domainerror.ErrCodeMissingRecordFields),
	})
}

// handleDomainError maps domain errors to HTTP responses.
func handleDomainError(ctx *gin.Context, err error) {
	var (
		recordErr    *domainerror.RecordError
		cardErr      *domainerror.CardError
		profileErr   *domainerror.ProfileError
		dashboardErr *domainerror.DashboardError
		backupErr    *domainerror.BackupError
		storageErr   *domainerror.StorageError
	)

	switch {
	case errors.As(err, &backupErr):
		handleBackupError(ctx, backupErr)
	case errors.As(err, &recordErr):
		ctx.JSON(getStatusCodeForRecordError(recordErr.Code), dto.ErrorResponse{
			Error: recordErr.Message,
			Code:  string(recordErr.Code),
		})
	case errors.As(err, &cardErr):
		ctx.JSON(getStatusCodeForCardError(cardErr.Code), dto.ErrorResponse{
			Error: cardErr.Message,
			Code:  string(cardErr.Code),
		})
	case errors.As(err, &profileErr):
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: profileErr.Message,
			Code:  string(profileErr.Code),
		})
	case errors.As(err, &dashboardErr):
		ctx.JSON(getStatusCodeForDashboardError(dashboardErr.Code), dto.ErrorResponse{
			Error: dashboardErr.Message,
			Code:  string(dashboardErr.Code),
		})
	case errors.As(err, &storageErr):
		slog.Error("Storage failure", "path", ctx.FullPath(), "key", storageErr.Key, "error", err)
		ctx.JSON(getStatusCodeForStorageError(storageErr.Code), dto.ErrorResponse{
			Error: storageErr.Message,
			Code:  string(storageErr.Code),
		})
	default:
		slog.Error("Unhandled error", "path", ctx.FullPath(), "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "An internal error occurred",
		})
	}
}

// handleBackupError responds with the collections already written when an import stopped
// partway.
func handleBackupError(ctx *gin.Context, backupErr *domainerror.BackupError) {
	switch backupErr.Code {
	case domainerror.ErrCodeInvalidBackupFile, domainerror.ErrCodeEmptyBackupFile:
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: backupErr.Message,
			Code:  string(backupErr.Code),
		})
	case domainerror.ErrCodePartialImport:
		ctx.JSON(http.StatusInternalServerError, dto.PartialImportResponse{
			Error:   backupErr.Message,
			Code:    string(backupErr.Code),
			Written: backupErr.Written,
		})
	default:
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: backupErr.Message,
			Code:  string(backupErr.Code),
		})
	}
}

// getStatusCodeForRecordError maps record error codes to HTTP status codes.
func getStatusCodeForRecordError(code domainerror.RecordErrorCode) int {
	switch code {
	case domainerror.ErrCodeRecordNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeMissingRecordID,
		domainerror.ErrCodeMissingName,
		domainerror.ErrCodeInvalidAmount,
		domainerror.ErrCodeInvalidDate,
		domainerror.ErrCodeInvalidExpenseType,
		domainerror.ErrCodeInvalidRecurringType,
		domainerror.ErrCodeMissingRecurringType,
		domainerror.ErrCodeInvalidTargetAmount,
		domainerror.ErrCodeInvalidCurrentAmount,
		domainerror.ErrCodeMissingRecordFields:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// getStatusCodeForCardError maps card error codes to HTTP status codes.
func getStatusCodeForCardError(code domainerror.CardErrorCode) int {
	if code == domainerror.ErrCodeCardNotFound {
		return http.StatusNotFound
	}
	return http.StatusBadRequest
}

// getStatusCodeForDashboardError maps dashboard error codes to HTTP status codes.
func getStatusCodeForDashboardError(code domainerror.DashboardErrorCode) int {
	switch code {
	case domainerror.ErrCodeInvalidCalendarYear, domainerror.ErrCodeInvalidCalendarMonth:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// getStatusCodeForStorageError maps storage error codes to HTTP status codes.
func getStatusCodeForStorageError(code domainerror.StorageErrorCode) int {
	switch code {
	case domainerror.ErrCodeStorageRead, domainerror.ErrCodeStorageWrite:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
