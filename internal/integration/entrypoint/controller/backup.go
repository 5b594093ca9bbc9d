// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/expense-daddy/backend/internal/application/usecase/backup"
	domainerror "github.com/expense-daddy/backend/internal/domain/error"
	"github.com/expense-daddy/backend/internal/integration/entrypoint/dto"
)

// BackupController handles backup export and import endpoints.
type BackupController struct {
	exportUseCase  *backup.ExportBackupUseCase
	importUseCase  *backup.ImportBackupUseCase
	maxImportBytes int64
}

// NewBackupController creates a new backup controller instance. Import bodies larger
// than maxImportBytes are rejected.
func NewBackupController(
	exportUseCase *backup.ExportBackupUseCase,
	importUseCase *backup.ImportBackupUseCase,
	maxImportBytes int64,
) *BackupController {
	return &BackupController{
		exportUseCase:  exportUseCase,
		importUseCase:  importUseCase,
		maxImportBytes: maxImportBytes,
	}
}

// Export handles GET /backup/export requests. The document is served as a download.
func (c *BackupController) Export(ctx *gin.Context) {
	output, err := c.exportUseCase.Execute(ctx.Request.Context())
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	filename := fmt.Sprintf("expensedaddy-backup-%s.json", output.Document.ExportDate[:10])
	ctx.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	ctx.Data(http.StatusOK, "application/json; charset=utf-8", output.Data)
}

// Import handles POST /backup/import requests. The body is the backup document itself.
func (c *BackupController) Import(ctx *gin.Context) {
	// Read the document
	body := ctx.Request.Body
	if c.maxImportBytes > 0 {
		body = http.MaxBytesReader(ctx.Writer, body, c.maxImportBytes)
	}
	data, err := io.ReadAll(body)
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			ctx.JSON(http.StatusRequestEntityTooLarge, dto.ErrorResponse{
				Error: fmt.Sprintf("backup file exceeds %d bytes", maxErr.Limit),
				Code:  string(domainerror.ErrCodeInvalidBackupFile),
			})
			return
		}
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "failed to read backup file",
			Code:  string(domainerror.ErrCodeInvalidBackupFile),
		})
		return
	}

	// Execute use case
	output, err := c.importUseCase.Execute(ctx.Request.Context(), backup.ImportBackupInput{
		Data: data,
	})
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	// Build response
	ctx.JSON(http.StatusOK, dto.ImportBackupResponse{
		Version:  output.Version,
		Imported: output.Imported,
	})
}
