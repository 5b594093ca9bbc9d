// Package backup contains backup export and import use cases.
package backup

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/expense-daddy/backend/internal/application/adapter"
	"github.com/expense-daddy/backend/internal/domain/entity"
	domainerror "github.com/expense-daddy/backend/internal/domain/error"
)

// ImportBackupInput represents the input for importing a backup.
type ImportBackupInput struct {
	Data []byte
}

// ImportBackupOutput represents the output of importing a backup.
type ImportBackupOutput struct {
	Version  int
	Imported []string // Collection keys overwritten, in document order
}

// ImportBackupUseCase handles restoring collections from a backup document.
type ImportBackupUseCase struct {
	collections adapter.RawCollectionStore
}

// NewImportBackupUseCase creates a new ImportBackupUseCase instance.
func NewImportBackupUseCase(collections adapter.RawCollectionStore) *ImportBackupUseCase {
	return &ImportBackupUseCase{
		collections: collections,
	}
}

// Execute validates the document and overwrites every collection it carries. Collections
// missing from the document are left untouched. Nothing is written unless the whole
// document parses, but the writes themselves are not atomic: a failed write leaves the
// collections before it already replaced.
func (uc *ImportBackupUseCase) Execute(ctx context.Context, input ImportBackupInput) (*ImportBackupOutput, error) {
	// Step 1: Parse and identify the document
	if len(bytes.TrimSpace(input.Data)) == 0 {
		return nil, domainerror.NewBackupError(
			domainerror.ErrCodeEmptyBackupFile,
			domainerror.ErrInvalidBackupFile.Error(),
			domainerror.ErrInvalidBackupFile,
		)
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(input.Data, &fields); err != nil {
		slog.Warn("Rejected backup document", "reason", "malformed", "error", err)
		return nil, domainerror.NewInvalidBackupFileError()
	}

	// appName is the only header field checked
	var appName string
	if raw, ok := fields["appName"]; ok {
		_ = json.Unmarshal(raw, &appName)
	}
	if appName != entity.BackupAppName {
		slog.Warn("Rejected backup document", "reason", "foreign app", "app_name", string(fields["appName"]))
		return nil, domainerror.NewInvalidBackupFileError()
	}

	doc := entity.BackupDocument{
		AppName: appName,
		Version: documentVersion(fields["version"]),
	}
	for _, section := range doc.Sections() {
		*section.Data = fields[section.Field]
	}

	// Step 2: Overwrite each present collection in document order
	written := make([]string, 0, len(doc.Sections()))
	for _, section := range doc.Sections() {
		if !section.IsPresent() {
			continue
		}

		var compact bytes.Buffer
		if err := json.Compact(&compact, *section.Data); err != nil {
			return uc.stop(written, section.Collection, err)
		}

		if err := uc.collections.WriteRaw(ctx, section.Collection, compact.Bytes()); err != nil {
			return uc.stop(written, section.Collection, err)
		}
		written = append(written, section.Collection)
		slog.Info("Collection imported", "collection", section.Collection, "bytes", compact.Len())
	}

	slog.Info("Backup imported", "version", doc.Version, "collections", len(written))

	return &ImportBackupOutput{
		Version:  doc.Version,
		Imported: written,
	}, nil
}

// documentVersion reads the version as a number or numeric string, 0 when it is neither.
func documentVersion(raw json.RawMessage) int {
	var n float64
	if err := json.Unmarshal(raw, &n); err == nil {
		return int(n)
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		if v, err := strconv.Atoi(strings.TrimSpace(s)); err == nil {
			return v
		}
	}
	return 0
}

// stop reports a failed write. Once anything was overwritten the failure is a partial import.
func (uc *ImportBackupUseCase) stop(written []string, collection string, err error) (*ImportBackupOutput, error) {
	if len(written) == 0 {
		return nil, fmt.Errorf("failed to import %s: %w", collection, err)
	}

	slog.Error("Backup import stopped after a partial write",
		"failed_collection", collection,
		"written", written,
		"error", err,
	)

	return nil, &domainerror.BackupError{
		Code:    domainerror.ErrCodePartialImport,
		Message: fmt.Sprintf("import stopped at %s after writing %d collections", collection, len(written)),
		Written: written,
		Err:     errors.Join(domainerror.ErrPartialImport, err),
	}
}
