// Package backup contains backup export and import use cases.
package backup

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/expense-daddy/backend/internal/application/adapter"
	"github.com/expense-daddy/backend/internal/domain/entity"
	domainerror "github.com/expense-daddy/backend/internal/domain/error"
)

var emptyCollection = json.RawMessage("[]")

// ExportBackupOutput represents the output of exporting a backup.
type ExportBackupOutput struct {
	Document *entity.BackupDocument
	Data     []byte // Indented JSON encoding of Document
}

// ExportBackupUseCase handles building a backup document from the stored collections.
type ExportBackupUseCase struct {
	collections adapter.RawCollectionStore
	profileRepo adapter.ProfileRepository
	clock       adapter.Clock
}

// NewExportBackupUseCase creates a new ExportBackupUseCase instance.
func NewExportBackupUseCase(
	collections adapter.RawCollectionStore,
	profileRepo adapter.ProfileRepository,
	clock adapter.Clock,
) *ExportBackupUseCase {
	return &ExportBackupUseCase{
		collections: collections,
		profileRepo: profileRepo,
		clock:       clock,
	}
}

// Execute reads every collection as stored and wraps them in a versioned document.
// Absent collections are exported as empty arrays.
func (uc *ExportBackupUseCase) Execute(ctx context.Context) (*ExportBackupOutput, error) {
	// Step 1: Make sure the profile exists so it is always exported
	if _, err := uc.profileRepo.Get(ctx); err != nil {
		return nil, fmt.Errorf("failed to load profile: %w", err)
	}

	doc := &entity.BackupDocument{
		Version:    entity.BackupVersion,
		ExportDate: entity.Timestamp(uc.clock.Now()),
		AppName:    entity.BackupAppName,
	}

	// Step 2: Copy each collection's stored bytes into the document
	for _, section := range doc.Sections() {
		data, found, err := uc.collections.ReadRaw(ctx, section.Collection)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", section.Collection, err)
		}
		if !found {
			*section.Data = emptyCollection
			continue
		}
		if !json.Valid(data) {
			return nil, domainerror.NewStorageError(
				domainerror.ErrCodeCorruptCollection,
				"stored collection is not valid JSON",
				section.Collection,
				domainerror.ErrCorruptCollection,
			)
		}
		*section.Data = json.RawMessage(data)
	}

	// Step 3: Encode
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false) // stored bytes are written back unchanged
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return nil, domainerror.NewBackupError(domainerror.ErrCodeBackupInternalError, "failed to encode backup document", err)
	}
	data := bytes.TrimSuffix(buf.Bytes(), []byte("\n"))

	slog.Info("Backup exported", "export_date", doc.ExportDate, "bytes", len(data))

	return &ExportBackupOutput{
		Document: doc,
		Data:     data,
	}, nil
}
