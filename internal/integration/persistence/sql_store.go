// Package persistence implements repository interfaces over the key-value store.
package persistence

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/expense-daddy/backend/internal/application/adapter"
	domainerror "github.com/expense-daddy/backend/internal/domain/error"
	"github.com/expense-daddy/backend/internal/integration/persistence/model"
)

// sqlStore implements adapter.KeyValueStore on a single gorm table.
type sqlStore struct {
	db     *gorm.DB
	prefix string
}

// NewSQLStore creates a key-value store backed by the kv_entries table.
// Keys are stored with prefix prepended.
func NewSQLStore(db *gorm.DB, prefix string) adapter.KeyValueStore {
	return &sqlStore{
		db:     db,
		prefix: prefix,
	}
}

// Get retrieves the value stored under key.
func (s *sqlStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	var entry model.KeyValueModel
	result := s.db.WithContext(ctx).Where("entry_key = ?", s.prefix+key).First(&entry)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, false, nil
		}
		return nil, false, domainerror.NewUnavailableError(domainerror.ErrCodeStorageRead, key, result.Error)
	}
	return []byte(entry.Value), true, nil
}

// Set upserts the value stored under key.
func (s *sqlStore) Set(ctx context.Context, key string, value []byte) error {
	entry := model.KeyValueModel{
		Key:       s.prefix + key,
		Value:     string(value),
		UpdatedAt: time.Now().UTC(),
	}
	result := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "entry_key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&entry)
	if result.Error != nil {
		return domainerror.NewUnavailableError(domainerror.ErrCodeStorageWrite, key, result.Error)
	}
	return nil
}

// Ping checks the underlying database connection.
func (s *sqlStore) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}
