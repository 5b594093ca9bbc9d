package db

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/expense-daddy/backend/config"
	"github.com/expense-daddy/backend/internal/integration/persistence/model"
)

func TestNewSQLiteConnection(t *testing.T) {
	tests := []struct {
		name string
		path func(t *testing.T) string
	}{
		{name: "in memory", path: func(*testing.T) string { return ":memory:" }},
		{name: "file", path: func(t *testing.T) string { return filepath.Join(t.TempDir(), "expensedaddy.db") }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			database, err := NewSQLiteConnection(&config.SQLiteConfig{Path: tt.path(t)})
			if err != nil {
				t.Fatalf("NewSQLiteConnection: %v", err)
			}
			defer database.Close()

			if err := database.AutoMigrate(); err != nil {
				t.Fatalf("AutoMigrate: %v", err)
			}
			if !database.DB().Migrator().HasTable(&model.KeyValueModel{}) {
				t.Error("kv_entries table missing after migration")
			}
			if err := database.Ping(context.Background()); err != nil {
				t.Errorf("Ping: %v", err)
			}
		})
	}
}
