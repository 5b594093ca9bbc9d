package persistence

import (
	"context"
	"testing"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/expense-daddy/backend/internal/integration/persistence/model"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	if err := db.AutoMigrate(&model.KeyValueModel{}); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	return db
}

func TestSQLStore(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)
	store := NewSQLStore(db, "")

	t.Run("Get on missing key reports not found", func(t *testing.T) {
		_, found, err := store.Get(ctx, "@budgetflow_loans")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if found {
			t.Error("expected not found")
		}
	})

	t.Run("Set upserts the single row of a key", func(t *testing.T) {
		if err := store.Set(ctx, "@budgetflow_loans", []byte(`[1]`)); err != nil {
			t.Fatalf("first Set: %v", err)
		}
		if err := store.Set(ctx, "@budgetflow_loans", []byte(`[1,2]`)); err != nil {
			t.Fatalf("second Set: %v", err)
		}

		value, found, err := store.Get(ctx, "@budgetflow_loans")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !found || string(value) != `[1,2]` {
			t.Errorf("got %q, found=%v", value, found)
		}

		var count int64
		db.Model(&model.KeyValueModel{}).Count(&count)
		if count != 1 {
			t.Errorf("expected 1 row, got %d", count)
		}
	})

	t.Run("prefix isolates stores on the same table", func(t *testing.T) {
		other := NewSQLStore(db, "other:")
		_, found, err := other.Get(ctx, "@budgetflow_loans")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if found {
			t.Error("expected prefixed store not to see unprefixed key")
		}
	})

	t.Run("Ping succeeds", func(t *testing.T) {
		if err := store.Ping(ctx); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})
}
