// Package db provides database connection and management functionality.
package db

import (
	"fmt"
	"log/slog"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/expense-daddy/backend/config"
)

// NewSQLiteConnection opens the embedded database file at cfg.Path, creating it when
// missing. Use ":memory:" for a throwaway database.
func NewSQLiteConnection(cfg *config.SQLiteConfig) (*Database, error) {
	db, err := gorm.Open(sqlite.Open(cfg.Path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}
	// A single connection serialises writers and keeps ":memory:" databases shared.
	sqlDB.SetMaxOpenConns(1)

	database := &Database{db: db, driver: "sqlite"}
	if err := database.ping(); err != nil {
		return nil, err
	}

	slog.Info("Database connection established", "driver", database.driver, "path", cfg.Path)
	return database, nil
}
