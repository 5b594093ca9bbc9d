// Package dependency provides dependency injection for the application.
package dependency

import (
	"fmt"
	"log/slog"

	"github.com/expense-daddy/backend/config"
	"github.com/expense-daddy/backend/internal/application/adapter"
	"github.com/expense-daddy/backend/internal/infra/cache"
	"github.com/expense-daddy/backend/internal/infra/db"
	"github.com/expense-daddy/backend/internal/integration/persistence"
)

// Storage is an opened key-value backend together with its shutdown hook.
type Storage struct {
	Store   adapter.KeyValueStore
	Backend string
	close   func() error
}

// Close releases the backend connection.
func (s *Storage) Close() error {
	if s.close == nil {
		return nil
	}
	return s.close()
}

// OpenStorage connects to the backend selected by cfg.Storage.Backend.
func OpenStorage(cfg *config.Config) (*Storage, error) {
	backend := cfg.Storage.Backend
	prefix := cfg.Storage.KeyPrefix

	switch backend {
	case config.BackendMemory:
		slog.Warn("Using in-memory storage, data is lost on exit")
		return &Storage{Store: persistence.NewMemoryStore(), Backend: backend}, nil

	case config.BackendRedis:
		client, err := cache.NewRedisConnection(&cfg.Redis)
		if err != nil {
			return nil, err
		}
		return &Storage{
			Store:   persistence.NewRedisStore(client, prefix),
			Backend: backend,
			close:   client.Close,
		}, nil

	case config.BackendPostgres, config.BackendSQLite:
		var (
			database *db.Database
			err      error
		)
		if backend == config.BackendPostgres {
			database, err = db.NewPostgresConnection(&cfg.Database)
		} else {
			database, err = db.NewSQLiteConnection(&cfg.SQLite)
		}
		if err != nil {
			return nil, err
		}
		if err := database.AutoMigrate(); err != nil {
			_ = database.Close()
			return nil, err
		}
		slog.Info("Database migrations completed successfully", "backend", backend)
		return &Storage{
			Store:   persistence.NewSQLStore(database.DB(), prefix),
			Backend: backend,
			close:   database.Close,
		}, nil

	default:
		return nil, fmt.Errorf("unknown storage backend %q", backend)
	}
}
