// Package persistence implements repository interfaces over the key-value store.
package persistence

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"sync"

	"github.com/expense-daddy/backend/internal/application/adapter"
	domainerror "github.com/expense-daddy/backend/internal/domain/error"
)

// CollectionStore reads and writes whole JSON collections on a KeyValueStore.
// Every read-modify-write on a key runs under that key's mutex, so writers sharing
// one CollectionStore never lose each other's updates. Separate processes writing the
// same backend still race.
type CollectionStore struct {
	kv adapter.KeyValueStore

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// NewCollectionStore creates a new CollectionStore over kv.
func NewCollectionStore(kv adapter.KeyValueStore) *CollectionStore {
	return &CollectionStore{
		kv:    kv,
		locks: make(map[string]*sync.Mutex),
	}
}

// lock acquires the mutex of key and returns its release function.
func (s *CollectionStore) lock(key string) func() {
	s.mu.Lock()
	l, ok := s.locks[key]
	if !ok {
		l = &sync.Mutex{}
		s.locks[key] = l
	}
	s.mu.Unlock()

	l.Lock()
	return l.Unlock
}

// ReadRaw returns the serialized collection stored under key.
func (s *CollectionStore) ReadRaw(ctx context.Context, key string) ([]byte, bool, error) {
	unlock := s.lock(key)
	defer unlock()
	return s.get(ctx, key)
}

// WriteRaw overwrites the collection stored under key with data as-is.
func (s *CollectionStore) WriteRaw(ctx context.Context, key string, data []byte) error {
	unlock := s.lock(key)
	defer unlock()
	return s.set(ctx, key, data)
}

// Ping checks the underlying store.
func (s *CollectionStore) Ping(ctx context.Context) error {
	return s.kv.Ping(ctx)
}

// get treats an empty stored value as absent.
func (s *CollectionStore) get(ctx context.Context, key string) ([]byte, bool, error) {
	data, found, err := s.kv.Get(ctx, key)
	if err != nil {
		return nil, false, err
	}
	if !found || len(data) == 0 {
		return nil, false, nil
	}
	return data, true, nil
}

// set detaches ctx so an abandoned caller cannot interrupt a write in flight.
func (s *CollectionStore) set(ctx context.Context, key string, data []byte) error {
	return s.kv.Set(context.WithoutCancel(ctx), key, data)
}

// loadCollection decodes the collection under key, returning fallback when it is absent.
func loadCollection[T any](ctx context.Context, s *CollectionStore, key string, fallback T) (T, error) {
	unlock := s.lock(key)
	defer unlock()

	value, _, err := decodeCollection(ctx, s, key, fallback)
	return value, err
}

// loadOrCreateCollection decodes the collection under key, persisting initial first when
// the key is absent.
func loadOrCreateCollection[T any](ctx context.Context, s *CollectionStore, key string, initial T) (T, error) {
	unlock := s.lock(key)
	defer unlock()

	value, found, err := decodeCollection(ctx, s, key, initial)
	if err != nil || found {
		return value, err
	}

	if err := encodeCollection(ctx, s, key, initial); err != nil {
		return initial, err
	}
	return initial, nil
}

// mutateCollection runs fn on the decoded collection and persists the result when fn
// reports a change. The key stays locked from read to write.
func mutateCollection[T any](ctx context.Context, s *CollectionStore, key string, fallback T, fn func(current T) (T, bool, error)) error {
	unlock := s.lock(key)
	defer unlock()

	current, _, err := decodeCollection(ctx, s, key, fallback)
	if err != nil {
		return err
	}

	updated, changed, err := fn(current)
	if err != nil || !changed {
		return err
	}

	return encodeCollection(ctx, s, key, updated)
}

// decodeCollection must be called with the key locked.
func decodeCollection[T any](ctx context.Context, s *CollectionStore, key string, fallback T) (T, bool, error) {
	data, found, err := s.get(ctx, key)
	if err != nil {
		return fallback, false, err
	}
	if !found {
		return fallback, false, nil
	}

	var value T
	if err := json.Unmarshal(data, &value); err != nil {
		slog.Error("Failed to decode stored collection", "key", key, "error", err)
		return fallback, false, domainerror.NewStorageError(
			domainerror.ErrCodeCorruptCollection,
			"failed to decode collection",
			key,
			errors.Join(domainerror.ErrCorruptCollection, err),
		)
	}
	return value, true, nil
}

// encodeCollection must be called with the key locked.
func encodeCollection[T any](ctx context.Context, s *CollectionStore, key string, value T) error {
	data, err := json.Marshal(value)
	if err != nil {
		return domainerror.NewStorageError(domainerror.ErrCodeEncodeCollection, "failed to encode collection", key, err)
	}
	if err := s.set(ctx, key, data); err != nil {
		return err
	}
	slog.Debug("Collection persisted", "key", key, "bytes", len(data))
	return nil
}
