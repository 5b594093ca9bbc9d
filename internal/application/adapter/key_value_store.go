// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import "context"

// KeyValueStore is the durable string-keyed store every collection lives in.
// Values are whole serialized collections; there are no partial writes.
type KeyValueStore interface {
	// Get returns the stored value and whether the key exists.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set replaces the value stored under key.
	Set(ctx context.Context, key string, value []byte) error

	// Ping reports whether the backend is reachable.
	Ping(ctx context.Context) error
}

// RawCollectionStore exposes collections as raw JSON for the backup codec.
// Reads and writes go through the same per-collection locks as the repositories.
type RawCollectionStore interface {
	// ReadRaw returns the serialized collection and whether it exists.
	ReadRaw(ctx context.Context, key string) ([]byte, bool, error)

	// WriteRaw overwrites a collection with already-serialized JSON.
	WriteRaw(ctx context.Context, key string, data []byte) error
}
