// Package persistence implements repository interfaces over the key-value store.
package persistence

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"

	"github.com/expense-daddy/backend/internal/application/adapter"
	domainerror "github.com/expense-daddy/backend/internal/domain/error"
)

// redisStore implements adapter.KeyValueStore with plain GET/SET commands.
type redisStore struct {
	client *redis.Client
	prefix string
}

// NewRedisStore creates a key-value store backed by Redis.
// Keys are stored with prefix prepended and never expire.
func NewRedisStore(client *redis.Client, prefix string) adapter.KeyValueStore {
	return &redisStore{
		client: client,
		prefix: prefix,
	}
}

// Get retrieves the value stored under key.
func (s *redisStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	value, err := s.client.Get(ctx, s.prefix+key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, domainerror.NewUnavailableError(domainerror.ErrCodeStorageRead, key, err)
	}
	return value, true, nil
}

// Set stores value under key.
func (s *redisStore) Set(ctx context.Context, key string, value []byte) error {
	if err := s.client.Set(ctx, s.prefix+key, value, 0).Err(); err != nil {
		return domainerror.NewUnavailableError(domainerror.ErrCodeStorageWrite, key, err)
	}
	return nil
}

// Ping checks the Redis connection.
func (s *redisStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}
