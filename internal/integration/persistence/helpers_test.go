package persistence

import (
	"context"
	"errors"
	"sync"
	"time"
)

type fixedClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFixedClock(now time.Time) *fixedClock {
	return &fixedClock{now: now}
}

func (c *fixedClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fixedClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

var errInjected = errors.New("injected failure")

// flakyStore is a MemoryStore whose writes to the listed keys fail.
type flakyStore struct {
	*MemoryStore
	mu       sync.Mutex
	failKeys map[string]bool
}

func newFlakyStore(failKeys ...string) *flakyStore {
	s := &flakyStore{MemoryStore: NewMemoryStore(), failKeys: map[string]bool{}}
	for _, k := range failKeys {
		s.failKeys[k] = true
	}
	return s
}

func (s *flakyStore) Set(ctx context.Context, key string, value []byte) error {
	s.mu.Lock()
	fail := s.failKeys[key]
	s.mu.Unlock()
	if fail {
		return errInjected
	}
	return s.MemoryStore.Set(ctx, key, value)
}

var testNow = time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)

type testRepos struct {
	kv       *MemoryStore
	store    *CollectionStore
	clock    *fixedClock
	activity *activityRepository
}

func newTestRepos() *testRepos {
	kv := NewMemoryStore()
	store := NewCollectionStore(kv)
	clock := newFixedClock(testNow)
	return &testRepos{
		kv:       kv,
		store:    store,
		clock:    clock,
		activity: NewActivityRepository(store, clock).(*activityRepository),
	}
}
