package cache

import (
	"sync"
	"time"
)

// Entry is a complete payload and the moment it was captured.
type Entry[T any] struct {
	Payload    T
	CapturedAt time.Time
}

// Store is a process-wide map of entries with one fixed TTL.
//
// Entries are replaced whole by Put and never mutated in place. Stale entries
// are not returned by Get and are swept by Put once the map reaches its
// capacity. If it is still full after the sweep, the oldest entry is evicted.
// The mutex only keeps the Go map memory-safe; it does not coordinate fetches,
// so two callers missing on the same key will both fetch and the last Put wins.
type Store[T any] struct {
	mu         sync.RWMutex
	entries    map[string]Entry[T]
	ttl        time.Duration
	maxEntries int
	now        func() time.Time
}

// DefaultMaxEntries caps a Store built by NewStore.
const DefaultMaxEntries = 1024

func NewStore[T any](ttl time.Duration) *Store[T] {
	return newStore[T](ttl, DefaultMaxEntries, time.Now)
}

func newStore[T any](ttl time.Duration, maxEntries int, now func() time.Time) *Store[T] {
	if maxEntries < 1 {
		maxEntries = 1
	}
	return &Store[T]{
		entries:    make(map[string]Entry[T]),
		ttl:        ttl,
		maxEntries: maxEntries,
		now:        now,
	}
}

// Get returns the entry for key if now - CapturedAt < TTL.
func (s *Store[T]) Get(key string) (Entry[T], bool) {
	s.mu.RLock()
	e, ok := s.entries[key]
	s.mu.RUnlock()
	if !ok || !s.fresh(e) {
		return Entry[T]{}, false
	}
	return e, true
}

// Put stores payload under key, stamped with the current time.
func (s *Store[T]) Put(key string, payload T) Entry[T] {
	e := Entry[T]{Payload: payload, CapturedAt: s.now()}
	s.mu.Lock()
	if _, exists := s.entries[key]; !exists && len(s.entries) >= s.maxEntries {
		s.makeRoom()
	}
	s.entries[key] = e
	s.mu.Unlock()
	return e
}

// Len returns the number of entries held, fresh or not.
func (s *Store[T]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

// makeRoom drops expired entries, then the oldest one if none had expired.
// Callers hold the write lock.
func (s *Store[T]) makeRoom() {
	var (
		oldestKey string
		oldest    time.Time
	)
	for k, e := range s.entries {
		if !s.fresh(e) {
			delete(s.entries, k)
			continue
		}
		if oldestKey == "" || e.CapturedAt.Before(oldest) {
			oldestKey, oldest = k, e.CapturedAt
		}
	}
	if len(s.entries) >= s.maxEntries {
		delete(s.entries, oldestKey)
	}
}

func (s *Store[T]) TTL() time.Duration {
	return s.ttl
}

func (s *Store[T]) fresh(e Entry[T]) bool {
	return s.now().Sub(e.CapturedAt) < s.ttl
}
