package cache

import (
	"context"
	"time"

	"github.com/fhuszti/showcase-ms-go/internal/port"
)

// Memory is the in-process listing cache. It lives for the whole process and
// is never torn down.
type Memory struct {
	store *Store[port.Snapshot]
}

// compile-time check: *Memory must satisfy port.ListingCache
var _ port.ListingCache = (*Memory)(nil)

func NewMemory(ttl time.Duration) *Memory {
	return &Memory{store: NewStore[port.Snapshot](ttl)}
}

func (m *Memory) Get(_ context.Context, key string) (*port.Snapshot, error) {
	e, ok := m.store.Get(key)
	if !ok {
		return nil, nil
	}
	snap := e.Payload
	snap.CapturedAt = e.CapturedAt
	return &snap, nil
}

func (m *Memory) Put(_ context.Context, key string, snap port.Snapshot) (port.Snapshot, error) {
	e := m.store.Put(key, snap)
	snap.CapturedAt = e.CapturedAt
	return snap, nil
}

func (m *Memory) TTL() time.Duration {
	return m.store.TTL()
}

// Len reports how many snapshots are held, fresh or not.
func (m *Memory) Len() int {
	return m.store.Len()
}
