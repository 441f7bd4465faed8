package cache

import (
	"context"
	"time"

	"github.com/fhuszti/showcase-ms-go/internal/port"
)

// NoopCache always misses.
type NoopCache struct {
	ttl time.Duration
}

// compile-time check: *NoopCache must satisfy port.ListingCache
var _ port.ListingCache = (*NoopCache)(nil)

func NewNoop(ttl time.Duration) *NoopCache {
	return &NoopCache{ttl: ttl}
}

func (n *NoopCache) Get(ctx context.Context, key string) (*port.Snapshot, error) {
	return nil, nil
}

func (n *NoopCache) Put(ctx context.Context, key string, snap port.Snapshot) (port.Snapshot, error) {
	snap.CapturedAt = time.Now()
	return snap, nil
}

func (n *NoopCache) TTL() time.Duration {
	return n.ttl
}
