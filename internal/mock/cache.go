package mock

import (
	"context"
	"sync"
	"time"

	"github.com/fhuszti/showcase-ms-go/internal/port"
)

// ListingCache implements port.ListingCache for tests. Entries never expire
// on their own; tests drop them with Expire.
type ListingCache struct {
	mu sync.Mutex

	// stored values
	Entries map[string]port.Snapshot
	TTLOut  time.Duration
	Now     time.Time

	// errors
	GetErr error
	PutErr error

	// call counters
	GetCalls int
	PutCalls int
	PutKeys  []string
}

func (c *ListingCache) Get(ctx context.Context, key string) (*port.Snapshot, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.GetCalls++
	if c.GetErr != nil {
		return nil, c.GetErr
	}
	snap, ok := c.Entries[key]
	if !ok {
		return nil, nil
	}
	return &snap, nil
}

func (c *ListingCache) Put(ctx context.Context, key string, snap port.Snapshot) (port.Snapshot, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.PutCalls++
	c.PutKeys = append(c.PutKeys, key)
	snap.CapturedAt = c.Now
	if snap.CapturedAt.IsZero() {
		snap.CapturedAt = time.Now()
	}
	if c.PutErr != nil {
		return snap, c.PutErr
	}
	if c.Entries == nil {
		c.Entries = make(map[string]port.Snapshot)
	}
	c.Entries[key] = snap
	return snap, nil
}

func (c *ListingCache) TTL() time.Duration {
	return c.TTLOut
}

func (c *ListingCache) Expire(key string) {
	c.mu.Lock()
	delete(c.Entries, key)
	c.mu.Unlock()
}

// ListingRenderer implements port.ListingRenderer for tests.
type ListingRenderer struct {
	Out port.Rendered
	Err error

	// captured inputs
	Key string

	// when set, the fetcher is invoked and its error returned
	CallFetch bool

	Called bool
}

func (m *ListingRenderer) RenderListing(ctx context.Context, key string, fetch port.ListingFetcher) (port.Rendered, error) {
	m.Called = true
	m.Key = key
	if m.CallFetch {
		if _, _, err := fetch(ctx); err != nil {
			return port.Rendered{}, err
		}
	}
	return m.Out, m.Err
}
