package renderer

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/fhuszti/showcase-ms-go/internal/cache"
	"github.com/fhuszti/showcase-ms-go/internal/logger"
	"github.com/fhuszti/showcase-ms-go/internal/metrics"
	"github.com/fhuszti/showcase-ms-go/internal/port"
)

type listingRenderer struct {
	cache   port.ListingCache
	metrics *metrics.Metrics
}

// compile-time check: *listingRenderer must satisfy port.ListingRenderer
var _ port.ListingRenderer = (*listingRenderer)(nil)

// NewListingRenderer creates a read-through renderer on top of one listing cache.
// m may be nil.
func NewListingRenderer(cache port.ListingCache, m *metrics.Metrics) port.ListingRenderer {
	return &listingRenderer{cache: cache, metrics: m}
}

// RenderListing returns the cached listing under key while it is fresh.
// Otherwise it calls fetch, stores the encoded result and returns it.
// A failed fetch returns the error and leaves the cache as it was.
func (r *listingRenderer) RenderListing(ctx context.Context, key string, fetch port.ListingFetcher) (port.Rendered, error) {
	label := cache.Label(key)
	snap, err := r.cache.Get(ctx, key)
	switch {
	case err != nil:
		logger.Warnf(ctx, "cache lookup for %q failed, fetching from backend: %v", key, err)
		r.metrics.ObserveCache(label, metrics.CacheError)
	case snap != nil:
		r.metrics.ObserveCache(label, metrics.CacheHit)
		return port.Rendered{
			Raw:        snap.Payload,
			ETag:       ETag(snap.Count, snap.CapturedAt),
			Hit:        true,
			CapturedAt: snap.CapturedAt,
			TTL:        r.cache.TTL(),
		}, nil
	default:
		r.metrics.ObserveCache(label, metrics.CacheMiss)
	}

	items, count, err := fetch(ctx)
	if err != nil {
		r.metrics.ObserveFetchError(label)
		return port.Rendered{}, err
	}

	raw, err := json.Marshal(items)
	if err != nil {
		return port.Rendered{}, fmt.Errorf("json marshal: %w", err)
	}
	if string(raw) == "null" {
		raw = []byte("[]")
	}

	stored, err := r.cache.Put(ctx, key, port.Snapshot{Payload: raw, Count: count})
	if err != nil {
		logger.Warnf(ctx, "failed to store listing %q in cache: %v", key, err)
		r.metrics.ObserveCache(label, metrics.CacheStoreFail)
	}
	if stored.CapturedAt.IsZero() {
		stored.CapturedAt = time.Now()
	}

	return port.Rendered{
		Raw:        raw,
		ETag:       ETag(count, stored.CapturedAt),
		Hit:        false,
		CapturedAt: stored.CapturedAt,
		TTL:        r.cache.TTL(),
	}, nil
}

// ETag identifies a snapshot by its item count and capture time.
func ETag(count int, capturedAt time.Time) string {
	return fmt.Sprintf("\"%d-%d\"", count, capturedAt.UnixMilli())
}
