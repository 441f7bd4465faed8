package port

import (
	"context"
	"time"
)

// ListingFetcher loads a listing from the backend. It returns the items to
// encode and how many there are.
type ListingFetcher func(ctx context.Context) (items any, count int, err error)

// Rendered is the JSON body of a listing plus what the handler needs to
// describe its cache state.
type Rendered struct {
	Raw        []byte
	ETag       string
	Hit        bool
	CapturedAt time.Time
	TTL        time.Duration
}

// ListingRenderer serves a listing from cache or through the fetcher.
type ListingRenderer interface {
	RenderListing(ctx context.Context, key string, fetch ListingFetcher) (Rendered, error)
}
