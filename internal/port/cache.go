package port

import (
	"context"
	"encoding/json"
	"time"
)

// Snapshot is one complete, successfully fetched collection listing.
type Snapshot struct {
	Payload    json.RawMessage `json:"payload"`
	Count      int             `json:"count"`
	CapturedAt time.Time       `json:"captured_at"`
}

// ListingCache holds the last good snapshot per listing key.
//
// Get returns (nil, nil) on a miss, including when the stored entry is older
// than TTL. Put always overwrites and stamps CapturedAt with the current time.
// There is no single-flight: concurrent misses may each fetch and Put, and
// the last Put wins.
type ListingCache interface {
	Get(ctx context.Context, key string) (*Snapshot, error)
	Put(ctx context.Context, key string, snap Snapshot) (Snapshot, error)
	TTL() time.Duration
}
