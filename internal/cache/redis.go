package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/fhuszti/showcase-ms-go/internal/logger"
	"github.com/fhuszti/showcase-ms-go/internal/port"
	"github.com/redis/go-redis/v9"
)

// Redis shares listing snapshots between API replicas. The key expiry is
// the TTL, and CapturedAt is still checked so expiry stays strict even if
// Redis keeps the key a little longer.
type Redis struct {
	client *redis.Client
	ttl    time.Duration
	now    func() time.Time
}

// compile-time check: *Redis must satisfy port.ListingCache
var _ port.ListingCache = (*Redis)(nil)

func NewRedis(client *redis.Client, ttl time.Duration) *Redis {
	return &Redis{client: client, ttl: ttl, now: time.Now}
}

// NewRedisClient opens the client shared by every Redis-backed listing cache.
func NewRedisClient(addr, password string) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       0,
	})
}

func (c *Redis) Get(ctx context.Context, key string) (*port.Snapshot, error) {
	logger.Debugf(ctx, "getting listing %q from cache...", key)

	val, err := c.client.Get(ctx, getCacheKey(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("redis get failed: %w", err)
	}

	var snap port.Snapshot
	if err := json.Unmarshal(val, &snap); err != nil {
		return nil, fmt.Errorf("unmarshal failed: %w", err)
	}
	if c.now().Sub(snap.CapturedAt) >= c.ttl {
		return nil, nil
	}
	return &snap, nil
}

func (c *Redis) Put(ctx context.Context, key string, snap port.Snapshot) (port.Snapshot, error) {
	snap.CapturedAt = c.now()
	logger.Debugf(ctx, "storing listing %q in cache, %d items, valid until %s...", key, snap.Count, snap.CapturedAt.Add(c.ttl).Format(time.RFC1123))

	data, err := json.Marshal(snap)
	if err != nil {
		return snap, fmt.Errorf("marshal failed: %w", err)
	}
	if err := c.client.Set(ctx, getCacheKey(key), data, c.ttl).Err(); err != nil {
		return snap, fmt.Errorf("redis set failed: %w", err)
	}
	return snap, nil
}

func (c *Redis) TTL() time.Duration {
	return c.ttl
}

func getCacheKey(key string) string {
	return "listing:" + key
}
