package cache

import (
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/fhuszti/showcase-ms-go/internal/port"
)

func makeTestCache(t *testing.T, ttl time.Duration) (*Redis, *miniredis.Miniredis, *fakeClock) {
	t.Helper()
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("miniredis.Run: %v", err)
	}
	t.Cleanup(mr.Close)

	clk := newFakeClock()
	c := NewRedis(NewRedisClient(mr.Addr(), ""), ttl)
	c.now = clk.Now
	return c, mr, clk
}

func TestRedis_GetPut(t *testing.T) {
	c, mr, clk := makeTestCache(t, GalleryTTL)
	ctx := context.Background()

	got, err := c.Get(ctx, "gallery")
	if err != nil {
		t.Fatalf("Get miss: %v", err)
	}
	if got != nil {
		t.Errorf("Get miss: got %v; want nil", got)
	}

	payload := json.RawMessage(`[{"id":"1"},{"id":"2"}]`)
	stored, err := c.Put(ctx, "gallery", port.Snapshot{Payload: payload, Count: 2})
	if err != nil {
		t.Fatalf("Put: %v", err)
	}
	if !stored.CapturedAt.Equal(clk.Now()) {
		t.Errorf("CapturedAt = %v; want %v", stored.CapturedAt, clk.Now())
	}
	if ttl := mr.TTL(getCacheKey("gallery")); ttl != GalleryTTL {
		t.Errorf("redis TTL = %v; want %v", ttl, GalleryTTL)
	}

	got, err = c.Get(ctx, "gallery")
	if err != nil {
		t.Fatalf("Get hit: %v", err)
	}
	if got == nil {
		t.Fatal("Get hit: got nil; want snapshot")
	}
	if string(got.Payload) != string(payload) || got.Count != 2 {
		t.Errorf("roundtrip mismatch: got %s (%d)", got.Payload, got.Count)
	}
	if !got.CapturedAt.Equal(stored.CapturedAt) {
		t.Errorf("CapturedAt = %v; want %v", got.CapturedAt, stored.CapturedAt)
	}
}

func TestRedis_StrictExpiryEvenIfKeyLingers(t *testing.T) {
	c, mr, clk := makeTestCache(t, time.Minute)
	ctx := context.Background()

	if _, err := c.Put(ctx, "products", port.Snapshot{Payload: json.RawMessage(`[]`)}); err != nil {
		t.Fatalf("Put: %v", err)
	}
	clk.Advance(time.Minute)

	if !mr.Exists(getCacheKey("products")) {
		t.Fatal("key should still exist in redis (no fast-forward)")
	}
	if got, err := c.Get(ctx, "products"); err != nil || got != nil {
		t.Errorf("Get = %v, %v; want miss", got, err)
	}
}

func TestRedis_KeyExpiresInRedis(t *testing.T) {
	c, mr, _ := makeTestCache(t, time.Minute)
	ctx := context.Background()

	if _, err := c.Put(ctx, "events", port.Snapshot{Payload: json.RawMessage(`[]`)}); err != nil {
		t.Fatalf("Put: %v", err)
	}
	mr.FastForward(time.Minute)

	if got, err := c.Get(ctx, "events"); err != nil || got != nil {
		t.Errorf("Get = %v, %v; want miss", got, err)
	}
}

func TestRedis_BadJSON(t *testing.T) {
	c, mr, _ := makeTestCache(t, time.Minute)

	if err := mr.Set(getCacheKey("products"), "{ not valid json }"); err != nil {
		t.Fatalf("Manually set cache: %v", err)
	}

	got, err := c.Get(context.Background(), "products")
	if got != nil {
		t.Errorf("Expected nil on bad JSON, got %v", got)
	}
	if err == nil || !strings.Contains(err.Error(), "unmarshal failed") {
		t.Errorf("Expected unmarshal failed error, got %v", err)
	}
}

func TestRedis_Unreachable(t *testing.T) {
	c, mr, _ := makeTestCache(t, time.Minute)
	ctx := context.Background()
	mr.Close()

	if _, err := c.Get(ctx, "products"); err == nil || !strings.Contains(err.Error(), "redis get failed") {
		t.Errorf("Expected redis get failed error, got %v", err)
	}
	if _, err := c.Put(ctx, "products", port.Snapshot{}); err == nil || !strings.Contains(err.Error(), "redis set failed") {
		t.Errorf("Expected redis set failed error, got %v", err)
	}
}
