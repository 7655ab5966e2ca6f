package repo

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
)

const latestKey = "trade:latest-products"

// Cache fronts the latest-products listing with Redis. A nil *Cache is
// valid and disables caching.
type Cache struct {
	C   *redis.Client
	TTL time.Duration
}

func NewCache(addr string, ttl time.Duration) *Cache {
	if addr == "" || ttl <= 0 {
		return nil
	}
	return &Cache{C: redis.NewClient(&redis.Options{Addr: addr}), TTL: ttl}
}

func (c *Cache) Ping(ctx context.Context) error {
	if c == nil {
		return nil
	}
	return c.C.Ping(ctx).Err()
}

func (c *Cache) Close() error {
	if c == nil {
		return nil
	}
	return c.C.Close()
}

// GetLatest returns the cached JSON payload, or nil on miss/disabled.
func (c *Cache) GetLatest(ctx context.Context) []byte {
	if c == nil {
		return nil
	}
	b, err := c.C.Get(ctx, latestKey).Bytes()
	if err != nil {
		return nil
	}
	return b
}

func (c *Cache) SetLatest(ctx context.Context, payload []byte) {
	if c == nil {
		return
	}
	c.C.Set(ctx, latestKey, payload, c.TTL)
}

// InvalidateLatest drops the cached listing; called on any product write.
func (c *Cache) InvalidateLatest(ctx context.Context) {
	if c == nil {
		return
	}
	c.C.Del(ctx, latestKey)
}
