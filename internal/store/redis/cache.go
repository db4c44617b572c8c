package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// DefaultPageTTL is the default TTL for cached rendered pages.
const DefaultPageTTL = time.Hour

// PageCache stores rendered HTML pages in Redis.
//
// The cache is strictly best effort: a nil client disables it entirely and
// every method becomes a no-op, so the site serves fine without Redis.
type PageCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewPageCache creates a page cache. client may be nil (cache disabled).
func NewPageCache(client *redis.Client, ttl time.Duration) *PageCache {
	if ttl <= 0 {
		ttl = DefaultPageTTL
	}
	return &PageCache{
		client: client,
		ttl:    ttl,
	}
}

// Enabled reports whether a Redis client is configured.
func (c *PageCache) Enabled() bool {
	return c != nil && c.client != nil
}

// GetPage retrieves a cached rendered page. A miss returns ("", nil).
func (c *PageCache) GetPage(ctx context.Context, generation uint64, path string) (string, error) {
	if !c.Enabled() {
		return "", nil
	}

	html, err := c.client.Get(ctx, PageKey(generation, path)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", nil // Cache miss
		}
		return "", fmt.Errorf("failed to get cached page: %w", err)
	}
	return html, nil
}

// SetPage stores a rendered page.
func (c *PageCache) SetPage(ctx context.Context, generation uint64, path, html string) error {
	if !c.Enabled() {
		return nil
	}

	if err := c.client.Set(ctx, PageKey(generation, path), html, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to cache page: %w", err)
	}
	return nil
}

// Flush removes every cached page, all generations included.
func (c *PageCache) Flush(ctx context.Context) error {
	if !c.Enabled() {
		return nil
	}

	iter := c.client.Scan(ctx, 0, KeyPrefixPage+"*", 0).Iterator()
	for iter.Next(ctx) {
		if err := c.client.Del(ctx, iter.Val()).Err(); err != nil {
			return fmt.Errorf("failed to delete cached page: %w", err)
		}
	}
	if err := iter.Err(); err != nil {
		return fmt.Errorf("failed to flush page cache: %w", err)
	}
	return nil
}

// Ping checks cache connectivity.
func (c *PageCache) Ping(ctx context.Context) error {
	if !c.Enabled() {
		return errors.New("page cache disabled")
	}
	return c.client.Ping(ctx).Err()
}
