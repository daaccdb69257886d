package quote

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/minpaku-dev/pricing-api/internal/stay"
)

// Cache stores rendered quotes in Redis keyed by the stay request. A nil
// cache or client disables caching without changing call sites.
type Cache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewCache constructs a quote cache helper.
func NewCache(client *redis.Client, ttl time.Duration) *Cache {
	return &Cache{client: client, ttl: ttl}
}

// Get reports whether a quote for the request is cached and decodes it.
// Cache failures read as misses.
func (c *Cache) Get(ctx context.Context, req stay.Request) (Quote, bool) {
	if c == nil || c.client == nil {
		return Quote{}, false
	}
	data, err := c.client.Get(ctx, req.CacheKey()).Bytes()
	if err != nil {
		return Quote{}, false
	}
	var q Quote
	if err := json.Unmarshal(data, &q); err != nil {
		return Quote{}, false
	}
	return q, true
}

// Set stores the quote with the configured TTL. Failures are dropped; the
// quote was already computed.
func (c *Cache) Set(ctx context.Context, req stay.Request, q Quote) {
	if c == nil || c.client == nil || c.ttl <= 0 {
		return
	}
	data, err := json.Marshal(q)
	if err != nil {
		return
	}
	c.client.Set(ctx, req.CacheKey(), data, c.ttl)
}
