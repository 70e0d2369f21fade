package product

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

const listingCacheKey = "products:active:v1"

// Cache holds the public listing in Redis for a short TTL so the storefront
// page does not hit Postgres on every load. Session validity is never cached
// here or anywhere else. All failures are fail-open: the caller falls back
// to the repository.
type Cache struct {
	client *redis.Client
	ttl    time.Duration
	logger *slog.Logger
}

// NewCache builds a listing cache. A nil client disables caching entirely.
func NewCache(client *redis.Client, ttl time.Duration, logger *slog.Logger) *Cache {
	return &Cache{client: client, ttl: ttl, logger: logger}
}

// GetListing returns the cached active listing, or ok=false on miss.
func (c *Cache) GetListing(ctx context.Context) ([]Product, bool) {
	if c == nil || c.client == nil {
		return nil, false
	}
	payload, err := c.client.Get(ctx, listingCacheKey).Bytes()
	if err != nil {
		if err != redis.Nil && c.logger != nil {
			c.logger.Warn("product cache lookup failed", slog.Any("error", err))
		}
		return nil, false
	}
	var products []Product
	if err := json.Unmarshal(payload, &products); err != nil {
		if c.logger != nil {
			c.logger.Warn("product cache decode failed", slog.Any("error", err))
		}
		return nil, false
	}
	return products, true
}

// SetListing stores the active listing.
func (c *Cache) SetListing(ctx context.Context, products []Product) {
	if c == nil || c.client == nil {
		return
	}
	payload, err := json.Marshal(products)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, listingCacheKey, payload, c.ttl).Err(); err != nil && c.logger != nil {
		c.logger.Warn("product cache store failed", slog.Any("error", err))
	}
}

// Invalidate drops the cached listing after a catalogue write.
func (c *Cache) Invalidate(ctx context.Context) {
	if c == nil || c.client == nil {
		return
	}
	if err := c.client.Del(ctx, listingCacheKey).Err(); err != nil && c.logger != nil {
		c.logger.Warn("product cache invalidation failed", slog.Any("error", err))
	}
}
