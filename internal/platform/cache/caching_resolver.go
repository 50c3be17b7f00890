// Package cache provides caching implementations for resolver interfaces.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/Minji827/invest/internal/feature/candles/domain/entity"
)

// SeriesResolver is the resolution interface this decorator wraps.
type SeriesResolver interface {
	Resolve(ctx context.Context, symbol, period string) ([]entity.Candle, error)
}

// CachingSeriesResolver decorates a SeriesResolver with Redis caching.
// It implements the decorator pattern, transparently adding a short-lived
// response cache in front of the database-backed resolution pipeline.
type CachingSeriesResolver struct {
	inner     SeriesResolver
	rdb       *redis.Client
	ttl       time.Duration
	namespace string
}

// NewCachingSeriesResolver decorates a SeriesResolver with Redis caching.
// If ttl is 0, it defaults to 5 minutes. If namespace is empty, it uses "series".
func NewCachingSeriesResolver(rdb *redis.Client, ttl time.Duration, inner SeriesResolver, namespace string) *CachingSeriesResolver {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	if namespace == "" {
		namespace = "series"
	}
	return &CachingSeriesResolver{
		inner:     inner,
		rdb:       rdb,
		ttl:       ttl,
		namespace: namespace,
	}
}

// Resolve retrieves a series, checking cache first then falling back to the
// inner resolver.
func (c *CachingSeriesResolver) Resolve(ctx context.Context, symbol, period string) ([]entity.Candle, error) {
	// Bypass cache if Redis is not configured
	if c.rdb == nil {
		return c.inner.Resolve(ctx, symbol, period)
	}

	key := c.cacheKey(symbol, period)

	// 1) Check cache
	if b, err := c.rdb.Get(ctx, key).Bytes(); err == nil && len(b) > 0 {
		var out []entity.Candle
		if err := json.Unmarshal(b, &out); err == nil {
			return out, nil
		}
		// Delete corrupted cache entry
		_ = c.rdb.Del(ctx, key).Err()
	}

	// 2) Fallback to the resolution pipeline
	out, err := c.inner.Resolve(ctx, symbol, period)
	if err != nil {
		return nil, err
	}

	// 3) Store in cache (best effort)
	if b, err := json.Marshal(out); err == nil {
		_ = c.rdb.Set(ctx, key, b, c.ttl).Err()
	}

	return out, nil
}

// cacheKey generates a cache key for a specific query.
func (c *CachingSeriesResolver) cacheKey(symbol, period string) string {
	return fmt.Sprintf("%s:%s:%s",
		c.namespace,
		safe(symbol),
		safe(period),
	)
}

// safe escapes characters that are problematic for Redis keys.
func safe(s string) string {
	s = strings.ReplaceAll(s, " ", "_")
	s = strings.ReplaceAll(s, ":", "_")
	return s
}
