package loader

import (
	"context"
	"time"

	"github.com/patrickmn/go-cache"

	"github.com/schemedash/schemedash/internal/scheme"
)

// CachingSource memoizes successful fetches from an underlying Source for a
// fixed time. Failures are never cached, so a later load can still succeed.
type CachingSource struct {
	next  Source
	cache *cache.Cache
}

// Compile-time interface check.
var _ Source = (*CachingSource)(nil)

// NewCachingSource wraps next with a cache whose entries expire after ttl.
func NewCachingSource(next Source, ttl time.Duration) *CachingSource {
	return &CachingSource{
		next:  next,
		cache: cache.New(ttl, 2*ttl),
	}
}

// Fetch returns a cached copy of the dataset for id, fetching on a miss.
func (c *CachingSource) Fetch(ctx context.Context, id string) (scheme.Dataset, error) {
	if v, ok := c.cache.Get(cacheKey(id)); ok {
		return v.(scheme.Dataset).Clone(), nil
	}
	d, err := c.next.Fetch(ctx, id)
	if err != nil {
		return scheme.Dataset{}, err
	}
	c.cache.Set(cacheKey(id), d.Clone(), cache.DefaultExpiration)
	return d, nil
}

func cacheKey(id string) string {
	return "dataset:" + id
}
