package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/mvoren/clauselens/internal/extract"
)

// LayoutCache decorates a layout service with content-hash caching. Errors
// are never cached; only successful extractions are.
type LayoutCache struct {
	service extract.LayoutService
	cache   Cache
	ttl     time.Duration
}

// NewLayoutCache wraps a layout service
func NewLayoutCache(service extract.LayoutService, cache Cache, ttl time.Duration) *LayoutCache {
	return &LayoutCache{
		service: service,
		cache:   cache,
		ttl:     ttl,
	}
}

// Name returns the underlying service name
func (c *LayoutCache) Name() string {
	return c.service.Name()
}

// Extract returns a cached extraction when the same document bytes were
// seen before, otherwise calls through and caches the result
func (c *LayoutCache) Extract(ctx context.Context, data []byte) (*extract.Result, error) {
	key := DocumentKey(data)

	if cached, found := c.cache.Get(key); found {
		var result extract.Result
		if err := json.Unmarshal(cached, &result); err == nil {
			return &result, nil
		}
		// Corrupt entry; drop it and re-extract
		_ = c.cache.Delete(key)
	}

	result, err := c.service.Extract(ctx, data)
	if err != nil {
		return nil, err
	}

	if encoded, err := json.Marshal(result); err == nil {
		if err := c.cache.Set(key, encoded, c.ttl); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: cache write failed: %v\n", err)
		}
	}

	return result, nil
}
