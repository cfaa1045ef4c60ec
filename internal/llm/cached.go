package llm

import (
	"context"
	"encoding/json"
	"time"

	"github.com/ppiankov/docket/internal/cache"
)

// CachedExtractor wraps an Extractor with a response cache. Legal text is
// re-analyzed often while the underlying document rarely changes, so a
// hit saves a full provider round trip.
type CachedExtractor struct {
	inner Extractor
	store cache.Cache
	ttl   time.Duration
}

// NewCachedExtractor wraps the given extractor with a cache
func NewCachedExtractor(inner Extractor, store cache.Cache, ttl time.Duration) *CachedExtractor {
	return &CachedExtractor{
		inner: inner,
		store: store,
		ttl:   ttl,
	}
}

// Name returns the wrapped provider's name
func (c *CachedExtractor) Name() string {
	return c.inner.Name()
}

// IsAvailable delegates to the wrapped provider
func (c *CachedExtractor) IsAvailable(ctx context.Context) bool {
	return c.inner.IsAvailable(ctx)
}

// Extract returns a cached response when present, otherwise calls the
// wrapped provider and stores the result. Cache failures are ignored;
// they only cost the round trip.
func (c *CachedExtractor) Extract(ctx context.Context, req ExtractRequest) (*ExtractResponse, error) {
	key := cache.Key(c.inner.Name() + "|" + req.Model + "|" + req.Text)

	if data, found := c.store.Get(key); found {
		var resp ExtractResponse
		if err := json.Unmarshal(data, &resp); err == nil {
			return &resp, nil
		}
	}

	resp, err := c.inner.Extract(ctx, req)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(resp); err == nil {
		_ = c.store.Set(key, data, c.ttl)
	}

	return resp, nil
}
