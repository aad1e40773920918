package dataset

import (
	"context"
	"log"
	"sync/atomic"

	"golang.org/x/sync/singleflight"

	"weekenddiaries/domain/place"
	"weekenddiaries/ports"
)

const cacheKey = "places"

// CachedSource keeps the first successfully loaded table for the life of the
// process. Concurrent first loads share one read; failures are not cached.
type CachedSource struct {
	source ports.PlaceSource
	table  atomic.Pointer[place.Table]
	group  singleflight.Group
}

// NewCachedSource wraps source
func NewCachedSource(source ports.PlaceSource) *CachedSource {
	return &CachedSource{source: source}
}

// Load returns the cached table, loading it on first use. The shared load
// keeps ctx values but ignores its cancellation.
func (c *CachedSource) Load(ctx context.Context) (*place.Table, error) {
	if t := c.table.Load(); t != nil {
		return t, nil
	}

	v, err, shared := c.group.Do(cacheKey, func() (interface{}, error) {
		if t := c.table.Load(); t != nil {
			return t, nil
		}
		// the load is shared, so one caller's cancellation must not fail the others
		t, err := c.source.Load(context.WithoutCancel(ctx))
		if err != nil {
			return nil, err
		}
		c.table.Store(t)
		return t, nil
	})
	if err != nil {
		log.Printf("[CachedSource] Load failed (shared=%v): %v", shared, err)
		return nil, err
	}
	return v.(*place.Table), nil
}

// Invalidate drops the cached table so the next Load reads again.
func (c *CachedSource) Invalidate() {
	c.table.Store(nil)
}
