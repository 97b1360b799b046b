package cache

import (
	"context"
	"sync"

	goCache "github.com/patrickmn/go-cache"
)

// InMemoryCache implements PageCache using github.com/patrickmn/go-cache.
type InMemoryCache struct {
	cache *goCache.Cache

	// mu orders SetIfCurrent against Invalidate.
	mu          sync.Mutex
	generations map[string]uint64
}

// NewInMemory returns a PageCache. A disabled cache never hits.
func NewInMemory(opts Options) PageCache {
	if !opts.Enabled {
		return Disabled{}
	}
	if opts.TTL <= 0 {
		opts.TTL = DefaultTTL
	}
	if opts.CleanupInterval <= 0 {
		opts.CleanupInterval = DefaultCleanupInterval
	}
	return &InMemoryCache{
		cache:       goCache.New(opts.TTL, opts.CleanupInterval),
		generations: make(map[string]uint64),
	}
}

func (c *InMemoryCache) Get(_ context.Context, key string) (any, bool) {
	return c.cache.Get(key)
}

func (c *InMemoryCache) Set(_ context.Context, key string, value any) {
	c.cache.SetDefault(key, value)
}

func (c *InMemoryCache) Generation(_ context.Context, path string) uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.generations[path]
}

func (c *InMemoryCache) SetIfCurrent(_ context.Context, path, key string, gen uint64, value any) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.generations[path] != gen {
		return false
	}
	c.cache.SetDefault(key, value)
	return true
}

func (c *InMemoryCache) Invalidate(_ context.Context, path string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.generations[path]++
	for k := range c.cache.Items() {
		if matches(k, path) {
			c.cache.Delete(k)
		}
	}
}

// Len reports the number of unexpired entries.
func (c *InMemoryCache) Len() int {
	return c.cache.ItemCount()
}

// Disabled is a PageCache that stores nothing.
type Disabled struct{}

func (Disabled) Get(context.Context, string) (any, bool)                        { return nil, false }
func (Disabled) Set(context.Context, string, any)                               {}
func (Disabled) Generation(context.Context, string) uint64                      { return 0 }
func (Disabled) SetIfCurrent(context.Context, string, string, uint64, any) bool { return false }
func (Disabled) Invalidate(context.Context, string)                             {}
