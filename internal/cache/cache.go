package cache

import (
	"context"
	"net/url"
	"strings"
	"time"
)

// PageCache caches rendered read results per request path and query.
type PageCache interface {
	// Get returns the value cached under key, if any.
	Get(ctx context.Context, key string) (any, bool)

	// Set stores value under key with the cache's default expiration.
	Set(ctx context.Context, key string, value any)

	// Generation returns the invalidation count of path. Read it before
	// loading a value that will be stored with SetIfCurrent.
	Generation(ctx context.Context, path string) uint64

	// SetIfCurrent stores value under key only if path has not been
	// invalidated since gen was read. It reports whether value was stored.
	SetIfCurrent(ctx context.Context, path, key string, gen uint64, value any) bool

	// Invalidate drops the entry for path and every entry cached for a
	// query or sub-path of it, so the next read recomputes from the store.
	Invalidate(ctx context.Context, path string)
}

// Options configures the in-memory cache.
type Options struct {
	Enabled         bool
	TTL             time.Duration
	CleanupInterval time.Duration
}

const (
	DefaultTTL             = 5 * time.Minute
	DefaultCleanupInterval = 10 * time.Minute
)

// Key builds a cache key for path and its query parameters. url.Values.Encode
// sorts by name, so equal queries produce equal keys.
func Key(path string, query url.Values) string {
	if len(query) == 0 {
		return path
	}
	return path + "?" + query.Encode()
}

func matches(key, path string) bool {
	if key == path {
		return true
	}
	if !strings.HasPrefix(key, path) {
		return false
	}
	next := key[len(path)]
	return next == '?' || next == '/'
}
