package cache

import (
	"context"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKey(t *testing.T) {
	assert.Equal(t, "/dashboard/invoices", Key("/dashboard/invoices", nil))

	q := url.Values{}
	q.Set("query", "lee")
	q.Set("page", "2")
	assert.Equal(t, "/dashboard/invoices?page=2&query=lee", Key("/dashboard/invoices", q))
}

func TestInvalidateDropsPathAndQueries(t *testing.T) {
	ctx := context.Background()
	c := NewInMemory(Options{Enabled: true})

	c.Set(ctx, "/dashboard/invoices", "all")
	c.Set(ctx, "/dashboard/invoices?page=2", "page 2")
	c.Set(ctx, "/dashboard/invoices/abc/edit", "edit")
	c.Set(ctx, "/dashboard/invoicesarchive", "other")
	c.Set(ctx, "/dashboard/customers", "customers")

	c.Invalidate(ctx, "/dashboard/invoices")

	for _, k := range []string{"/dashboard/invoices", "/dashboard/invoices?page=2", "/dashboard/invoices/abc/edit"} {
		_, ok := c.Get(ctx, k)
		assert.False(t, ok, "expected %s to be invalidated", k)
	}
	for _, k := range []string{"/dashboard/invoicesarchive", "/dashboard/customers"} {
		_, ok := c.Get(ctx, k)
		assert.True(t, ok, "expected %s to survive", k)
	}
}

func TestInvalidateEmptyCache(t *testing.T) {
	c := NewInMemory(Options{Enabled: true})
	c.Invalidate(context.Background(), "/dashboard/invoices")

	mem, ok := c.(*InMemoryCache)
	require.True(t, ok)
	assert.Zero(t, mem.Len())
}

func TestDisabledNeverHits(t *testing.T) {
	ctx := context.Background()
	c := NewInMemory(Options{Enabled: false})

	c.Set(ctx, "/dashboard/invoices", "x")
	_, ok := c.Get(ctx, "/dashboard/invoices")
	assert.False(t, ok)
}

func TestSetIfCurrentSkipsAfterInvalidate(t *testing.T) {
	ctx := context.Background()
	c := NewInMemory(Options{Enabled: true})
	path, key := "/dashboard/invoices", "/dashboard/invoices?page=1"

	gen := c.Generation(ctx, path)
	c.Invalidate(ctx, path)

	assert.False(t, c.SetIfCurrent(ctx, path, key, gen, "stale"))
	_, ok := c.Get(ctx, key)
	assert.False(t, ok)

	gen = c.Generation(ctx, path)
	assert.True(t, c.SetIfCurrent(ctx, path, key, gen, "fresh"))
	v, ok := c.Get(ctx, key)
	require.True(t, ok)
	assert.Equal(t, "fresh", v)
}
