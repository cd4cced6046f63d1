package cache

import (
	"context"
	"testing"
	"time"

	pkgcache "FinGather/pkg/cache"
)

func TestCIKCacheRoundTrip(t *testing.T) {
	c := NewCIKCache(pkgcache.NewMemoryCache(), time.Hour)
	ctx := context.Background()

	if _, ok := c.Get(ctx, "CAKE"); ok {
		t.Fatalf("expected a miss on an empty cache")
	}

	err := c.SetAll(ctx, map[string]string{
		"CAKE": "0000887596",
		"AAPL": "0000320193",
	})
	if err != nil {
		t.Fatalf("set all: %v", err)
	}

	cik, ok := c.Get(ctx, "CAKE")
	if !ok || cik != "0000887596" {
		t.Fatalf("unexpected result %q ok=%v", cik, ok)
	}
}

func TestCIKCacheSetAllEmpty(t *testing.T) {
	c := NewCIKCache(pkgcache.NewMemoryCache(), time.Hour)
	if err := c.SetAll(context.Background(), nil); err != nil {
		t.Fatalf("empty mapping must be a no-op: %v", err)
	}
}
