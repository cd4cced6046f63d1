// Package cache provides typed caches over the generic cache service.
package cache

import (
	"context"
	"time"

	pkgcache "FinGather/pkg/cache"
)

const cikKeyPrefix = "cik"

// CIKCache caches ticker to CIK mappings. It is injected into the identifier
// resolver rather than held as package state, so tests can swap backends.
type CIKCache struct {
	svc pkgcache.Service
	ttl time.Duration
}

// NewCIKCache creates a CIK cache over the given backend.
func NewCIKCache(svc pkgcache.Service, ttl time.Duration) *CIKCache {
	return &CIKCache{svc: svc, ttl: ttl}
}

// Get returns the cached CIK for ticker, ok=false on a miss. Backend errors
// degrade to a miss: resolution falls through to the upstream fetch.
func (c *CIKCache) Get(ctx context.Context, ticker string) (string, bool) {
	var cik string
	err := c.svc.Get(ctx, pkgcache.GenerateKey(cikKeyPrefix, ticker), &cik)
	if err != nil {
		return "", false
	}
	return cik, cik != ""
}

// SetAll stores a full ticker to CIK mapping in one round trip.
func (c *CIKCache) SetAll(ctx context.Context, mapping map[string]string) error {
	if len(mapping) == 0 {
		return nil
	}
	values := make(map[string]interface{}, len(mapping))
	for ticker, cik := range mapping {
		values[pkgcache.GenerateKey(cikKeyPrefix, ticker)] = cik
	}
	return c.svc.MSet(ctx, values, c.ttl)
}
