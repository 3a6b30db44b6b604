package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// RenderCache memoizes rendered bibliographies and exports. Entries are
// keyed by ledger revision, so any mutation changes the key and stale text
// simply ages out via TTL instead of needing explicit invalidation.
type RenderCache struct {
	cache *gocache.Cache
}

// NewRenderCache creates a render cache with the given default TTL and
// cleanup interval.
func NewRenderCache(defaultTTL, cleanupInterval time.Duration) *RenderCache {
	return &RenderCache{
		cache: gocache.New(defaultTTL, cleanupInterval),
	}
}

// Get retrieves rendered text for a key.
func (c *RenderCache) Get(key string) (string, bool) {
	if val, found := c.cache.Get(key); found {
		return val.(string), true
	}
	return "", false
}

// Set stores rendered text under a key with the default TTL.
func (c *RenderCache) Set(key, text string) {
	c.cache.Set(key, text, gocache.DefaultExpiration)
}

// Clear removes all cached renders.
func (c *RenderCache) Clear() {
	c.cache.Flush()
}

// Key builds a cache key from the ledger revision, the rendering operation
// and the output format.
func Key(revision int64, op, format string) string {
	hash := sha256.Sum256([]byte(fmt.Sprintf("%d:%s:%s", revision, op, format)))
	return "deepcite:v1:" + hex.EncodeToString(hash[:])
}
