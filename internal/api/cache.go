package api

import (
	"net/url"
	"sync"
	"time"
)

// cacheEntry holds one cached GET response body.
type cacheEntry struct {
	storedAt time.Time
	payload  []byte
}

// requestCache provides thread-safe caching of GET responses keyed by
// request path and query. Entries expire lazily after the TTL; any mutation
// anywhere in the client clears the whole cache, so there is no need for a
// background janitor.
type requestCache struct {
	entries map[string]cacheEntry
	now     func() time.Time
	ttl     time.Duration
	mu      sync.RWMutex
}

// newRequestCache creates a cache with the given TTL.
func newRequestCache(ttl time.Duration) *requestCache {
	if ttl <= 0 {
		ttl = 30 * time.Second // Default TTL
	}

	return &requestCache{
		entries: make(map[string]cacheEntry),
		ttl:     ttl,
		now:     time.Now,
	}
}

// cacheKey derives the cache key from a request's path and query parameters.
// url.Values.Encode sorts keys, so equivalent requests share a key.
func cacheKey(path string, query url.Values) string {
	if len(query) == 0 {
		return path
	}
	return path + "?" + query.Encode()
}

// get retrieves a payload if it exists and hasn't expired. A miss has no
// side effect; expired entries are simply treated as absent.
func (c *requestCache) get(key string) ([]byte, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	entry, exists := c.entries[key]
	if !exists {
		return nil, false
	}

	if c.now().Sub(entry.storedAt) >= c.ttl {
		return nil, false
	}

	return entry.payload, true
}

// put stores a payload, overwriting any existing entry for the key.
func (c *requestCache) put(key string, payload []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[key] = cacheEntry{
		payload:  payload,
		storedAt: c.now(),
	}
}

// invalidateAll removes every entry. Called synchronously after each
// successful mutation so the next read is forced to the network.
func (c *requestCache) invalidateAll() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]cacheEntry)
}

// size returns the number of entries in the cache.
func (c *requestCache) size() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
