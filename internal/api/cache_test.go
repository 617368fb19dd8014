package api

import (
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestCache(t *testing.T) {
	t.Run("basic operations", func(t *testing.T) {
		cache := newRequestCache(5 * time.Minute)

		// Test empty cache
		_, found := cache.get("/transactions/")
		assert.False(t, found)

		// Test put and get
		payload := []byte(`[{"id": 1}]`)
		cache.put("/transactions/", payload)

		retrieved, found := cache.get("/transactions/")
		assert.True(t, found)
		assert.Equal(t, payload, retrieved)

		// Test size
		assert.Equal(t, 1, cache.size())

		// Overwrite replaces the payload for the key
		cache.put("/transactions/", []byte(`[]`))
		retrieved, found = cache.get("/transactions/")
		require.True(t, found)
		assert.Equal(t, []byte(`[]`), retrieved)
		assert.Equal(t, 1, cache.size())
	})

	t.Run("expiration", func(t *testing.T) {
		cache := newRequestCache(30 * time.Second)

		// Control the clock instead of sleeping
		now := time.Date(2025, 6, 18, 12, 0, 0, 0, time.UTC)
		cache.now = func() time.Time { return now }

		cache.put("/categories/", []byte(`[]`))

		// Fresh just under the TTL
		now = now.Add(29 * time.Second)
		_, found := cache.get("/categories/")
		assert.True(t, found)

		// Stale at exactly the TTL
		now = now.Add(time.Second)
		_, found = cache.get("/categories/")
		assert.False(t, found)

		// A miss has no side effect; re-putting restores the entry
		cache.put("/categories/", []byte(`[]`))
		_, found = cache.get("/categories/")
		assert.True(t, found)
	})

	t.Run("invalidate all", func(t *testing.T) {
		cache := newRequestCache(5 * time.Minute)

		cache.put("/transactions/", []byte(`[]`))
		cache.put("/categories/", []byte(`[]`))
		cache.put("/savings-goals/", []byte(`[]`))
		assert.Equal(t, 3, cache.size())

		cache.invalidateAll()
		assert.Equal(t, 0, cache.size())

		for _, key := range []string{"/transactions/", "/categories/", "/savings-goals/"} {
			_, found := cache.get(key)
			assert.False(t, found)
		}
	})

	t.Run("concurrent access", func(t *testing.T) {
		cache := newRequestCache(5 * time.Minute)

		done := make(chan bool)
		go func() {
			for i := 0; i < 100; i++ {
				cache.put("/transactions/", []byte(`[]`))
			}
			done <- true
		}()

		go func() {
			for i := 0; i < 100; i++ {
				_, _ = cache.get("/transactions/")
			}
			done <- true
		}()

		go func() {
			for i := 0; i < 100; i++ {
				if i%10 == 0 {
					cache.invalidateAll()
				}
				_ = cache.size()
			}
			done <- true
		}()

		for i := 0; i < 3; i++ {
			<-done
		}

		// Cache should still be functional
		cache.put("/user/", []byte(`{}`))
		_, found := cache.get("/user/")
		assert.True(t, found)
	})

	t.Run("default ttl", func(t *testing.T) {
		cache := newRequestCache(0)
		assert.Equal(t, 30*time.Second, cache.ttl)
	})
}

func TestCacheKey(t *testing.T) {
	tests := []struct {
		name  string
		path  string
		query url.Values
		want  string
	}{
		{name: "no query", path: "/transactions/", query: nil, want: "/transactions/"},
		{name: "empty query", path: "/transactions/", query: url.Values{}, want: "/transactions/"},
		{
			name:  "query is canonically ordered",
			path:  "/transactions/",
			query: url.Values{"search": {"chai"}, "page": {"2"}},
			want:  "/transactions/?page=2&search=chai",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, cacheKey(tt.path, tt.query))
		})
	}
}

func TestCacheKeyEquivalentQueriesShareKey(t *testing.T) {
	a := url.Values{"b": {"2"}, "a": {"1"}}
	b := url.Values{"a": {"1"}, "b": {"2"}}
	assert.Equal(t, cacheKey("/p/", a), cacheKey("/p/", b))
}
