package player

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/osse101/IdleSect_Go/internal/domain"
)

// CacheSchemaVersion is the current version of the cache schema.
// Increment this when the cached data structure changes to auto-invalidate old entries.
const CacheSchemaVersion = "1.0"

// cachedStateEntry wraps a player snapshot with version metadata
type cachedStateEntry struct {
	Version  string              `json:"version"`
	State    *domain.PlayerState `json:"state"`
	CachedAt time.Time           `json:"cached_at"`
}

// stateCache provides an in-memory LRU cache for player state lookups
// with time-based expiration and version-based invalidation.
type stateCache struct {
	lru *expirable.LRU[string, *cachedStateEntry]
}

func newStateCache(size int, ttl time.Duration) *stateCache {
	return &stateCache{
		lru: expirable.NewLRU[string, *cachedStateEntry](size, nil, ttl),
	}
}

// Get retrieves a player state from the cache.
// Returns (nil, false) if not in cache, expired, or version mismatch.
func (c *stateCache) Get(userID string) (*domain.PlayerState, bool) {
	entry, found := c.lru.Get(userID)
	if !found {
		return nil, false
	}

	if entry.Version != CacheSchemaVersion {
		c.lru.Remove(userID)
		return nil, false
	}

	return entry.State, true
}

// Set stores a player state in the cache with current schema version.
func (c *stateCache) Set(userID string, state *domain.PlayerState) {
	c.lru.Add(userID, &cachedStateEntry{
		Version:  CacheSchemaVersion,
		State:    state,
		CachedAt: time.Now(),
	})
}

// Invalidate removes a player from the cache after a state mutation.
func (c *stateCache) Invalidate(userID string) {
	c.lru.Remove(userID)
}

// Clear removes all entries from the cache.
func (c *stateCache) Clear() {
	c.lru.Purge()
}
