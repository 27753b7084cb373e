package catalog

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/questward/craftforge/internal/domain"
)

// CacheSchemaVersion is the current version of the cache schema
// Increment this when the cached data structure changes to auto-invalidate old entries
const CacheSchemaVersion = "1.0"

// cachedRecipeEntry wraps a recipe with version metadata for cache invalidation
type cachedRecipeEntry struct {
	Version  string         `json:"version"`
	Recipe   *domain.Recipe `json:"recipe"`
	CachedAt time.Time      `json:"cached_at"`
}

// recipeCache provides an in-memory LRU cache for recipe lookups with
// time-based expiration. Recipes are edited by an external catalog process,
// so entries carry a TTL instead of living forever.
type recipeCache struct {
	lru *expirable.LRU[string, *cachedRecipeEntry]
}

// newRecipeCache creates a new recipe cache with the specified size and TTL.
func newRecipeCache(size int, ttl time.Duration) *recipeCache {
	return &recipeCache{
		lru: expirable.NewLRU[string, *cachedRecipeEntry](size, nil, ttl),
	}
}

// Get retrieves a recipe from the cache.
// Returns (nil, false) if not cached, expired, or the schema version moved.
func (c *recipeCache) Get(recipeID string) (*domain.Recipe, bool) {
	entry, found := c.lru.Get(recipeID)
	if !found {
		return nil, false
	}

	if entry.Version != CacheSchemaVersion {
		c.lru.Remove(recipeID)
		return nil, false
	}

	return entry.Recipe, true
}

// Set stores a recipe in the cache with current schema version.
func (c *recipeCache) Set(recipeID string, recipe *domain.Recipe) {
	c.lru.Add(recipeID, &cachedRecipeEntry{
		Version:  CacheSchemaVersion,
		Recipe:   recipe,
		CachedAt: time.Now(),
	})
}

// Clear removes all entries from the cache.
func (c *recipeCache) Clear() {
	c.lru.Purge()
}
