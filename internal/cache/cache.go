// Package cache provides a small TTL cache with an explicit interface, so
// callers depend on get/set semantics rather than a shared mutable map.
package cache

import (
	"sync"
	"time"
)

// Cache is a string-keyed cache with per-entry expiry.
type Cache[V any] interface {
	// Get returns the cached value and whether it was present and fresh.
	Get(key string) (V, bool)

	// Set stores a value under key with the cache's TTL.
	Set(key string, value V)
}

type entry[V any] struct {
	value     V
	expiresAt time.Time
}

// TTLCache is an in-memory Cache with a fixed TTL per entry.
// Safe for concurrent use. Expired entries are dropped lazily on Get and
// swept opportunistically on Set.
type TTLCache[V any] struct {
	mu      sync.Mutex
	entries map[string]entry[V]
	ttl     time.Duration
	maxSize int
	now     func() time.Time
}

// NewTTL creates a TTLCache. maxSize bounds memory; when full, Set evicts
// expired entries first and rejects nothing (oldest-expiry eviction).
func NewTTL[V any](ttl time.Duration, maxSize int) *TTLCache[V] {
	return &TTLCache[V]{
		entries: make(map[string]entry[V]),
		ttl:     ttl,
		maxSize: maxSize,
		now:     time.Now,
	}
}

func (c *TTLCache[V]) Get(key string) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok {
		var zero V
		return zero, false
	}
	if c.now().After(e.expiresAt) {
		delete(c.entries, key)
		var zero V
		return zero, false
	}
	return e.value, true
}

func (c *TTLCache[V]) Set(key string, value V) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if len(c.entries) >= c.maxSize {
		c.evictLocked()
	}

	c.entries[key] = entry[V]{
		value:     value,
		expiresAt: c.now().Add(c.ttl),
	}
}

// evictLocked drops expired entries; if none are expired, it drops the
// entry closest to expiry.
func (c *TTLCache[V]) evictLocked() {
	now := c.now()

	removed := false
	for k, e := range c.entries {
		if now.After(e.expiresAt) {
			delete(c.entries, k)
			removed = true
		}
	}
	if removed {
		return
	}

	var oldestKey string
	var oldest time.Time
	for k, e := range c.entries {
		if oldestKey == "" || e.expiresAt.Before(oldest) {
			oldestKey = k
			oldest = e.expiresAt
		}
	}
	if oldestKey != "" {
		delete(c.entries, oldestKey)
	}
}

// Len returns the number of entries, including any not yet swept.
func (c *TTLCache[V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}
