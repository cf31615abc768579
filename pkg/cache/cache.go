// Package cache is a small generic TTL cache. Expired entries are dropped
// lazily on read and when the cache is full, so it owns no goroutines.
package cache

import (
	"sync"
	"time"
)

// DefaultMaxEntries bounds a cache built without WithMaxEntries.
const DefaultMaxEntries = 1024

type item[V any] struct {
	value     V
	expiresAt time.Time
}

// Cache is safe for concurrent use.
type Cache[K comparable, V any] struct {
	mu         sync.Mutex
	items      map[K]item[V]
	ttl        time.Duration
	maxEntries int
	now        func() time.Time
}

type Option[K comparable, V any] func(*Cache[K, V])

// New returns a cache whose entries live for ttl.
func New[K comparable, V any](ttl time.Duration, opts ...Option[K, V]) *Cache[K, V] {
	c := &Cache[K, V]{
		items:      make(map[K]item[V]),
		ttl:        ttl,
		maxEntries: DefaultMaxEntries,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func WithMaxEntries[K comparable, V any](n int) Option[K, V] {
	return func(c *Cache[K, V]) {
		if n > 0 {
			c.maxEntries = n
		}
	}
}

// WithClock replaces time.Now, mostly for tests.
func WithClock[K comparable, V any](now func() time.Time) Option[K, V] {
	return func(c *Cache[K, V]) {
		c.now = now
	}
}

// Get returns the value for key if it is present and not expired.
func (c *Cache[K, V]) Get(key K) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	it, ok := c.items[key]
	if !ok {
		var zero V
		return zero, false
	}
	if !c.now().Before(it.expiresAt) {
		delete(c.items, key)
		var zero V
		return zero, false
	}
	return it.value, true
}

// Set stores value under key. When the cache is full, expired entries are
// swept first and then the entry closest to expiry is evicted.
func (c *Cache[K, V]) Set(key K, value V) {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	if _, exists := c.items[key]; !exists && len(c.items) >= c.maxEntries {
		c.evictLocked(now)
	}
	c.items[key] = item[V]{value: value, expiresAt: now.Add(c.ttl)}
}

func (c *Cache[K, V]) Delete(key K) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.items, key)
}

// Len counts stored entries, including expired ones not yet swept.
func (c *Cache[K, V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}

func (c *Cache[K, V]) evictLocked(now time.Time) {
	var (
		oldest     K
		oldestAt   time.Time
		haveOldest bool
	)
	for k, it := range c.items {
		if !now.Before(it.expiresAt) {
			delete(c.items, k)
			continue
		}
		if !haveOldest || it.expiresAt.Before(oldestAt) {
			oldest, oldestAt, haveOldest = k, it.expiresAt, true
		}
	}
	if len(c.items) >= c.maxEntries && haveOldest {
		delete(c.items, oldest)
	}
}
