// Package apicache is a small in-memory cache for API responses. Entries
// expire after a fixed TTL; an expired entry is treated as absent and purged
// on the read that finds it.
package apicache

import (
	"sync"
	"time"
)

// DefaultTTL matches the product's 30-second response cache window.
const DefaultTTL = 30 * time.Second

// Entry pairs cached data with the moment it was stored.
type Entry struct {
	Data      interface{}
	Timestamp time.Time
}

// Cache is a TTL-bounded key/value store.
type Cache struct {
	mu      sync.Mutex
	entries map[string]Entry
	ttl     time.Duration
	now     func() time.Time
}

// New creates a cache with the given TTL. A non-positive TTL falls back to
// DefaultTTL.
func New(ttl time.Duration) *Cache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Cache{
		entries: make(map[string]Entry),
		ttl:     ttl,
		now:     time.Now,
	}
}

// Get returns the cached data for key. An entry older than the TTL is
// deleted and reported as a miss.
func (c *Cache) Get(key string) (interface{}, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.entries[key]
	if !ok {
		return nil, false
	}
	if c.now().Sub(entry.Timestamp) > c.ttl {
		delete(c.entries, key)
		return nil, false
	}
	return entry.Data, true
}

// Set stores data under key with a fresh timestamp.
func (c *Cache) Set(key string, data interface{}) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = Entry{Data: data, Timestamp: c.now()}
}

// Clear removes the given keys, or every entry when called with none.
func (c *Cache) Clear(keys ...string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if len(keys) == 0 {
		c.entries = make(map[string]Entry)
		return
	}
	for _, k := range keys {
		delete(c.entries, k)
	}
}
