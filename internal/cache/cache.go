// Package cache is a process-local TTL key/value store used to memoize
// read-heavy document-store queries. Entries expire lazily: an expired
// entry is removed by the lookup that finds it, so no background sweep is
// needed. Each server instance owns its own cache; nothing is shared
// across processes.
package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"sync"
	"time"
)

type entry struct {
	value     any
	expiresAt time.Time
}

type Cache struct {
	mu      sync.Mutex
	entries map[string]entry
	now     func() time.Time
}

func New() *Cache {
	return &Cache{
		entries: make(map[string]entry),
		now:     time.Now,
	}
}

// Get returns the cached value for key, or ok=false on a miss. A lookup
// that finds an expired entry deletes it before reporting the miss.
func (c *Cache) Get(key string) (any, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok {
		return nil, false
	}
	if !c.now().Before(e.expiresAt) {
		delete(c.entries, key)
		return nil, false
	}
	return e.value, true
}

// Set stores value under key, overwriting any previous entry and resetting
// its expiry to now+ttl.
func (c *Cache) Set(key string, value any, ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = entry{value: value, expiresAt: c.now().Add(ttl)}
}

func (c *Cache) Delete(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, key)
}

func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]entry)
}

// Len reports the number of stored entries, expired or not.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// Key derives a deterministic cache key from an operation name and its
// arguments, so identical calls share a cache line.
func Key(op string, args ...any) string {
	b, err := json.Marshal(args)
	if err != nil {
		// Unmarshalable args still need a stable-ish key; fall back to
		// the bare operation name.
		return op
	}
	sum := sha256.Sum256(b)
	return op + ":" + hex.EncodeToString(sum[:])
}

// Memoize returns the cached result of op for the given arguments, calling
// fn and caching its result on a miss. The wrapped operation's result and
// error pass through unchanged; errors are never cached.
func Memoize[T any](c *Cache, op string, ttl time.Duration, fn func() (T, error), args ...any) (T, error) {
	key := Key(op, args...)

	if v, ok := c.Get(key); ok {
		if typed, ok := v.(T); ok {
			return typed, nil
		}
		// Type drift under a colliding key; drop it and recompute.
		c.Delete(key)
	}

	v, err := fn()
	if err != nil {
		return v, err
	}
	c.Set(key, v, ttl)
	return v, nil
}
