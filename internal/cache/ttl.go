// Package cache provides a small keyed TTL cache with an injected clock.
// Callers own the cache explicitly instead of hiding lazy memoization inside
// a service.
package cache

import (
	"sync"
	"time"

	"wallet-lifecycle-service/internal/core/ports"
)

type entry[V any] struct {
	value     V
	expiresAt time.Time
}

// TTL is a concurrency-safe key/value cache where every entry expires after a
// fixed duration.
type TTL[K comparable, V any] struct {
	mu      sync.Mutex
	entries map[K]entry[V]
	ttl     time.Duration
	clock   ports.Clock
}

// NewTTL creates a cache whose entries live for ttl.
func NewTTL[K comparable, V any](ttl time.Duration, clock ports.Clock) *TTL[K, V] {
	return &TTL[K, V]{
		entries: make(map[K]entry[V]),
		ttl:     ttl,
		clock:   clock,
	}
}

// Get returns the cached value for key if present and not expired.
func (c *TTL[K, V]) Get(key K) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.entries[key]
	if !ok || c.clock.Now().After(e.expiresAt) {
		delete(c.entries, key)
		var zero V
		return zero, false
	}
	return e.value, true
}

// Set stores value under key with a fresh TTL.
func (c *TTL[K, V]) Set(key K, value V) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = entry[V]{value: value, expiresAt: c.clock.Now().Add(c.ttl)}
}
