package cache

import (
	"fmt"
	"strings"
	"sync"
	"time"
)

// entry pairs a cached value with its write time.
type entry[V any] struct {
	value   V
	written time.Time
}

// Cache is an advisory in-memory store for chain-derived state. Entries
// expire after the configured TTL; callers must treat the chain as the
// source of truth and use the cache only to skip redundant reads.
type Cache[V any] struct {
	mu      sync.Mutex
	entries map[string]entry[V]
	ttl     time.Duration
	now     func() time.Time
}

// New creates a cache with the given TTL. A zero TTL disables expiry.
func New[V any](ttl time.Duration) *Cache[V] {
	return &Cache[V]{
		entries: make(map[string]entry[V]),
		ttl:     ttl,
		now:     time.Now,
	}
}

// NewWithClock is like New but with an injectable time source.
func NewWithClock[V any](ttl time.Duration, now func() time.Time) *Cache[V] {
	c := New[V](ttl)
	c.now = now
	return c
}

// Get returns the cached value for key, if present and fresh.
func (c *Cache[V]) Get(key string) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok {
		var zero V
		return zero, false
	}

	if c.ttl > 0 && c.now().Sub(e.written) > c.ttl {
		delete(c.entries, key)
		var zero V
		return zero, false
	}

	return e.value, true
}

// WriteThrough records the authoritative value just confirmed on chain.
func (c *Cache[V]) WriteThrough(key string, value V) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[key] = entry[V]{value: value, written: c.now()}
}

// Invalidate drops the entry for key, if any.
func (c *Cache[V]) Invalidate(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.entries, key)
}

// ApproveAllKey keys the operator-wide approval state of an owner.
func ApproveAllKey(owner, operator string) string {
	return fmt.Sprintf("approveAll:%s:%s", strings.ToLower(owner), strings.ToLower(operator))
}

// ApproveSingleKey keys the per-token approval state.
func ApproveSingleKey(tokenId string) string {
	return fmt.Sprintf("approveSingle:%s", tokenId)
}
