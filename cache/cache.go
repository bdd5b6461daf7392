// Package cache provides a small in-process response cache with
// per-call TTLs, stale-fallback on fetch failure, and coalescing of
// concurrent fetches for the same key.
package cache

import (
	"context"
	"sync"
	"time"

	"github.com/itbasis/go-clock"
)

// Common TTLs used by callers. The cache itself is TTL-agnostic; callers
// pick a duration per call based on whether games are live.
const (
	LiveTTL = 9 * time.Second
	IdleTTL = 15 * time.Minute
)

type entry[V any] struct {
	payload  V
	storedAt time.Time
	ttl      time.Duration
}

// flight is a single in-progress fetch. Concurrent callers for the same
// key wait on done and share val/err instead of fetching again.
type flight[V any] struct {
	done chan struct{}
	val  V
	err  error
}

type Cache[V any] struct {
	clock clock.Clock

	mu      sync.Mutex
	entries map[string]*entry[V]
	flights map[string]*flight[V]
}

func New[V any](c clock.Clock) *Cache[V] {
	return &Cache[V]{
		clock:   c,
		entries: make(map[string]*entry[V]),
		flights: make(map[string]*flight[V]),
	}
}

// Get returns the cached payload for key if an unexpired entry exists.
// It never blocks on a fetch.
func (c *Cache[V]) Get(key string) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if e, ok := c.entries[key]; ok && c.fresh(e) {
		return e.payload, true
	}
	var zero V
	return zero, false
}

// GetOrFetch returns the cached payload for key if an unexpired entry
// exists. Otherwise it runs fetch, joining an already in-flight fetch
// for the same key rather than starting a second one. On fetch failure
// an expired-but-present entry is returned as a stale fallback and the
// error suppressed; with no entry at all the error propagates.
func (c *Cache[V]) GetOrFetch(ctx context.Context, key string, ttl time.Duration, fetch func(context.Context) (V, error)) (V, error) {
	c.mu.Lock()

	if e, ok := c.entries[key]; ok && c.fresh(e) {
		payload := e.payload
		c.mu.Unlock()
		return payload, nil
	}

	if f, ok := c.flights[key]; ok {
		c.mu.Unlock()
		return c.wait(ctx, f)
	}

	f := &flight[V]{done: make(chan struct{})}
	c.flights[key] = f
	c.mu.Unlock()

	// The fetch is shared by every caller that joins this flight, so it
	// must not die with the first caller's context.
	go c.run(context.WithoutCancel(ctx), key, ttl, fetch, f)

	return c.wait(ctx, f)
}

// Invalidate removes any stored entry for key. An in-flight fetch is
// detached so callers arriving after the invalidate start a fresh fetch;
// callers already waiting still receive the detached result.
func (c *Cache[V]) Invalidate(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, key)
	delete(c.flights, key)
}

// Clear drops every entry and detaches all in-flight fetches.
func (c *Cache[V]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]*entry[V])
	c.flights = make(map[string]*flight[V])
}

func (c *Cache[V]) fresh(e *entry[V]) bool {
	return c.clock.Now().Sub(e.storedAt) < e.ttl
}

func (c *Cache[V]) run(ctx context.Context, key string, ttl time.Duration, fetch func(context.Context) (V, error), f *flight[V]) {
	val, err := fetch(ctx)

	c.mu.Lock()
	// An Invalidate may have detached this flight already, and a newer
	// fetch may own the slot now. A detached result is handed to the
	// waiters that joined before the invalidate but never stored, so
	// later callers start a fresh fetch instead of reading a resurrected
	// pre-invalidate payload.
	owner := c.flights[key] == f
	if owner {
		delete(c.flights, key)
	}

	if err == nil {
		if owner {
			c.entries[key] = &entry[V]{payload: val, storedAt: c.clock.Now(), ttl: ttl}
		}
		f.val = val
	} else if e, ok := c.entries[key]; ok {
		// Degraded fallback: serve the expired entry rather than failing.
		f.val = e.payload
	} else {
		f.err = err
	}
	c.mu.Unlock()

	close(f.done)
}

func (c *Cache[V]) wait(ctx context.Context, f *flight[V]) (V, error) {
	select {
	case <-f.done:
		return f.val, f.err
	case <-ctx.Done():
		var zero V
		return zero, ctx.Err()
	}
}
