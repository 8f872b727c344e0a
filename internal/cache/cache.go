// Package cache provides a sharded LRU cache for values derived from
// comparable keys, such as backend pipelines derived from render state.
//
// Keys are spread over 16 shards by a caller-supplied hash, so lookups of
// unrelated keys do not contend on one lock. Each shard evicts its least
// recently used entry once it reaches capacity.
//
// A Sharded cache is safe for concurrent use and must not be copied.
package cache

import (
	"sync"
	"sync/atomic"
)

const (
	// ShardCount is the number of shards. It must be a power of 2.
	ShardCount = 16

	// DefaultCapacity is the per-shard capacity used when none is given.
	DefaultCapacity = 64

	shardMask = ShardCount - 1
)

// Hasher picks the shard of a key.
type Hasher[K any] func(K) uint64

// Sharded is a thread-safe LRU cache split into ShardCount shards.
type Sharded[K comparable, V any] struct {
	shards   [ShardCount]*shard[K, V]
	hash     Hasher[K]
	capacity int

	hits      atomic.Uint64
	misses    atomic.Uint64
	evictions atomic.Uint64
}

type shard[K comparable, V any] struct {
	mu      sync.Mutex
	entries map[K]*entry[K, V]
	order   lruList[K]
}

type entry[K comparable, V any] struct {
	value V
	node  *lruNode[K]
}

// New creates a cache holding up to capacity entries per shard. A
// capacity <= 0 selects DefaultCapacity.
func New[K comparable, V any](capacity int, hash Hasher[K]) *Sharded[K, V] {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	c := &Sharded[K, V]{hash: hash, capacity: capacity}
	for i := range c.shards {
		c.shards[i] = &shard[K, V]{entries: make(map[K]*entry[K, V])}
	}
	return c
}

func (c *Sharded[K, V]) shardFor(key K) *shard[K, V] {
	return c.shards[c.hash(key)&shardMask]
}

// GetOrCreate returns the cached value for key, calling create on a miss.
// If create fails nothing is cached and its error is returned. create runs
// with the shard locked, so concurrent callers for one key create once.
//
// A key that is not equal to itself, such as a struct holding a NaN, could
// never be found again. Its value is created on every call and not stored.
func (c *Sharded[K, V]) GetOrCreate(key K, create func() (V, error)) (V, error) {
	if !reflexive(key) {
		c.misses.Add(1)
		return create()
	}
	s := c.shardFor(key)
	s.mu.Lock()
	defer s.mu.Unlock()

	if e, ok := s.entries[key]; ok {
		s.order.moveToFront(e.node)
		c.hits.Add(1)
		return e.value, nil
	}
	c.misses.Add(1)

	v, err := create()
	if err != nil {
		var zero V
		return zero, err
	}
	c.insert(s, key, v)
	return v, nil
}

// insert adds key to s, which must not hold it. The caller holds s.mu.
func (c *Sharded[K, V]) insert(s *shard[K, V], key K, value V) {
	for s.order.len >= c.capacity {
		oldest, ok := s.order.removeOldest()
		if !ok {
			break
		}
		delete(s.entries, oldest)
		c.evictions.Add(1)
	}
	s.entries[key] = &entry[K, V]{value: value, node: s.order.pushFront(key)}
}

// Clear drops every entry. Statistics are kept.
func (c *Sharded[K, V]) Clear() {
	for _, s := range c.shards {
		s.mu.Lock()
		s.entries = make(map[K]*entry[K, V])
		s.order = lruList[K]{}
		s.mu.Unlock()
	}
}

func reflexive[K comparable](k K) bool { return k == k }

// Len returns the number of entries across all shards.
func (c *Sharded[K, V]) Len() int {
	n := 0
	for _, s := range c.shards {
		s.mu.Lock()
		n += len(s.entries)
		s.mu.Unlock()
	}
	return n
}

// Stats is a snapshot of cache counters.
type Stats struct {
	Len       int
	Capacity  int // per shard
	Hits      uint64
	Misses    uint64
	Evictions uint64
}

// HitRate returns Hits/(Hits+Misses), or 0 before any lookup.
func (s Stats) HitRate() float64 {
	total := s.Hits + s.Misses
	if total == 0 {
		return 0
	}
	return float64(s.Hits) / float64(total)
}

// Stats returns the current counters.
func (c *Sharded[K, V]) Stats() Stats {
	return Stats{
		Len:       c.Len(),
		Capacity:  c.capacity,
		Hits:      c.hits.Load(),
		Misses:    c.misses.Load(),
		Evictions: c.evictions.Load(),
	}
}
