// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package cache provides a sharded LRU cache for generated textures.
//
// Textures are keyed by the style parameters that produced them, so each
// distinct corner, border or shadow is generated and uploaded once.
package cache

import (
	"errors"
	"hash/fnv"
	"sync"
	"sync/atomic"
)

const (
	// ShardCount is the number of shards. Must be a power of 2.
	ShardCount = 8

	// DefaultCapacity is the default maximum entries per shard.
	DefaultCapacity = 64

	shardMask = ShardCount - 1
)

// Hasher computes the hash used for shard selection.
type Hasher[K any] func(K) uint64

// IntsHasher returns the FNV-1a hash of a sequence of ints.
// Style keys hash their integer fields through it.
func IntsHasher(values ...int) uint64 {
	h := fnv.New64a()
	var buf [8]byte
	for _, v := range values {
		u := uint64(v)
		for i := range buf {
			buf[i] = byte(u >> (8 * i))
		}
		_, _ = h.Write(buf[:]) // fnv.Write never returns an error
	}
	return h.Sum64()
}

// ShardedCache is a thread-safe LRU cache split into ShardCount shards.
// Each shard holds at most the per-shard capacity; the least recently used
// entry of a full shard is evicted on insertion.
type ShardedCache[K comparable, V any] struct {
	shards   [ShardCount]*shard[K, V]
	hasher   Hasher[K]
	capacity int
	onEvict  func(K, V)

	hits      atomic.Uint64
	misses    atomic.Uint64
	evictions atomic.Uint64
}

type shard[K comparable, V any] struct {
	mu       sync.Mutex
	entries  map[K]*entry[K, V]
	inflight map[K]*call[V]
	lru      lruList[K]
}

type entry[K comparable, V any] struct {
	value V
	node  *lruNode[K]
}

// call is a create in progress. value and err are valid once done is closed.
type call[V any] struct {
	done  chan struct{}
	value V
	err   error
}

var errCreatePanicked = errors.New("cache: create panicked")

// NewSharded creates a cache with the given per-shard capacity.
// If capacity <= 0, DefaultCapacity is used. onEvict, if non-nil, is called
// with the shard lock held for every entry dropped by LRU eviction.
func NewSharded[K comparable, V any](capacity int, hasher Hasher[K], onEvict func(K, V)) *ShardedCache[K, V] {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}

	c := &ShardedCache[K, V]{
		hasher:   hasher,
		capacity: capacity,
		onEvict:  onEvict,
	}
	for i := range c.shards {
		c.shards[i] = &shard[K, V]{
			entries:  make(map[K]*entry[K, V]),
			inflight: make(map[K]*call[V]),
		}
	}
	return c
}

func (c *ShardedCache[K, V]) shardFor(key K) *shard[K, V] {
	return c.shards[c.hasher(key)&shardMask]
}

// GetOrCreate returns the cached value for key, or calls create and caches
// its result. Errors from create are returned and nothing is cached.
//
// create runs without the shard lock, so other keys of the shard stay
// available. Callers asking for a key that is being created wait for that
// call and share its result, including its error.
func (c *ShardedCache[K, V]) GetOrCreate(key K, create func() (V, error)) (V, error) {
	s := c.shardFor(key)

	s.mu.Lock()
	if e, ok := s.entries[key]; ok {
		s.lru.MoveToFront(e.node)
		value := e.value
		s.mu.Unlock()
		c.hits.Add(1)
		return value, nil
	}
	if cl, ok := s.inflight[key]; ok {
		s.mu.Unlock()
		<-cl.done
		if cl.err != nil {
			c.misses.Add(1)
		} else {
			c.hits.Add(1)
		}
		return cl.value, cl.err
	}
	cl := &call[V]{done: make(chan struct{})}
	s.inflight[key] = cl
	s.mu.Unlock()
	c.misses.Add(1)

	c.run(s, key, cl, create)
	return cl.value, cl.err
}

// run executes create for the in-flight call cl and publishes the result.
// Waiters are released even if create panics.
func (c *ShardedCache[K, V]) run(s *shard[K, V], key K, cl *call[V], create func() (V, error)) {
	completed := false
	defer func() {
		if !completed {
			var zero V
			cl.value, cl.err = zero, errCreatePanicked
		}
		s.mu.Lock()
		delete(s.inflight, key)
		if cl.err == nil {
			c.insert(s, key, cl.value)
		}
		s.mu.Unlock()
		close(cl.done)
	}()

	cl.value, cl.err = create()
	if cl.err != nil {
		var zero V
		cl.value = zero
	}
	completed = true
}

// insert adds a new entry, evicting the oldest ones while the shard is full.
// The shard lock must be held.
func (c *ShardedCache[K, V]) insert(s *shard[K, V], key K, value V) {
	for s.lru.Len() >= c.capacity {
		oldest, ok := s.lru.RemoveOldest()
		if !ok {
			break
		}
		evicted := s.entries[oldest]
		delete(s.entries, oldest)
		c.evictions.Add(1)
		if c.onEvict != nil && evicted != nil {
			c.onEvict(oldest, evicted.value)
		}
	}

	s.entries[key] = &entry[K, V]{
		value: value,
		node:  s.lru.PushFront(key),
	}
}

// Clear removes all entries. The eviction callback is not called.
// Creates in progress still store their results.
func (c *ShardedCache[K, V]) Clear() {
	for _, s := range c.shards {
		s.mu.Lock()
		s.entries = make(map[K]*entry[K, V])
		s.lru.Clear()
		s.mu.Unlock()
	}
}

// Len returns the total number of entries across all shards.
func (c *ShardedCache[K, V]) Len() int {
	total := 0
	for _, s := range c.shards {
		s.mu.Lock()
		total += len(s.entries)
		s.mu.Unlock()
	}
	return total
}

// Capacity returns the per-shard capacity.
func (c *ShardedCache[K, V]) Capacity() int {
	return c.capacity
}

// Stats returns a snapshot of the cache statistics.
func (c *ShardedCache[K, V]) Stats() Stats {
	hits := c.hits.Load()
	misses := c.misses.Load()

	var hitRate float64
	if total := hits + misses; total > 0 {
		hitRate = float64(hits) / float64(total)
	}

	return Stats{
		Len:           c.Len(),
		TotalCapacity: c.capacity * ShardCount,
		Hits:          hits,
		Misses:        misses,
		HitRate:       hitRate,
		Evictions:     c.evictions.Load(),
	}
}

// ResetStats resets the hit, miss and eviction counters.
func (c *ShardedCache[K, V]) ResetStats() {
	c.hits.Store(0)
	c.misses.Store(0)
	c.evictions.Store(0)
}

// Stats contains cache statistics.
type Stats struct {
	// Len is the current number of entries.
	Len int
	// TotalCapacity is the capacity across all shards.
	TotalCapacity int
	// Hits is the number of lookups that found an entry.
	Hits uint64
	// Misses is the number of lookups that did not.
	Misses uint64
	// HitRate is Hits / (Hits + Misses), or 0 before the first lookup.
	HitRate float64
	// Evictions is the number of entries dropped by LRU eviction.
	Evictions uint64
}
