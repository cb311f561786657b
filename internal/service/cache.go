// Package service contains the business logic for the yard service.
package service

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/guttosm/yard-service/internal/domain/model"
	"github.com/guttosm/yard-service/internal/metrics"
	"github.com/guttosm/yard-service/internal/service/cache"
)

// defaultShardCount is used when a shard count is not given or invalid.
const defaultShardCount = 16

// ttlCache is an LRU cache with per-entry expiry for partner lookups, keyed
// by stack number. Entries expire after the configured TTL so stale pairings
// age out even when InvalidateCache is never called. It implements
// cache.Cache and cache.CacheWithMetrics.
type ttlCache struct {
	mu        sync.RWMutex
	capacity  int
	ttl       time.Duration
	entries   map[int]*partnerEntry
	head      *partnerEntry // most recently used
	tail      *partnerEntry // next eviction candidate
	stopCh    chan struct{}
	hits      int64
	misses    int64
	evictions int64
}

// partnerEntry is one cached partner lookup, linked into the LRU list.
type partnerEntry struct {
	stack     int
	info      model.PartnerInfo
	expiresAt time.Time
	prev      *partnerEntry
	next      *partnerEntry
}

// newTTLCache creates a cache holding up to capacity partner lookups for ttl
// each. A janitor goroutine sweeps expired entries until Stop is called.
func newTTLCache(capacity int, ttl time.Duration) *ttlCache {
	c := &ttlCache{
		capacity: capacity,
		ttl:      ttl,
		entries:  make(map[int]*partnerEntry, capacity),
		stopCh:   make(chan struct{}),
	}
	go c.janitor()
	return c
}

// Get returns the cached lookup for a stack number. Expired entries are
// treated as absent and dropped on sight.
func (c *ttlCache) Get(stack int) (model.PartnerInfo, bool) {
	c.mu.RLock()
	e, ok := c.entries[stack]
	var info model.PartnerInfo
	var deadline time.Time
	if ok {
		info = e.info
		deadline = e.expiresAt
	}
	c.mu.RUnlock()

	if !ok {
		atomic.AddInt64(&c.misses, 1)
		metrics.RecordCacheOperation("get", "miss")
		return model.PartnerInfo{}, false
	}

	if time.Now().After(deadline) {
		c.mu.Lock()
		// Re-check under the write lock; a concurrent Set may have refreshed
		// the entry, in which case it stays.
		if cur, still := c.entries[stack]; still && cur == e {
			c.deleteEntry(e)
		}
		c.mu.Unlock()
		atomic.AddInt64(&c.misses, 1)
		metrics.RecordCacheOperation("get", "expired")
		return model.PartnerInfo{}, false
	}

	c.mu.Lock()
	c.moveToFront(e)
	c.mu.Unlock()

	atomic.AddInt64(&c.hits, 1)
	metrics.RecordCacheOperation("get", "hit")
	return info, true
}

// Set stores a lookup under its stack number, refreshing the TTL. When the
// cache is full the least recently used entry makes room.
func (c *ttlCache) Set(stack int, info model.PartnerInfo) {
	c.mu.Lock()
	defer c.mu.Unlock()

	deadline := time.Now().Add(c.ttl)
	if e, ok := c.entries[stack]; ok {
		e.info = info
		e.expiresAt = deadline
		c.moveToFront(e)
		metrics.RecordCacheOperation("set", "success")
		return
	}

	e := &partnerEntry{stack: stack, info: info, expiresAt: deadline}
	c.entries[stack] = e
	c.pushFront(e)

	if len(c.entries) > c.capacity {
		c.evictOldest()
	}
	metrics.RecordCacheOperation("set", "success")
}

// Invalidate drops the entry for a single stack number, if present.
func (c *ttlCache) Invalidate(stack int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if e, ok := c.entries[stack]; ok {
		c.deleteEntry(e)
		metrics.RecordCacheOperation("invalidate", "success")
	}
}

// Clear empties the cache and resets its counters.
func (c *ttlCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries = make(map[int]*partnerEntry, c.capacity)
	c.head = nil
	c.tail = nil

	atomic.StoreInt64(&c.hits, 0)
	atomic.StoreInt64(&c.misses, 0)
	atomic.StoreInt64(&c.evictions, 0)

	metrics.RecordCacheOperation("clear", "success")
}

// Stop ends the janitor goroutine.
func (c *ttlCache) Stop() {
	close(c.stopCh)
}

// Metrics reports hit/miss/eviction counters and current occupancy.
func (c *ttlCache) Metrics() cache.Metrics {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return cache.Metrics{
		Hits:      atomic.LoadInt64(&c.hits),
		Misses:    atomic.LoadInt64(&c.misses),
		Evictions: atomic.LoadInt64(&c.evictions),
		Size:      len(c.entries),
		Capacity:  c.capacity,
	}
}

// janitor sweeps expired entries once a minute. It only bothers when the
// cache is nearly full; Get drops expired entries lazily the rest of the
// time.
func (c *ttlCache) janitor() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			c.mu.RLock()
			nearlyFull := len(c.entries) > c.capacity*4/5
			c.mu.RUnlock()

			if nearlyFull {
				c.sweep()
			}
		case <-c.stopCh:
			return
		}
	}
}

// sweep removes every entry whose TTL has passed.
func (c *ttlCache) sweep() {
	c.mu.Lock()
	defer c.mu.Unlock()

	cutoff := time.Now()
	for _, e := range c.entries {
		if cutoff.After(e.expiresAt) {
			c.deleteEntry(e)
		}
	}
}

// evictOldest removes the tail of the LRU list. Callers hold the write lock.
func (c *ttlCache) evictOldest() {
	if c.tail == nil {
		return
	}
	delete(c.entries, c.tail.stack)
	c.unlink(c.tail)
	atomic.AddInt64(&c.evictions, 1)
	metrics.RecordCacheOperation("evict", "capacity")
}

// deleteEntry removes an entry from the map and the LRU list.
func (c *ttlCache) deleteEntry(e *partnerEntry) {
	delete(c.entries, e.stack)
	c.unlink(e)
}

// moveToFront marks an entry as most recently used.
func (c *ttlCache) moveToFront(e *partnerEntry) {
	if c.head == e {
		return
	}
	c.unlink(e)
	c.pushFront(e)
}

// pushFront links an entry at the head of the LRU list.
func (c *ttlCache) pushFront(e *partnerEntry) {
	e.prev = nil
	e.next = c.head
	if c.head != nil {
		c.head.prev = e
	}
	c.head = e
	if c.tail == nil {
		c.tail = e
	}
}

// unlink detaches an entry from the LRU list without touching the map.
func (c *ttlCache) unlink(e *partnerEntry) {
	if e.prev == nil {
		c.head = e.next
	} else {
		e.prev.next = e.next
	}
	if e.next == nil {
		c.tail = e.prev
	} else {
		e.next.prev = e.prev
	}
}

// ShardedCache splits the partner-lookup cache into independent shards so
// concurrent resolutions rarely contend on a single lock. Stack numbers hash
// by their low bits, so the shard count is rounded up to a power of two.
type ShardedCache struct {
	shards    []*ttlCache
	numShards int
	shardMask int
}

// NewShardedCache builds numShards LRU caches sharing the given total
// capacity. A shard count below one falls back to defaultShardCount.
func NewShardedCache(capacity int, ttl time.Duration, numShards int) *ShardedCache {
	if numShards < 1 {
		numShards = defaultShardCount
	}
	n := 1
	for n < numShards {
		n <<= 1
	}
	numShards = n

	perShard := capacity / numShards
	if perShard < 1 {
		perShard = 1
	}

	shards := make([]*ttlCache, numShards)
	for i := range shards {
		shards[i] = newTTLCache(perShard, ttl)
	}

	return &ShardedCache{
		shards:    shards,
		numShards: numShards,
		shardMask: numShards - 1,
	}
}

// shardFor maps a stack number onto its shard.
func (sc *ShardedCache) shardFor(stack int) *ttlCache {
	return sc.shards[stack&sc.shardMask]
}

// Get retrieves a cached lookup from the owning shard.
func (sc *ShardedCache) Get(stack int) (model.PartnerInfo, bool) {
	return sc.shardFor(stack).Get(stack)
}

// Set stores a lookup in the owning shard.
func (sc *ShardedCache) Set(stack int, info model.PartnerInfo) {
	sc.shardFor(stack).Set(stack, info)
}

// Invalidate drops a stack number from its shard.
func (sc *ShardedCache) Invalidate(stack int) {
	sc.shardFor(stack).Invalidate(stack)
}

// Clear empties every shard.
func (sc *ShardedCache) Clear() {
	for _, s := range sc.shards {
		s.Clear()
	}
}

// Stop shuts down every shard's janitor.
func (sc *ShardedCache) Stop() {
	for _, s := range sc.shards {
		s.Stop()
	}
}

// Metrics sums the per-shard counters.
func (sc *ShardedCache) Metrics() cache.Metrics {
	var total cache.Metrics
	for _, s := range sc.shards {
		m := s.Metrics()
		total.Hits += m.Hits
		total.Misses += m.Misses
		total.Evictions += m.Evictions
		total.Size += m.Size
		total.Capacity += m.Capacity
	}
	return total
}
