package middleware

import (
	"hash/fnv"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/yard-service/internal/domain/dto"
	"github.com/guttosm/yard-service/internal/i18n"
)

const (
	// defaultNumShards is how many shards the limiter spreads callers across.
	defaultNumShards = 16

	// clientIDHeader identifies a calling system (a TOS instance or gate
	// integration) so that callers behind a shared gateway IP get separate
	// budgets.
	clientIDHeader = "X-Client-ID"
)

// bucket holds the fixed-window quota state for one caller.
type bucket struct {
	tokens      int
	windowStart time.Time
}

// limiterShard owns one slice of the caller map together with its lock.
type limiterShard struct {
	mu      sync.Mutex
	buckets map[string]*bucket
}

// ShardedRateLimiter enforces a fixed-window request quota per caller.
// Callers are spread across shards by identifier hash so concurrent
// requests rarely contend on the same lock.
type ShardedRateLimiter struct {
	shards    []*limiterShard
	numShards int
	rate      int
	window    time.Duration
	stopCh    chan struct{}
}

// RateLimiter is the limiter type the router wires into the middleware chain.
type RateLimiter = ShardedRateLimiter

// NewRateLimiter creates a limiter with the default shard count.
func NewRateLimiter(rate int, window time.Duration) *ShardedRateLimiter {
	return NewShardedRateLimiter(rate, window, defaultNumShards)
}

// NewShardedRateLimiter creates a limiter that allows rate requests per
// window for each caller. Shard counts below one fall back to the default.
func NewShardedRateLimiter(rate int, window time.Duration, numShards int) *ShardedRateLimiter {
	if numShards <= 0 {
		numShards = defaultNumShards
	}

	rl := &ShardedRateLimiter{
		shards:    make([]*limiterShard, numShards),
		numShards: numShards,
		rate:      rate,
		window:    window,
		stopCh:    make(chan struct{}),
	}
	for i := range rl.shards {
		rl.shards[i] = &limiterShard{buckets: make(map[string]*bucket)}
	}

	go rl.janitor()
	return rl
}

// shardFor hashes the identifier onto one shard.
func (rl *ShardedRateLimiter) shardFor(identifier string) *limiterShard {
	h := fnv.New32a()
	h.Write([]byte(identifier))
	return rl.shards[h.Sum32()%uint32(rl.numShards)]
}

// take consumes one token from the caller's current window, opening a fresh
// window when the previous one has elapsed. It reports whether the request
// may proceed and how many tokens remain.
func (rl *ShardedRateLimiter) take(identifier string) (allowed bool, remaining int) {
	shard := rl.shardFor(identifier)

	shard.mu.Lock()
	defer shard.mu.Unlock()

	now := time.Now()
	b, ok := shard.buckets[identifier]
	if !ok || now.Sub(b.windowStart) > rl.window {
		shard.buckets[identifier] = &bucket{tokens: rl.rate - 1, windowStart: now}
		return true, rl.rate - 1
	}

	if b.tokens <= 0 {
		return false, 0
	}

	b.tokens--
	return true, b.tokens
}

// limitBy builds the limiting handler around an identifier function. It sets
// the quota headers on every response and rejects with a localized 429
// envelope once the caller's window is exhausted.
func (rl *ShardedRateLimiter) limitBy(identify func(*gin.Context) string) gin.HandlerFunc {
	return func(c *gin.Context) {
		allowed, remaining := rl.take(identify(c))

		c.Header("X-RateLimit-Limit", strconv.Itoa(rl.rate))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(remaining))

		if !allowed {
			locale := i18n.GetLocale(c)
			c.Header("Retry-After", rl.window.String())
			errorResp := dto.NewError(dto.ErrCodeRateLimit, i18n.GetTranslator().Translate(i18n.ErrKeyRateLimitExceeded, locale)).
				WithRequestID(GetRequestID(c))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, errorResp)
			return
		}

		c.Next()
	}
}

// RateLimit limits requests per source IP.
func (rl *ShardedRateLimiter) RateLimit() gin.HandlerFunc {
	return rl.limitBy(func(c *gin.Context) string { return c.ClientIP() })
}

// ClientRateLimit limits requests per calling system, falling back to the
// source IP when no client header is present.
func (rl *ShardedRateLimiter) ClientRateLimit() gin.HandlerFunc {
	return rl.limitBy(rl.getClientIdentifier)
}

// getClientIdentifier keys the quota by the client header when present and
// by source IP otherwise. The prefixes keep the two key spaces disjoint.
func (rl *ShardedRateLimiter) getClientIdentifier(c *gin.Context) string {
	if clientID := c.GetHeader(clientIDHeader); clientID != "" {
		return "client:" + clientID
	}
	return "ip:" + c.ClientIP()
}

// janitor sweeps stale buckets once a minute until Stop is called.
func (rl *ShardedRateLimiter) janitor() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			rl.sweepStale()
		case <-rl.stopCh:
			return
		}
	}
}

// sweepStale drops buckets whose window ended long enough ago that the
// caller would receive a fresh window on its next request anyway.
func (rl *ShardedRateLimiter) sweepStale() {
	now := time.Now()
	threshold := rl.window * 2

	for _, shard := range rl.shards {
		shard.mu.Lock()
		for id, b := range shard.buckets {
			if now.Sub(b.windowStart) > threshold {
				delete(shard.buckets, id)
			}
		}
		shard.mu.Unlock()
	}
}

// Stop terminates the background janitor.
func (rl *ShardedRateLimiter) Stop() {
	close(rl.stopCh)
}

// Stats reports how many callers are currently tracked, in total and per shard.
func (rl *ShardedRateLimiter) Stats() (total int, perShard []int) {
	perShard = make([]int, rl.numShards)
	for i, shard := range rl.shards {
		shard.mu.Lock()
		perShard[i] = len(shard.buckets)
		total += perShard[i]
		shard.mu.Unlock()
	}
	return total, perShard
}
