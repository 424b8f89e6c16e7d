// Package ratelimit provides per-client rate limiting using a token
// bucket algorithm.
package ratelimit

import (
	"sync"
	"time"
)

// TokenBucket allows a burst of requests up to its capacity, with tokens
// refilling at a steady rate.
type TokenBucket struct {
	capacity   int
	refillRate float64 // tokens per second
	tokens     float64
	lastRefill time.Time
	mu         sync.Mutex
}

func newTokenBucket(capacity int, refillRate float64) *TokenBucket {
	return &TokenBucket{
		capacity:   capacity,
		refillRate: refillRate,
		tokens:     float64(capacity),
		lastRefill: time.Now(),
	}
}

// allow consumes a token if one is available.
func (tb *TokenBucket) allow() bool {
	tb.mu.Lock()
	defer tb.mu.Unlock()

	now := time.Now()
	elapsed := now.Sub(tb.lastRefill)
	tb.tokens = min(float64(tb.capacity), tb.tokens+elapsed.Seconds()*tb.refillRate)
	tb.lastRefill = now

	if tb.tokens >= 1.0 {
		tb.tokens -= 1.0
		return true
	}
	return false
}

// remaining reports available tokens without consuming any.
func (tb *TokenBucket) remaining() int {
	tb.mu.Lock()
	defer tb.mu.Unlock()

	now := time.Now()
	elapsed := now.Sub(tb.lastRefill)
	tb.tokens = min(float64(tb.capacity), tb.tokens+elapsed.Seconds()*tb.refillRate)
	tb.lastRefill = now

	return int(tb.tokens)
}

// Info describes the rate limit status attached to a response.
type Info struct {
	Allowed    bool
	Limit      int
	Remaining  int
	RetryAfter time.Duration
}

// Limiter manages token buckets for multiple clients.
type Limiter struct {
	buckets     map[string]*TokenBucket
	lastAccess  map[string]time.Time
	mu          sync.Mutex
	config      *Config
	cleanupStop chan struct{}
}

// NewLimiter creates a rate limiter and starts its idle-bucket cleanup
// goroutine. Stop must be called to release it.
func NewLimiter(config *Config) *Limiter {
	if config == nil {
		config = DefaultConfig()
	}
	l := &Limiter{
		buckets:     make(map[string]*TokenBucket),
		lastAccess:  make(map[string]time.Time),
		config:      config,
		cleanupStop: make(chan struct{}),
	}
	go l.cleanupLoop()
	return l
}

// Allow checks whether a request from clientID may proceed.
func (l *Limiter) Allow(clientID string) (bool, Info) {
	if !l.config.Enabled {
		return true, Info{Allowed: true}
	}

	l.mu.Lock()
	bucket, ok := l.buckets[clientID]
	if !ok {
		refillRate := float64(l.config.Limit) / l.config.Window.Seconds()
		bucket = newTokenBucket(l.config.Limit, refillRate)
		l.buckets[clientID] = bucket
	}
	l.lastAccess[clientID] = time.Now()
	l.mu.Unlock()

	allowed := bucket.allow()
	info := Info{
		Allowed:   allowed,
		Limit:     l.config.Limit,
		Remaining: bucket.remaining(),
	}
	if !allowed {
		info.RetryAfter = l.config.Window / time.Duration(l.config.Limit)
	}
	return allowed, info
}

// Stop terminates the cleanup goroutine.
func (l *Limiter) Stop() {
	close(l.cleanupStop)
}

// cleanupLoop drops buckets for clients idle longer than the cleanup
// interval, keeping the map bounded.
func (l *Limiter) cleanupLoop() {
	ticker := time.NewTicker(l.config.CleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-l.cleanupStop:
			return
		case now := <-ticker.C:
			l.mu.Lock()
			for id, last := range l.lastAccess {
				if now.Sub(last) > l.config.CleanupInterval {
					delete(l.buckets, id)
					delete(l.lastAccess, id)
				}
			}
			l.mu.Unlock()
		}
	}
}
