package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

type bucket struct {
	tokens     float64
	lastRefill time.Time
}

// RateLimiter applies a per-client-IP token bucket.
type RateLimiter struct {
	mu         sync.Mutex
	buckets    map[string]*bucket
	rate       float64 // tokens per second
	bucketSize float64
	lastPrune  time.Time
}

// NewRateLimiter returns a limiter refilling rate tokens per second up to
// bucketSize per client IP.
func NewRateLimiter(rate, bucketSize float64) *RateLimiter {
	return &RateLimiter{
		buckets:    make(map[string]*bucket),
		rate:       rate,
		bucketSize: bucketSize,
		lastPrune:  time.Now(),
	}
}

// RateLimit rejects requests with 429 once a client's bucket is empty.
func (rl *RateLimiter) RateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		ip := c.ClientIP()
		now := time.Now()

		rl.mu.Lock()
		rl.pruneLocked(now)

		b, ok := rl.buckets[ip]
		if !ok {
			b = &bucket{tokens: rl.bucketSize, lastRefill: now}
			rl.buckets[ip] = b
		}

		elapsed := now.Sub(b.lastRefill).Seconds()
		b.tokens = min(rl.bucketSize, b.tokens+elapsed*rl.rate)
		b.lastRefill = now

		if b.tokens < 1 {
			rl.mu.Unlock()
			c.JSON(http.StatusTooManyRequests, gin.H{
				"error": "요청이 너무 많습니다. 잠시 후 다시 시도해주세요.",
			})
			c.Abort()
			return
		}
		b.tokens--
		rl.mu.Unlock()

		c.Next()
	}
}

// pruneLocked drops buckets idle long enough to be full again. Caller holds
// the lock.
func (rl *RateLimiter) pruneLocked(now time.Time) {
	if now.Sub(rl.lastPrune) < time.Minute {
		return
	}
	idle := time.Duration(rl.bucketSize/rl.rate) * time.Second
	for ip, b := range rl.buckets {
		if now.Sub(b.lastRefill) > idle+time.Minute {
			delete(rl.buckets, ip)
		}
	}
	rl.lastPrune = now
}

func min(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}
