package middleware

import (
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/cyphera/onramp-engine/internal/config"
)

const (
	APIKeyHeader     = "X-API-Key"
	BusinessIDHeader = "X-Business-ID"
)

// RateLimiter keeps one token bucket per caller. Entries idle longer than
// the stale window are dropped while handling requests; there is no
// background sweeper.
type RateLimiter struct {
	mu         sync.Mutex
	limiters   map[string]*limiterEntry
	rate       rate.Limit
	burst      int
	staleAfter time.Duration
	lastPrune  time.Time
	now        func() time.Time
}

// limiterEntry holds a rate limiter and its last access time
type limiterEntry struct {
	limiter    *rate.Limiter
	lastAccess time.Time
}

// NewRateLimiter creates a limiter from the configured settings.
func NewRateLimiter(settings config.RateLimitSettings) *RateLimiter {
	staleAfter := settings.StaleAfter
	if staleAfter <= 0 {
		staleAfter = 5 * time.Minute
	}
	return &RateLimiter{
		limiters:   make(map[string]*limiterEntry),
		rate:       rate.Limit(settings.RequestsPerSecond),
		burst:      settings.Burst,
		staleAfter: staleAfter,
		now:        time.Now,
	}
}

// Allow reports whether the caller identified by key may proceed.
func (rl *RateLimiter) Allow(key string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	rl.pruneLocked(now)

	entry, ok := rl.limiters[key]
	if !ok {
		entry = &limiterEntry{limiter: rate.NewLimiter(rl.rate, rl.burst)}
		rl.limiters[key] = entry
	}
	entry.lastAccess = now
	return entry.limiter.AllowN(now, 1)
}

// Len returns the number of tracked callers.
func (rl *RateLimiter) Len() int {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	return len(rl.limiters)
}

func (rl *RateLimiter) pruneLocked(now time.Time) {
	if now.Sub(rl.lastPrune) < rl.staleAfter {
		return
	}
	for key, entry := range rl.limiters {
		if now.Sub(entry.lastAccess) > rl.staleAfter {
			delete(rl.limiters, key)
		}
	}
	rl.lastPrune = now
}

// clientIdentifier prefers the API key, then the business, then the IP.
func clientIdentifier(c *gin.Context) string {
	if apiKey := c.GetHeader(APIKeyHeader); apiKey != "" {
		if len(apiKey) >= 8 {
			return fmt.Sprintf("api:%s", apiKey[:8])
		}
		return fmt.Sprintf("api:%s", apiKey)
	}
	if businessID := c.GetHeader(BusinessIDHeader); businessID != "" {
		return fmt.Sprintf("business:%s", businessID)
	}
	if businessID := c.Param("business_id"); businessID != "" {
		return fmt.Sprintf("business:%s", businessID)
	}
	clientIP := c.ClientIP()
	if clientIP == "" {
		clientIP = "unknown"
	}
	return fmt.Sprintf("ip:%s", clientIP)
}

// Middleware returns a Gin handler enforcing the limit.
func (rl *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.URL.Path == "/health" {
			c.Next()
			return
		}

		clientID := clientIdentifier(c)
		c.Header("X-RateLimit-Limit", fmt.Sprintf("%g", float64(rl.rate)))

		if !rl.Allow(clientID) {
			LogWithCorrelationID(c.Request.Context()).Warn("Rate limit exceeded",
				zap.String("client_id", clientID),
				zap.String("path", c.Request.URL.Path),
				zap.String("method", c.Request.Method))

			c.Header("Retry-After", "1")
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error":       "Too many requests. Please try again later.",
				"retry_after": 1,
			})
			return
		}
		c.Next()
	}
}
