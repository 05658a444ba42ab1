// Package middleware provides HTTP middleware for the API endpoints.
package middleware

import (
	"net/http"
	"os"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	domainerror "github.com/household-budget/backend/internal/domain/error"
	"github.com/household-budget/backend/internal/integration/entrypoint/dto"
)

const (
	// loginMaxAttempts bounds password guesses per client address. Only the
	// two household members log in, so the ceiling stays low.
	loginMaxAttempts = 10
	// loginWindow is the rolling window the attempts are counted in.
	loginWindow = 5 * time.Minute
)

// rateLimitEntry tracks attempts for a single client address.
type rateLimitEntry struct {
	attempts int
	resetAt  time.Time
}

// RateLimiter throttles requests per client address over a fixed window.
type RateLimiter struct {
	mu      sync.Mutex
	entries map[string]*rateLimitEntry
	max     int
	window  time.Duration
}

// NewRateLimiter creates a rate limiter with the login defaults.
func NewRateLimiter() *RateLimiter {
	return NewRateLimiterWithConfig(loginMaxAttempts, loginWindow)
}

// NewRateLimiterWithConfig creates a rate limiter with custom settings.
func NewRateLimiterWithConfig(maxAttempts int, window time.Duration) *RateLimiter {
	return &RateLimiter{
		entries: make(map[string]*rateLimitEntry),
		max:     maxAttempts,
		window:  window,
	}
}

// Middleware returns a Gin handler that enforces the limit. Disabled under
// ENV=test so the integration suite can log in repeatedly.
func (rl *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if os.Getenv("ENV") == "test" {
			c.Next()
			return
		}

		clientIP := c.ClientIP()
		if clientIP == "" {
			clientIP = c.Request.RemoteAddr
		}

		if !rl.allow(clientIP) {
			c.JSON(http.StatusTooManyRequests, dto.ErrorResponse{
				Error: "Too many requests. Please try again later.",
				Code:  string(domainerror.ErrCodeRateLimited),
			})
			c.Abort()
			return
		}

		c.Next()
	}
}

// allow records an attempt for the key and reports whether it is within the
// limit. Expired entries are pruned on the way.
func (rl *RateLimiter) allow(key string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := time.Now()
	for k, entry := range rl.entries {
		if now.After(entry.resetAt) {
			delete(rl.entries, k)
		}
	}

	entry, exists := rl.entries[key]
	if !exists {
		rl.entries[key] = &rateLimitEntry{
			attempts: 1,
			resetAt:  now.Add(rl.window),
		}
		return true
	}

	if entry.attempts < rl.max {
		entry.attempts++
		return true
	}

	return false
}
