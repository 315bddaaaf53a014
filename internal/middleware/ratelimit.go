package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

// client tracks the requests one IP issued in the current window.
type client struct {
	windowStart time.Time
	count       int
}

type rateLimiter struct {
	mu      sync.Mutex
	clients map[string]*client
	limit   int
	window  time.Duration
	now     func() time.Time
}

func newRateLimiter(limit int, window time.Duration) *rateLimiter {
	return &rateLimiter{
		clients: make(map[string]*client),
		limit:   limit,
		window:  window,
		now:     time.Now,
	}
}

// allow records a request from ip and reports whether it is within the limit.
// Stale entries are dropped lazily so the table does not grow without bound.
func (rl *rateLimiter) allow(ip string) bool {
	now := rl.now()

	rl.mu.Lock()
	defer rl.mu.Unlock()

	cl, ok := rl.clients[ip]
	if !ok || now.Sub(cl.windowStart) > rl.window {
		if len(rl.clients) > 1024 {
			rl.evict(now)
		}
		rl.clients[ip] = &client{windowStart: now, count: 1}
		return rl.limit > 0
	}
	cl.count++
	return cl.count <= rl.limit
}

func (rl *rateLimiter) evict(now time.Time) {
	for ip, cl := range rl.clients {
		if now.Sub(cl.windowStart) > rl.window {
			delete(rl.clients, ip)
		}
	}
}

// RateLimiter limits each client IP to perMinute requests per fixed one-minute
// window. Requests over the limit are answered with 429 Too Many Requests:
//
//	{"error": "rate limit exceeded"}
//
// The table lives in process memory; every replica enforces its own limit.
func RateLimiter(perMinute int) gin.HandlerFunc {
	return rateLimitHandler(newRateLimiter(perMinute, time.Minute))
}

func rateLimitHandler(rl *rateLimiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !rl.allow(c.ClientIP()) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "rate limit exceeded"})
			return
		}
		c.Next()
	}
}
