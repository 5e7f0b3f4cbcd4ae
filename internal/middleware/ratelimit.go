package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// visitor is the token bucket of one client IP.
type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// idleVisitor is how long an IP's bucket is kept without traffic.
var idleVisitor = 10 * time.Minute

// visitorSet holds the buckets of all client IPs. Idle buckets are swept
// at most once per idleVisitor, so a request costs O(1) between sweeps.
type visitorSet struct {
	mu        sync.Mutex
	visitors  map[string]*visitor
	every     rate.Limit
	burst     int
	lastSweep time.Time
}

func newVisitorSet(perMinute int, now time.Time) *visitorSet {
	return &visitorSet{
		visitors:  make(map[string]*visitor),
		every:     rate.Every(time.Minute / time.Duration(perMinute)),
		burst:     perMinute,
		lastSweep: now,
	}
}

// allow takes one token from ip's bucket.
func (s *visitorSet) allow(ip string, now time.Time) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if now.Sub(s.lastSweep) > idleVisitor {
		for k, v := range s.visitors {
			if now.Sub(v.lastSeen) > idleVisitor {
				delete(s.visitors, k)
			}
		}
		s.lastSweep = now
	}

	v, ok := s.visitors[ip]
	if !ok {
		v = &visitor{limiter: rate.NewLimiter(s.every, s.burst)}
		s.visitors[ip] = v
	}
	v.lastSeen = now
	return v.limiter.AllowN(now, 1)
}

func (s *visitorSet) len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.visitors)
}

// RateLimiter limits requests per client IP with a token bucket refilled at
// perMinute tokens per minute and a burst of perMinute.
//
// Behavior:
//   - perMinute <= 0 disables limiting.
//   - Exceeding the budget aborts with 429 Too Many Requests.
//   - Buckets idle for longer than idleVisitor are dropped.
//
// Usage:
//
//	router.Use(middleware.RateLimiter(60))
func RateLimiter(perMinute int) gin.HandlerFunc {
	if perMinute <= 0 {
		return func(c *gin.Context) { c.Next() }
	}

	set := newVisitorSet(perMinute, time.Now())

	return func(c *gin.Context) {
		if !set.allow(c.ClientIP(), time.Now()) {
			c.Header("Retry-After", "60")
			AbortWithError(c, http.StatusTooManyRequests, "rate limit exceeded", nil)
			return
		}

		c.Next()
	}
}
