package middlewares

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// clientIdleTTL is how long an idle client's bucket is kept.
const clientIdleTTL = 10 * time.Minute

type client struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter hands out one token bucket per client IP. Buckets idle for
// longer than clientIdleTTL are dropped.
type RateLimiter struct {
	mu        sync.Mutex
	clients   map[string]*client
	rps       rate.Limit
	burst     int
	lastPrune time.Time
	now       func() time.Time
}

func NewRateLimiter(rps float64, burst int) *RateLimiter {
	return &RateLimiter{clients: map[string]*client{}, rps: rate.Limit(rps), burst: burst, now: time.Now}
}

func (r *RateLimiter) limiter(key string) *rate.Limiter {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	if now.Sub(r.lastPrune) >= time.Minute {
		for k, cl := range r.clients {
			if now.Sub(cl.lastSeen) > clientIdleTTL {
				delete(r.clients, k)
			}
		}
		r.lastPrune = now
	}

	cl, ok := r.clients[key]
	if !ok {
		cl = &client{limiter: rate.NewLimiter(r.rps, r.burst)}
		r.clients[key] = cl
	}
	cl.lastSeen = now
	return cl.limiter
}

func (r *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !r.limiter(c.ClientIP()).Allow() {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "too many requests"})
			return
		}
		c.Next()
	}
}
