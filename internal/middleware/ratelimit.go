package middleware

import (
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"user-management-backend/pkg/response"
)

// clientLimiters tracks one token bucket per client IP.
type clientLimiters struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
}

func newClientLimiters() *clientLimiters {
	return &clientLimiters{limiters: make(map[string]*rate.Limiter)}
}

func (cl *clientLimiters) get(key string, rps float64, burst int) *rate.Limiter {
	cl.mu.Lock()
	defer cl.mu.Unlock()

	lim, ok := cl.limiters[key]
	if !ok {
		lim = rate.NewLimiter(rate.Limit(rps), burst)
		cl.limiters[key] = lim
	}
	return lim
}

// RateLimit rejects clients that exceed the configured request rate. Rejected
// requests get the same uniform error body as every other failure.
func (m Middleware) RateLimit() gin.HandlerFunc {
	if !m.rateLimit.Enabled {
		return func(c *gin.Context) { c.Next() }
	}

	return func(c *gin.Context) {
		lim := m.limiters.get(c.ClientIP(), m.rateLimit.RequestsPerSecond, m.rateLimit.Burst)
		if !lim.Allow() {
			m.l.Warnf(c.Request.Context(), "rate limit exceeded for %s", c.ClientIP())
			response.WriteError(c, response.NewError(
				http.StatusTooManyRequests,
				c.Request.URL.Path,
				http.StatusText(http.StatusTooManyRequests),
				"too many requests, please slow down",
			))
			return
		}
		c.Next()
	}
}
