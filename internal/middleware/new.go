package middleware

import (
	"user-management-backend/config"
	"user-management-backend/pkg/log"
)

// Middleware bundles the cross-cutting gin handlers: panic recovery, error
// translation and rate limiting.
type Middleware struct {
	l         log.Logger
	rateLimit config.RateLimitConfig
	limiters  *clientLimiters
}

// New creates the middleware set.
func New(l log.Logger, rateLimit config.RateLimitConfig) Middleware {
	return Middleware{
		l:         l,
		rateLimit: rateLimit,
		limiters:  newClientLimiters(),
	}
}
