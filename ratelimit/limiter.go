// Package ratelimit paces requests per domain using golang.org/x/time/rate.
package ratelimit

import (
	"context"
	"sync"

	"github.com/fwojciec/linkex"
	"golang.org/x/time/rate"
)

var _ linkex.DomainLimiter = (*Limiter)(nil)

// Limiter provides per-domain rate limiting using token buckets.
// Each domain gets its own limiter, so requests to one domain never wait
// on another.
type Limiter struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	limit    rate.Limit
}

// NewLimiter creates a new Limiter allowing rps requests per second per domain
// with a burst of 1. A non-positive rps disables limiting.
func NewLimiter(rps float64) *Limiter {
	limit := rate.Limit(rps)
	if rps <= 0 {
		limit = rate.Inf
	}
	return &Limiter{
		limiters: make(map[string]*rate.Limiter),
		limit:    limit,
	}
}

// Wait blocks until the rate limit allows a request to the domain.
// Returns an error if the context is canceled before the wait completes.
func (l *Limiter) Wait(ctx context.Context, domain string) error {
	l.mu.Lock()
	limiter, ok := l.limiters[domain]
	if !ok {
		limiter = rate.NewLimiter(l.limit, 1)
		l.limiters[domain] = limiter
	}
	l.mu.Unlock()

	return limiter.Wait(ctx)
}
