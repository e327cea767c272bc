// Package ratelimiter throttles requests per caller with a token bucket each.
package ratelimiter

import (
	"strings"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

const (
	defaultIdleTTL = 10 * time.Minute
	sweepEvery     = 512
)

// CallerLimiter keeps one token bucket per caller key and forgets callers that
// have been idle for longer than the idle TTL.
type CallerLimiter struct {
	limit   rate.Limit
	burst   int
	idleTTL time.Duration

	mu      sync.Mutex
	buckets map[string]*bucket
	calls   uint64
}

type bucket struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// New returns a limiter allowing rps requests per second with the given burst per
// caller. It returns nil, which allows everything, when rps or burst is not
// positive.
func New(rps float64, burst int, idleTTL time.Duration) *CallerLimiter {
	if rps <= 0 || burst <= 0 {
		return nil
	}
	if idleTTL <= 0 {
		idleTTL = defaultIdleTTL
	}
	return &CallerLimiter{
		limit:   rate.Limit(rps),
		burst:   burst,
		idleTTL: idleTTL,
		buckets: make(map[string]*bucket),
	}
}

// Allow consumes one token of caller's bucket at now. Anonymous callers share
// the empty key.
func (l *CallerLimiter) Allow(caller string, now time.Time) bool {
	if l == nil {
		return true
	}
	caller = strings.ToLower(strings.TrimSpace(caller))

	l.mu.Lock()
	defer l.mu.Unlock()

	b, ok := l.buckets[caller]
	if !ok {
		b = &bucket{limiter: rate.NewLimiter(l.limit, l.burst)}
		l.buckets[caller] = b
	}
	b.lastSeen = now
	allowed := b.limiter.AllowN(now, 1)

	l.calls++
	if l.calls%sweepEvery == 0 {
		l.sweep(now)
	}
	return allowed
}

// Size reports how many callers are tracked.
func (l *CallerLimiter) Size() int {
	if l == nil {
		return 0
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.buckets)
}

func (l *CallerLimiter) sweep(now time.Time) {
	cutoff := now.Add(-l.idleTTL)
	for k, b := range l.buckets {
		if b.lastSeen.Before(cutoff) {
			delete(l.buckets, k)
		}
	}
}
