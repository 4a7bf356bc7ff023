// Package ratelimit gates outbound Hevo API calls with a fixed-window
// limiter that sleeps the calling goroutine when the per-minute quota is
// exhausted.
package ratelimit

import (
	"context"
	"sync"
	"time"
)

// DefaultRequestsPerMinute matches the Hevo public API quota.
const DefaultRequestsPerMinute = 100

// Limiter tracks request timestamps inside a sliding one-minute window.
// Wait blocks until a slot is free; the agent pipeline is single threaded
// so at most one caller ever sleeps, but the limiter is safe for
// concurrent use anyway.
type Limiter struct {
	mu       sync.Mutex
	limit    int
	window   time.Duration
	requests []time.Time
	now      func() time.Time
	sleep    func(context.Context, time.Duration) error
}

// New builds a limiter allowing limit requests per minute. A non-positive
// limit falls back to DefaultRequestsPerMinute.
func New(limit int) *Limiter {
	if limit <= 0 {
		limit = DefaultRequestsPerMinute
	}
	return &Limiter{
		limit:  limit,
		window: time.Minute,
		now:    time.Now,
		sleep:  sleepContext,
	}
}

// Wait blocks until the caller may issue a request and records it. Returns
// early with the context's error on cancellation.
func (l *Limiter) Wait(ctx context.Context) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	for {
		now := l.now()
		l.prune(now)
		if len(l.requests) < l.limit {
			l.requests = append(l.requests, now)
			return nil
		}
		// Sleep until the oldest request ages out of the window.
		wait := l.window - now.Sub(l.requests[0])
		if wait < 0 {
			wait = 0
		}
		if err := l.sleep(ctx, wait); err != nil {
			return err
		}
	}
}

// Remaining reports how many requests are still allowed in the current
// window.
func (l *Limiter) Remaining() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.prune(l.now())
	return l.limit - len(l.requests)
}

func (l *Limiter) prune(now time.Time) {
	cutoff := now.Add(-l.window)
	keep := l.requests[:0]
	for _, t := range l.requests {
		if t.After(cutoff) {
			keep = append(keep, t)
		}
	}
	l.requests = keep
}

func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
