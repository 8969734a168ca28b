package middleware

import (
	"net/http"
	"sync/atomic"

	"kanjize-hq/kanjize/pkg/server/types"
)

// ConcurrencyLimiter is a lock-free counting semaphore bounding in-flight
// requests.
type ConcurrencyLimiter struct {
	limit   int64
	current atomic.Int64
}

// NewConcurrencyLimiter creates a limiter admitting at most limit requests
// at a time.
func NewConcurrencyLimiter(limit int) *ConcurrencyLimiter {
	return &ConcurrencyLimiter{limit: int64(limit)}
}

// Acquire takes a slot and reports whether one was free. A successful
// Acquire must be paired with Release.
func (l *ConcurrencyLimiter) Acquire() bool {
	if l.current.Add(1) > l.limit {
		l.current.Add(-1)
		return false
	}
	return true
}

// Release returns a slot taken by Acquire.
func (l *ConcurrencyLimiter) Release() {
	l.current.Add(-1)
}

// InFlight returns the number of slots currently held.
func (l *ConcurrencyLimiter) InFlight() int {
	return int(l.current.Load())
}

// ConcurrencyLimit rejects requests with 503 while limiter is full. A nil
// limiter disables the middleware.
func ConcurrencyLimit(limiter *ConcurrencyLimiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if limiter == nil {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !limiter.Acquire() {
				w.Header().Set("Retry-After", "1")
				WriteError(w, types.NewOverloadedError("too many concurrent requests"))
				return
			}
			defer limiter.Release()
			next.ServeHTTP(w, r)
		})
	}
}
