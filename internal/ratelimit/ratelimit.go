package ratelimit

import (
	"context"
	"sync"
	"time"
)

// Finnhub's documented request budget.
const (
	// RequestsPerSecond is the documented sustained limit for paid plans.
	RequestsPerSecond = 30

	// WindowSeconds is the averaging window used by the windowed strategy:
	// batch workloads may burst up to a full window's worth of requests and
	// then throttle back to the sustained rate.
	WindowSeconds = 15
)

// Limiter is a token-bucket admission gate. Every outbound request spends
// one token; tokens accrue at a fixed rate up to a capacity. The limiter
// never rejects — it only delays. Each Limiter owns an independent budget;
// two clients sharing one remote quota need to share one Limiter.
type Limiter struct {
	mu       sync.Mutex
	capacity float64
	rate     float64 // tokens per second
	tokens   float64
	last     time.Time

	now func() time.Time // test hook
}

// New creates a limiter with the given bucket capacity and refill rate
// (tokens per second). The bucket starts full. Capacity and rate below 1
// are clamped to 1.
func New(capacity, perSecond int) *Limiter {
	if capacity < 1 {
		capacity = 1
	}
	if perSecond < 1 {
		perSecond = 1
	}
	l := &Limiter{
		capacity: float64(capacity),
		rate:     float64(perSecond),
		tokens:   float64(capacity),
		now:      time.Now,
	}
	l.last = l.now()
	return l
}

// Default returns a limiter matching Finnhub's sustained per-second limit
// (30 tokens, refilled at 30/s).
func Default() *Limiter {
	return New(RequestsPerSecond, RequestsPerSecond)
}

// Windowed returns a limiter that averages the sustained rate over a
// 15-second window (450 tokens, refilled at 30/s). Bursty batch jobs
// drain the bucket quickly and then fall back to the sustained rate.
func Windowed() *Limiter {
	return New(RequestsPerSecond*WindowSeconds, RequestsPerSecond)
}

// refillLocked adds elapsed*rate tokens, saturating at capacity.
// Callers must hold mu. Refill and any subsequent decrement happen under
// one lock hold, so two concurrent acquisitions can never spend the same
// pre-refill snapshot.
func (l *Limiter) refillLocked() {
	now := l.now()
	elapsed := now.Sub(l.last).Seconds()
	if elapsed <= 0 {
		return
	}

	l.tokens += elapsed * l.rate
	if l.tokens > l.capacity {
		l.tokens = l.capacity
	}
	l.last = now
}

// Acquire blocks until a token is available or ctx is cancelled. A waiter
// that is cancelled has not been granted a token, so nothing leaks: tokens
// are only decremented at the moment of a successful grant.
func (l *Limiter) Acquire(ctx context.Context) error {
	for {
		l.mu.Lock()
		l.refillLocked()

		if l.tokens >= 1 {
			l.tokens--
			l.mu.Unlock()
			return nil
		}

		// Sleep long enough for one token to accrue, then recheck.
		// Waiters are not queued; wake order is not FIFO, but refill is
		// monotonic in time so every waiter eventually gets through.
		wait := time.Duration((1 - l.tokens) / l.rate * float64(time.Second))
		l.mu.Unlock()

		timer := time.NewTimer(wait)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
	}
}

// TryAcquire attempts to take a token without blocking. When no token is
// available it reports false along with the time until one accrues.
func (l *Limiter) TryAcquire() (ok bool, retryAfter time.Duration) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.refillLocked()

	if l.tokens >= 1 {
		l.tokens--
		return true, 0
	}

	return false, time.Duration((1 - l.tokens) / l.rate * float64(time.Second))
}

// Available returns the current whole-token count after refill.
func (l *Limiter) Available() int {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.refillLocked()
	return int(l.tokens)
}
