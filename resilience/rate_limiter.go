package resilience

import (
	"context"
	"sync"
	"time"

	"github.com/kbukum/seqkit/validation"
)

// RateLimiterConfig configures a rate limiter.
type RateLimiterConfig struct {
	// Rate is the number of tokens added per second.
	Rate float64 `mapstructure:"rate" yaml:"rate" validate:"gt=0"`
	// Burst is the bucket size. Zero uses Rate rounded down, at least 1.
	Burst int `mapstructure:"burst" yaml:"burst" validate:"gte=0"`
}

// Validate checks the configuration.
func (c *RateLimiterConfig) Validate() error {
	return validation.Struct(c)
}

// RateLimiter is a token bucket. It is safe for concurrent use.
type RateLimiter struct {
	rate  float64
	burst int

	mu         sync.Mutex
	tokens     float64
	lastRefill time.Time
}

// NewRateLimiter creates a full bucket. A non-positive Rate defaults to 10/s.
func NewRateLimiter(cfg RateLimiterConfig) *RateLimiter {
	if cfg.Rate <= 0 {
		cfg.Rate = 10
	}
	if cfg.Burst <= 0 {
		cfg.Burst = max(int(cfg.Rate), 1)
	}
	return &RateLimiter{
		rate:       cfg.Rate,
		burst:      cfg.Burst,
		tokens:     float64(cfg.Burst),
		lastRefill: time.Now(),
	}
}

// Allow takes a token if one is available.
func (rl *RateLimiter) Allow() bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	rl.refill()
	if rl.tokens >= 1 {
		rl.tokens--
		return true
	}
	return false
}

// Wait takes a token, blocking until one is available or ctx is done.
// A token reserved by a cancelled Wait is not returned to the bucket.
func (rl *RateLimiter) Wait(ctx context.Context) error {
	wait := rl.reserve()
	if wait <= 0 {
		return nil
	}

	timer := time.NewTimer(wait)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// Tokens returns the number of available tokens. It may be negative while
// waiters hold reservations.
func (rl *RateLimiter) Tokens() float64 {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	rl.refill()
	return rl.tokens
}

// reserve takes a token, possibly going into debt, and returns how long the
// caller must wait for it.
func (rl *RateLimiter) reserve() time.Duration {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	rl.refill()

	rl.tokens--
	if rl.tokens >= 0 {
		return 0
	}
	return time.Duration(-rl.tokens / rl.rate * float64(time.Second))
}

func (rl *RateLimiter) refill() {
	now := time.Now()
	rl.tokens += now.Sub(rl.lastRefill).Seconds() * rl.rate
	rl.lastRefill = now
	if rl.tokens > float64(rl.burst) {
		rl.tokens = float64(rl.burst)
	}
}
