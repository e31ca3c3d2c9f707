package utils

import (
	"sync"
	"time"
)

// RateLimiter enforces a minimum interval between consecutive requests.
// Scraping is sequential, but the limiter is still safe for concurrent use.
type RateLimiter struct {
	mu          sync.Mutex
	minInterval time.Duration
	lastRequest time.Time
}

// NewRateLimiter creates a RateLimiter with the given interval in milliseconds.
func NewRateLimiter(intervalMs int) *RateLimiter {
	return &RateLimiter{
		minInterval: time.Duration(intervalMs) * time.Millisecond,
	}
}

// Wait blocks until at least the configured interval has passed since the
// previous request. The first call never blocks.
func (rl *RateLimiter) Wait() {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	if !rl.lastRequest.IsZero() {
		if elapsed := time.Since(rl.lastRequest); elapsed < rl.minInterval {
			time.Sleep(rl.minInterval - elapsed)
		}
	}
	rl.lastRequest = time.Now()
}
