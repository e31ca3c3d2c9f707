package utils

import (
	"fmt"
	"time"
)

// RetryConfig holds the parameters for the retry strategy. The delay doubles
// after every failed attempt.
type RetryConfig struct {
	MaxAttempts int
	BaseDelay   time.Duration
	Logger      *Logger
}

// Do executes fn until it succeeds or MaxAttempts is exhausted, returning
// the last error in the latter case. A MaxAttempts below 1 is treated as a
// single attempt.
func (r *RetryConfig) Do(operationName string, fn func() error) error {
	attempts := r.MaxAttempts
	if attempts < 1 {
		attempts = 1
	}

	var lastErr error
	delay := r.BaseDelay

	for attempt := 1; attempt <= attempts; attempt++ {
		lastErr = fn()
		if lastErr == nil {
			if attempt > 1 {
				r.Logger.Info("[retry] %s succeeded on attempt %d/%d", operationName, attempt, attempts)
			}
			return nil
		}

		if attempt < attempts {
			r.Logger.Warn("[retry] %s failed (attempt %d/%d): %v — retrying in %v",
				operationName, attempt, attempts, lastErr, delay)
			time.Sleep(delay)
			delay *= 2
		}
	}

	return fmt.Errorf("%s failed after %d attempts: %w", operationName, attempts, lastErr)
}
