package usecase

import (
	"context"
	"time"
)

// RetryPolicy bounds how often an operation is attempted and how long to
// wait between attempts. Delay receives the 1-based number of the attempt
// that just failed.
type RetryPolicy struct {
	MaxAttempts int
	Delay       func(attempt int) time.Duration
}

// FixedRetry retries up to attempts times with a constant delay.
func FixedRetry(attempts int, delay time.Duration) RetryPolicy {
	return RetryPolicy{
		MaxAttempts: attempts,
		Delay:       func(int) time.Duration { return delay },
	}
}

// Do runs fn until it succeeds or the attempts are exhausted and returns the
// last error. No wait follows the final attempt.
func (p RetryPolicy) Do(ctx context.Context, fn func(attempt int) error) error {
	attempts := p.MaxAttempts
	if attempts < 1 {
		attempts = 1
	}

	var err error
	for attempt := 1; attempt <= attempts; attempt++ {
		if err = fn(attempt); err == nil {
			return nil
		}
		if attempt == attempts {
			break
		}
		var delay time.Duration
		if p.Delay != nil {
			delay = p.Delay(attempt)
		}
		if sleepErr := sleep(ctx, delay); sleepErr != nil {
			return sleepErr
		}
	}
	return err
}

// sleep waits for d or until ctx is done.
func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
