package usecase

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestRetryPolicy_StopsOnSuccess(t *testing.T) {
	calls := 0
	err := FixedRetry(3, 0).Do(context.Background(), func(attempt int) error {
		calls++
		if attempt < 2 {
			return errBackend
		}
		return nil
	})

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if calls != 2 {
		t.Errorf("expected 2 calls, got %d", calls)
	}
}

func TestRetryPolicy_ReturnsLastError(t *testing.T) {
	errLast := errors.New("third failure")
	calls := 0
	err := FixedRetry(3, 0).Do(context.Background(), func(attempt int) error {
		calls++
		if attempt == 3 {
			return errLast
		}
		return errBackend
	})

	if !errors.Is(err, errLast) {
		t.Fatalf("expected last error, got %v", err)
	}
	if calls != 3 {
		t.Errorf("expected 3 calls, got %d", calls)
	}
}

func TestRetryPolicy_NoDelayAfterLastAttempt(t *testing.T) {
	var delays []int
	policy := RetryPolicy{
		MaxAttempts: 3,
		Delay: func(attempt int) time.Duration {
			delays = append(delays, attempt)
			return 0
		},
	}

	_ = policy.Do(context.Background(), func(int) error { return errBackend })

	if len(delays) != 2 || delays[0] != 1 || delays[1] != 2 {
		t.Errorf("expected delays after attempts 1 and 2 only, got %v", delays)
	}
}

func TestRetryPolicy_AtLeastOneAttempt(t *testing.T) {
	calls := 0
	_ = RetryPolicy{}.Do(context.Background(), func(int) error {
		calls++
		return errBackend
	})

	if calls != 1 {
		t.Errorf("expected a single attempt, got %d", calls)
	}
}

func TestRetryPolicy_ContextCancelledDuringDelay(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	calls := 0

	err := FixedRetry(3, time.Hour).Do(ctx, func(int) error {
		calls++
		cancel()
		return errBackend
	})

	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if calls != 1 {
		t.Errorf("expected no attempt after cancellation, got %d", calls)
	}
}
