package util

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestRetrySucceedsAfterFailures(t *testing.T) {
	calls := 0
	err := Retry(context.Background(), 3, time.Millisecond, func() error {
		calls++
		if calls < 3 {
			return errors.New("transient")
		}
		return nil
	})
	if err != nil {
		t.Fatalf("Retry returned error: %v", err)
	}
	if calls != 3 {
		t.Fatalf("fn called %d times, want 3", calls)
	}
}

func TestRetryReturnsLastError(t *testing.T) {
	wantErr := errors.New("still failing")
	calls := 0
	err := Retry(context.Background(), 3, time.Millisecond, func() error {
		calls++
		return wantErr
	})
	if !errors.Is(err, wantErr) {
		t.Fatalf("Retry returned %v, want %v", err, wantErr)
	}
	if calls != 3 {
		t.Fatalf("fn called %d times, want 3", calls)
	}
}

func TestRetryStopsOnCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	calls := 0
	err := Retry(ctx, 5, time.Hour, func() error {
		calls++
		return errors.New("fail")
	})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("Retry returned %v, want context.Canceled", err)
	}
	if calls != 1 {
		t.Fatalf("fn called %d times after cancellation, want 1", calls)
	}
}

func TestRateLimiterFirstTokenImmediate(t *testing.T) {
	rl := NewRateLimiter(60)
	start := time.Now()
	if err := rl.Wait(context.Background()); err != nil {
		t.Fatalf("Wait returned error: %v", err)
	}
	if time.Since(start) > 100*time.Millisecond {
		t.Fatalf("first token took too long")
	}
}

func TestRateLimiterHonorsCancellation(t *testing.T) {
	rl := NewRateLimiter(1) // one per minute: second token is far away
	if err := rl.Wait(context.Background()); err != nil {
		t.Fatalf("first Wait returned error: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	if err := rl.Wait(ctx); !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("Wait returned %v, want deadline exceeded", err)
	}
}
