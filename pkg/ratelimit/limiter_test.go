package ratelimit

import (
	"context"
	"testing"
	"time"
)

func TestWaitUnderLimit(t *testing.T) {
	l := New(3)
	ctx := context.Background()
	for i := 0; i < 3; i++ {
		if err := l.Wait(ctx); err != nil {
			t.Fatalf("Wait() error = %v", err)
		}
	}
	if got := l.Remaining(); got != 0 {
		t.Errorf("Remaining() = %d, want 0", got)
	}
}

func TestWaitSleepsWhenExhausted(t *testing.T) {
	clock := time.Now()
	slept := time.Duration(0)

	l := New(2)
	l.now = func() time.Time { return clock }
	l.sleep = func(_ context.Context, d time.Duration) error {
		slept += d
		clock = clock.Add(d)
		return nil
	}

	ctx := context.Background()
	for i := 0; i < 3; i++ {
		if err := l.Wait(ctx); err != nil {
			t.Fatalf("Wait() error = %v", err)
		}
	}

	if slept < time.Minute {
		t.Errorf("third request slept %s, want at least the full window", slept)
	}
}

func TestWaitHonorsCancellation(t *testing.T) {
	l := New(1)
	ctx, cancel := context.WithCancel(context.Background())

	if err := l.Wait(ctx); err != nil {
		t.Fatalf("Wait() error = %v", err)
	}
	cancel()
	if err := l.Wait(ctx); err == nil {
		t.Error("Wait() should fail once the context is cancelled")
	}
}

func TestWindowExpiryFreesSlots(t *testing.T) {
	clock := time.Now()
	l := New(1)
	l.now = func() time.Time { return clock }

	if err := l.Wait(context.Background()); err != nil {
		t.Fatalf("Wait() error = %v", err)
	}
	clock = clock.Add(61 * time.Second)
	if got := l.Remaining(); got != 1 {
		t.Errorf("Remaining() = %d after window expiry, want 1", got)
	}
}
