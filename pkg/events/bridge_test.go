package events

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"
)

func startBridge(t *testing.T, b *Bridge) context.CancelFunc {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	go b.Run(ctx)
	deadline := time.After(time.Second)
	for !b.running.Load() {
		select {
		case <-deadline:
			t.Fatal("bridge owner did not start")
		case <-time.After(time.Millisecond):
		}
	}
	return cancel
}

// TestCall_NoOwner_RunsInline verifies Call executes the closure on the
// calling goroutine when no owner loop is running — the isolated-test path.
func TestCall_NoOwner_RunsInline(t *testing.T) {
	b := NewBridge()

	ran := false
	err := b.Call(context.Background(), func(_ context.Context) error {
		ran = true
		return nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ran {
		t.Fatal("closure did not run")
	}
}

// TestCall_OwnerExecutes verifies the result of a closure executed by the
// owner loop is returned to the caller.
func TestCall_OwnerExecutes(t *testing.T) {
	b := NewBridge()
	cancel := startBridge(t, b)
	defer cancel()

	sentinel := errors.New("write failed")
	if err := b.Call(context.Background(), func(_ context.Context) error { return nil }); err != nil {
		t.Errorf("expected nil, got %v", err)
	}
	if err := b.Call(context.Background(), func(_ context.Context) error { return sentinel }); !errors.Is(err, sentinel) {
		t.Errorf("expected sentinel error, got %v", err)
	}
}

// TestCall_Serializes verifies concurrent callers are executed one at a time
// by the owner. The unguarded counter is safe only under serial execution;
// the race detector flags any violation.
func TestCall_Serializes(t *testing.T) {
	b := NewBridge()
	cancel := startBridge(t, b)
	defer cancel()

	counter := 0
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = b.Call(context.Background(), func(_ context.Context) error {
				counter++
				return nil
			})
		}()
	}
	wg.Wait()

	if counter != 20 {
		t.Errorf("expected 20 serialized increments, got %d", counter)
	}
}

// TestCall_Timeout verifies a slow closure yields ErrBridgeTimeout without
// crashing the owner, which stays available for later calls.
func TestCall_Timeout(t *testing.T) {
	b := NewBridge(WithBridgeTimeout(50 * time.Millisecond))
	cancel := startBridge(t, b)
	defer cancel()

	err := b.Call(context.Background(), func(_ context.Context) error {
		time.Sleep(300 * time.Millisecond)
		return nil
	})
	if !errors.Is(err, ErrBridgeTimeout) {
		t.Fatalf("expected ErrBridgeTimeout, got %v", err)
	}

	// Owner finishes the slow closure eventually and serves the next call.
	deadline := time.After(2 * time.Second)
	for {
		err := b.Call(context.Background(), func(_ context.Context) error { return nil })
		if err == nil {
			return
		}
		select {
		case <-deadline:
			t.Fatalf("owner unavailable after timeout: %v", err)
		case <-time.After(20 * time.Millisecond):
		}
	}
}

// TestCall_PanicRecovered verifies a panicking closure is converted to an
// error on both the owner and inline paths.
func TestCall_PanicRecovered(t *testing.T) {
	t.Run("inline", func(t *testing.T) {
		b := NewBridge()
		err := b.Call(context.Background(), func(_ context.Context) error { panic("boom") })
		if err == nil {
			t.Fatal("expected error from panicking closure")
		}
	})

	t.Run("owner", func(t *testing.T) {
		b := NewBridge()
		cancel := startBridge(t, b)
		defer cancel()

		if err := b.Call(context.Background(), func(_ context.Context) error { panic("boom") }); err == nil {
			t.Fatal("expected error from panicking closure")
		}
		// Owner loop survives.
		if err := b.Call(context.Background(), func(_ context.Context) error { return nil }); err != nil {
			t.Errorf("owner did not survive panic: %v", err)
		}
	})
}

// TestCall_AfterOwnerStops verifies Call falls back to inline execution once
// the owner loop has exited.
func TestCall_AfterOwnerStops(t *testing.T) {
	b := NewBridge(WithBridgeTimeout(100 * time.Millisecond))
	cancel := startBridge(t, b)
	cancel()

	deadline := time.After(time.Second)
	for b.running.Load() {
		select {
		case <-deadline:
			t.Fatal("bridge owner did not stop")
		case <-time.After(time.Millisecond):
		}
	}

	ran := false
	if err := b.Call(context.Background(), func(_ context.Context) error { ran = true; return nil }); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ran {
		t.Fatal("closure did not run inline after owner stopped")
	}
}
