package events

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/ghuser/appmarket/pkg/config"
	"github.com/ghuser/appmarket/pkg/logger"
)

func nopLogger() logger.Logger {
	return logger.New(&config.Config{LogLevel: "error"})
}

func createdEvent() ReviewCreated {
	return ReviewCreated{
		ProductID:  "65a1b2c3d4e5f6a7b8c9d0e1",
		ReviewID:   uuid.New(),
		UserID:     uuid.New(),
		Rating:     4,
		OccurredAt: time.Now().UTC(),
	}
}

// TestPublish_DeliversToSubscriber verifies a subscribed handler receives the
// published event on a pool worker.
func TestPublish_DeliversToSubscriber(t *testing.T) {
	bus := New(nopLogger())
	defer bus.Shutdown()

	got := make(chan Event, 1)
	bus.Subscribe(KindReviewCreated, func(_ context.Context, e Event) error {
		got <- e
		return nil
	})

	want := createdEvent()
	bus.Publish(context.Background(), want)

	select {
	case e := <-got:
		if e.Product() != want.ProductID {
			t.Errorf("expected product %s, got %s", want.ProductID, e.Product())
		}
		if e.Kind() != KindReviewCreated {
			t.Errorf("expected kind %s, got %s", KindReviewCreated, e.Kind())
		}
	case <-time.After(2 * time.Second):
		t.Fatal("handler was not invoked")
	}
}

// TestPublish_NoHandlers_NoOp verifies publish with zero registered handlers
// returns without error or panic — the expected state before startup wiring.
func TestPublish_NoHandlers_NoOp(t *testing.T) {
	bus := New(nopLogger())
	defer bus.Shutdown()

	bus.Publish(context.Background(), createdEvent())
	bus.Publish(context.Background(), ReviewDeleted{ProductID: "p", ReviewID: uuid.New()})
}

// TestPublish_NonBlocking verifies publish returns promptly even when every
// handler is slower than the test would tolerate synchronously.
func TestPublish_NonBlocking(t *testing.T) {
	bus := New(nopLogger(), WithWorkers(1))

	release := make(chan struct{})
	bus.Subscribe(KindReviewCreated, func(_ context.Context, _ Event) error {
		<-release
		return nil
	})

	start := time.Now()
	bus.Publish(context.Background(), createdEvent())
	if elapsed := time.Since(start); elapsed > 500*time.Millisecond {
		t.Fatalf("publish blocked for %s", elapsed)
	}

	close(release)
	bus.Shutdown()
}

// TestPublish_HandlerPanicIsolated verifies a panicking handler does not
// prevent other handlers from running and does not kill the worker pool.
func TestPublish_HandlerPanicIsolated(t *testing.T) {
	bus := New(nopLogger(), WithWorkers(1))
	defer bus.Shutdown()

	var survived atomic.Int32
	bus.Subscribe(KindReviewCreated, func(_ context.Context, _ Event) error {
		panic("handler bug")
	})
	bus.Subscribe(KindReviewCreated, func(_ context.Context, _ Event) error {
		survived.Add(1)
		return nil
	})

	// Two publishes through a single worker: the panicking handler runs twice
	// and must not take the worker down.
	bus.Publish(context.Background(), createdEvent())
	bus.Publish(context.Background(), createdEvent())

	deadline := time.After(2 * time.Second)
	for survived.Load() < 2 {
		select {
		case <-deadline:
			t.Fatalf("expected 2 invocations of surviving handler, got %d", survived.Load())
		case <-time.After(10 * time.Millisecond):
		}
	}
}

// TestPublish_HandlerErrorDoesNotPropagate verifies handler errors terminate
// at the logging boundary and later dispatches still run.
func TestPublish_HandlerErrorDoesNotPropagate(t *testing.T) {
	bus := New(nopLogger(), WithWorkers(1))
	defer bus.Shutdown()

	var calls atomic.Int32
	bus.Subscribe(KindReviewUpdated, func(_ context.Context, _ Event) error {
		calls.Add(1)
		return errors.New("downstream unavailable")
	})

	bus.Publish(context.Background(), ReviewUpdated{ProductID: "p1", ReviewID: uuid.New(), Rating: 2})
	bus.Publish(context.Background(), ReviewUpdated{ProductID: "p2", ReviewID: uuid.New(), Rating: 3})

	deadline := time.After(2 * time.Second)
	for calls.Load() < 2 {
		select {
		case <-deadline:
			t.Fatalf("expected 2 calls, got %d", calls.Load())
		case <-time.After(10 * time.Millisecond):
		}
	}
}

// TestSubscribe_DuplicateHandlerInvokedTwice verifies duplicate registration
// causes duplicate invocation, as documented.
func TestSubscribe_DuplicateHandlerInvokedTwice(t *testing.T) {
	bus := New(nopLogger())
	defer bus.Shutdown()

	var calls atomic.Int32
	var wg sync.WaitGroup
	wg.Add(2)
	h := func(_ context.Context, _ Event) error {
		calls.Add(1)
		wg.Done()
		return nil
	}
	bus.Subscribe(KindReviewDeleted, h)
	bus.Subscribe(KindReviewDeleted, h)

	bus.Publish(context.Background(), ReviewDeleted{ProductID: "p", ReviewID: uuid.New()})

	waitDone := make(chan struct{})
	go func() { wg.Wait(); close(waitDone) }()
	select {
	case <-waitDone:
	case <-time.After(2 * time.Second):
		t.Fatalf("expected 2 invocations, got %d", calls.Load())
	}
}

// TestSubscribe_KindIsolation verifies handlers only receive events of the
// kind they subscribed to.
func TestSubscribe_KindIsolation(t *testing.T) {
	bus := New(nopLogger())

	var created, deleted atomic.Int32
	bus.Subscribe(KindReviewCreated, func(_ context.Context, _ Event) error {
		created.Add(1)
		return nil
	})
	bus.Subscribe(KindReviewDeleted, func(_ context.Context, _ Event) error {
		deleted.Add(1)
		return nil
	})

	bus.Publish(context.Background(), createdEvent())
	bus.Shutdown() // drains before asserting

	if created.Load() != 1 {
		t.Errorf("expected 1 created invocation, got %d", created.Load())
	}
	if deleted.Load() != 0 {
		t.Errorf("expected 0 deleted invocations, got %d", deleted.Load())
	}
}

// TestShutdown_DrainsInFlight verifies queued dispatches complete before
// Shutdown returns.
func TestShutdown_DrainsInFlight(t *testing.T) {
	bus := New(nopLogger(), WithWorkers(2))

	var calls atomic.Int32
	bus.Subscribe(KindReviewCreated, func(_ context.Context, _ Event) error {
		time.Sleep(50 * time.Millisecond)
		calls.Add(1)
		return nil
	})

	for i := 0; i < 5; i++ {
		bus.Publish(context.Background(), createdEvent())
	}
	bus.Shutdown()

	if calls.Load() != 5 {
		t.Errorf("expected 5 completed dispatches after shutdown, got %d", calls.Load())
	}
}

// TestShutdown_Idempotent verifies repeated shutdowns and post-shutdown
// publishes are safe no-ops.
func TestShutdown_Idempotent(t *testing.T) {
	bus := New(nopLogger())
	bus.Subscribe(KindReviewCreated, func(_ context.Context, _ Event) error { return nil })

	bus.Shutdown()
	bus.Shutdown()
	bus.Publish(context.Background(), createdEvent()) // dropped, no panic
}

// TestPublish_DetachesFromRequestCancellation verifies the dispatch context
// survives cancellation of the publishing request's context.
func TestPublish_DetachesFromRequestCancellation(t *testing.T) {
	bus := New(nopLogger())
	defer bus.Shutdown()

	ctxErr := make(chan error, 1)
	bus.Subscribe(KindReviewCreated, func(ctx context.Context, _ Event) error {
		ctxErr <- ctx.Err()
		return nil
	})

	ctx, cancel := context.WithCancel(context.Background())
	bus.Publish(ctx, createdEvent())
	cancel()

	select {
	case err := <-ctxErr:
		if err != nil {
			t.Errorf("expected live dispatch context, got %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("handler was not invoked")
	}
}
