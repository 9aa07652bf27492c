// Package events provides the in-process pub/sub bus that decouples review
// mutations from asynchronous recomputation of derived catalog state.
//
// Delivery semantics are deliberately best-effort, at-most-once:
//   - Publish never blocks on handler completion and never surfaces a handler
//     failure to the caller. The review write has already committed; a stale
//     aggregate is preferable to a failed HTTP response.
//   - There is no retry, no dead-letter queue, and no persistence. A crash
//     between commit and dispatch drops the update until the next mutation on
//     that product. Handlers must be idempotent full recomputations.
//
// Handler outcomes (delivered, failed, dropped) are observable through
// structured logs only, never through return values.
package events

import (
	"context"
	"runtime/debug"
	"sync"
	"time"

	"github.com/ghuser/appmarket/pkg/logger"
)

const (
	// DefaultWorkers is the dispatch pool size: at most this many handler
	// invocations run concurrently.
	DefaultWorkers = 10

	defaultQueueDepth = 256
	shutdownTimeout   = 30 * time.Second
)

// Handler processes one event. Handlers may block (they run on pool workers,
// not on the publishing goroutine); a returned error is logged and discarded.
type Handler func(ctx context.Context, e Event) error

// Bus is an in-process pub/sub registry mapping event kind to an ordered list
// of handlers. Construct one per process with New and pass it by reference to
// the publishing code path and the startup subscription call — there is no
// package-level instance.
//
// The subscription map is populated during startup and read-only afterwards;
// the lock exists for test instrumentation, not steady-state contention.
type Bus struct {
	log logger.Logger

	mu   sync.RWMutex
	subs map[Kind][]Handler

	jobsMu sync.RWMutex // serializes Publish sends against Shutdown's close
	jobs   chan dispatch
	closed bool

	workers sync.WaitGroup
}

// dispatch is one (handler, event) unit of work submitted to the pool.
// It has no identity beyond the submission and is not tracked after completion.
type dispatch struct {
	ctx context.Context
	h   Handler
	e   Event
}

// Option configures a Bus.
type Option func(*busOptions)

type busOptions struct {
	workers    int
	queueDepth int
}

// WithWorkers sets the dispatch pool size (default DefaultWorkers).
func WithWorkers(n int) Option {
	return func(o *busOptions) {
		if n > 0 {
			o.workers = n
		}
	}
}

// WithQueueDepth sets the pending-dispatch queue capacity (default 256).
func WithQueueDepth(n int) Option {
	return func(o *busOptions) {
		if n > 0 {
			o.queueDepth = n
		}
	}
}

// New constructs a Bus and starts its worker pool.
func New(log logger.Logger, opts ...Option) *Bus {
	o := &busOptions{workers: DefaultWorkers, queueDepth: defaultQueueDepth}
	for _, opt := range opts {
		opt(o)
	}

	b := &Bus{
		log:  log,
		subs: make(map[Kind][]Handler),
		jobs: make(chan dispatch, o.queueDepth),
	}

	b.workers.Add(o.workers)
	for i := 0; i < o.workers; i++ {
		go b.worker()
	}
	return b
}

// Subscribe appends handler to the list for kind. Registering the same
// handler twice causes duplicate invocation; avoiding that is the caller's
// responsibility.
func (b *Bus) Subscribe(kind Kind, h Handler) {
	b.mu.Lock()
	b.subs[kind] = append(b.subs[kind], h)
	n := len(b.subs[kind])
	b.mu.Unlock()

	b.log.Info("event handler subscribed", "kind", kind.String(), "handlers", n)
}

// Publish hands e to every handler registered for its kind via the worker
// pool and returns immediately. With no handlers registered it is a no-op —
// the expected state before startup wiring runs.
//
// The dispatch context detaches from ctx's cancellation (the handler must
// outlive the triggering request) but keeps its values so trace and request
// IDs flow into handler logs.
func (b *Bus) Publish(ctx context.Context, e Event) {
	b.mu.RLock()
	handlers := b.subs[e.Kind()]
	b.mu.RUnlock()

	if len(handlers) == 0 {
		b.log.DebugContext(ctx, "no handlers registered", "kind", e.Kind().String())
		return
	}

	dctx := context.WithoutCancel(ctx)

	b.jobsMu.RLock()
	defer b.jobsMu.RUnlock()
	if b.closed {
		b.log.WarnContext(ctx, "bus shut down, dropping event",
			"kind", e.Kind().String(), "product_id", e.Product())
		return
	}

	for _, h := range handlers {
		select {
		case b.jobs <- dispatch{ctx: dctx, h: h, e: e}:
		default:
			// Queue saturated. Dropping is within the at-most-once contract,
			// but it must be visible.
			b.log.ErrorContext(ctx, "dispatch queue full, dropping event",
				"kind", e.Kind().String(), "product_id", e.Product())
		}
	}
}

// Shutdown stops accepting new dispatches and waits for queued and in-flight
// handlers to drain, up to 30 seconds. Call once at process teardown.
func (b *Bus) Shutdown() {
	b.jobsMu.Lock()
	if b.closed {
		b.jobsMu.Unlock()
		return
	}
	b.closed = true
	close(b.jobs)
	b.jobsMu.Unlock()

	done := make(chan struct{})
	go func() {
		b.workers.Wait()
		close(done)
	}()

	select {
	case <-done:
		b.log.Info("event bus drained")
	case <-time.After(shutdownTimeout):
		b.log.Error("timed out waiting for in-flight event handlers")
	}
}

func (b *Bus) worker() {
	defer b.workers.Done()
	for d := range b.jobs {
		b.run(d)
	}
}

// run executes one dispatch. Nothing escapes: errors are logged, panics are
// recovered with a stack trace, and the worker survives to take the next job.
func (b *Bus) run(d dispatch) {
	defer func() {
		if r := recover(); r != nil {
			b.log.ErrorContext(d.ctx, "event handler panicked",
				"kind", d.e.Kind().String(),
				"product_id", d.e.Product(),
				"panic", r,
				"stack", string(debug.Stack()),
			)
		}
	}()

	if err := d.h(d.ctx, d.e); err != nil {
		b.log.ErrorContext(d.ctx, "event handler failed",
			"kind", d.e.Kind().String(),
			"product_id", d.e.Product(),
			"error", err,
		)
		return
	}
	b.log.DebugContext(d.ctx, "event handler completed",
		"kind", d.e.Kind().String(), "product_id", d.e.Product())
}
