package events

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"
)

// ErrBridgeTimeout is returned by Bridge.Call when the owner goroutine does
// not accept or complete the call within the bridge timeout.
var ErrBridgeTimeout = errors.New("bridge call timed out")

// DefaultBridgeTimeout bounds how long a pool worker waits for the owner
// goroutine to run its closure.
const DefaultBridgeTimeout = 30 * time.Second

// Bridge serializes closures onto a single owner goroutine. Pool workers that
// need to touch the catalog write path hand their closure across a channel
// and block until the owner has executed it (or the timeout elapses), so all
// catalog rating writes issue from one goroutine in submission order.
//
// When the owner is not running — isolated tests, teardown races — Call falls
// back to executing the closure inline on the calling goroutine. The race on
// observing the running flag is benign: the worst case is one inline run.
type Bridge struct {
	calls   chan bridgeCall
	running atomic.Bool
	timeout time.Duration
}

type bridgeCall struct {
	ctx  context.Context
	fn   func(context.Context) error
	done chan error // buffered so the owner never blocks on a timed-out caller
}

// BridgeOption configures a Bridge.
type BridgeOption func(*Bridge)

// WithBridgeTimeout overrides the hand-off timeout (default 30s).
func WithBridgeTimeout(d time.Duration) BridgeOption {
	return func(b *Bridge) {
		if d > 0 {
			b.timeout = d
		}
	}
}

// NewBridge constructs a Bridge. Start the owner loop with Run.
func NewBridge(opts ...BridgeOption) *Bridge {
	b := &Bridge{
		calls:   make(chan bridgeCall),
		timeout: DefaultBridgeTimeout,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Run is the owner loop. It executes handed-off closures serially until ctx
// is cancelled. Run once, from the composition root, on a dedicated goroutine.
func (b *Bridge) Run(ctx context.Context) {
	b.running.Store(true)
	defer b.running.Store(false)

	for {
		select {
		case <-ctx.Done():
			return
		case c := <-b.calls:
			c.done <- b.invoke(c.ctx, c.fn)
		}
	}
}

// Call executes fn on the owner goroutine and returns its result, waiting at
// most the bridge timeout for hand-off plus completion. If no owner is
// running, fn executes inline instead.
func (b *Bridge) Call(ctx context.Context, fn func(context.Context) error) error {
	if !b.running.Load() {
		return b.invoke(ctx, fn)
	}

	done := make(chan error, 1)
	timer := time.NewTimer(b.timeout)
	defer timer.Stop()

	select {
	case b.calls <- bridgeCall{ctx: ctx, fn: fn, done: done}:
	case <-timer.C:
		return fmt.Errorf("hand-off not accepted after %s: %w", b.timeout, ErrBridgeTimeout)
	case <-ctx.Done():
		return ctx.Err()
	}

	select {
	case err := <-done:
		return err
	case <-timer.C:
		return fmt.Errorf("no result after %s: %w", b.timeout, ErrBridgeTimeout)
	}
}

// invoke runs fn, converting a panic into an error so a broken closure cannot
// kill the owner loop or the calling worker.
func (b *Bridge) invoke(ctx context.Context, fn func(context.Context) error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("bridge closure panicked: %v", r)
		}
	}()
	return fn(ctx)
}
