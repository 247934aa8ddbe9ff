// Package debounce provides a timer-based coalescing primitive: a burst of
// values collapses into one callback carrying the last value seen, fired
// once the stream has been quiet for a fixed interval.
package debounce

import (
	"sync"
	"time"
)

// DefaultInterval is the quiet interval used when none is given. It is
// deliberately short; the point is to skip work while a signal is still
// streaming, not to add visible latency after it stops.
const DefaultInterval = 20 * time.Millisecond

// Debouncer coalesces Trigger calls. Last value wins: a newer Trigger
// supersedes a pending one and restarts the quiet interval. If triggers
// never stop arriving, the callback never fires; that is the contract,
// not a failure mode.
//
// The callback runs on a timer goroutine. A Debouncer must not be copied
// after first use.
type Debouncer[T any] struct {
	mu       sync.Mutex
	interval time.Duration
	fn       func(T)
	timer    *time.Timer
	pending  T
	stopped  bool
}

// New returns a Debouncer firing fn with the last triggered value after
// interval of quiet. A non-positive interval falls back to DefaultInterval.
func New[T any](interval time.Duration, fn func(T)) *Debouncer[T] {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Debouncer[T]{interval: interval, fn: fn}
}

// Trigger records v and (re)starts the quiet interval.
func (d *Debouncer[T]) Trigger(v T) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.stopped {
		return
	}
	d.pending = v
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.interval, d.fire)
}

func (d *Debouncer[T]) fire() {
	d.mu.Lock()
	if d.stopped || d.timer == nil {
		d.mu.Unlock()
		return
	}
	v := d.pending
	d.timer = nil
	d.mu.Unlock()

	// Outside the lock so the callback may Trigger again.
	d.fn(v)
}

// Stop cancels any pending callback and rejects further triggers.
func (d *Debouncer[T]) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.stopped = true
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
