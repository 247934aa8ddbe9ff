// Package grid owns the live windowing state for one grid instance: it
// funnels every signal that can move the window (settled scroll, resize,
// dataset change, row append) into a single recompute entry point and
// keeps the resulting window state as the one source of truth for what is
// on screen.
package grid

import (
	"sync"
	"time"

	"github.com/andareed/siftly-grid/debounce"
	"github.com/andareed/siftly-grid/window"
)

// Engine holds the window state for a single grid instance. Each instance
// gets its own Engine, debouncer and trigger wiring; nothing is shared
// between instances (see Registry).
//
// All methods are safe for concurrent use: the debounced scroll path fires
// from a timer goroutine.
type Engine struct {
	mu  sync.Mutex
	geo window.Geometry

	state window.State

	// Current viewport readings. Every trigger re-reads these at fire
	// time rather than trusting whatever snapshot started the trigger.
	scrollOffset   int
	viewportHeight int
	measured       bool // false until the host reports a viewport size
	totalRows      int

	// ready flips after the first non-zero viewport measurement. It only
	// gates the end-of-list sentinel, keeping it from flashing into view
	// before the grid has laid itself out.
	ready bool

	hasScrollBar bool

	notify         func(window.State)
	scrollBarRelay func(bool)

	debounceInterval time.Duration
	deb              *debounce.Debouncer[int]
}

type Option func(*Engine)

// WithGeometry overrides the default row height / max visible rows.
func WithGeometry(g window.Geometry) Option {
	return func(e *Engine) { e.geo = g }
}

// WithNotify registers the callback invoked after every recompute with
// the fresh window state. It may be called from a timer goroutine when
// the recompute came from a settled scroll.
func WithNotify(fn func(window.State)) Option {
	return func(e *Engine) { e.notify = fn }
}

// WithScrollBarRelay registers the callback invoked when the host-reported
// scrollbar presence changes. The engine only relays the flag upward.
func WithScrollBarRelay(fn func(bool)) Option {
	return func(e *Engine) { e.scrollBarRelay = fn }
}

// WithDebounceInterval overrides the scroll-settle quiet interval.
func WithDebounceInterval(d time.Duration) Option {
	return func(e *Engine) { e.debounceInterval = d }
}

func New(opts ...Option) *Engine {
	e := &Engine{geo: window.Default()}
	for _, opt := range opts {
		opt(e)
	}
	// Default window before the first recompute, per the mount contract.
	e.state = window.State{Start: 0, End: e.geo.MaxVisibleRows}
	e.deb = debounce.New(e.debounceInterval, func(int) {
		// Re-read current inputs at fire time; the debounced value only
		// tells us scrolling settled.
		e.recompute()
	})
	return e
}

// SetNotify replaces the recompute callback. Handy when the program that
// receives notifications is constructed after the engine.
func (e *Engine) SetNotify(fn func(window.State)) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.notify = fn
}

// Geometry returns the engine's geometry.
func (e *Engine) Geometry() window.Geometry {
	return e.geo
}

// State returns the current window snapshot.
func (e *Engine) State() window.State {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state
}

// ScrollOffset returns the last raw scroll reading, which may be ahead of
// the window state while a scroll is still settling.
func (e *Engine) ScrollOffset() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.scrollOffset
}

// ViewportHeight returns the last reported viewport height.
func (e *Engine) ViewportHeight() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.viewportHeight
}

// RowCount returns the dataset length last reported by the host.
func (e *Engine) RowCount() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.totalRows
}

// TrackHeight returns the synthetic scrollable extent for the current
// dataset, for sizing the scroll track.
func (e *Engine) TrackHeight() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.geo.TrackHeight(e.totalRows)
}

// MaxScrollOffset returns the largest useful scroll offset: track height
// minus the viewport. Hosts that own their scroll position (a terminal UI
// does, a browser does not) clamp against this before calling Scroll.
func (e *Engine) MaxScrollOffset() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return max(0, e.geo.TrackHeight(e.totalRows)-e.viewportHeight)
}

// Scroll feeds one raw scroll reading. The reading takes effect for
// rendering immediately (ScrollOffset reflects it), but the window is only
// recomputed once the stream settles for the quiet interval. Negative
// offsets clamp to zero.
func (e *Engine) Scroll(offset int) {
	offset = max(offset, 0)
	e.mu.Lock()
	e.scrollOffset = offset
	e.mu.Unlock()
	e.deb.Trigger(offset)
}

// ScrollNow is the programmatic variant of Scroll for jumps: the window
// recomputes synchronously instead of waiting out the quiet interval.
func (e *Engine) ScrollNow(offset int) {
	e.mu.Lock()
	e.scrollOffset = max(offset, 0)
	e.mu.Unlock()
	e.recompute()
}

// Resize reports a new viewport height and recomputes synchronously.
// The first non-zero height also marks the grid as laid out.
func (e *Engine) Resize(height int) {
	e.mu.Lock()
	e.viewportHeight = max(height, 0)
	e.measured = true
	if e.viewportHeight > 0 {
		e.ready = true
	}
	e.mu.Unlock()
	e.recompute()
}

// SetRowCount reports a dataset length change (rows added, removed,
// filtered or resorted) and recomputes synchronously. A shrink below the
// current window is not an error; the window re-anchors to the new end.
func (e *Engine) SetRowCount(n int) {
	e.mu.Lock()
	e.totalRows = max(n, 0)
	e.mu.Unlock()
	e.recompute()
}

// RowAdded reports an appended row and recomputes synchronously, even when
// no length delta is visible in the same tick (optimistic appends). The
// host still reports the authoritative length via SetRowCount.
func (e *Engine) RowAdded() {
	e.recompute()
}

// recompute is the single entry point every trigger funnels into. It
// re-reads the current inputs, runs the range calculation and publishes
// the result. With no viewport measurement yet it silently no-ops; the
// next successful trigger self-corrects.
func (e *Engine) recompute() {
	e.mu.Lock()
	if !e.measured {
		e.mu.Unlock()
		return
	}
	e.state = e.geo.Compute(e.scrollOffset, e.viewportHeight, e.totalRows)
	st := e.state
	notify := e.notify
	e.mu.Unlock()

	if notify != nil {
		notify(st)
	}
}

// ShowSentinel reports whether the trailing end-of-list marker should be
// appended to the rendered window.
func (e *Engine) ShowSentinel() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state.NearBottom && e.totalRows > e.geo.MaxVisibleRows && e.ready
}

// SetHasScrollBar relays the host's scrollbar detection. The engine does
// not interpret the flag; it stores it and forwards changes upward.
func (e *Engine) SetHasScrollBar(has bool) {
	e.mu.Lock()
	if e.hasScrollBar == has {
		e.mu.Unlock()
		return
	}
	e.hasScrollBar = has
	relay := e.scrollBarRelay
	e.mu.Unlock()

	if relay != nil {
		relay(has)
	}
}

// HasScrollBar returns the last relayed scrollbar presence.
func (e *Engine) HasScrollBar() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.hasScrollBar
}

// Close stops the scroll debouncer. A pending settled-scroll recompute is
// dropped; the engine state stays readable.
func (e *Engine) Close() {
	e.deb.Stop()
}
