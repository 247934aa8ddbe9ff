// Package window implements the windowing calculation for virtualized
// grids: given a scroll offset and viewport size it decides which
// contiguous slice of a long dataset should be materialized, and how far
// to shift that slice so it lines up with a synthetic full-height track.
package window

// Geometry holds the fixed constants the calculation runs on. The zero
// value is not usable; start from Default() and override as needed.
type Geometry struct {
	// RowHeight is the height of a single row in scroll units. In a
	// browser-style host that's pixels; in a terminal it's lines.
	RowHeight int

	// MaxVisibleRows caps how many rows are materialized at once.
	MaxVisibleRows int

	// BufferSize is reserved for scroll-ahead prefetch. Nothing consumes
	// it in the range math today; it is carried so overriding callers
	// keep a stable config shape.
	BufferSize int
}

const (
	DefaultRowHeight      = 49
	DefaultMaxVisibleRows = 40
	DefaultBufferSize     = 12
)

func Default() Geometry {
	return Geometry{
		RowHeight:      DefaultRowHeight,
		MaxVisibleRows: DefaultMaxVisibleRows,
		BufferSize:     DefaultBufferSize,
	}
}

// State is one windowing result. Rows [Start, End) are the ones to
// materialize; TranslateOffset shifts the rendered block down the track so
// row Start lands at its true scroll position.
//
// Invariants: 0 <= Start <= End <= totalRows, End-Start <= MaxVisibleRows,
// TranslateOffset == Start * RowHeight.
type State struct {
	Start           int
	End             int
	TranslateOffset int
	NearBottom      bool
}

// Len returns the number of rows in the window.
func (s State) Len() int {
	return s.End - s.Start
}

// Compute maps the current scroll position onto a window of rows.
//
// Negative inputs are clamped to zero rather than rejected: transient
// negative readings during layout thrash are normal and must not break
// rendering. Offsets past the end of the track are not clamped here; the
// host's scroll container owns that bound.
//
// Compute is pure. Identical inputs always give identical results.
func (g Geometry) Compute(scrollOffset, viewportHeight, totalRows int) State {
	scrollOffset = max(scrollOffset, 0)
	viewportHeight = max(viewportHeight, 0)
	totalRows = max(totalRows, 0)

	rh := g.RowHeight
	if rh <= 0 {
		rh = 1
	}

	firstVisible := scrollOffset / rh
	visibleCount := (viewportHeight + rh - 1) / rh

	// Anchor the window on the last visible row rather than the literal
	// viewport midpoint; centering on the midpoint leaves the window half
	// a viewport behind where the user is actually looking.
	anchor := firstVisible + visibleCount
	start := max(0, anchor-g.MaxVisibleRows/2)
	end := min(totalRows, start+g.MaxVisibleRows)

	// Re-anchor at the dataset edges without shrinking the window below
	// MaxVisibleRows, unless the dataset itself is smaller.
	if end == totalRows {
		start = max(0, totalRows-g.MaxVisibleRows)
	}
	if start == 0 {
		end = min(totalRows, g.MaxVisibleRows)
	}

	scrollBottom := scrollOffset + viewportHeight
	return State{
		Start:           start,
		End:             end,
		TranslateOffset: start * rh,
		NearBottom:      g.TrackHeight(totalRows)-scrollBottom < 2*rh,
	}
}

// TrackHeight returns the synthetic total scrollable extent: the height
// the list would have if every row were rendered. Sizing an invisible
// spacer to this is what makes the window look like a real list instead
// of a paginated one.
func (g Geometry) TrackHeight(totalRows int) int {
	if totalRows < 0 {
		return 0
	}
	return totalRows * g.RowHeight
}
