package window

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testGeometry() Geometry {
	return Geometry{RowHeight: 49, MaxVisibleRows: 40, BufferSize: 12}
}

func TestCompute(t *testing.T) {
	t.Parallel()
	g := testGeometry()

	t.Run("top of a large dataset", func(t *testing.T) {
		t.Parallel()
		st := g.Compute(0, 490, 1000)
		assert.Equal(t, 0, st.Start)
		assert.Equal(t, 40, st.End)
		assert.Equal(t, 0, st.TranslateOffset)
		assert.False(t, st.NearBottom)
	})

	t.Run("middle of a large dataset", func(t *testing.T) {
		t.Parallel()
		// Row 500 at the top of the viewport.
		st := g.Compute(24500, 490, 1000)
		assert.Equal(t, 490, st.Start)
		assert.Equal(t, 530, st.End)
		assert.Equal(t, 24010, st.TranslateOffset)
		assert.False(t, st.NearBottom)
	})

	t.Run("near the end the window re-anchors", func(t *testing.T) {
		t.Parallel()
		st := g.Compute(48020, 490, 1000)
		assert.Equal(t, 960, st.Start)
		assert.Equal(t, 1000, st.End)
		assert.Equal(t, 47040, st.TranslateOffset)
		// Ten rows of track remain below the viewport, so this position
		// is not yet near the bottom by the gap < 2×rowHeight rule.
		assert.False(t, st.NearBottom)
	})

	t.Run("dataset smaller than the window", func(t *testing.T) {
		t.Parallel()
		for _, offset := range []int{0, 49, 500, 10000} {
			st := g.Compute(offset, 490, 20)
			assert.Equal(t, 0, st.Start, "offset %d", offset)
			assert.Equal(t, 20, st.End, "offset %d", offset)
			assert.Equal(t, 0, st.TranslateOffset, "offset %d", offset)
		}
	})

	t.Run("empty dataset", func(t *testing.T) {
		t.Parallel()
		st := g.Compute(0, 490, 0)
		assert.Equal(t, 0, st.Start)
		assert.Equal(t, 0, st.End)
		assert.Equal(t, 0, st.TranslateOffset)
	})

	t.Run("dataset shrinks under the current scroll position", func(t *testing.T) {
		t.Parallel()
		// The host was looking at rows around 500 when the dataset
		// dropped to 5 rows. The window must land on [0, 5).
		st := g.Compute(24500, 490, 5)
		assert.Equal(t, 0, st.Start)
		assert.Equal(t, 5, st.End)
		assert.Equal(t, 0, st.TranslateOffset)
	})

	t.Run("negative inputs clamp to zero", func(t *testing.T) {
		t.Parallel()
		st := g.Compute(-100, -50, 1000)
		assert.Equal(t, g.Compute(0, 0, 1000), st)

		st = g.Compute(100, 490, -3)
		assert.Equal(t, 0, st.Start)
		assert.Equal(t, 0, st.End)
	})
}

func TestComputeInvariants(t *testing.T) {
	t.Parallel()
	g := testGeometry()

	for _, total := range []int{0, 1, 5, 39, 40, 41, 200, 1000, 50000} {
		for offset := 0; offset <= g.TrackHeight(total); offset += 477 {
			for _, vh := range []int{0, 49, 490, 1234} {
				st := g.Compute(offset, vh, total)
				require.GreaterOrEqual(t, st.Start, 0)
				require.LessOrEqual(t, st.Start, st.End)
				require.LessOrEqual(t, st.End, total)
				require.LessOrEqual(t, st.Len(), g.MaxVisibleRows)
				require.Equal(t, st.Start*g.RowHeight, st.TranslateOffset)

				if total <= g.MaxVisibleRows {
					require.Equal(t, 0, st.Start)
					require.Equal(t, total, st.End)
				}
			}
		}
	}
}

func TestComputeIsPure(t *testing.T) {
	t.Parallel()
	g := testGeometry()
	a := g.Compute(24500, 490, 1000)
	b := g.Compute(24500, 490, 1000)
	assert.Equal(t, a, b)
}

func TestComputeMonotonic(t *testing.T) {
	t.Parallel()
	g := testGeometry()

	prev := -1
	for offset := 0; offset <= 49000; offset += 7 {
		st := g.Compute(offset, 490, 1000)
		if st.Start < prev {
			t.Fatalf("start went backwards at offset %d: %d -> %d", offset, prev, st.Start)
		}
		prev = st.Start
	}
}

func TestNearBottom(t *testing.T) {
	t.Parallel()
	g := testGeometry()
	total := 1000
	trackHeight := g.TrackHeight(total) // 49000

	for _, tc := range []struct {
		offset, vh int
		want       bool
	}{
		{0, 490, false},
		{24500, 490, false},
		{trackHeight - 490 - 98, 490, false}, // exactly 2 rows away
		{trackHeight - 490 - 97, 490, true},
		{trackHeight - 490, 490, true}, // fully scrolled
	} {
		st := g.Compute(tc.offset, tc.vh, total)
		gap := trackHeight - (tc.offset + tc.vh)
		assert.Equal(t, tc.want, st.NearBottom, "offset %d (gap %d)", tc.offset, gap)
		assert.Equal(t, gap < 2*g.RowHeight, st.NearBottom, "definition at offset %d", tc.offset)
	}

	// A dataset smaller than the viewport is always near its own bottom.
	st := g.Compute(0, 490, 5)
	assert.True(t, st.NearBottom)
}

func TestTrackHeight(t *testing.T) {
	t.Parallel()
	g := testGeometry()
	assert.Equal(t, 0, g.TrackHeight(0))
	assert.Equal(t, 49, g.TrackHeight(1))
	assert.Equal(t, 49000, g.TrackHeight(1000))
	assert.Equal(t, 0, g.TrackHeight(-10))
}

func TestDefaultGeometry(t *testing.T) {
	t.Parallel()
	g := Default()
	assert.Equal(t, 49, g.RowHeight)
	assert.Equal(t, 40, g.MaxVisibleRows)
	assert.Equal(t, 12, g.BufferSize)
}
