package main

import (
	"hash/fnv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
)

// gridRow is one opaque record of the dataset. The windowing engine never
// looks inside it; it only slices rows by index range.
type gridRow struct {
	cols          []string
	id            uint64
	originalIndex int // row number in the source, not a unique ID
}

func newGridRow(cols []string, originalIndex int) gridRow {
	r := gridRow{cols: cols, originalIndex: originalIndex}
	r.id = r.ComputeID()
	return r
}

func (r gridRow) ComputeID() uint64 {
	h := fnv.New64a()
	for _, col := range r.cols {
		norm := strings.ToLower(strings.TrimSpace(col))
		h.Write([]byte(norm))
		h.Write([]byte{0})
	}
	return h.Sum64()
}

func (r *gridRow) Join(sep string) string {
	var b strings.Builder

	for i, col := range r.cols {
		if i > 0 {
			b.WriteString(sep)
		}
		b.WriteString(col)
	}

	return b.String()
}

// String implements fmt.Stringer – choose your default delimiter here.
func (r *gridRow) String() string {
	// For regex + clipboard, a tab is usually a great default.
	return r.Join("\t")
}

// Render produces exactly one terminal line for the row. Rows must keep a
// fixed height for the window math to hold, so overlong cells get
// truncated, never wrapped.
func (r gridRow) Render(style lipgloss.Style, colsMeta []ColumnMeta) string {
	var rendered []string

	for i, text := range r.cols {
		if i >= len(colsMeta) {
			break
		}
		meta := colsMeta[i]

		if !meta.Visible || meta.Width <= 0 {
			// Skip hidden / zero-width columns completely
			continue
		}

		cellW := max(meta.Width-2, 1) // minus the cell padding
		cell := truncate.StringWithTail(strings.ReplaceAll(text, "\n", " "), uint(cellW), "…")
		rendered = append(rendered, style.Width(meta.Width).Render(cell))
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}
