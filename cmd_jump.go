package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/andareed/siftly-grid/logging"
)

func (m *model) jumpToStart() {
	logging.Debugf("jumpToStart called...")
	m.engine.ScrollNow(0)
}

func (m *model) jumpToEnd() {
	logging.Debugf("jumpToEnd called...")
	m.engine.ScrollNow(m.maxScroll())
}

// jumpToLine scrolls so the given 1-based source line sits at the top of
// the viewport. Jumps are programmatic scrolls: they recompute the window
// immediately instead of waiting out the scroll debounce.
func (m *model) jumpToLine(lineNo int) tea.Cmd {
	logging.Debugf("jumpToLine %d", lineNo)
	if lineNo <= 0 {
		return m.startNotice(fmt.Sprintf("Line %d out of bounds", lineNo), "warn", noticeDuration)
	}
	target := lineNo - 1
	if target >= len(m.data.rows) {
		return m.startNotice(fmt.Sprintf("Line %d out of bounds", lineNo), "warn", noticeDuration)
	}
	for i, idx := range m.data.filteredIndices {
		if idx == target {
			m.scrollToRow(i)
			return nil
		}
	}
	return m.startNotice(fmt.Sprintf("Line %d not in current filter", lineNo), "warn", noticeDuration)
}

// scrollToRow puts the given filtered row index at the top of the
// viewport, clamped to the track.
func (m *model) scrollToRow(filteredIdx int) {
	geo := m.engine.Geometry()
	off := min(filteredIdx*geo.RowHeight, m.engine.MaxScrollOffset())
	m.engine.ScrollNow(max(off, 0))
}
