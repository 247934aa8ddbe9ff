package main

import "strings"

// searchOnce jumps to the next row matching query, starting below the row
// currently at the top of the viewport so repeated searches walk forward.
func (m *model) searchOnce(query string) bool {
	if query == "" {
		return false
	}
	q := strings.ToLower(query)

	n := len(m.data.filteredIndices)
	if n == 0 {
		return false
	}
	topRow := m.engine.ScrollOffset() / max(m.engine.Geometry().RowHeight, 1)

	for step := 1; step <= n; step++ {
		i := (topRow + step) % n
		row, ok := m.data.rowAt(i)
		if !ok {
			continue
		}
		if strings.Contains(strings.ToLower(row.String()), q) {
			m.scrollToRow(i)
			return true
		}
	}
	return false
}
