package main

import (
	"regexp"

	"github.com/andareed/siftly-grid/logging"
)

func (m *model) setFilterPattern(pattern string) error {
	logging.Infof("Setting Pattern to: %s", pattern)
	if pattern == "" {
		m.data.filterRegex = nil
	} else {
		re, err := regexp.Compile(pattern)
		if err != nil {
			return err
		}
		m.data.filterRegex = re
	}
	m.applyFilter()
	return nil
}

// region Filtering

func (m *model) includeRow(row gridRow) bool {
	if m.data.filterRegex != nil {
		if !m.data.filterRegex.MatchString(row.String()) {
			return false
		}
	}
	return true
}

// applyFilter rebuilds filteredIndices and tells the engine the dataset
// changed. The engine re-anchors the window itself if the filtered view
// shrank below it.
func (m *model) applyFilter() {
	m.data.filteredIndices = m.data.filteredIndices[:0]
	for i, row := range m.data.rows {
		if m.includeRow(row) {
			m.data.filteredIndices = append(m.data.filteredIndices, i)
		}
	}
	logging.Debugf("applyFilter: %d/%d rows in view", len(m.data.filteredIndices), len(m.data.rows))

	m.engine.SetRowCount(len(m.data.filteredIndices))
	m.clampScroll()
	m.reportScrollBar()
}
