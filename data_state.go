package main

import "regexp"

// dataState is the sort/filter collaborator: it owns the full dataset and
// maintains filteredIndices, the ordered view the windowing engine runs
// over. The engine only ever sees len(filteredIndices).
type dataState struct {
	header          []ColumnMeta // column titles + layout for the header view
	rows            []gridRow
	filterRegex     *regexp.Regexp
	filteredIndices []int // indices into rows that match the current regex
	sourceName      string
	following       bool // rows still arriving on stdin
}

func (d *dataState) rowAt(filteredIdx int) (gridRow, bool) {
	if filteredIdx < 0 || filteredIdx >= len(d.filteredIndices) {
		return gridRow{}, false
	}
	return d.rows[d.filteredIndices[filteredIdx]], true
}
