package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestViewportShowsSentinelAtBottom(t *testing.T) {
	m := newTestModel(t, 100)
	m.terminalWidth = 80
	m.relayoutColumns()

	m.jumpToEnd()
	require.True(t, m.engine.ShowSentinel())

	out := m.renderViewport()
	assert.Contains(t, out, "end of 100 rows")
}

func TestViewportHidesSentinelAwayFromBottom(t *testing.T) {
	m := newTestModel(t, 100)
	m.terminalWidth = 80
	m.relayoutColumns()

	m.jumpToStart()
	out := m.renderViewport()
	assert.NotContains(t, out, "end of")
}

func TestViewportNoSentinelForSmallDataset(t *testing.T) {
	m := newTestModel(t, 5)
	m.terminalWidth = 80
	m.relayoutColumns()

	m.jumpToEnd()
	require.False(t, m.engine.ShowSentinel())
	assert.NotContains(t, m.renderViewport(), "end of")
}

func TestHighlightMatchesCaseInsensitive(t *testing.T) {
	out := highlightMatches("Error in disk", "error")
	assert.Contains(t, out, "Error")
	assert.Contains(t, out, "in disk")
}

func TestHighlightMatchesMixedByteLengthRunes(t *testing.T) {
	// Runes whose lowercase form has a different byte length must not
	// break the match slicing.
	var out string
	assert.NotPanics(t, func() { out = highlightMatches("Ⱥb", "b") })
	assert.Contains(t, out, "Ⱥ")
	assert.Contains(t, out, "b")

	assert.NotPanics(t, func() { out = highlightMatches("İstanbul event", "event") })
	assert.Contains(t, out, "İstanbul")
}

func TestHighlightMatchesQueryIsLiteral(t *testing.T) {
	// Regex metacharacters in the query match themselves.
	out := highlightMatches("value (a+b)", "(a+b)")
	assert.Contains(t, out, "(a+b)")
}
