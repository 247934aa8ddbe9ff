package main

import (
	"fmt"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andareed/siftly-grid/window"
)

func newTestModel(t *testing.T, n int) *model {
	t.Helper()

	records := make([][]string, 0, n)
	for i := 0; i < n; i++ {
		records = append(records, []string{
			fmt.Sprintf("10:%02d", i%60),
			fmt.Sprintf("host-%d", i%3),
			fmt.Sprintf("event %d", i),
		})
	}

	geo := window.Geometry{RowHeight: 1, MaxVisibleRows: 20, BufferSize: 12}
	m := newModel([]string{"time", "host", "details"}, records, "test.csv", geo)
	t.Cleanup(func() { m.registry.Remove(gridInstanceID) })

	m.bodyHeight = 10
	m.engine.Resize(m.bodyHeight)
	m.applyFilter()
	return m
}

func TestApplyFilterNarrowsView(t *testing.T) {
	m := newTestModel(t, 30)
	require.Len(t, m.data.filteredIndices, 30)

	require.NoError(t, m.setFilterPattern("host-1"))
	assert.Len(t, m.data.filteredIndices, 10)
	assert.Equal(t, 10, m.engine.RowCount())

	require.NoError(t, m.setFilterPattern(""))
	assert.Len(t, m.data.filteredIndices, 30)
	assert.Equal(t, 30, m.engine.RowCount())
}

func TestSetFilterPatternRejectsBadRegex(t *testing.T) {
	m := newTestModel(t, 5)

	err := m.setFilterPattern("[unclosed")
	require.Error(t, err)
	assert.Len(t, m.data.filteredIndices, 5, "failed compile leaves the view untouched")
}

func TestFilterShrinkClampsScroll(t *testing.T) {
	m := newTestModel(t, 100)
	m.engine.ScrollNow(m.engine.MaxScrollOffset())
	require.Greater(t, m.engine.ScrollOffset(), 0)

	require.NoError(t, m.setFilterPattern("event 1$"))
	assert.LessOrEqual(t, m.engine.ScrollOffset(), m.engine.MaxScrollOffset())
}

func TestSearchOnceWalksForward(t *testing.T) {
	m := newTestModel(t, 50)

	require.True(t, m.searchOnce("event 20"))
	assert.Equal(t, 20, m.engine.ScrollOffset())

	// Same query again starts below the current top row and wraps.
	require.True(t, m.searchOnce("event 20"))
	assert.Equal(t, 20, m.engine.ScrollOffset())
}

func TestSearchOnceWrapsAround(t *testing.T) {
	m := newTestModel(t, 50)
	m.scrollToRow(40)

	require.True(t, m.searchOnce("event 5"))
	assert.Equal(t, 5, m.engine.ScrollOffset())
}

func TestSearchOnceNoMatch(t *testing.T) {
	m := newTestModel(t, 10)
	assert.False(t, m.searchOnce("nope"))
	assert.False(t, m.searchOnce(""))
}

func TestJumpToLine(t *testing.T) {
	m := newTestModel(t, 50)

	assert.Nil(t, m.jumpToLine(30))
	assert.Equal(t, 29, m.engine.ScrollOffset())

	assert.NotNil(t, m.jumpToLine(0))
	assert.NotNil(t, m.jumpToLine(51))
}

func TestJumpToLineOutsideFilter(t *testing.T) {
	m := newTestModel(t, 30)
	require.NoError(t, m.setFilterPattern("host-0"))

	cmd := m.jumpToLine(2) // host-1, filtered out
	assert.NotNil(t, cmd)
	assert.Contains(t, m.ui.noticeMsg, "not in current filter")
}

func TestJumpToStartAndEnd(t *testing.T) {
	m := newTestModel(t, 100)

	m.jumpToEnd()
	// One extra row height past the data rows, reserved for the sentinel.
	assert.Equal(t, m.engine.MaxScrollOffset()+1, m.engine.ScrollOffset())
	st := m.engine.State()
	assert.Equal(t, 80, st.Start)
	assert.Equal(t, 100, st.End)
	assert.True(t, st.NearBottom)

	m.jumpToStart()
	assert.Zero(t, m.engine.ScrollOffset())
	assert.Zero(t, m.engine.State().Start)
}

func TestAppendRowRespectsFilter(t *testing.T) {
	m := newTestModel(t, 6)
	require.NoError(t, m.setFilterPattern("host-0"))
	before := len(m.data.filteredIndices)

	m.appendRow([]string{"11:00", "host-0", "late event"})
	assert.Len(t, m.data.filteredIndices, before+1)

	m.appendRow([]string{"11:01", "host-1", "filtered out"})
	assert.Len(t, m.data.filteredIndices, before+1)
	assert.Len(t, m.data.rows, 8)
	assert.Equal(t, before+1, m.engine.RowCount())
}

func TestAppendRowKeepsOriginalIndex(t *testing.T) {
	m := newTestModel(t, 3)
	m.appendRow([]string{"11:00", "host-0", "fourth"})

	row, ok := m.data.rowAt(3)
	require.True(t, ok)
	assert.Equal(t, 4, row.originalIndex)
}

func TestMaxScrollReservesSentinelRow(t *testing.T) {
	m := newTestModel(t, 100)
	assert.Equal(t, m.engine.MaxScrollOffset()+1, m.maxScroll())

	// Datasets that fit the window get no sentinel and no extra track.
	require.NoError(t, m.setFilterPattern("event 1$"))
	require.Equal(t, 10, m.engine.RowCount())
	assert.Equal(t, m.engine.MaxScrollOffset(), m.maxScroll())
}

func TestWheelScrollMovesWholeRows(t *testing.T) {
	records := make([][]string, 0, 50)
	for i := 0; i < 50; i++ {
		records = append(records, []string{"10:00", "host-0", fmt.Sprintf("event %d", i)})
	}
	geo := window.Geometry{RowHeight: 2, MaxVisibleRows: 20, BufferSize: 12}
	m := newModel([]string{"time", "host", "details"}, records, "test.csv", geo)
	t.Cleanup(func() { m.registry.Remove(gridInstanceID) })
	m.bodyHeight = 10
	m.engine.Resize(m.bodyHeight)
	m.applyFilter()

	m.Update(tea.MouseMsg{Button: tea.MouseButtonWheelDown, Action: tea.MouseActionPress})
	assert.Equal(t, wheelScrollRows*geo.RowHeight, m.engine.ScrollOffset())

	m.Update(tea.MouseMsg{Button: tea.MouseButtonWheelUp, Action: tea.MouseActionPress})
	assert.Zero(t, m.engine.ScrollOffset())
}

func TestCommandFromPrefix(t *testing.T) {
	assert.Equal(t, CmdJump, CommandFromPrefix(':'))
	assert.Equal(t, CmdSearch, CommandFromPrefix('/'))
	assert.Equal(t, CmdNone, CommandFromPrefix('x'))
}

func TestActiveCommandLine(t *testing.T) {
	m := newTestModel(t, 3)
	m.ui.command = CommandInput{cmd: CmdSearch, buf: "err"}
	assert.Equal(t, "[SEARCH] search: err", m.activeCommandLine())
}
