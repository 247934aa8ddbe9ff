package main

import (
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/andareed/siftly-grid/clipboard"
	"github.com/andareed/siftly-grid/dialogs"
	"github.com/andareed/siftly-grid/grid"
	"github.com/andareed/siftly-grid/logging"
	"github.com/andareed/siftly-grid/window"
	"github.com/charmbracelet/bubbles/key"
)

type mode int

const (
	modeView mode = iota
	modeCommand
)

// gridInstanceID keys this grid in the instance registry. A host embedding
// several grids gives each its own id; everything per-instance (engine,
// debouncer, window state) hangs off the registry entry.
const gridInstanceID = "main"

type model struct {
	data dataState
	ui   uiState

	registry *grid.Registry
	engine   *grid.Engine

	ready          bool
	terminalWidth  int
	terminalHeight int
	bodyHeight     int

	activeDialog dialogs.Dialog

	InitialPath string
}

// Messages produced outside the key-handling path.
type (
	// windowRecomputedMsg arrives when a debounced scroll settled and the
	// engine recomputed the window off the event loop.
	windowRecomputedMsg struct{ state window.State }

	// rowAppendedMsg carries one record read from stdin in follow mode.
	rowAppendedMsg struct{ cols []string }

	followEndedMsg struct{ err error }
)

func newModel(header []string, records [][]string, sourceName string, geo window.Geometry) *model {
	m := &model{}
	m.registry = grid.NewRegistry()
	m.engine = m.registry.Create(gridInstanceID,
		grid.WithGeometry(geo),
		grid.WithScrollBarRelay(func(has bool) {
			logging.Debugf("hasScrollBar -> %v", has)
		}),
	)

	m.data.header = newColumns(header)
	m.data.sourceName = sourceName

	rows := make([]gridRow, 0, len(records))
	for i, rec := range records {
		rows = append(rows, newGridRow(rec, i+1))
	}
	m.data.rows = rows
	markEmptyColumns(m.data.header, rows)

	return m
}

// setProgram wires the engine's off-loop notifications back into the
// Bubble Tea event loop. Must be called before Run.
func (m *model) setProgram(p *tea.Program) {
	m.engine.SetNotify(func(st window.State) {
		p.Send(windowRecomputedMsg{state: st})
	})
}

func (m *model) Init() tea.Cmd {
	m.applyFilter()
	logging.Infof("siftly-grid: initialised with %d rows", len(m.data.rows))
	return nil
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.activeDialog != nil && m.activeDialog.IsVisible() {
			d, cmd := m.activeDialog.Update(msg)
			m.activeDialog = d
			if !d.IsVisible() {
				m.activeDialog = nil
			}
			return m, cmd
		}
		return m.updateKey(msg)

	case tea.MouseMsg:
		switch msg.Button {
		case tea.MouseButtonWheelUp:
			m.scrollBy(-wheelScrollRows * m.engine.Geometry().RowHeight)
		case tea.MouseButtonWheelDown:
			m.scrollBy(wheelScrollRows * m.engine.Geometry().RowHeight)
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.terminalWidth = msg.Width
		m.terminalHeight = msg.Height
		// margins (2) + header (1) + body border (2) + footer (2)
		m.bodyHeight = max(msg.Height-7, 0)
		m.relayoutColumns()
		m.ready = true
		m.engine.Resize(m.bodyHeight)
		m.reportScrollBar()
		return m, nil

	case windowRecomputedMsg:
		// State already lives in the engine; receiving the message is
		// what forces the repaint after a settled scroll.
		logging.Debugf("window settled at %d-%d", msg.state.Start, msg.state.End)
		return m, nil

	case rowAppendedMsg:
		m.appendRow(msg.cols)
		return m, nil

	case followEndedMsg:
		m.data.following = false
		if msg.err != nil {
			return m, m.startNotice("stdin closed: "+msg.err.Error(), "warn", noticeDuration)
		}
		return m, m.startNotice("end of stdin", "info", noticeDuration)

	case clearNoticeMsg:
		if msg.id == m.ui.noticeSeq {
			m.ui.noticeMsg = ""
			m.ui.noticeType = ""
		}
		return m, nil
	}

	return m, nil
}

func (m *model) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.ui.mode {
	case modeView:
		return m.handleViewModeKey(msg)
	case modeCommand:
		return m.handleCommandKey(msg)
	}

	return m, nil
}

func (m *model) handleViewModeKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, Keys.Quit):
		m.registry.Remove(gridInstanceID)
		return m, tea.Quit
	case key.Matches(msg, Keys.RowDown):
		m.scrollBy(m.engine.Geometry().RowHeight)
	case key.Matches(msg, Keys.RowUp):
		m.scrollBy(-m.engine.Geometry().RowHeight)
	case key.Matches(msg, Keys.PageDown):
		m.scrollBy(m.bodyHeight)
	case key.Matches(msg, Keys.PageUp):
		m.scrollBy(-m.bodyHeight)
	case key.Matches(msg, Keys.JumpTop):
		m.jumpToStart()
	case key.Matches(msg, Keys.JumpBottom):
		m.jumpToEnd()
	case key.Matches(msg, Keys.Filter):
		m.ui.mode = modeCommand
		m.ui.command = CommandInput{cmd: CmdFilter}
	case key.Matches(msg, Keys.ClearFilter):
		m.setFilterPattern("")
		return m, m.startNotice("Filter cleared", "info", noticeDuration)
	case key.Matches(msg, Keys.OpenHelp):
		m.activeDialog = dialogs.NewHelpDialog(Keys.Legend())
	case key.Matches(msg, Keys.CopyWindow):
		return m, m.copyWindowToClipboard()
	default:
		// ':' and '/' open their command mode directly from the prefix.
		if len(msg.Runes) == 1 {
			if cmd := CommandFromPrefix(msg.Runes[0]); cmd != CmdNone {
				m.ui.mode = modeCommand
				m.ui.command = CommandInput{cmd: cmd}
				return m, nil
			}
		}
		if msg.Type == tea.KeyEsc {
			m.ui.searchQuery = ""
		}
	}
	return m, nil
}

// wheelScrollRows is how many rows one wheel notch moves, matching the
// usual terminal list feel.
const wheelScrollRows = 3

// scrollBy feeds one raw scroll delta into the engine. The raw offset
// moves immediately (the view slices against it); the window itself only
// recomputes once the scroll settles.
func (m *model) scrollBy(delta int) {
	off := m.engine.ScrollOffset() + delta
	off = clamp(off, 0, m.maxScroll())
	m.engine.Scroll(off)
}

// maxScroll is the furthest the view may scroll. Datasets large enough to
// get an end-of-data sentinel carry one extra row height of track so the
// sentinel line can enter the viewport; the engine's MaxScrollOffset only
// covers the data rows themselves.
func (m *model) maxScroll() int {
	maxOff := m.engine.MaxScrollOffset()
	if m.engine.RowCount() > m.engine.Geometry().MaxVisibleRows {
		maxOff += m.engine.Geometry().RowHeight
	}
	return maxOff
}

// clampScroll pulls the raw offset back inside the track after the
// dataset shrank underneath it.
func (m *model) clampScroll() {
	maxOff := m.maxScroll()
	if m.engine.ScrollOffset() > maxOff {
		m.engine.ScrollNow(maxOff)
	}
}

func (m *model) reportScrollBar() {
	m.engine.SetHasScrollBar(m.engine.TrackHeight() > m.bodyHeight)
}

// appendRow ingests one streamed record: the dataset grows, the filtered
// view is extended in place, and the engine gets both the new length and
// the explicit row-added nudge.
func (m *model) appendRow(cols []string) {
	row := newGridRow(cols, len(m.data.rows)+1)
	m.data.rows = append(m.data.rows, row)
	if m.includeRow(row) {
		m.data.filteredIndices = append(m.data.filteredIndices, len(m.data.rows)-1)
	}
	m.engine.SetRowCount(len(m.data.filteredIndices))
	m.engine.RowAdded()
	m.reportScrollBar()
}

func (m *model) relayoutColumns() {
	gutterW := len(strconv.Itoa(len(m.data.rows))) + 1
	m.data.header = layoutColumns(m.data.header, max(m.rowAreaWidth()-gutterW, 0))
}

func (m *model) copyWindowToClipboard() tea.Cmd {
	st := m.engine.State()
	var lines []string
	for i := st.Start; i < st.End; i++ {
		if row, ok := m.data.rowAt(i); ok {
			lines = append(lines, row.String())
		}
	}
	if len(lines) == 0 {
		return m.startNotice("Nothing to copy", "warn", noticeDuration)
	}
	if err := clipboard.Copy(strings.Join(lines, "\n")); err != nil {
		return m.startNotice("Copy failed: "+err.Error(), "error", noticeDuration)
	}
	return m.startNotice("Copied visible rows", "success", noticeDuration)
}
