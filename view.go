package main

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/andareed/siftly-grid/logging"
)

func (m *model) headerView() string {
	// Width for row numbers gutter
	markerWidth := len(fmt.Sprintf("%d", len(m.data.rows))) + 1

	var cells []string

	for _, col := range m.data.header {
		if !col.Visible || col.Width <= 0 {
			continue
		}

		cell := cellStyle.Width(col.Width).Render(col.Name)
		cells = append(cells, cell)
	}

	headerRow := lipgloss.JoinHorizontal(lipgloss.Top, cells...)

	return headerStyle.Render(
		strings.Repeat(" ", markerWidth) + headerRow,
	)
}

func (m *model) footerView(width int) string {
	logging.Debugf("footerView mode=%d cmd=%d", m.ui.mode, m.ui.command.cmd)
	styles := DefaultFooterStyles()

	footerMode := CmdNone
	modeInput := ""
	if m.ui.mode == modeCommand {
		footerMode = m.ui.command.cmd
		modeInput = m.activeCommandLine()
	}

	st := FooterState{
		Mode:          footerMode,
		ModeInput:     modeInput,
		FileName:      m.data.sourceName,
		FilterLabel:   "None",
		WindowStart:   m.engine.State().Start,
		WindowEnd:     m.engine.State().End,
		TotalRows:     len(m.data.filteredIndices),
		ScrollPercent: m.scrollPercent(),
		NearBottom:    m.engine.State().NearBottom,
		StatusMessage: "",
		Legend:        "(? help · f filter · / search · : jump · g/G top/bottom)",
	}
	if m.data.filterRegex != nil && m.data.filterRegex.String() != "" {
		st.FilterLabel = m.data.filterRegex.String()
	}
	if m.ui.noticeMsg != "" {
		st.StatusMessage = noticeText(m.ui.noticeMsg, m.ui.noticeType)
	}
	if st.StatusMessage == "" && m.ui.mode == modeCommand {
		st.StatusMessage = m.commandRightContext()
	}
	if st.StatusMessage == "" && m.data.following {
		st.StatusMessage = "following stdin…"
	}

	if logging.IsDebugMode() {
		ws := m.engine.State()
		debug := fmt.Sprintf(" dbg term=%dx%d body=%d off=%d win=%d-%d tr=%d track=%d sb=%v",
			m.terminalWidth, m.terminalHeight, m.bodyHeight,
			m.engine.ScrollOffset(), ws.Start, ws.End, ws.TranslateOffset,
			m.engine.TrackHeight(), m.engine.HasScrollBar(),
		)
		st.Legend = st.Legend + " |" + debug
	}

	return RenderFooter(width, st, styles)
}

func (m *model) View() string {
	if !m.ready {
		return "loading..."
	}

	if m.activeDialog != nil && m.activeDialog.IsVisible() {
		w, h := m.terminalWidth, m.terminalHeight
		return lipgloss.Place(
			w, h,
			lipgloss.Center, lipgloss.Center,
			m.activeDialog.View(),
			lipgloss.WithWhitespaceChars(" "),
			lipgloss.WithWhitespaceBackground(lipgloss.Color("236")),
		)
	}

	bordered := tableStyle.Render(m.renderViewport())
	contentW := lipgloss.Width(bordered)

	parts := []string{m.headerView(), bordered, m.footerView(contentW)}
	return appstyle.Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}

// renderRowAt renders the row at the given filtered index on one line,
// tagged with its absolute source row number in the gutter.
func (m *model) renderRowAt(filteredIdx int) (string, bool) {
	row, ok := m.data.rowAt(filteredIdx)
	if !ok {
		return "", false
	}

	rowPrefix := fgSeq(lipgloss.Color(rowTextFGColor))
	rowSuffix := termenv.CSI + "0m"

	// figure out how wide the row number gutter needs to be
	markerWidth := len(fmt.Sprintf("%d", len(m.data.rows)))
	gutter := rowStyle.Render(fmt.Sprintf("%*d ", markerWidth, row.originalIndex))

	contentRow := row
	if m.ui.searchQuery != "" {
		cols := make([]string, len(row.cols))
		for i, col := range row.cols {
			cols[i] = highlightMatches(col, m.ui.searchQuery)
		}
		contentRow.cols = cols
	}

	line := contentRow.Render(cellStyle, m.data.header)
	if m.ui.searchQuery != "" {
		line = restoreRowStyleAfterReset(line, rowPrefix)
	}

	return gutter + rowPrefix + line + rowSuffix, true
}

// sentinelRow is the trailing end-of-data marker appended below the last
// row when the engine says the viewport is near the bottom.
func (m *model) sentinelRow() string {
	label := fmt.Sprintf("──── end of %d rows · g to jump back to top ────", len(m.data.filteredIndices))
	return sentinelStyle.Render(label)
}

// renderViewport draws the body: the materialized window sliced at the
// current raw scroll offset. Rows the user scrolled to before the window
// caught up (scroll still settling) come out blank, exactly as an
// unrendered row would in a real scroll container.
func (m *model) renderViewport() string {
	logging.Debugf("renderViewport called")
	st := m.engine.State()
	off := m.engine.ScrollOffset()
	total := len(m.data.filteredIndices)

	if total == 0 {
		return lipgloss.NewStyle().Width(m.rowAreaWidth()).Height(m.bodyHeight).Render("(no rows)")
	}

	rh := max(m.engine.Geometry().RowHeight, 1)

	lines := make([]string, 0, m.bodyHeight)
	sentinel := m.engine.ShowSentinel()
	for i := 0; i < m.bodyHeight; i++ {
		trackLine := off + i
		rowIdx := trackLine / rh
		switch {
		case rowIdx >= st.Start && rowIdx < st.End:
			// Rows taller than one line draw on their first track line
			// and leave the rest blank.
			if trackLine%rh != 0 {
				lines = append(lines, "")
				break
			}
			line, ok := m.renderRowAt(rowIdx)
			if !ok {
				line = ""
			}
			lines = append(lines, line)
		case trackLine == total*rh && sentinel:
			lines = append(lines, m.sentinelRow())
		default:
			// Outside the materialized window: nothing to draw.
			lines = append(lines, "")
		}
	}

	body := lipgloss.NewStyle().Width(m.rowAreaWidth()).Render(strings.Join(lines, "\n"))

	bar := renderScrollbar(m.bodyHeight, m.engine.TrackHeight(), off)
	if bar == nil {
		return body
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, body, strings.Join(bar, "\n"))
}

func (m *model) scrollPercent() int {
	maxOff := m.engine.MaxScrollOffset()
	if maxOff <= 0 {
		return 100
	}
	return min(100, m.engine.ScrollOffset()*100/maxOff)
}

// highlightMatches wraps every case-insensitive occurrence of query in the
// highlight style. Matching runs on the original string; lowercasing first
// and reusing its byte offsets breaks on runes whose lower form has a
// different byte length (İ, Ⱥ, ...).
func highlightMatches(text string, query string) string {
	q := strings.TrimSpace(query)
	if q == "" || text == "" {
		return text
	}
	re, err := regexp.Compile("(?i)" + regexp.QuoteMeta(q))
	if err != nil {
		return text
	}
	return re.ReplaceAllStringFunc(text, func(match string) string {
		return searchHighlight.Render(match)
	})
}

func restoreRowStyleAfterReset(s string, rowPrefix string) string {
	if rowPrefix == "" {
		return s
	}
	reset := termenv.CSI + "0m"
	if !strings.Contains(s, reset) {
		return s
	}
	return strings.ReplaceAll(s, reset, reset+rowPrefix)
}

func fgSeq(c lipgloss.Color) string {
	return colorSeq(c, false)
}

func colorSeq(c lipgloss.Color, bg bool) string {
	value := string(c)
	if value == "" {
		if bg {
			return termenv.CSI + "49m"
		}
		return termenv.CSI + "39m"
	}
	profile := lipgloss.ColorProfile()
	tc := profile.Color(value)
	if tc == nil {
		return ""
	}
	return termenv.CSI + tc.Sequence(bg) + "m"
}

// rowAreaWidth is the inner width available to gutter + cells, leaving a
// column for the scrollbar.
func (m *model) rowAreaWidth() int {
	w := m.terminalWidth - 6 - 1
	if w < 0 {
		w = 0
	}
	return w
}
