package main

import (
	"strconv"

	tea "github.com/charmbracelet/bubbletea"
)

func (m *model) runCommand() tea.Cmd {
	switch m.ui.command.cmd {
	case CmdJump:
		if n, err := strconv.Atoi(m.ui.command.buf); err == nil {
			return m.jumpToLine(n)
		}
		return m.startNotice("Invalid line number", "warn", noticeDuration)

	case CmdSearch:
		m.ui.searchQuery = m.ui.command.buf
		if !m.searchOnce(m.ui.command.buf) {
			return m.startNotice("No match", "warn", noticeDuration)
		}
		return nil

	case CmdFilter:
		if err := m.setFilterPattern(m.ui.command.buf); err != nil {
			return m.startNotice("Invalid filter regex", "warn", noticeDuration)
		}
		return nil
	}
	return nil
}

func (m *model) exitCommandMode() {
	m.ui.command = CommandInput{}
	m.ui.mode = modeView
}

func (m *model) handleCommandKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// universal cancel
	if msg.Type == tea.KeyEsc {
		m.exitCommandMode()
		return m, nil
	}

	// commit
	if msg.Type == tea.KeyEnter {
		cmd := m.runCommand() // returns tea.Cmd or nil
		m.exitCommandMode()
		return m, cmd
	}

	// editing
	switch msg.Type {
	case tea.KeyBackspace:
		if len(m.ui.command.buf) > 0 {
			m.ui.command.buf = m.ui.command.buf[:len(m.ui.command.buf)-1]
		}
		return m, nil
	}

	// append printable rune
	if len(msg.Runes) == 1 {
		m.ui.command.buf += string(msg.Runes[0])
	}
	return m, nil
}
