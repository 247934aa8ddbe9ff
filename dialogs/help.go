package dialogs

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"github.com/andareed/siftly-grid/logging"
)

const helpIntro = "The grid only materializes the rows around your scroll " +
	"position; everything else is a synthetic scroll track. Scrolling far and " +
	"fast may briefly show blank lines until the window catches up."

// Help is a visible flag + a list of key bindings to show.
type Help struct {
	visible  bool
	bindings []key.Binding
}

func (d Help) Init() tea.Cmd { return nil }

// NewHelpDialog creates a new help dialog showing the given bindings.
func NewHelpDialog(bindings []key.Binding) *Help {
	return &Help{
		visible:  true,
		bindings: bindings,
	}
}

func (d *Help) Update(msg tea.Msg) (Dialog, tea.Cmd) {
	logging.Debugf("HelpDialog:Update:: Called")

	switch m := msg.(type) {
	case tea.KeyMsg:
		switch m.String() {
		case "enter", "esc", "?":
			d.visible = false
			return d, nil
		}
	}

	return d, nil
}

func (d Help) View() string {
	if !d.visible {
		return ""
	}

	const boxWidth = 60

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("252")).
		BorderBackground(lipgloss.Color("236")).
		Padding(1, 2).
		Width(boxWidth)

	intro := lipgloss.NewStyle().
		Faint(true).
		Render(wordwrap.String(helpIntro, boxWidth-6))

	// Build lines "keys   description" from the bindings.
	var lines []string
	for _, b := range d.bindings {
		helpItem := b.Help()
		keys, desc := helpItem.Key, helpItem.Desc
		line := fmt.Sprintf("%-12s %s", keys, desc)
		lines = append(lines, line)
	}

	helpHint := lipgloss.NewStyle().
		Faint(true).
		Render("enter/esc to return")

	content := fmt.Sprintf("%s\n\n%s\n\n%s", intro, strings.Join(lines, "\n"), helpHint)
	return box.Render(content)
}

func (d *Help) Show() {
	d.visible = true
}

func (d *Help) Hide() {
	d.visible = false
}

func (d Help) IsVisible() bool { return d.visible }
