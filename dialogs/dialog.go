package dialogs

import tea "github.com/charmbracelet/bubbletea"

// Dialog is the common interface all overlay dialogs implement. It keeps
// the model logic generic.
type Dialog interface {
	Init() tea.Cmd // optional, can return nil
	Update(msg tea.Msg) (Dialog, tea.Cmd)
	View() string

	IsVisible() bool
	Show()
	Hide()
}
