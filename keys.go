package main

import (
	"github.com/charmbracelet/bubbles/key"
)

type Keymap struct {
	Quit        key.Binding
	RowDown     key.Binding
	RowUp       key.Binding
	PageUp      key.Binding
	PageDown    key.Binding
	JumpTop     key.Binding
	JumpBottom  key.Binding
	Filter      key.Binding
	ClearFilter key.Binding
	Search      key.Binding
	Jump        key.Binding
	OpenHelp    key.Binding
	CopyWindow  key.Binding
}

var Keys = Keymap{
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
	RowDown: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("j/↓", "scroll down"),
	),
	RowUp: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("k/↑", "scroll up"),
	),
	PageUp: key.NewBinding(
		key.WithKeys("u", "pgup"),
		key.WithHelp("u/pgup", "page up"),
	),
	PageDown: key.NewBinding(
		key.WithKeys("d", "pgdown"),
		key.WithHelp("d/pgdown", "page down"),
	),
	JumpTop: key.NewBinding(
		key.WithKeys("g", "home"),
		key.WithHelp("g", "jump to top"),
	),
	JumpBottom: key.NewBinding(
		key.WithKeys("G", "end"),
		key.WithHelp("G", "jump to bottom"),
	),
	Filter: key.NewBinding(
		key.WithKeys("f"),
		key.WithHelp("f", "filter"),
	),
	ClearFilter: key.NewBinding(
		key.WithKeys("F"),
		key.WithHelp("F", "clear filter"),
	),
	Search: key.NewBinding(
		key.WithKeys("/"),
		key.WithHelp("/", "search"),
	),
	Jump: key.NewBinding(
		key.WithKeys(":"),
		key.WithHelp(":", "jump to line"),
	),
	OpenHelp: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help / keys"),
	),
	CopyWindow: key.NewBinding(
		key.WithKeys("ctrl+y"),
		key.WithHelp("ctrl+y", "copy visible rows to clipboard"),
	),
}

func (k Keymap) Legend() []key.Binding {
	return []key.Binding{
		k.Quit,
		k.RowDown,
		k.RowUp,
		k.PageUp,
		k.PageDown,
		k.JumpTop,
		k.JumpBottom,
		k.Filter,
		k.ClearFilter,
		k.Search,
		k.Jump,
		k.CopyWindow,
	}
}
