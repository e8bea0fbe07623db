package ui

import (
	"github.com/charmbracelet/bubbles/key"
)

// keyMap holds the bindings that are not plain text input. Everything else
// typed goes to the search input.
type keyMap struct {
	Back     key.Binding
	Forward  key.Binding
	Up       key.Binding
	Down     key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Pager    key.Binding
	Quit     key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Back: key.NewBinding(
			key.WithKeys("alt+left", "ctrl+p"),
			key.WithHelp("alt+←", "back"),
		),
		Forward: key.NewBinding(
			key.WithKeys("alt+right", "ctrl+n"),
			key.WithHelp("alt+→", "forward"),
		),
		Up: key.NewBinding(
			key.WithKeys("up"),
			key.WithHelp("↑/↓", "scroll"),
		),
		Down: key.NewBinding(
			key.WithKeys("down"),
		),
		PageUp: key.NewBinding(
			key.WithKeys("pgup"),
			key.WithHelp("pgup/pgdn", "page"),
		),
		PageDown: key.NewBinding(
			key.WithKeys("pgdown"),
		),
		Pager: key.NewBinding(
			key.WithKeys("ctrl+o"),
			key.WithHelp("ctrl+o", "open in pager"),
		),
		Quit: key.NewBinding(
			key.WithKeys("esc", "ctrl+c"),
			key.WithHelp("esc", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Back, k.Forward, k.Up, k.PageUp, k.Pager, k.Quit}
}

// FullHelp implements help.KeyMap
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Back, k.Forward},
		{k.Up, k.Down, k.PageUp, k.PageDown},
		{k.Pager, k.Quit},
	}
}
