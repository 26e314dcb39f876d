package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the key bindings for the demo.
type KeyMap struct {
	Toggle key.Binding
	Next   key.Binding
	Trace  key.Binding
	Quit   key.Binding
}

// DefaultKeyMap returns the default key bindings for the demo.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Toggle: key.NewBinding(
			key.WithKeys("space", "enter"),
			key.WithHelp("space", "flip focused switch"),
		),
		Next: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next switch"),
		),
		Trace: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "toggle trace"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp returns the short help bindings for the demo.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Toggle, k.Next, k.Trace, k.Quit}
}

// FullHelp returns the full help bindings for the demo.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Toggle, k.Next, k.Trace, k.Quit},
	}
}
