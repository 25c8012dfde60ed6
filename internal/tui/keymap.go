package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap lists the viewer's key bindings
type KeyMap struct {
	Up                key.Binding
	Down              key.Binding
	ToggleInvestments key.Binding
	Help              key.Binding
	Quit              key.Binding
}

// DefaultKeyMap returns the standard bindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "previous household"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "next household"),
		),
		ToggleInvestments: key.NewBinding(
			key.WithKeys("i"),
			key.WithHelp("i", "toggle investments"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.ToggleInvestments},
		{k.Help, k.Quit},
	}
}
