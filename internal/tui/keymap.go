package tui

import "github.com/charmbracelet/bubbles/v2/key"

// KeyMap defines the demo's key bindings
type KeyMap struct {
	Quit  key.Binding
	Blur  key.Binding
	Focus key.Binding
	Reset key.Binding
	Help  key.Binding
}

// DefaultKeyMap returns the default key bindings for the demo
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
		Blur: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "blur the field"),
		),
		Focus: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "focus the field"),
		),
		Reset: key.NewBinding(
			key.WithKeys("ctrl+r"),
			key.WithHelp("ctrl+r", "owner pushes the configured value"),
		),
		Help: key.NewBinding(
			key.WithKeys("ctrl+g"),
			key.WithHelp("ctrl+g", "toggle help"),
		),
	}
}
