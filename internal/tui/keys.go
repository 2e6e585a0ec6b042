package tui

import "github.com/charmbracelet/bubbles/key"

// PauseKeyMap defines the keybindings of the exit prompt.
type PauseKeyMap struct {
	Continue key.Binding
	Quit     key.Binding
}

// DefaultPauseKeyMap returns the default exit prompt bindings.
func DefaultPauseKeyMap() PauseKeyMap {
	return PauseKeyMap{
		Continue: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "exit"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "esc", "q"),
			key.WithHelp("q", "exit"),
		),
	}
}
