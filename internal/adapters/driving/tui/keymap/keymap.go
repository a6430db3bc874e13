// Package keymap defines keybindings for the TUI.
package keymap

import (
	"github.com/charmbracelet/bubbles/key"
)

// KeyMap defines all keybindings for the drink picker.
type KeyMap struct {
	// Quit exits the application.
	Quit key.Binding

	// Up moves the cursor up the menu.
	Up key.Binding

	// Down moves the cursor down the menu.
	Down key.Binding

	// Make orders the highlighted drink.
	Make key.Binding

	// Consume drinks the last drink made.
	Consume key.Binding
}

// DefaultKeyMap returns the default keybindings.
func DefaultKeyMap() *KeyMap {
	return &KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c", "esc"),
			key.WithHelp("q", "quit"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Make: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "make"),
		),
		Consume: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "consume"),
		),
	}
}

// ShortHelp returns the bindings shown in the footer.
func (k *KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Make, k.Consume, k.Quit}
}
