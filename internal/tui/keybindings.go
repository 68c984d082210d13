package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the grid-mode keybindings.
type KeyMap struct {
	Up          key.Binding
	Down        key.Binding
	Left        key.Binding
	Right       key.Binding
	ExtendUp    key.Binding
	ExtendDown  key.Binding
	ExtendLeft  key.Binding
	ExtendRight key.Binding
	Edit        key.Binding
	ClearCell   key.Binding
	Undo        key.Binding
	Redo        key.Binding
	Quit        key.Binding
}

// DefaultKeyMap returns the built-in bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up:          key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "move up")),
		Down:        key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "move down")),
		Left:        key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "move left")),
		Right:       key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "move right")),
		ExtendUp:    key.NewBinding(key.WithKeys("shift+up"), key.WithHelp("shift+↑", "extend up")),
		ExtendDown:  key.NewBinding(key.WithKeys("shift+down"), key.WithHelp("shift+↓", "extend down")),
		ExtendLeft:  key.NewBinding(key.WithKeys("shift+left"), key.WithHelp("shift+←", "extend left")),
		ExtendRight: key.NewBinding(key.WithKeys("shift+right"), key.WithHelp("shift+→", "extend right")),
		Edit:        key.NewBinding(key.WithKeys("enter", "i"), key.WithHelp("enter", "edit cell")),
		ClearCell:   key.NewBinding(key.WithKeys("backspace", "delete"), key.WithHelp("del", "clear cell")),
		Undo:        key.NewBinding(key.WithKeys("ctrl+z", "u"), key.WithHelp("ctrl+z", "undo")),
		Redo:        key.NewBinding(key.WithKeys("ctrl+y"), key.WithHelp("ctrl+y", "redo")),
		Quit:        key.NewBinding(key.WithKeys("ctrl+c", "q"), key.WithHelp("q", "quit")),
	}
}
