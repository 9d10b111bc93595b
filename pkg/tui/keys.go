package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines all key bindings for the TUI.
type KeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Enter  key.Binding
	Back   key.Binding
	Add    key.Binding
	Redeem key.Binding
	Reload key.Binding
	Help   key.Binding
	Quit   key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Enter: key.NewBinding(
			key.WithKeys("enter", "l", "right"),
			key.WithHelp("enter", "open goal"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "h", "left", "backspace"),
			key.WithHelp("esc", "back"),
		),
		Add: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "add demo goal"),
		),
		Redeem: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "rewards"),
		),
		Reload: key.NewBinding(
			key.WithKeys("R"),
			key.WithHelp("R", "reload template"),
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

// ShortHelp returns the footer help text for the home screen.
func (k KeyMap) ShortHelp() string {
	return "↑↓ nav  enter open  a add demo goal  R reload template  ? help  q quit"
}

// DetailHelp returns the footer help text for the detail screen.
func (k KeyMap) DetailHelp() string {
	return "↑↓ milestone  r rewards  esc back  ? help  q quit"
}

// FullHelp returns all key bindings for the help modal.
func (k KeyMap) FullHelp() [][]string {
	return [][]string{
		{"↑/k", "Move up"},
		{"↓/j", "Move down"},
		{"enter/l", "Open goal details"},
		{"esc/h", "Back to goal list"},
		{"a", "Add a demo goal"},
		{"r", "Open milestone rewards"},
		{"R", "Reload template.md"},
		{"?", "Toggle help"},
		{"q", "Quit"},
	}
}
