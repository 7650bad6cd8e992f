package calendar

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds the calendar view bindings
type KeyMap struct {
	Prev   key.Binding
	Next   key.Binding
	Toggle key.Binding
	Left   key.Binding
	Right  key.Binding
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Clear  key.Binding
	Today  key.Binding
	Jump   key.Binding
}

// DefaultKeyMap returns the default calendar bindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Prev: key.NewBinding(
			key.WithKeys("h", "H", "pgup"),
			key.WithHelp("h", "previous month/week"),
		),
		Next: key.NewBinding(
			key.WithKeys("l", "L", "pgdown"),
			key.WithHelp("l", "next month/week"),
		),
		Toggle: key.NewBinding(
			key.WithKeys("v", "tab"),
			key.WithHelp("v", "toggle month/week"),
		),
		Left: key.NewBinding(
			key.WithKeys("left"),
			key.WithHelp("←", "previous day"),
		),
		Right: key.NewBinding(
			key.WithKeys("right"),
			key.WithHelp("→", "next day"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "previous week"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "next week"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "select day"),
		),
		Clear: key.NewBinding(
			key.WithKeys("esc", "x"),
			key.WithHelp("esc", "clear selection"),
		),
		Today: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "jump to today"),
		),
		Jump: key.NewBinding(
			key.WithKeys("g"),
			key.WithHelp("g", "go to date"),
		),
	}
}

// ShortHelp implements help.KeyMap
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Prev, k.Next, k.Toggle, k.Select, k.Jump}
}

// FullHelp implements help.KeyMap
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Prev, k.Next, k.Toggle, k.Today, k.Jump},
		{k.Left, k.Right, k.Up, k.Down, k.Select, k.Clear},
	}
}
