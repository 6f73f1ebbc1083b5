package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap binds keys to the widget's commands. Everything else is typed into
// the query input.
type KeyMap struct {
	Confirm  key.Binding
	Cancel   key.Binding
	Toggle   key.Binding // same as tapping the arrow
	Focus    key.Binding // same as tapping the input row
	ClearAll key.Binding
}

// DefaultKeyMap returns the standard bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "confirm"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "cancel"),
		),
		Toggle: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "toggle list"),
		),
		Focus: key.NewBinding(
			key.WithKeys("ctrl+o"),
			key.WithHelp("ctrl+o", "focus"),
		),
		ClearAll: key.NewBinding(
			key.WithKeys("ctrl+x"),
			key.WithHelp("ctrl+x", "clear"),
		),
	}
}

// ShortHelp lists bindings in help-line order.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Focus, k.Toggle, k.ClearAll, k.Confirm, k.Cancel}
}
