package tabbar

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds the bar's keybindings.
type KeyMap struct {
	Next        key.Binding
	Prev        key.Binding
	ScrollLeft  key.Binding
	ScrollRight key.Binding
}

// DefaultKeyMap returns the standard bindings: arrows move the selection,
// brackets pan a scrolling bar.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Next: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→", "next tab"),
		),
		Prev: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←", "prev tab"),
		),
		ScrollLeft: key.NewBinding(
			key.WithKeys("["),
			key.WithHelp("[", "pan left"),
		),
		ScrollRight: key.NewBinding(
			key.WithKeys("]"),
			key.WithHelp("]", "pan right"),
		),
	}
}
