package ui

import "charm.land/bubbles/v2/key"

// keyMap groups the pie bindings. Open* apply while the pie is hidden, the
// ring bindings while it is shown.
type keyMap struct {
	OpenLeft  key.Binding
	OpenRight key.Binding
	Open      key.Binding
	Prev      key.Binding
	Next      key.Binding
	Enter     key.Binding
	Leave     key.Binding
	Tap       key.Binding
	Close     key.Binding
	Quit      key.Binding
}

// ShortHelp returns bindings shown in the footer.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Open, k.Prev, k.Next, k.Enter, k.Tap, k.Close, k.Quit}
}

// FullHelp returns all bindings grouped by pie state.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.OpenLeft, k.OpenRight, k.Open, k.Quit},
		{k.Prev, k.Next, k.Enter, k.Leave, k.Tap, k.Close},
	}
}

func defaultKeyMap() keyMap {
	return keyMap{
		OpenLeft: key.NewBinding(
			key.WithKeys("["),
			key.WithHelp("[", "open from left edge"),
		),
		OpenRight: key.NewBinding(
			key.WithKeys("]"),
			key.WithHelp("]", "open from right edge"),
		),
		Open: key.NewBinding(
			key.WithKeys("space"),
			key.WithHelp("space", "open"),
		),
		Prev: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←", "previous"),
		),
		Next: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→", "next"),
		),
		Enter: key.NewBinding(
			key.WithKeys("down", "tab", "j"),
			key.WithHelp("↓", "expand"),
		),
		Leave: key.NewBinding(
			key.WithKeys("up", "shift+tab", "k"),
			key.WithHelp("↑", "collapse"),
		),
		Tap: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "tap"),
		),
		Close: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "close"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}
