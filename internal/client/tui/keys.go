// internal/client/tui/keys.go
package tui

import "github.com/charmbracelet/bubbles/key"

type KeyMap struct {
	Up         key.Binding
	Down       key.Binding
	NewChannel key.Binding
	NewDirect  key.Binding
	Reply      key.Binding
	NextField  key.Binding
	PrevField  key.Binding
	Submit     key.Binding
	Cancel     key.Binding
	Quit       key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "previous message"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "next message"),
		),
		NewChannel: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "new channel message"),
		),
		NewDirect: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "new direct message"),
		),
		Reply: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reply"),
		),
		NextField: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next field"),
		),
		PrevField: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "previous field"),
		),
		Submit: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "send"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "close"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
	}
}

// browseKeys is the help keyMap shown while no message is being composed.
type browseKeys KeyMap

func (k browseKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NewChannel, k.NewDirect, k.Reply, k.Quit}
}

func (k browseKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

type composeKeys KeyMap

func (k composeKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.NextField, k.Submit, k.Cancel, k.Quit}
}

func (k composeKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}
