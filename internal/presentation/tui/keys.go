package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Press key.Binding
	Help  key.Binding
	Quit  key.Binding
}

var keys = keyMap{
	Press: key.NewBinding(
		key.WithKeys("enter", " ", "p"),
		key.WithHelp("enter/space/p", "play"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "toggle help"),
	),
	Quit: key.NewBinding(
		key.WithKeys("ctrl+c", "q", "esc"),
		key.WithHelp("q", "quit"),
	),
}

// FullHelp returns all keybindings for the help view
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Press, k.Help, k.Quit}}
}

// ShortHelp returns minimal keybindings for the compact help view
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Press, k.Quit}
}
