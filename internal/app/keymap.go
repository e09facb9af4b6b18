package app

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines all application keybindings.
type KeyMap struct {
	Quit        key.Binding
	SendRequest key.Binding
	NewRequest  key.Binding
	SaveRequest key.Binding

	CycleFocus    key.Binding
	CycleFocusRev key.Binding
	FocusSidebar  key.Binding
	FocusEditor   key.Binding
	FocusResponse key.Binding
	ToggleSidebar key.Binding

	CopyAsCurl key.Binding
	CopyBody   key.Binding
}

// DefaultKeyMap returns the default keybinding configuration.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
		SendRequest: key.NewBinding(
			key.WithKeys("ctrl+r"),
			key.WithHelp("ctrl+r", "send request"),
		),
		NewRequest: key.NewBinding(
			key.WithKeys("ctrl+n"),
			key.WithHelp("ctrl+n", "new request"),
		),
		SaveRequest: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "save"),
		),
		CycleFocus: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next panel"),
		),
		CycleFocusRev: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "prev panel"),
		),
		FocusSidebar: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "requests"),
		),
		FocusEditor: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "editor"),
		),
		FocusResponse: key.NewBinding(
			key.WithKeys("3"),
			key.WithHelp("3", "response"),
		),
		ToggleSidebar: key.NewBinding(
			key.WithKeys("b"),
			key.WithHelp("b", "toggle sidebar"),
		),
		CopyAsCurl: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "copy as curl"),
		),
		CopyBody: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "copy response body"),
		),
	}
}
