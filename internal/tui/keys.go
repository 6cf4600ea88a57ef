package tui

import "github.com/charmbracelet/bubbles/key"

// formKeyMap defines key bindings while a form field or the submit button has focus
type formKeyMap struct {
	Next   key.Binding
	Prev   key.Binding
	Submit key.Binding
	Quit   key.Binding
}

// ShortHelp returns keybindings to be shown in the mini help view
func (k formKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Prev, k.Submit, k.Quit}
}

// FullHelp returns keybindings for the expanded help view
func (k formKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Next, k.Prev},
		{k.Submit, k.Quit},
	}
}

// tableKeyMap defines key bindings while the flower table has focus
type tableKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Edit   key.Binding
	Delete key.Binding
	Next   key.Binding
	Help   key.Binding
	Quit   key.Binding
}

// ShortHelp returns keybindings to be shown in the mini help view
func (k tableKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Edit, k.Delete, k.Next, k.Help, k.Quit}
}

// FullHelp returns keybindings for the expanded help view
func (k tableKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.Edit, k.Delete},
		{k.Next, k.Help, k.Quit},
	}
}

// alertKeyMap defines key bindings while the validation alert is showing
type alertKeyMap struct {
	Dismiss key.Binding
}

// ShortHelp returns keybindings to be shown in the mini help view
func (k alertKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Dismiss}
}

// FullHelp returns keybindings for the expanded help view
func (k alertKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Dismiss}}
}

// KeyMap groups every binding the application responds to
type KeyMap struct {
	Form  formKeyMap
	Table tableKeyMap
	Alert alertKeyMap

	ForceQuit key.Binding
}

// DefaultKeyMap returns the standard florist key bindings
func DefaultKeyMap() KeyMap {
	next := key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "next"),
	)

	return KeyMap{
		Form: formKeyMap{
			Next: next,
			Prev: key.NewBinding(
				key.WithKeys("shift+tab"),
				key.WithHelp("shift+tab", "prev"),
			),
			Submit: key.NewBinding(
				key.WithKeys("ctrl+s"),
				key.WithHelp("ctrl+s", "submit"),
			),
			Quit: key.NewBinding(
				key.WithKeys("ctrl+c"),
				key.WithHelp("ctrl+c", "quit"),
			),
		},
		Table: tableKeyMap{
			Up: key.NewBinding(
				key.WithKeys("up", "k"),
				key.WithHelp("↑/k", "up"),
			),
			Down: key.NewBinding(
				key.WithKeys("down", "j"),
				key.WithHelp("↓/j", "down"),
			),
			Edit: key.NewBinding(
				key.WithKeys("e"),
				key.WithHelp("e", "edit"),
			),
			Delete: key.NewBinding(
				key.WithKeys("d", "delete"),
				key.WithHelp("d", "delete"),
			),
			Next: next,
			Help: key.NewBinding(
				key.WithKeys("?"),
				key.WithHelp("?", "more"),
			),
			Quit: key.NewBinding(
				key.WithKeys("q"),
				key.WithHelp("q", "quit"),
			),
		},
		Alert: alertKeyMap{
			Dismiss: key.NewBinding(
				key.WithKeys("enter", "esc", " "),
				key.WithHelp("enter/esc", "dismiss"),
			),
		},
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
		),
	}
}
