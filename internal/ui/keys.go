package ui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines key bindings for the browser.
type KeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Left   key.Binding
	Right  key.Binding
	Select key.Binding
	Apply  key.Binding
	Focus  key.Binding
	Search key.Binding
	Theme  key.Binding
	Copy   key.Binding
	Clear  key.Binding
	Quit   key.Binding
}

// DefaultKeys are the browser bindings. Letter keys only act while the
// grid has focus; in the search field they are typed.
var DefaultKeys = KeyMap{
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "down"),
	),
	Left: key.NewBinding(
		key.WithKeys("left", "h"),
		key.WithHelp("←/h", "left"),
	),
	Right: key.NewBinding(
		key.WithKeys("right", "l"),
		key.WithHelp("→/l", "right"),
	),
	Select: key.NewBinding(
		key.WithKeys("enter", " "),
		key.WithHelp("enter", "details"),
	),
	Apply: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "search now"),
	),
	Focus: key.NewBinding(
		key.WithKeys("tab", "shift+tab"),
		key.WithHelp("tab", "search/grid"),
	),
	Search: key.NewBinding(
		key.WithKeys("/"),
		key.WithHelp("/", "search"),
	),
	Theme: key.NewBinding(
		key.WithKeys("t"),
		key.WithHelp("t", "theme"),
	),
	Copy: key.NewBinding(
		key.WithKeys("y"),
		key.WithHelp("y", "copy id"),
	),
	Clear: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "clear"),
	),
	Quit: key.NewBinding(
		key.WithKeys("ctrl+c"),
		key.WithHelp("ctrl+c", "quit"),
	),
}

// gridHelp is the help shown while the grid has focus.
type gridHelp struct{ KeyMap }

// ShortHelp implements help.KeyMap.
func (k gridHelp) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Select, k.Theme, k.Copy, k.Focus, k.Clear, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k gridHelp) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Select, k.Theme, k.Copy},
		{k.Search, k.Focus, k.Clear, k.Quit},
	}
}

// searchHelp is the help shown while typing a query.
type searchHelp struct{ KeyMap }

// ShortHelp implements help.KeyMap.
func (k searchHelp) ShortHelp() []key.Binding {
	return []key.Binding{k.Apply, k.Focus, k.Clear, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k searchHelp) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}
