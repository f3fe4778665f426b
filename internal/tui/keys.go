package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Prev    key.Binding
	Next    key.Binding
	Step    key.Binding
	Advance key.Binding
	Rewind  key.Binding
	Status  key.Binding
	Reset   key.Binding
	Help    key.Binding
	Quit    key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Prev: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "prev mission"),
		),
		Next: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "next mission"),
		),
		Step: key.NewBinding(
			key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"),
			key.WithHelp("1-9", "jump to mission"),
		),
		Advance: key.NewBinding(
			key.WithKeys("+", "="),
			key.WithHelp("+", "log progress"),
		),
		Rewind: key.NewBinding(
			key.WithKeys("-"),
			key.WithHelp("-", "undo progress"),
		),
		Status: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "toggle status"),
		),
		Reset: key.NewBinding(
			key.WithKeys("ctrl+r"),
			key.WithHelp("ctrl+r", "reset progress"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more keys"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Prev, k.Next, k.Advance, k.Status, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Prev, k.Next, k.Step},
		{k.Advance, k.Rewind},
		{k.Status, k.Reset},
		{k.Help, k.Quit},
	}
}
