package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Quit    key.Binding
	Up      key.Binding
	Down    key.Binding
	Search  key.Binding
	Sort    key.Binding
	Select  key.Binding
	Clear   key.Binding
	Retry   key.Binding
	Convert key.Binding
	Back    key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
		Up:      key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:    key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Search:  key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
		Sort:    key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "sort")),
		Select:  key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "pick")),
		Clear:   key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "clear")),
		Retry:   key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "try again")),
		Convert: key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "convert")),
		Back:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
	}
}

// help lists the bindings that currently do something.
func (k keyMap) help(a *App) []key.Binding {
	switch a.mode {
	case modeSearch:
		return []key.Binding{k.Back}
	case modeAmount:
		return []key.Binding{k.Select, k.Back}
	}
	out := []key.Binding{k.Up, k.Down, k.Search, k.Sort, k.Select}
	if a.clearEnabled {
		out = append(out, k.Clear)
	}
	if a.convertEnabled {
		out = append(out, k.Convert)
	}
	if a.tryAgainButton {
		out = append(out, k.Retry)
	}
	return append(out, k.Quit)
}
