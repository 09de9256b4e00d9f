package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Add    key.Binding
	Toggle key.Binding
	Delete key.Binding
	Clear  key.Binding
	Filter key.Binding
	Theme  key.Binding
	Grab   key.Binding
	Drop   key.Binding
	Cancel key.Binding
	Quit   key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Add:    key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add")),
		Toggle: key.NewBinding(key.WithKeys(" ", "x"), key.WithHelp("space", "toggle")),
		Delete: key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete")),
		Clear:  key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "clear done")),
		Filter: key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "filter")),
		Theme:  key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "theme")),
		Grab:   key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "move")),
		Drop:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "drop here")),
		Cancel: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
		Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) short(grabbing bool) []key.Binding {
	if grabbing {
		return []key.Binding{k.Drop, k.Cancel}
	}
	return []key.Binding{k.Add, k.Toggle, k.Delete, k.Grab, k.Filter, k.Theme}
}

func (k keyMap) full() []key.Binding {
	return []key.Binding{k.Add, k.Toggle, k.Delete, k.Clear, k.Grab, k.Drop, k.Cancel, k.Filter, k.Theme}
}
