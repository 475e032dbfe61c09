package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Increment key.Binding
	Decrement key.Binding
	Theme     key.Binding
	Hello     key.Binding
	Test      key.Binding
	Regional  key.Binding
	Quit      key.Binding
}

var defaultKeys = keyMap{
	Increment: key.NewBinding(key.WithKeys("+", "=", "up", "k"), key.WithHelp("+", "increment")),
	Decrement: key.NewBinding(key.WithKeys("-", "_", "down", "j"), key.WithHelp("-", "decrement")),
	Theme:     key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "theme")),
	Hello:     key.NewBinding(key.WithKeys("h"), key.WithHelp("h", "hello")),
	Test:      key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "test")),
	Regional:  key.NewBinding(key.WithKeys("u"), key.WithHelp("u", "hau")),
	Quit:      key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
}

// ShortHelp implements help.KeyMap
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Increment, k.Decrement, k.Theme, k.Quit}
}

// FullHelp implements help.KeyMap
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Increment, k.Decrement, k.Theme},
		{k.Hello, k.Test, k.Regional, k.Quit},
	}
}
