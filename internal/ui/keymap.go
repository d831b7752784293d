package ui

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds the bindings handled before keys reach the editor.
type KeyMap struct {
	Next, Prev      key.Binding
	Accept, Dismiss key.Binding
	Request         key.Binding
	Save            key.Binding
	Quit            key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Next:    key.NewBinding(key.WithKeys("ctrl+n", "alt+down"), key.WithHelp("ctrl+n", "next fix")),
		Prev:    key.NewBinding(key.WithKeys("ctrl+p", "alt+up"), key.WithHelp("ctrl+p", "prev fix")),
		Accept:  key.NewBinding(key.WithKeys("ctrl+o", "alt+enter"), key.WithHelp("ctrl+o", "apply")),
		Dismiss: key.NewBinding(key.WithKeys("ctrl+k"), key.WithHelp("ctrl+k", "dismiss")),
		Request: key.NewBinding(key.WithKeys("ctrl+g"), key.WithHelp("ctrl+g", "suggest now")),
		Save:    key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "save")),
		Quit:    key.NewBinding(key.WithKeys("ctrl+q", "ctrl+c"), key.WithHelp("ctrl+q", "quit")),
	}
}

func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Accept, k.Dismiss, k.Save, k.Quit}
}

func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Next, k.Prev, k.Accept, k.Dismiss},
		{k.Request, k.Save, k.Quit},
	}
}
