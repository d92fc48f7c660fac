package tui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines key bindings of the task list screen
type keyMap struct {
	Quit   key.Binding
	Add    key.Binding
	Edit   key.Binding
	Delete key.Binding
	Filter key.Binding
	Clear  key.Binding
	Sort   key.Binding
	Yes    key.Binding
	No     key.Binding
	Next   key.Binding
	Prev   key.Binding
	Submit key.Binding
	Cancel key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
		Add:    key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add")),
		Edit:   key.NewBinding(key.WithKeys("e", "enter"), key.WithHelp("e", "edit")),
		Delete: key.NewBinding(key.WithKeys("d", "delete"), key.WithHelp("d", "delete")),
		Filter: key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "filter")),
		Clear:  key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "clear filter")),
		Sort:   key.NewBinding(key.WithKeys("1", "2", "3", "4"), key.WithHelp("1-4", "sort by column")),
		Yes:    key.NewBinding(key.WithKeys("y", "Y")),
		No:     key.NewBinding(key.WithKeys("n", "N", "esc")),
		Next:   key.NewBinding(key.WithKeys("tab", "down")),
		Prev:   key.NewBinding(key.WithKeys("shift+tab", "up")),
		Submit: key.NewBinding(key.WithKeys("enter")),
		Cancel: key.NewBinding(key.WithKeys("esc", "ctrl+c")),
	}
}

// help returns a one-line help for the list screen
func (k keyMap) help() string {
	res := ""
	for i, b := range []key.Binding{k.Add, k.Edit, k.Delete, k.Sort, k.Filter, k.Clear, k.Quit} {
		if i > 0 {
			res += helpSepStyle.Render(" • ")
		}
		res += helpKeyStyle.Render(b.Help().Key) + " " + helpDescStyle.Render(b.Help().Desc)
	}
	return res
}
