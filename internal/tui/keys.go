package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Quit     key.Binding
	Unselect key.Binding
	Down     key.Binding
	Up       key.Binding
	Add      key.Binding
	Edit     key.Binding
	Delete   key.Binding

	Done    key.Binding
	Cancel  key.Binding
	Confirm key.Binding
	Reject  key.Binding
	Erase   key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Quit:     key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "Quit")),
		Unselect: key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "Unselect")),
		Down:     key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "Down")),
		Up:       key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "Up")),
		Add:      key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "Add")),
		Edit:     key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "Edit")),
		Delete:   key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "Delete")),

		Done:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "Done")),
		Cancel:  key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "Cancel")),
		Confirm: key.NewBinding(key.WithKeys("y", "enter"), key.WithHelp("y", "Delete")),
		Reject:  key.NewBinding(key.WithKeys("n", "esc"), key.WithHelp("n", "Keep")),
		Erase:   key.NewBinding(key.WithKeys("backspace")),
	}
}

// menu is the action menu shown in the footer for a mode.
func (k keyMap) menu(md mode) []key.Binding {
	switch md {
	case modeAdd:
		return []key.Binding{k.Done, k.Cancel}
	case modeUpdate:
		return []key.Binding{k.Done}
	case modeDelete:
		return []key.Binding{k.Confirm, k.Reject}
	default:
		return []key.Binding{k.Add, k.Delete, k.Edit, k.Quit}
	}
}
