package tui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines the board key bindings.
type keyMap struct {
	Up       key.Binding
	Down     key.Binding
	Toggle   key.Binding
	AddList  key.Binding
	AddTask  key.Binding
	Rename   key.Binding
	Credits  key.Binding
	Rate     key.Binding
	Hours    key.Binding
	Estimate key.Binding
	Status   key.Binding
	Priority key.Binding
	Quit     key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Toggle: key.NewBinding(
			key.WithKeys(" ", "enter"),
			key.WithHelp("space", "expand/collapse"),
		),
		AddList: key.NewBinding(
			key.WithKeys("A"),
			key.WithHelp("A", "add list"),
		),
		AddTask: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "add task"),
		),
		Rename: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "rename"),
		),
		Credits: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "set credits"),
		),
		Rate: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "set rate"),
		),
		Hours: key.NewBinding(
			key.WithKeys("h"),
			key.WithHelp("h", "set hours"),
		),
		Estimate: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "set estimate"),
		),
		Status: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "cycle status"),
		),
		Priority: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "cycle priority"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}
