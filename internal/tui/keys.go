package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up         key.Binding
	down       key.Binding
	enter      key.Binding
	esc        key.Binding
	quit       key.Binding
	newItem    key.Binding
	importItem key.Binding
	quickNotes key.Binding
	apply      key.Binding
	refresh    key.Binding
	removed    key.Binding
	publish    key.Binding
	copy       key.Binding
	clear      key.Binding
	clearAdded key.Binding
	save       key.Binding
	info       key.Binding
}

var keys = keyMap{
	up:         key.NewBinding(key.WithKeys("up", "k")),
	down:       key.NewBinding(key.WithKeys("down", "j")),
	enter:      key.NewBinding(key.WithKeys("enter")),
	esc:        key.NewBinding(key.WithKeys("esc")),
	quit:       key.NewBinding(key.WithKeys("q", "ctrl+c")),
	newItem:    key.NewBinding(key.WithKeys("n")),
	importItem: key.NewBinding(key.WithKeys("i")),
	quickNotes: key.NewBinding(key.WithKeys("o")),
	apply:      key.NewBinding(key.WithKeys("a")),
	refresh:    key.NewBinding(key.WithKeys("r")),
	removed:    key.NewBinding(key.WithKeys("x")),
	publish:    key.NewBinding(key.WithKeys("p")),
	copy:       key.NewBinding(key.WithKeys("c")),
	clear:      key.NewBinding(key.WithKeys("d")),
	clearAdded: key.NewBinding(key.WithKeys("m")),
	save:       key.NewBinding(key.WithKeys("ctrl+s")),
	info:       key.NewBinding(key.WithKeys("?")),
}
