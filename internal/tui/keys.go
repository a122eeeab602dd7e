package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	left    key.Binding
	right   key.Binding
	enter   key.Binding
	tab     key.Binding
	backtab key.Binding
	quit    key.Binding
	reveal  key.Binding
	copy    key.Binding
}

var keys = keyMap{
	left:    key.NewBinding(key.WithKeys("left", "h")),
	right:   key.NewBinding(key.WithKeys("right", "l")),
	enter:   key.NewBinding(key.WithKeys("enter")),
	tab:     key.NewBinding(key.WithKeys("tab", "down")),
	backtab: key.NewBinding(key.WithKeys("shift+tab", "up")),
	quit:    key.NewBinding(key.WithKeys("ctrl+c")),
	reveal:  key.NewBinding(key.WithKeys("ctrl+r")),
	copy:    key.NewBinding(key.WithKeys("ctrl+p")),
}
