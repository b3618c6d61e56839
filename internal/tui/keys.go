// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up       key.Binding
	down     key.Binding
	enter    key.Binding
	esc      key.Binding
	tab      key.Binding
	backtab  key.Binding
	toggle   key.Binding
	quit     key.Binding
	theme    key.Binding
	version  key.Binding
	logout   key.Binding
	copyUser key.Binding
	yes      key.Binding
	no       key.Binding
}

var keys = keyMap{
	up:       key.NewBinding(key.WithKeys("up", "k")),
	down:     key.NewBinding(key.WithKeys("down", "j")),
	enter:    key.NewBinding(key.WithKeys("enter")),
	esc:      key.NewBinding(key.WithKeys("esc")),
	tab:      key.NewBinding(key.WithKeys("tab")),
	backtab:  key.NewBinding(key.WithKeys("shift+tab")),
	toggle:   key.NewBinding(key.WithKeys(" ", "space")),
	quit:     key.NewBinding(key.WithKeys("ctrl+c")),
	theme:    key.NewBinding(key.WithKeys("ctrl+t")),
	version:  key.NewBinding(key.WithKeys("v")),
	logout:   key.NewBinding(key.WithKeys("o")),
	copyUser: key.NewBinding(key.WithKeys("c")),
	yes:      key.NewBinding(key.WithKeys("y", "enter")),
	no:       key.NewBinding(key.WithKeys("n", "esc")),
}
