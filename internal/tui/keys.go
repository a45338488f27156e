// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "github.com/charmbracelet/bubbles/key"

// keyMap holds the dashboard bindings. Forms match keys by string.
type keyMap struct {
	up      key.Binding
	down    key.Binding
	enter   key.Binding
	logout  key.Binding
	trial   key.Binding
	copy    key.Binding
	refresh key.Binding
}

var keys = keyMap{
	up:      key.NewBinding(key.WithKeys("up", "k")),
	down:    key.NewBinding(key.WithKeys("down", "j")),
	enter:   key.NewBinding(key.WithKeys("enter")),
	logout:  key.NewBinding(key.WithKeys("l")),
	trial:   key.NewBinding(key.WithKeys("t")),
	copy:    key.NewBinding(key.WithKeys("c")),
	refresh: key.NewBinding(key.WithKeys("r")),
}
