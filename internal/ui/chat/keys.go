// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"github.com/charmbracelet/bubbles/key"
)

// =============================================================================
// KEY MAP DEFINITION
// =============================================================================

// KeyMap defines all keyboard bindings for the chat interface.
// Each binding supports multiple keys and includes help text.
type KeyMap struct {
	Up            key.Binding
	Down          key.Binding
	PageUp        key.Binding
	PageDown      key.Binding
	Submit        key.Binding
	FocusToggle   key.Binding
	NextRoom      key.Binding
	PrevRoom      key.Binding
	ToggleMembers key.Binding
	SignOut       key.Binding
	Quit          key.Binding
}

// DefaultKeyMap returns the default key bindings for the chat interface.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "down"),
		),
		PageUp: key.NewBinding(
			key.WithKeys("pgup"),
			key.WithHelp("PgUp", "scroll up"),
		),
		PageDown: key.NewBinding(
			key.WithKeys("pgdown"),
			key.WithHelp("PgDn", "scroll down"),
		),
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("Enter", "send"),
		),
		FocusToggle: key.NewBinding(
			key.WithKeys("tab", "esc"),
			key.WithHelp("Tab", "channels"),
		),
		NextRoom: key.NewBinding(
			key.WithKeys("ctrl+n", "alt+down"),
			key.WithHelp("C-n", "next channel"),
		),
		PrevRoom: key.NewBinding(
			key.WithKeys("ctrl+p", "alt+up"),
			key.WithHelp("C-p", "prev channel"),
		),
		ToggleMembers: key.NewBinding(
			key.WithKeys("ctrl+u"),
			key.WithHelp("C-u", "members"),
		),
		SignOut: key.NewBinding(
			key.WithKeys("ctrl+o"),
			key.WithHelp("C-o", "sign out"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "ctrl+q"),
			key.WithHelp("C-c", "quit"),
		),
	}
}

// =============================================================================
// KEY BINDING HELPERS
// =============================================================================

// ShortHelp returns the bindings shown in the status bar.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.FocusToggle, k.NextRoom, k.ToggleMembers, k.SignOut, k.Quit}
}

// FullHelp returns all bindings grouped for a full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		// Navigation
		{k.Up, k.Down, k.PageUp, k.PageDown},
		// Channels
		{k.FocusToggle, k.NextRoom, k.PrevRoom},
		// Actions
		{k.Submit, k.ToggleMembers, k.SignOut, k.Quit},
	}
}
