// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/connectify/connectify-tui/internal/ui/styles"
)

// =============================================================================
// STATUS BAR COMPONENT
// =============================================================================

// Shortcut is one key hint shown in the status bar.
type Shortcut struct {
	Key  string
	Desc string
}

// StatusBar is the bottom bar showing key hints and the signed-in
// identity.
type StatusBar struct {
	Identity  string
	Shortcuts []Shortcut
	Width     int

	theme *styles.Theme
}

// NewStatusBar creates a status bar component.
func NewStatusBar(theme *styles.Theme) *StatusBar {
	return &StatusBar{
		Width: 80,
		theme: theme,
	}
}

// SetWidth updates the bar width.
func (s *StatusBar) SetWidth(width int) {
	s.Width = width
}

// SetIdentity updates the signed-in display name.
func (s *StatusBar) SetIdentity(name string) {
	s.Identity = name
}

// SetShortcuts replaces the key hints.
func (s *StatusBar) SetShortcuts(shortcuts []Shortcut) {
	s.Shortcuts = shortcuts
}

// View renders the bar as a single line, hints left and identity right.
func (s *StatusBar) View() string {
	hints := make([]string, 0, len(s.Shortcuts))
	for _, sc := range s.Shortcuts {
		hints = append(hints,
			s.theme.ShortcutKey.Render(sc.Key)+" "+s.theme.ShortcutDesc.Render(sc.Desc))
	}
	left := strings.Join(hints, s.theme.ShortcutDesc.Render(" · "))

	right := ""
	if s.Identity != "" {
		right = s.theme.StatusIdent.Render("● " + s.Identity)
	}

	innerWidth := s.Width - s.theme.StatusBar.GetHorizontalFrameSize()
	gap := innerWidth - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		// Narrow terminal: keep the identity, drop hints from the right.
		for len(hints) > 0 && gap < 1 {
			hints = hints[:len(hints)-1]
			left = strings.Join(hints, s.theme.ShortcutDesc.Render(" · "))
			gap = innerWidth - lipgloss.Width(left) - lipgloss.Width(right)
		}
		if gap < 1 {
			gap = 1
		}
	}

	return s.theme.StatusBar.Width(s.Width).Render(left + strings.Repeat(" ", gap) + right)
}
