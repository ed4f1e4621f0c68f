// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package auth

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/connectify/connectify-tui/internal/util"
)

// =============================================================================
// VIEW
// =============================================================================

// View renders the auth form centered in the window.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(m.theme.AuthBrand.Render("Connectify Live"))
	b.WriteString("\n")
	b.WriteString(m.theme.AuthSubtitle.Render("Connect with your team, anywhere"))
	b.WriteString("\n\n")

	if m.mode == ModeSignUp {
		b.WriteString(m.theme.AuthTitle.Render("Create your account"))
	} else {
		b.WriteString(m.theme.AuthTitle.Render("Welcome back"))
	}
	b.WriteString("\n\n")

	labels := map[int]string{
		fieldUsername: "Username",
		fieldFullName: "Full name",
		fieldPassword: "Password",
	}
	for _, field := range m.activeFields() {
		b.WriteString(m.theme.AuthLabel.Render(labels[field]))
		b.WriteString("\n")
		b.WriteString(m.inputs[field].View())
		b.WriteString("\n")
	}

	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(m.theme.AuthError.Render(util.TruncateRunes(m.errMsg, 60)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if m.mode == ModeSignUp {
		b.WriteString(m.theme.AuthButton.Render("Sign Up"))
		b.WriteString("\n")
		b.WriteString(m.theme.AuthSwitch.Render("Already have an account? Sign in"))
	} else {
		b.WriteString(m.theme.AuthButton.Render("Sign In"))
		b.WriteString("\n")
		b.WriteString(m.theme.AuthSwitch.Render("Don't have an account? Sign up"))
	}
	b.WriteString("\n\n")
	b.WriteString(m.theme.AuthHint.Render("Enter submit · C-t switch · Tab next field · C-c quit"))

	box := m.theme.AuthBox.Render(b.String())
	if m.width == 0 || m.height == 0 {
		return box
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}
