// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package auth

import (
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	identity "github.com/connectify/connectify-tui/internal/auth"
)

// =============================================================================
// UPDATE LOOP
// =============================================================================

// Update handles incoming messages and returns the next model state.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.theme.SetSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m.updateFocused(msg)
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "ctrl+q":
		return m, tea.Quit

	case "ctrl+t":
		m.toggleMode()
		return m, nil

	case "tab", "down":
		m.moveFocus(1)
		return m, nil

	case "shift+tab", "up":
		m.moveFocus(-1)
		return m, nil

	case "enter":
		return m.submit()
	}

	m.errMsg = ""
	return m.updateFocused(msg)
}

// toggleMode flips between sign-in and sign-up, clearing the error and
// refocusing the first field.
func (m *Model) toggleMode() {
	if m.mode == ModeSignIn {
		m.mode = ModeSignUp
	} else {
		m.mode = ModeSignIn
	}
	m.errMsg = ""
	m.setFocus(0)
}

// moveFocus cycles through the fields visible in the current mode.
func (m *Model) moveFocus(delta int) {
	fields := m.activeFields()
	m.setFocus((m.focus + delta + len(fields)) % len(fields))
}

func (m *Model) setFocus(position int) {
	m.focus = position
	focused := m.activeFields()[position]
	for i := range m.inputs {
		if i == focused {
			m.inputs[i].Focus()
		} else {
			m.inputs[i].Blur()
		}
	}
}

// submit drives the identity provider with the form content. Provider
// errors surface under the form; success emits AuthenticatedMsg.
func (m Model) submit() (Model, tea.Cmd) {
	username := m.inputs[fieldUsername].Value()
	fullName := m.inputs[fieldFullName].Value()
	password := m.inputs[fieldPassword].Value()

	var acct identity.Account
	var err error
	if m.mode == ModeSignUp {
		acct, err = m.provider.SignUp(username, fullName, password)
	} else {
		acct, err = m.provider.SignIn(username, password)
	}
	if err != nil {
		m.errMsg = err.Error()
		m.log.Debug("auth attempt failed", zap.Error(err))
		return m, nil
	}

	m.log.Debug("authenticated", zap.String("account", acct.ID))
	return m, func() tea.Msg { return AuthenticatedMsg{Account: acct} }
}

// updateFocused forwards a message to the focused text input.
func (m Model) updateFocused(msg tea.Msg) (Model, tea.Cmd) {
	focused := m.activeFields()[m.focus]
	var cmd tea.Cmd
	m.inputs[focused], cmd = m.inputs[focused].Update(msg)
	return m, cmd
}
