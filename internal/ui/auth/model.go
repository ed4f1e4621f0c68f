// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package auth

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	identity "github.com/connectify/connectify-tui/internal/auth"
	"github.com/connectify/connectify-tui/internal/ui/styles"
)

// =============================================================================
// SCREEN MODES
// =============================================================================

// Mode selects between the sign-in and sign-up forms.
type Mode int

const (
	ModeSignIn Mode = iota
	ModeSignUp
)

// Field indexes into the form inputs.
const (
	fieldUsername = iota
	fieldFullName // sign-up only
	fieldPassword
	fieldCount
)

// =============================================================================
// MESSAGES
// =============================================================================

// AuthenticatedMsg reports a successful sign-in or sign-up. The root
// model swaps in the chat view when it arrives.
type AuthenticatedMsg struct {
	Account identity.Account
}

// =============================================================================
// AUTH MODEL
// =============================================================================

// Model is the Bubble Tea model for the auth screen.
type Model struct {
	theme *styles.Theme

	width  int
	height int

	mode   Mode
	inputs [fieldCount]textinput.Model
	focus  int

	// errMsg is the provider error shown under the form, cleared on the
	// next keystroke.
	errMsg string

	provider identity.Provider
	log      *zap.Logger
}

// New creates the auth screen in sign-in mode.
func New(theme *styles.Theme, provider identity.Provider, log *zap.Logger) Model {
	m := Model{
		theme:    theme,
		provider: provider,
		log:      log,
	}

	username := textinput.New()
	username.Prompt = ""
	username.Placeholder = "username"
	username.CharLimit = 64
	username.Focus()

	fullName := textinput.New()
	fullName.Prompt = ""
	fullName.Placeholder = "full name"
	fullName.CharLimit = 64

	password := textinput.New()
	password.Prompt = ""
	password.Placeholder = "password"
	password.CharLimit = 128
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '•'

	m.inputs[fieldUsername] = username
	m.inputs[fieldFullName] = fullName
	m.inputs[fieldPassword] = password
	return m
}

// Init starts cursor blinking.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// activeFields lists the field indexes visible in the current mode.
func (m Model) activeFields() []int {
	if m.mode == ModeSignUp {
		return []int{fieldUsername, fieldFullName, fieldPassword}
	}
	return []int{fieldUsername, fieldPassword}
}
