// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package main

import (
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/connectify/connectify-tui/internal/auth"
	"github.com/connectify/connectify-tui/internal/config"
	"github.com/connectify/connectify-tui/internal/directory"
	"github.com/connectify/connectify-tui/internal/responder"
	"github.com/connectify/connectify-tui/internal/store"
	authui "github.com/connectify/connectify-tui/internal/ui/auth"
	"github.com/connectify/connectify-tui/internal/ui/chat"
	"github.com/connectify/connectify-tui/internal/ui/styles"
)

// =============================================================================
// APPLICATION MODEL
// =============================================================================

// State represents the current application state.
type State int

const (
	StateAuth State = iota // auth screen, no session yet
	StateChat              // chat view, signed in
)

// App is the root Bubble Tea model. It gates the chat view behind the
// auth screen and swaps between them as the session comes and goes.
type App struct {
	state State

	theme *styles.Theme

	width  int
	height int

	authView authui.Model
	chatView chat.Model

	cfg      *config.Config
	dir      *directory.Directory
	provider auth.Provider
	log      *zap.Logger
}

// NewApp wires the application together. The workspace directory and
// identity provider live here; each sign-in gets a fresh chat view.
func NewApp(cfg *config.Config, provider auth.Provider, log *zap.Logger) *App {
	theme := styles.NewTheme()
	return &App{
		state:    StateAuth,
		theme:    theme,
		authView: authui.New(theme, provider, log),
		cfg:      cfg,
		dir:      directory.Default(),
		provider: provider,
		log:      log,
	}
}

// Init starts the auth screen.
func (a *App) Init() tea.Cmd {
	return a.authView.Init()
}

// Update routes messages to the active view and handles the
// auth <-> chat transitions.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		// Both views track the size so the swap is seamless.
		var cmds []tea.Cmd
		var cmd tea.Cmd
		a.authView, cmd = a.authView.Update(msg)
		cmds = append(cmds, cmd)
		if a.state == StateChat {
			a.chatView, cmd = a.chatView.Update(msg)
			cmds = append(cmds, cmd)
		}
		return a, tea.Batch(cmds...)

	case authui.AuthenticatedMsg:
		a.log.Info("session started", zap.String("account", msg.Account.ID))
		a.state = StateChat
		a.chatView = chat.New(a.theme, a.dir, store.New(),
			responder.NewFromConfig(a.dir.Users(), a.cfg.Responder),
			a.provider, a.cfg, a.log)
		var cmds []tea.Cmd
		cmds = append(cmds, a.chatView.Init())
		if a.width > 0 {
			var cmd tea.Cmd
			a.chatView, cmd = a.chatView.Update(tea.WindowSizeMsg{Width: a.width, Height: a.height})
			cmds = append(cmds, cmd)
		}
		return a, tea.Batch(cmds...)

	case chat.SignOutMsg:
		a.log.Info("session ended")
		a.state = StateAuth
		a.authView = authui.New(a.theme, a.provider, a.log)
		var cmds []tea.Cmd
		cmds = append(cmds, a.authView.Init())
		if a.width > 0 {
			var cmd tea.Cmd
			a.authView, cmd = a.authView.Update(tea.WindowSizeMsg{Width: a.width, Height: a.height})
			cmds = append(cmds, cmd)
		}
		return a, tea.Batch(cmds...)
	}

	var cmd tea.Cmd
	if a.state == StateChat {
		a.chatView, cmd = a.chatView.Update(msg)
	} else {
		a.authView, cmd = a.authView.Update(msg)
	}
	return a, cmd
}

// View renders the active screen.
func (a *App) View() string {
	if a.state == StateChat {
		return a.chatView.View()
	}
	return a.authView.View()
}
