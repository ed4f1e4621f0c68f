// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/connectify/connectify-tui/internal/auth"
	"github.com/connectify/connectify-tui/internal/config"
	"github.com/connectify/connectify-tui/internal/directory"
	"github.com/connectify/connectify-tui/internal/model"
	"github.com/connectify/connectify-tui/internal/responder"
	"github.com/connectify/connectify-tui/internal/store"
	"github.com/connectify/connectify-tui/internal/ui/components"
	"github.com/connectify/connectify-tui/internal/ui/styles"
)

// =============================================================================
// FOCUS ZONES
// =============================================================================

// Focus identifies which region owns keyboard input.
type Focus int

const (
	FocusInput   Focus = iota // composer has focus, typing goes to the input
	FocusSidebar              // sidebar has focus, j/k move the channel highlight
)

// =============================================================================
// CHAT MODEL
// =============================================================================

// Model is the Bubble Tea model for the chat view.
type Model struct {
	// Styling
	theme *styles.Theme

	// Dimensions
	width  int
	height int

	// Domain state
	dir       *directory.Directory
	store     *store.Store
	responder *responder.Responder
	provider  auth.Provider

	// UI components
	viewport viewport.Model
	input    textinput.Model
	spinner  spinner.Model
	header   *components.Header
	sidebar  *components.Sidebar
	members  *components.Members
	status   *components.StatusBar

	// Key bindings
	keyMap KeyMap

	// View state
	focus       Focus
	showMembers bool

	// pending counts in-flight simulated replies per room. A nonzero
	// count for the active room drives the typing indicator.
	pending map[string]int

	// now is the clock, swappable in tests.
	now func() time.Time

	log *zap.Logger
}

// New creates a chat model over the given workspace state. The default
// room from the config is opened and seeded immediately.
func New(theme *styles.Theme, dir *directory.Directory, st *store.Store,
	resp *responder.Responder, provider auth.Provider, cfg *config.Config,
	log *zap.Logger) Model {

	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "Message #general"
	ti.CharLimit = 2000
	ti.Focus()

	vp := viewport.New(80, 20)
	vp.SetContent("")

	// Typing indicator animation.
	sp := spinner.New()
	sp.Spinner = spinner.MiniDot
	sp.Style = theme.TypingIndicator

	m := Model{
		theme:     theme,
		dir:       dir,
		store:     st,
		responder: resp,
		provider:  provider,
		viewport:  vp,
		input:     ti,
		spinner:   sp,
		header:    components.NewHeader(theme),
		sidebar:   components.NewSidebar(theme, dir.TextRooms(), dir.VoiceRooms(), dir.OnlineUsers()),
		members:   components.NewMembers(theme, dir),
		status:    components.NewStatusBar(theme),
		keyMap:    DefaultKeyMap(),
		focus:     FocusInput,
		pending:   make(map[string]int),
		now:       time.Now,
		log:       log,
	}

	m.showMembers = cfg.UI.ShowMembers
	m.header.SetMemberCount(dir.UserCount())

	room, ok := dir.RoomByID(cfg.UI.DefaultRoom)
	if !ok {
		rooms := dir.TextRooms()
		if len(rooms) > 0 {
			room = rooms[0]
		}
	}
	m.openRoom(room)

	if acct, ok := provider.CurrentAccount(); ok {
		m.status.SetIdentity(acct.DisplayName())
	}
	m.status.SetShortcuts(m.shortcuts())

	return m
}

// Init starts cursor blinking.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// openRoom makes a room active: the history is reseeded, the unread
// badge is cleared, and the composer placeholder follows the room name.
func (m *Model) openRoom(room model.Room) {
	m.store.Reset(room, m.now())
	m.sidebar.ActiveID = room.ID
	m.sidebar.Visit(room.ID)
	m.header.SetRoom(room)
	m.input.Placeholder = "Message #" + room.Name
	m.refreshViewport()
	m.viewport.GotoBottom()

	m.log.Debug("room opened",
		zap.String("room", room.ID),
		zap.Int("messages", m.store.Count()))
}

// shortcuts derives the status bar hints from the key map.
func (m *Model) shortcuts() []components.Shortcut {
	bindings := m.keyMap.ShortHelp()
	hints := make([]components.Shortcut, 0, len(bindings))
	for _, b := range bindings {
		hints = append(hints, components.Shortcut{
			Key:  b.Help().Key,
			Desc: b.Help().Desc,
		})
	}
	return hints
}
