// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
)

// =============================================================================
// UPDATE LOOP
// =============================================================================

// Update handles incoming messages and returns the next model state.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case AutoReplyMsg:
		return m.handleAutoReply(msg)

	case spinner.TickMsg:
		// Animate the typing indicator only while replies are pending.
		if m.pending[m.store.Room().ID] == 0 {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// handleAutoReply lands a simulated reply, unless the user has switched
// rooms since it was planned, in which case it is dropped silently.
func (m Model) handleAutoReply(msg AutoReplyMsg) (Model, tea.Cmd) {
	reply := msg.Reply
	if m.pending[reply.RoomID] > 0 {
		m.pending[reply.RoomID]--
	}

	if reply.RoomID != m.store.Room().ID {
		m.log.Debug("reply dropped, room changed",
			zap.String("planned_room", reply.RoomID),
			zap.String("active_room", m.store.Room().ID))
		return m, nil
	}

	m.store.Append(reply.Message())
	m.refreshViewport()
	m.viewport.GotoBottom()
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keyMap.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keyMap.SignOut):
		m.provider.SignOut()
		return m, func() tea.Msg { return SignOutMsg{} }

	case key.Matches(msg, m.keyMap.ToggleMembers):
		m.showMembers = !m.showMembers
		m.resize(m.width, m.height)
		return m, nil

	case key.Matches(msg, m.keyMap.NextRoom):
		return m.stepRoom(1), nil

	case key.Matches(msg, m.keyMap.PrevRoom):
		return m.stepRoom(-1), nil

	case key.Matches(msg, m.keyMap.FocusToggle):
		m.toggleFocus()
		return m, nil
	}

	if m.focus == FocusSidebar {
		return m.handleSidebarKey(msg)
	}
	return m.handleInputKey(msg)
}

// handleSidebarKey navigates the channel list while it has focus.
func (m Model) handleSidebarKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keyMap.Up):
		m.sidebar.MoveFocus(-1)
	case key.Matches(msg, m.keyMap.Down):
		m.sidebar.MoveFocus(1)
	case key.Matches(msg, m.keyMap.Submit):
		if room, ok := m.sidebar.FocusedRoom(); ok {
			m.openRoom(room)
			m.toggleFocus()
		}
	case key.Matches(msg, m.keyMap.PageUp):
		m.viewport.HalfViewUp()
	case key.Matches(msg, m.keyMap.PageDown):
		m.viewport.HalfViewDown()
	}
	return m, nil
}

// handleInputKey routes keys to the composer and the viewport.
func (m Model) handleInputKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keyMap.Submit):
		return m.send()
	case key.Matches(msg, m.keyMap.PageUp):
		m.viewport.HalfViewUp()
		return m, nil
	case key.Matches(msg, m.keyMap.PageDown):
		m.viewport.HalfViewDown()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// send submits the composer content as the signed-in account and plans
// a possible simulated reply. Empty or whitespace-only content is a
// silent no-op; the composer keeps its text.
func (m Model) send() (Model, tea.Cmd) {
	acct, ok := m.provider.CurrentAccount()
	if !ok {
		return m, func() tea.Msg { return SignOutMsg{} }
	}

	sent, ok := m.store.Send(m.input.Value(), acct.ID, acct.DisplayName(), acct.Avatar)
	if !ok {
		return m, nil
	}

	m.input.Reset()
	m.refreshViewport()
	m.viewport.GotoBottom()

	m.log.Debug("message sent",
		zap.String("room", m.store.Room().ID),
		zap.String("id", sent.ID),
		zap.String("preview", sent.Preview(32)))

	reply, ok := m.responder.Plan(m.store.Room().ID)
	if !ok {
		return m, nil
	}
	m.pending[reply.RoomID]++
	return m, tea.Batch(scheduleReply(reply), m.spinner.Tick)
}

// stepRoom switches the active room by delta within the text channels,
// wrapping at both ends.
func (m Model) stepRoom(delta int) Model {
	rooms := m.dir.TextRooms()
	if len(rooms) == 0 {
		return m
	}

	active := 0
	for i, room := range rooms {
		if room.ID == m.store.Room().ID {
			active = i
			break
		}
	}
	next := (active + delta + len(rooms)) % len(rooms)
	m.openRoom(rooms[next])
	return m
}

func (m *Model) toggleFocus() {
	if m.focus == FocusInput {
		m.focus = FocusSidebar
		m.input.Blur()
		// Put the highlight on the active room so navigation starts
		// from where the user is.
		for i, room := range m.sidebar.TextRooms {
			if room.ID == m.store.Room().ID {
				m.sidebar.FocusIndex = i
				break
			}
		}
	} else {
		m.focus = FocusInput
		m.sidebar.FocusIndex = -1
		m.input.Focus()
	}
}

// resize distributes the window between the columns and the chrome.
func (m *Model) resize(width, height int) {
	m.width = width
	m.height = height
	m.theme.SetSize(width, height)

	layout := m.layout()

	m.header.SetWidth(width)
	m.status.SetWidth(width)
	m.sidebar.SetSize(layout.sidebarWidth, layout.bodyHeight)
	m.members.SetSize(layout.membersWidth, layout.bodyHeight)

	m.viewport.Width = layout.messagesWidth
	m.viewport.Height = layout.messagesHeight
	m.input.Width = layout.messagesWidth - 4

	m.refreshViewport()
	m.viewport.GotoBottom()
}
