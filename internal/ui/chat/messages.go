// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/connectify/connectify-tui/internal/responder"
)

// =============================================================================
// BUBBLE TEA MESSAGES
// =============================================================================

// AutoReplyMsg delivers a planned simulated reply after its delay has
// elapsed. The reply carries the room it was planned for; Update drops
// it if the user has switched rooms in the meantime.
type AutoReplyMsg struct {
	Reply responder.Reply
}

// SignOutMsg asks the root model to tear down the chat view and return
// to the auth screen.
type SignOutMsg struct{}

// scheduleReply returns a command that sleeps for the reply's delay and
// then delivers it as an AutoReplyMsg.
func scheduleReply(reply responder.Reply) tea.Cmd {
	return tea.Tick(reply.Delay, func(t time.Time) tea.Msg {
		return AutoReplyMsg{Reply: reply}
	})
}
