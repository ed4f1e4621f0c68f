// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/connectify/connectify-tui/internal/model"
	"github.com/connectify/connectify-tui/internal/ui/styles"
)

// =============================================================================
// HEADER COMPONENT - Room title bar
// =============================================================================

// Header is the title bar above the message pane. It shows the active
// room, its description, and the workspace member count.
type Header struct {
	Room        model.Room
	MemberCount int
	Width       int
	theme       *styles.Theme
}

// NewHeader creates a new Header component.
func NewHeader(theme *styles.Theme) *Header {
	return &Header{
		Width: 80,
		theme: theme,
	}
}

// SetWidth updates the header width.
func (h *Header) SetWidth(width int) {
	h.Width = width
}

// SetRoom updates the active room.
func (h *Header) SetRoom(room model.Room) {
	h.Room = room
}

// SetMemberCount updates the workspace member count.
func (h *Header) SetMemberCount(n int) {
	h.MemberCount = n
}

// View renders the header as a single bordered line:
//
//	# general  Company-wide announcements    5 members
func (h *Header) View() string {
	width := h.Width
	if width < 20 {
		width = 20
	}

	title := h.theme.HeaderRoom.Render("# " + h.Room.Name)
	if h.Room.IsVoice() {
		title = h.theme.HeaderRoom.Render("🔊 " + h.Room.Name)
	}

	left := title
	if h.Room.Description != "" {
		left += h.theme.HeaderDesc.Render("  " + h.Room.Description)
	}

	right := h.theme.HeaderMembers.Render(fmt.Sprintf("%d members", h.MemberCount))

	// Pad the gap so the member count sits flush right.
	innerWidth := width - h.theme.Header.GetHorizontalFrameSize()
	gap := innerWidth - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		// Narrow terminal: drop the description before dropping the count.
		left = title
		gap = innerWidth - lipgloss.Width(left) - lipgloss.Width(right)
		if gap < 1 {
			gap = 1
		}
	}

	line := left + strings.Repeat(" ", gap) + right
	return h.theme.Header.Width(width).Render(line)
}
