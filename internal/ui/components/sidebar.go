// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/connectify/connectify-tui/internal/model"
	"github.com/connectify/connectify-tui/internal/ui/styles"
	"github.com/connectify/connectify-tui/internal/util"
)

// =============================================================================
// SIDEBAR COMPONENT - Channel list
// =============================================================================

// Sidebar is the channel list on the left edge. Text channels are
// navigable; voice channels are listed but inert. An unread badge shows
// next to a text channel until the user visits it for the first time,
// and the online members render as a strip below the channel lists.
type Sidebar struct {
	TextRooms  []model.Room
	VoiceRooms []model.Room
	Online     []model.User

	// ActiveID is the room currently shown in the message pane.
	ActiveID string

	// FocusIndex is the highlighted text channel while the sidebar has
	// keyboard focus, or -1 when the input owns focus.
	FocusIndex int

	Width  int
	Height int

	visited map[string]bool
	theme   *styles.Theme
}

// NewSidebar creates a sidebar over the given channel lists and online
// member list.
func NewSidebar(theme *styles.Theme, textRooms, voiceRooms []model.Room, online []model.User) *Sidebar {
	return &Sidebar{
		TextRooms:  textRooms,
		VoiceRooms: voiceRooms,
		Online:     online,
		FocusIndex: -1,
		Width:      22,
		visited:    make(map[string]bool),
		theme:      theme,
	}
}

// SetSize updates the sidebar dimensions.
func (s *Sidebar) SetSize(width, height int) {
	s.Width = width
	s.Height = height
}

// Visit marks a room as seen, clearing its unread badge for the rest of
// the session.
func (s *Sidebar) Visit(roomID string) {
	s.visited[roomID] = true
}

// Visited reports whether the room's unread badge has been cleared.
func (s *Sidebar) Visited(roomID string) bool {
	return s.visited[roomID]
}

// MoveFocus shifts the focused text channel by delta, clamped to the
// list bounds.
func (s *Sidebar) MoveFocus(delta int) {
	if len(s.TextRooms) == 0 {
		return
	}
	s.FocusIndex += delta
	if s.FocusIndex < 0 {
		s.FocusIndex = 0
	}
	if s.FocusIndex >= len(s.TextRooms) {
		s.FocusIndex = len(s.TextRooms) - 1
	}
}

// FocusedRoom returns the text channel under the focus highlight.
func (s *Sidebar) FocusedRoom() (model.Room, bool) {
	if s.FocusIndex < 0 || s.FocusIndex >= len(s.TextRooms) {
		return model.Room{}, false
	}
	return s.TextRooms[s.FocusIndex], true
}

// View renders the sidebar column.
func (s *Sidebar) View() string {
	innerWidth := s.Width - s.theme.Sidebar.GetHorizontalFrameSize()
	if innerWidth < 10 {
		innerWidth = 10
	}

	var b strings.Builder

	b.WriteString(s.theme.SidebarBrand.Render("Connectify Live"))
	b.WriteString("\n")

	b.WriteString(s.theme.SidebarSection.Render("TEXT CHANNELS"))
	b.WriteString("\n")
	for i, room := range s.TextRooms {
		b.WriteString(s.renderTextRoom(room, i, innerWidth))
		b.WriteString("\n")
	}

	if len(s.VoiceRooms) > 0 {
		b.WriteString(s.theme.SidebarSection.Render("VOICE CHANNELS"))
		b.WriteString("\n")
		for _, room := range s.VoiceRooms {
			label := util.TruncateWidth("🔊 "+room.Name, innerWidth)
			b.WriteString(s.theme.SidebarVoiceItem.Render(label))
			b.WriteString("\n")
		}
	}

	if len(s.Online) > 0 {
		heading := fmt.Sprintf("ONLINE — %d", len(s.Online))
		b.WriteString(s.theme.SidebarSection.Render(heading))
		b.WriteString("\n")
		for _, user := range s.Online {
			name := util.TruncateWidth(user.Name, innerWidth-2)
			b.WriteString(s.theme.DotOnline.Render("●"))
			b.WriteString(" ")
			b.WriteString(s.theme.SidebarItem.Render(name))
			b.WriteString("\n")
		}
	}

	column := s.theme.Sidebar.Width(s.Width)
	if s.Height > 0 {
		column = column.Height(s.Height)
	}
	return column.Render(strings.TrimRight(b.String(), "\n"))
}

func (s *Sidebar) renderTextRoom(room model.Room, index, innerWidth int) string {
	style := s.theme.SidebarItem
	switch {
	case index == s.FocusIndex:
		style = s.theme.SidebarItemFocused
	case room.ID == s.ActiveID:
		style = s.theme.SidebarItemActive
	}

	label := "# " + room.Name

	badge := ""
	if room.Unread > 0 && !s.visited[room.ID] {
		badge = s.theme.UnreadBadge.Render(fmt.Sprintf("%d", room.Unread))
	}

	nameWidth := innerWidth - style.GetHorizontalFrameSize() - lipgloss.Width(badge)
	if badge != "" {
		nameWidth-- // gap before the badge
	}
	label = util.TruncateWidth(label, nameWidth)

	line := style.Render(label)
	if badge != "" {
		gap := innerWidth - lipgloss.Width(line) - lipgloss.Width(badge)
		if gap < 1 {
			gap = 1
		}
		line += strings.Repeat(" ", gap) + badge
	}
	return line
}
