// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/connectify/connectify-tui/internal/directory"
	"github.com/connectify/connectify-tui/internal/model"
	"github.com/connectify/connectify-tui/internal/ui/styles"
	"github.com/connectify/connectify-tui/internal/util"
)

// =============================================================================
// MEMBERS PANEL COMPONENT
// =============================================================================

// Members is the collapsible panel on the right edge listing every
// workspace member, bucketed by presence and ordered by role then name.
type Members struct {
	Width  int
	Height int

	dir   *directory.Directory
	theme *styles.Theme
}

// NewMembers creates a members panel over the directory.
func NewMembers(theme *styles.Theme, dir *directory.Directory) *Members {
	return &Members{
		Width: 26,
		dir:   dir,
		theme: theme,
	}
}

// SetSize updates the panel dimensions.
func (m *Members) SetSize(width, height int) {
	m.Width = width
	m.Height = height
}

// View renders the panel column.
func (m *Members) View() string {
	innerWidth := m.Width - m.theme.Members.GetHorizontalFrameSize()
	if innerWidth < 12 {
		innerWidth = 12
	}

	var b strings.Builder

	heading := fmt.Sprintf("Members — %d", m.dir.UserCount())
	b.WriteString(m.theme.MembersHeading.Render(heading))
	b.WriteString("\n")

	for _, group := range m.dir.MembersByPresence() {
		groupHeading := fmt.Sprintf("%s — %d",
			strings.ToUpper(group.Presence.DisplayName()), len(group.Users))
		b.WriteString(m.theme.PresenceHeading.Render(groupHeading))
		b.WriteString("\n")

		for _, user := range group.Users {
			b.WriteString(m.renderMember(user, innerWidth))
		}
	}

	column := m.theme.Members.Width(m.Width)
	if m.Height > 0 {
		column = column.Height(m.Height)
	}
	return column.Render(strings.TrimRight(b.String(), "\n"))
}

func (m *Members) renderMember(user model.User, innerWidth int) string {
	var b strings.Builder

	b.WriteString(m.presenceDot(user.Presence))
	b.WriteString(" ")

	avatar := user.Avatar
	if avatar == "" {
		avatar = util.Initials(user.Name)
	}
	name := avatar + " " + user.Name
	b.WriteString(m.nameStyle(user.Role).Render(util.TruncateWidth(name, innerWidth-2)))
	b.WriteString("\n")

	if user.Activity != "" {
		activity := util.TruncateWidth(user.Activity, innerWidth-2)
		b.WriteString(m.theme.MemberActivity.Render(activity))
		b.WriteString("\n")
	}

	return b.String()
}

// presenceDot renders the colored status dot for a presence state.
func (m *Members) presenceDot(p model.Presence) string {
	switch p {
	case model.PresenceOnline:
		return m.theme.DotOnline.Render("●")
	case model.PresenceAway:
		return m.theme.DotAway.Render("●")
	default:
		return m.theme.DotOffline.Render("○")
	}
}

// nameStyle picks the role-colored name style.
func (m *Members) nameStyle(role model.Role) lipgloss.Style {
	switch role {
	case model.RoleOwner:
		return m.theme.MemberOwner
	case model.RoleAdmin:
		return m.theme.MemberAdmin
	case model.RoleModerator:
		return m.theme.MemberModerator
	default:
		return m.theme.MemberName
	}
}
