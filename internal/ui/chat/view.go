// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/connectify/connectify-tui/internal/model"
	"github.com/connectify/connectify-tui/internal/ui/styles"
)

const (
	sidebarWidth = 22
	membersWidth = 26
	chromeHeight = 5 // header + input + status bar
)

// layoutSpec is the computed column split for the current window.
type layoutSpec struct {
	sidebarWidth   int
	membersWidth   int
	messagesWidth  int
	messagesHeight int
	bodyHeight     int
}

// layout splits the window by the responsive mode: narrow terminals get
// the message pane alone, medium adds the sidebar, wide adds the
// members panel when it is toggled on.
func (m *Model) layout() layoutSpec {
	spec := layoutSpec{
		bodyHeight:     m.height - chromeHeight,
		messagesHeight: m.height - chromeHeight,
	}
	if spec.bodyHeight < 3 {
		spec.bodyHeight = 3
		spec.messagesHeight = 3
	}

	mode := m.theme.GetLayoutMode()
	if mode >= styles.LayoutMedium {
		spec.sidebarWidth = sidebarWidth
	}
	if mode >= styles.LayoutWide && m.showMembers {
		spec.membersWidth = membersWidth
	}

	spec.messagesWidth = m.width - spec.sidebarWidth - spec.membersWidth
	if spec.messagesWidth < 20 {
		spec.messagesWidth = 20
	}
	return spec
}

// =============================================================================
// VIEW
// =============================================================================

// View renders the full chat screen.
func (m Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	layout := m.layout()

	columns := []string{}
	if layout.sidebarWidth > 0 {
		columns = append(columns, m.sidebar.View())
	}
	columns = append(columns, m.renderMessagePane(layout))
	if layout.membersWidth > 0 {
		columns = append(columns, m.members.View())
	}
	body := lipgloss.JoinHorizontal(lipgloss.Top, columns...)

	return lipgloss.JoinVertical(lipgloss.Left,
		m.header.View(),
		body,
		m.renderInput(layout),
		m.status.View(),
	)
}

// renderMessagePane stacks the viewport and the typing indicator.
func (m Model) renderMessagePane(layout layoutSpec) string {
	pane := m.viewport.View()

	typing := ""
	if m.pending[m.store.Room().ID] > 0 {
		typing = m.spinner.View() + " " + m.theme.TypingIndicator.Render("Someone is typing…")
	}
	if typing == "" {
		return pane
	}
	return lipgloss.JoinVertical(lipgloss.Left, pane, typing)
}

func (m Model) renderInput(layout layoutSpec) string {
	return m.theme.InputContainer.Width(m.width).Render(m.input.View())
}

// =============================================================================
// MESSAGE RENDERING
// =============================================================================

// refreshViewport re-renders the active room's history into the
// viewport. Called on every append, room switch, and resize.
func (m *Model) refreshViewport() {
	m.viewport.SetContent(m.renderMessages())
}

// renderMessages renders the full history: day dividers, then messages
// with sequential grouping collapsing repeated author headers.
func (m *Model) renderMessages() string {
	messages := m.store.Messages()
	if len(messages) == 0 {
		return m.theme.SystemNotice.Render("No messages yet.")
	}

	width := m.viewport.Width
	now := m.now()

	var b strings.Builder
	for _, group := range model.GroupByDay(messages) {
		b.WriteString(m.renderDayDivider(model.DayLabel(group.Day, now), width))
		b.WriteString("\n")

		var prev *model.Message
		for _, msg := range group.Messages {
			b.WriteString(m.renderMessage(msg, prev, width))
			prev = msg
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

// renderDayDivider draws a centered label between rule lines:
//
//	──────── Today ────────
func (m *Model) renderDayDivider(label string, width int) string {
	styled := m.theme.DayDividerLabel.Render(label)
	lineWidth := (width - lipgloss.Width(styled)) / 2
	if lineWidth < 2 {
		lineWidth = 2
	}
	line := m.theme.DayDividerLine.Render(strings.Repeat("─", lineWidth))
	return line + styled + line
}

// renderMessage renders one message. A message sequential to its
// predecessor drops the author header and shows only the indented
// content; system notices render centered without an author.
func (m *Model) renderMessage(msg, prev *model.Message, width int) string {
	if msg.IsSystem() {
		return m.theme.SystemNotice.Width(width).Render(msg.Content) + "\n"
	}

	content := m.theme.MessageContent.Render(msg.Content)
	if model.Sequential(prev, msg) {
		return "  " + content + "\n"
	}

	author := msg.Username
	if msg.Avatar != "" {
		author = msg.Avatar + " " + msg.Username
	}
	header := m.theme.MessageAuthor.Render(author) + " " +
		m.theme.MessageTimestamp.Render(formatTime(msg.Timestamp))

	return "\n" + header + "\n" + "  " + content + "\n"
}
