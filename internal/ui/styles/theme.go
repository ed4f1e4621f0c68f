// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package styles

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Theme holds all the styled components for the application.
// It detects the terminal's color capability and adjusts accordingly.
type Theme struct {
	// Terminal capabilities
	IsDark       bool
	HasTrueColor bool
	ColorProfile termenv.Profile

	// Layout dimensions
	Width  int
	Height int

	// ==========================================================================
	// APPLICATION CONTAINER STYLES
	// ==========================================================================

	App       lipgloss.Style
	Container lipgloss.Style

	// ==========================================================================
	// HEADER STYLES
	// ==========================================================================

	Header        lipgloss.Style
	HeaderRoom    lipgloss.Style
	HeaderDesc    lipgloss.Style
	HeaderMembers lipgloss.Style

	// ==========================================================================
	// SIDEBAR STYLES
	// ==========================================================================

	Sidebar            lipgloss.Style
	SidebarBrand       lipgloss.Style
	SidebarSection     lipgloss.Style
	SidebarItem        lipgloss.Style
	SidebarItemActive  lipgloss.Style
	SidebarItemFocused lipgloss.Style
	SidebarVoiceItem   lipgloss.Style
	UnreadBadge        lipgloss.Style

	// ==========================================================================
	// MESSAGE PANE STYLES
	// ==========================================================================

	MessageAuthor    lipgloss.Style
	MessageTimestamp lipgloss.Style
	MessageContent   lipgloss.Style
	MessageAvatar    lipgloss.Style
	SystemNotice     lipgloss.Style
	DayDividerLine   lipgloss.Style
	DayDividerLabel  lipgloss.Style
	TypingIndicator  lipgloss.Style

	// ==========================================================================
	// MEMBERS PANEL STYLES
	// ==========================================================================

	Members         lipgloss.Style
	MembersHeading  lipgloss.Style
	PresenceHeading lipgloss.Style
	MemberName      lipgloss.Style
	MemberOwner     lipgloss.Style
	MemberAdmin     lipgloss.Style
	MemberModerator lipgloss.Style
	MemberActivity  lipgloss.Style
	DotOnline       lipgloss.Style
	DotAway         lipgloss.Style
	DotOffline      lipgloss.Style

	// ==========================================================================
	// INPUT AREA STYLES
	// ==========================================================================

	InputContainer   lipgloss.Style
	InputPrompt      lipgloss.Style
	InputText        lipgloss.Style
	InputPlaceholder lipgloss.Style

	// ==========================================================================
	// STATUS BAR STYLES
	// ==========================================================================

	StatusBar    lipgloss.Style
	StatusIdent  lipgloss.Style
	ShortcutKey  lipgloss.Style
	ShortcutDesc lipgloss.Style

	// ==========================================================================
	// AUTH SCREEN STYLES
	// ==========================================================================

	AuthBox      lipgloss.Style
	AuthBrand    lipgloss.Style
	AuthTitle    lipgloss.Style
	AuthSubtitle lipgloss.Style
	AuthLabel    lipgloss.Style
	AuthError    lipgloss.Style
	AuthButton   lipgloss.Style
	AuthSwitch   lipgloss.Style
	AuthHint     lipgloss.Style
}

// NewTheme creates a new theme with all styles configured.
func NewTheme() *Theme {
	// Detect terminal capabilities
	colorProfile := termenv.ColorProfile()
	hasTrueColor := colorProfile == termenv.TrueColor
	isDark := termenv.HasDarkBackground()

	t := &Theme{
		IsDark:       isDark,
		HasTrueColor: hasTrueColor,
		ColorProfile: colorProfile,
	}

	t.initStyles()
	return t
}

// initStyles initializes all the lip gloss styles.
func (t *Theme) initStyles() {
	// App container
	t.App = lipgloss.NewStyle()
	t.Container = lipgloss.NewStyle().Padding(0, 1)

	// Header
	t.Header = lipgloss.NewStyle().
		Background(SurfaceDim).
		Foreground(TextPrimary).
		BorderStyle(lipgloss.NormalBorder()).
		BorderBottom(true).
		BorderForeground(Overlay).
		Padding(0, 1)

	t.HeaderRoom = lipgloss.NewStyle().
		Bold(true).
		Foreground(TextPrimary)

	t.HeaderDesc = lipgloss.NewStyle().
		Foreground(TextMuted).
		Italic(true)

	t.HeaderMembers = lipgloss.NewStyle().
		Foreground(TextSecondary)

	// Sidebar
	t.Sidebar = lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderRight(true).
		BorderForeground(Overlay).
		Padding(0, 1)

	t.SidebarBrand = lipgloss.NewStyle().
		Bold(true).
		Foreground(Purple).
		Padding(0, 1)

	t.SidebarSection = lipgloss.NewStyle().
		Foreground(TextMuted).
		Bold(true).
		MarginTop(1)

	t.SidebarItem = lipgloss.NewStyle().
		Foreground(TextSecondary).
		Padding(0, 1)

	t.SidebarItemActive = lipgloss.NewStyle().
		Foreground(TextPrimary).
		Background(Overlay).
		Bold(true).
		Padding(0, 1)

	t.SidebarItemFocused = lipgloss.NewStyle().
		Foreground(TextInverse).
		Background(Purple).
		Bold(true).
		Padding(0, 1)

	t.SidebarVoiceItem = lipgloss.NewStyle().
		Foreground(TextMuted).
		Padding(0, 1)

	t.UnreadBadge = lipgloss.NewStyle().
		Foreground(TextInverse).
		Background(Rose).
		Bold(true).
		Padding(0, 1)

	// Message pane
	t.MessageAuthor = lipgloss.NewStyle().
		Bold(true).
		Foreground(TextPrimary)

	t.MessageTimestamp = lipgloss.NewStyle().
		Foreground(TextMuted)

	t.MessageContent = lipgloss.NewStyle().
		Foreground(TextPrimary)

	t.MessageAvatar = lipgloss.NewStyle().
		Foreground(TextInverse).
		Background(Purple).
		Bold(true).
		Padding(0, 1)

	t.SystemNotice = lipgloss.NewStyle().
		Foreground(TextMuted).
		Italic(true).
		Align(lipgloss.Center)

	t.DayDividerLine = lipgloss.NewStyle().
		Foreground(Overlay)

	t.DayDividerLabel = lipgloss.NewStyle().
		Foreground(TextMuted).
		Bold(true).
		Padding(0, 1)

	t.TypingIndicator = lipgloss.NewStyle().
		Foreground(TextMuted).
		Italic(true)

	// Members panel
	t.Members = lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderLeft(true).
		BorderForeground(Overlay).
		Padding(0, 1)

	t.MembersHeading = lipgloss.NewStyle().
		Bold(true).
		Foreground(TextSecondary)

	t.PresenceHeading = lipgloss.NewStyle().
		Foreground(TextMuted).
		Bold(true).
		MarginTop(1)

	t.MemberName = lipgloss.NewStyle().
		Foreground(TextPrimary)

	t.MemberOwner = lipgloss.NewStyle().
		Foreground(RoleOwner).
		Bold(true)

	t.MemberAdmin = lipgloss.NewStyle().
		Foreground(RoleAdmin).
		Bold(true)

	t.MemberModerator = lipgloss.NewStyle().
		Foreground(RoleModerator)

	t.MemberActivity = lipgloss.NewStyle().
		Foreground(TextMuted).
		Italic(true).
		PaddingLeft(2)

	t.DotOnline = lipgloss.NewStyle().
		Foreground(PresenceOnline)

	t.DotAway = lipgloss.NewStyle().
		Foreground(PresenceAway)

	t.DotOffline = lipgloss.NewStyle().
		Foreground(PresenceOffline)

	// Input area
	t.InputContainer = lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderTop(true).
		BorderForeground(Overlay).
		Padding(0, 1)

	t.InputPrompt = lipgloss.NewStyle().
		Foreground(Cyan).
		Bold(true)

	t.InputText = lipgloss.NewStyle().
		Foreground(TextPrimary)

	t.InputPlaceholder = lipgloss.NewStyle().
		Foreground(TextMuted).
		Italic(true)

	// Status bar
	t.StatusBar = lipgloss.NewStyle().
		Background(SurfaceDim).
		Foreground(TextSecondary).
		Padding(0, 1)

	t.StatusIdent = lipgloss.NewStyle().
		Foreground(Emerald).
		Bold(true)

	t.ShortcutKey = lipgloss.NewStyle().
		Foreground(Cyan).
		Bold(true)

	t.ShortcutDesc = lipgloss.NewStyle().
		Foreground(TextMuted)

	// Auth screen
	t.AuthBox = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(Purple).
		Padding(1, 4).
		Align(lipgloss.Center)

	t.AuthBrand = lipgloss.NewStyle().
		Foreground(Purple).
		Bold(true)

	t.AuthTitle = lipgloss.NewStyle().
		Foreground(TextPrimary).
		Bold(true)

	t.AuthSubtitle = lipgloss.NewStyle().
		Foreground(TextSecondary).
		Italic(true)

	t.AuthLabel = lipgloss.NewStyle().
		Foreground(TextMuted).
		Bold(true)

	t.AuthError = lipgloss.NewStyle().
		Foreground(Rose).
		Bold(true)

	t.AuthButton = lipgloss.NewStyle().
		Foreground(TextInverse).
		Background(Purple).
		Bold(true).
		Padding(0, 2)

	t.AuthSwitch = lipgloss.NewStyle().
		Foreground(Cyan).
		Underline(true)

	t.AuthHint = lipgloss.NewStyle().
		Foreground(TextMuted).
		Italic(true)
}

// SetSize updates the theme dimensions for responsive layouts.
func (t *Theme) SetSize(width, height int) {
	t.Width = width
	t.Height = height
}

// GetLayoutMode returns the current layout mode based on width.
func (t *Theme) GetLayoutMode() LayoutMode {
	if t.Width < 70 {
		return LayoutNarrow
	}
	if t.Width < 110 {
		return LayoutMedium
	}
	return LayoutWide
}

// LayoutMode represents the current responsive layout mode.
type LayoutMode int

const (
	LayoutNarrow LayoutMode = iota // < 70 columns: messages only
	LayoutMedium                   // 70-110 columns: sidebar + messages
	LayoutWide                     // > 110 columns: sidebar + messages + members
)
