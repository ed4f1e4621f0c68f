// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"
	"testing"

	"github.com/connectify/connectify-tui/internal/directory"
	"github.com/connectify/connectify-tui/internal/model"
	"github.com/connectify/connectify-tui/internal/ui/styles"
)

// =============================================================================
// HEADER TESTS
// =============================================================================

func TestHeaderView(t *testing.T) {
	h := NewHeader(styles.NewTheme())
	h.SetWidth(80)
	h.SetRoom(model.Room{ID: "general", Name: "general", Kind: model.RoomText, Description: "Company-wide announcements"})
	h.SetMemberCount(5)

	out := h.View()
	if !strings.Contains(out, "# general") {
		t.Errorf("header missing room name:\n%s", out)
	}
	if !strings.Contains(out, "5 members") {
		t.Errorf("header missing member count:\n%s", out)
	}
}

func TestHeaderNarrowDropsDescription(t *testing.T) {
	h := NewHeader(styles.NewTheme())
	h.SetWidth(30)
	h.SetRoom(model.Room{ID: "general", Name: "general", Kind: model.RoomText, Description: "A very long description that cannot possibly fit"})
	h.SetMemberCount(5)

	out := h.View()
	if strings.Contains(out, "cannot possibly fit") {
		t.Errorf("narrow header should drop the description:\n%s", out)
	}
	if !strings.Contains(out, "# general") {
		t.Errorf("narrow header must keep the room name:\n%s", out)
	}
}

// =============================================================================
// SIDEBAR TESTS
// =============================================================================

func testRooms() (text, voice []model.Room) {
	text = []model.Room{
		{ID: "general", Name: "general", Kind: model.RoomText},
		{ID: "random", Name: "random", Kind: model.RoomText, Unread: 3},
	}
	voice = []model.Room{
		{ID: "lounge", Name: "Lounge", Kind: model.RoomVoice},
	}
	return text, voice
}

func TestSidebarSections(t *testing.T) {
	text, voice := testRooms()
	s := NewSidebar(styles.NewTheme(), text, voice, nil)
	s.ActiveID = "general"

	out := s.View()
	for _, want := range []string{"Connectify Live", "TEXT CHANNELS", "VOICE CHANNELS", "# general", "# random", "Lounge"} {
		if !strings.Contains(out, want) {
			t.Errorf("sidebar missing %q:\n%s", want, out)
		}
	}
}

func TestSidebarUnreadBadge(t *testing.T) {
	text, voice := testRooms()
	s := NewSidebar(styles.NewTheme(), text, voice, nil)
	s.ActiveID = "general"

	if out := s.View(); !strings.Contains(out, "3") {
		t.Errorf("unvisited room with unread count should show a badge:\n%s", out)
	}

	// Visiting the room clears the badge for the rest of the session.
	s.Visit("random")
	if out := s.View(); strings.Contains(out, "3") {
		t.Errorf("visited room should not show a badge:\n%s", out)
	}
}

func TestSidebarFocus(t *testing.T) {
	text, voice := testRooms()
	s := NewSidebar(styles.NewTheme(), text, voice, nil)

	if _, ok := s.FocusedRoom(); ok {
		t.Error("unfocused sidebar should report no focused room")
	}

	s.FocusIndex = 0
	s.MoveFocus(1)
	room, ok := s.FocusedRoom()
	if !ok || room.ID != "random" {
		t.Errorf("FocusedRoom() after MoveFocus(1) = %v, %v", room.ID, ok)
	}

	// Clamped at both ends.
	s.MoveFocus(10)
	if room, _ := s.FocusedRoom(); room.ID != "random" {
		t.Errorf("focus should clamp at the last room, got %q", room.ID)
	}
	s.MoveFocus(-10)
	if room, _ := s.FocusedRoom(); room.ID != "general" {
		t.Errorf("focus should clamp at the first room, got %q", room.ID)
	}
}

func TestSidebarOnlineStrip(t *testing.T) {
	text, voice := testRooms()
	online := []model.User{
		{ID: "u1", Name: "Alex Rivera", Presence: model.PresenceOnline, Role: model.RoleOwner},
		{ID: "u2", Name: "Sam Chen", Presence: model.PresenceOnline, Role: model.RoleMember},
	}
	s := NewSidebar(styles.NewTheme(), text, voice, online)
	s.ActiveID = "general"

	out := s.View()
	for _, want := range []string{"ONLINE — 2", "Alex Rivera", "Sam Chen"} {
		if !strings.Contains(out, want) {
			t.Errorf("sidebar missing %q:\n%s", want, out)
		}
	}

	// The strip sits below the channel lists.
	if strings.Index(out, "ONLINE") < strings.Index(out, "VOICE CHANNELS") {
		t.Errorf("online strip should follow the channel sections:\n%s", out)
	}

	// With nobody online the strip is omitted entirely.
	s.Online = nil
	if out := s.View(); strings.Contains(out, "ONLINE") {
		t.Errorf("empty online list should not render a heading:\n%s", out)
	}
}

// =============================================================================
// MEMBERS PANEL TESTS
// =============================================================================

func TestMembersView(t *testing.T) {
	dir := directory.New(nil, []model.User{
		{ID: "u1", Name: "Alex Rivera", Presence: model.PresenceOnline, Role: model.RoleOwner},
		{ID: "u2", Name: "Sam Chen", Presence: model.PresenceAway, Role: model.RoleMember, Activity: "In a meeting"},
		{ID: "u3", Name: "Jordan Lee", Presence: model.PresenceOffline, Role: model.RoleMember},
	})

	m := NewMembers(styles.NewTheme(), dir)
	m.SetSize(30, 0)
	out := m.View()

	for _, want := range []string{"Members — 3", "ONLINE — 1", "AWAY — 1", "OFFLINE — 1", "Alex Rivera", "In a meeting"} {
		if !strings.Contains(out, want) {
			t.Errorf("members panel missing %q:\n%s", want, out)
		}
	}

	// Presence buckets appear in online, away, offline order.
	online := strings.Index(out, "ONLINE")
	away := strings.Index(out, "AWAY")
	offline := strings.Index(out, "OFFLINE")
	if !(online < away && away < offline) {
		t.Errorf("presence buckets out of order: online=%d away=%d offline=%d", online, away, offline)
	}
}

func TestMembersOmitsEmptyBuckets(t *testing.T) {
	dir := directory.New(nil, []model.User{
		{ID: "u1", Name: "Alex Rivera", Presence: model.PresenceOnline},
	})

	m := NewMembers(styles.NewTheme(), dir)
	out := m.View()

	if strings.Contains(out, "AWAY") || strings.Contains(out, "OFFLINE") {
		t.Errorf("empty presence buckets should be omitted:\n%s", out)
	}
}

// =============================================================================
// STATUS BAR TESTS
// =============================================================================

func TestStatusBarView(t *testing.T) {
	s := NewStatusBar(styles.NewTheme())
	s.SetWidth(100)
	s.SetIdentity("Alex Rivera")
	s.SetShortcuts([]Shortcut{
		{Key: "tab", Desc: "channels"},
		{Key: "ctrl+u", Desc: "members"},
	})

	out := s.View()
	for _, want := range []string{"tab", "channels", "ctrl+u", "members", "Alex Rivera"} {
		if !strings.Contains(out, want) {
			t.Errorf("status bar missing %q:\n%s", want, out)
		}
	}
}

func TestStatusBarNarrowKeepsIdentity(t *testing.T) {
	s := NewStatusBar(styles.NewTheme())
	s.SetWidth(24)
	s.SetIdentity("Alex Rivera")
	s.SetShortcuts([]Shortcut{
		{Key: "tab", Desc: "channels"},
		{Key: "ctrl+u", Desc: "members"},
		{Key: "ctrl+o", Desc: "sign out"},
	})

	out := s.View()
	if !strings.Contains(out, "Alex Rivera") {
		t.Errorf("narrow status bar must keep the identity:\n%s", out)
	}
}
