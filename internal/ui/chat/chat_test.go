// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/connectify/connectify-tui/internal/auth"
	"github.com/connectify/connectify-tui/internal/config"
	"github.com/connectify/connectify-tui/internal/directory"
	"github.com/connectify/connectify-tui/internal/responder"
	"github.com/connectify/connectify-tui/internal/store"
	"github.com/connectify/connectify-tui/internal/ui/styles"
)

// stubProvider is a Provider permanently signed in as one account.
type stubProvider struct {
	acct auth.Account
}

func (p *stubProvider) CurrentAccount() (auth.Account, bool) { return p.acct, true }
func (p *stubProvider) SignIn(string, string) (auth.Account, error) {
	return p.acct, nil
}
func (p *stubProvider) SignUp(string, string, string) (auth.Account, error) {
	return p.acct, nil
}
func (p *stubProvider) SignOut() {}

func newTestModel(t *testing.T, chance float64) Model {
	t.Helper()

	dir := directory.Default()
	resp := responder.New(dir.Users(), chance, time.Millisecond, 2*time.Millisecond)
	provider := &stubProvider{acct: auth.Account{
		ID:       "acct_test",
		Username: "tester",
		FullName: "Test User",
	}}

	m := New(styles.NewTheme(), dir, store.New(), resp, provider, config.Default(), zap.NewNop())
	m.resize(120, 40)
	return m
}

func typeAndSend(t *testing.T, m Model, text string) (Model, tea.Cmd) {
	t.Helper()
	m.input.SetValue(text)
	return m.Update(tea.KeyMsg{Type: tea.KeyEnter})
}

// =============================================================================
// SEND FLOW TESTS
// =============================================================================

func TestSendAppendsMessage(t *testing.T) {
	m := newTestModel(t, 0)

	before := m.store.Count()
	m, _ = typeAndSend(t, m, "Hello everyone")

	if m.store.Count() != before+1 {
		t.Fatalf("Count() = %d, want %d", m.store.Count(), before+1)
	}
	last := m.store.Messages()[m.store.Count()-1]
	if last.Content != "Hello everyone" {
		t.Errorf("content = %q", last.Content)
	}
	if last.Username != "Test User" {
		t.Errorf("author = %q, want the signed-in display name", last.Username)
	}
	if m.input.Value() != "" {
		t.Errorf("composer should be cleared after a send, got %q", m.input.Value())
	}
}

func TestSendBlankIsNoOp(t *testing.T) {
	m := newTestModel(t, 1)

	before := m.store.Count()
	m, cmd := typeAndSend(t, m, "   ")

	if m.store.Count() != before {
		t.Errorf("blank send should not append, count %d -> %d", before, m.store.Count())
	}
	if cmd != nil {
		t.Error("blank send should not schedule a reply")
	}
}

func TestSendSchedulesReply(t *testing.T) {
	m := newTestModel(t, 1) // always reply

	m, cmd := typeAndSend(t, m, "Anyone around?")
	if cmd == nil {
		t.Fatal("send with chance 1 should schedule a reply")
	}
	if m.pending[m.store.Room().ID] != 1 {
		t.Errorf("pending = %d, want 1", m.pending[m.store.Room().ID])
	}
}

// =============================================================================
// AUTO-REPLY TESTS
// =============================================================================

func TestAutoReplyLandsInActiveRoom(t *testing.T) {
	m := newTestModel(t, 0)
	roomID := m.store.Room().ID
	m.pending[roomID] = 1

	reply := responder.Reply{
		RoomID:  roomID,
		Author:  m.dir.Users()[0],
		Content: "Sounds good!",
	}

	before := m.store.Count()
	m, _ = m.Update(AutoReplyMsg{Reply: reply})

	if m.store.Count() != before+1 {
		t.Fatalf("reply should append, count %d -> %d", before, m.store.Count())
	}
	if m.pending[roomID] != 0 {
		t.Errorf("pending should drain to 0, got %d", m.pending[roomID])
	}
}

func TestAutoReplyDroppedAfterRoomSwitch(t *testing.T) {
	m := newTestModel(t, 0)
	plannedRoom := m.store.Room().ID
	m.pending[plannedRoom] = 1

	reply := responder.Reply{
		RoomID:  plannedRoom,
		Author:  m.dir.Users()[0],
		Content: "Sounds good!",
	}

	// User navigates away before the reply fires.
	m = m.stepRoom(1)
	if m.store.Room().ID == plannedRoom {
		t.Fatal("stepRoom should have changed the active room")
	}

	before := m.store.Count()
	m, _ = m.Update(AutoReplyMsg{Reply: reply})

	if m.store.Count() != before {
		t.Errorf("stale reply should be dropped, count %d -> %d", before, m.store.Count())
	}
	for _, msg := range m.store.Messages() {
		if msg.Content == "Sounds good!" {
			t.Error("stale reply leaked into the new room")
		}
	}
}

// =============================================================================
// ROOM NAVIGATION TESTS
// =============================================================================

func TestStepRoomWraps(t *testing.T) {
	m := newTestModel(t, 0)
	rooms := m.dir.TextRooms()

	first := m.store.Room().ID
	m = m.stepRoom(-1)
	if m.store.Room().ID != rooms[len(rooms)-1].ID {
		t.Errorf("stepping back from the first room should wrap to the last, got %q", m.store.Room().ID)
	}
	m = m.stepRoom(1)
	if m.store.Room().ID != first {
		t.Errorf("stepping forward should wrap back to %q, got %q", first, m.store.Room().ID)
	}
}

func TestRoomSwitchReplacesHistory(t *testing.T) {
	m := newTestModel(t, 0)
	m, _ = typeAndSend(t, m, "only in the first room")

	m = m.stepRoom(1)
	for _, msg := range m.store.Messages() {
		if msg.Content == "only in the first room" {
			t.Fatal("history should be replaced on room switch")
		}
	}

	// The seeded welcome notice references the new room.
	welcome := m.store.Messages()[0]
	if !strings.Contains(welcome.Content, m.store.Room().Name) {
		t.Errorf("welcome notice %q should name room %q", welcome.Content, m.store.Room().Name)
	}
}

// =============================================================================
// VIEW TESTS
// =============================================================================

func TestViewShowsTypingIndicator(t *testing.T) {
	m := newTestModel(t, 0)

	if strings.Contains(m.View(), "typing") {
		t.Error("typing indicator should be hidden with no pending replies")
	}

	m.pending[m.store.Room().ID] = 1
	if !strings.Contains(m.View(), "typing") {
		t.Error("typing indicator should show while a reply is pending")
	}
}

func TestViewWideLayout(t *testing.T) {
	m := newTestModel(t, 0)
	m.resize(140, 40)

	out := m.View()
	for _, want := range []string{"Connectify Live", "TEXT CHANNELS", "Members —", "# general"} {
		if !strings.Contains(out, want) {
			t.Errorf("wide view missing %q", want)
		}
	}
}

func TestViewToggleMembers(t *testing.T) {
	m := newTestModel(t, 0)
	m.resize(140, 40)

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlU})
	if strings.Contains(m.View(), "Members —") {
		t.Error("members panel should hide after toggle")
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlU})
	if !strings.Contains(m.View(), "Members —") {
		t.Error("members panel should show after a second toggle")
	}
}

// =============================================================================
// FOCUS TESTS
// =============================================================================

func TestFocusToggleAndSidebarSelect(t *testing.T) {
	m := newTestModel(t, 0)

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	if m.focus != FocusSidebar {
		t.Fatal("tab should move focus to the sidebar")
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	if m.focus != FocusInput {
		t.Error("selecting a room should return focus to the composer")
	}
	if m.store.Room().ID != m.dir.TextRooms()[1].ID {
		t.Errorf("enter should open the highlighted room, got %q", m.store.Room().ID)
	}
}

// =============================================================================
// TIME FORMAT TESTS
// =============================================================================

func TestFormatTime(t *testing.T) {
	tests := []struct {
		hour, min int
		want      string
	}{
		{9, 5, "9:05 AM"},
		{14, 35, "2:35 PM"},
		{0, 0, "12:00 AM"},
		{12, 0, "12:00 PM"},
	}

	for _, tt := range tests {
		ts := time.Date(2025, 6, 1, tt.hour, tt.min, 0, 0, time.UTC)
		if got := formatTime(ts); got != tt.want {
			t.Errorf("formatTime(%02d:%02d) = %q, want %q", tt.hour, tt.min, got, tt.want)
		}
	}
}
