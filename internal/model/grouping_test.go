// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package model contains the data structures for rooms, users, and messages.
package model

import (
	"testing"
	"time"
)

func msgAt(userID string, ts time.Time) *Message {
	return &Message{
		ID:        generateID(),
		Timestamp: ts,
		Kind:      KindMessage,
		UserID:    userID,
		Username:  "User " + userID,
		Content:   "hello",
	}
}

// =============================================================================
// DAY GROUPING TESTS
// =============================================================================

func TestGroupByDay_PartitionsByCalendarDay(t *testing.T) {
	base := time.Date(2025, 3, 10, 14, 0, 0, 0, time.Local)
	msgs := []*Message{
		msgAt("1", base),
		msgAt("2", base.Add(time.Hour)),
		msgAt("1", base.AddDate(0, 0, 1)),
	}

	groups := GroupByDay(msgs)
	if len(groups) != 2 {
		t.Fatalf("GroupByDay() produced %d groups, want 2", len(groups))
	}
	if len(groups[0].Messages) != 2 {
		t.Errorf("first group has %d messages, want 2", len(groups[0].Messages))
	}
	if len(groups[1].Messages) != 1 {
		t.Errorf("second group has %d messages, want 1", len(groups[1].Messages))
	}
	if !groups[0].Day.Equal(DayOf(base)) {
		t.Errorf("first group day = %v, want %v", groups[0].Day, DayOf(base))
	}
}

func TestGroupByDay_Empty(t *testing.T) {
	if groups := GroupByDay(nil); len(groups) != 0 {
		t.Errorf("GroupByDay(nil) = %d groups, want 0", len(groups))
	}
}

func TestGroupByDay_PreservesFirstOccurrenceOrder(t *testing.T) {
	day1 := time.Date(2025, 3, 10, 9, 0, 0, 0, time.Local)
	day2 := time.Date(2025, 3, 11, 9, 0, 0, 0, time.Local)

	// Out-of-order input: grouping must be stable, not date-sorted.
	msgs := []*Message{
		msgAt("1", day2),
		msgAt("1", day1),
		msgAt("2", day2.Add(time.Minute)),
	}

	groups := GroupByDay(msgs)
	if len(groups) != 2 {
		t.Fatalf("GroupByDay() produced %d groups, want 2", len(groups))
	}
	if !groups[0].Day.Equal(DayOf(day2)) {
		t.Errorf("first group day = %v, want day of first input message", groups[0].Day)
	}
	if len(groups[0].Messages) != 2 {
		t.Errorf("first group has %d messages, want 2", len(groups[0].Messages))
	}
}

func TestGroupByDay_Idempotent(t *testing.T) {
	base := time.Date(2025, 3, 10, 22, 0, 0, 0, time.Local)
	msgs := []*Message{
		msgAt("1", base),
		msgAt("2", base.Add(30*time.Minute)),
		msgAt("2", base.Add(3*time.Hour)), // next calendar day
		msgAt("1", base.Add(4*time.Hour)),
	}

	first := GroupByDay(msgs)

	// Flatten the groups back into a sequence and regroup.
	var flat []*Message
	for _, g := range first {
		flat = append(flat, g.Messages...)
	}
	second := GroupByDay(flat)

	if len(first) != len(second) {
		t.Fatalf("regrouping changed group count: %d != %d", len(first), len(second))
	}
	for i := range first {
		if !first[i].Day.Equal(second[i].Day) {
			t.Errorf("group %d day changed: %v != %v", i, first[i].Day, second[i].Day)
		}
		if len(first[i].Messages) != len(second[i].Messages) {
			t.Errorf("group %d size changed: %d != %d", i, len(first[i].Messages), len(second[i].Messages))
			continue
		}
		for j := range first[i].Messages {
			if first[i].Messages[j].ID != second[i].Messages[j].ID {
				t.Errorf("group %d message %d changed identity", i, j)
			}
		}
	}
}

// =============================================================================
// SEQUENTIAL RUN TESTS
// =============================================================================

func TestSequential(t *testing.T) {
	base := time.Date(2025, 3, 10, 14, 0, 0, 0, time.Local)

	tests := []struct {
		name string
		prev *Message
		cur  *Message
		want bool
	}{
		{
			name: "same author just under five minutes",
			prev: msgAt("1", base),
			cur:  msgAt("1", base.Add(4*time.Minute+59*time.Second)),
			want: true,
		},
		{
			name: "same author just over five minutes",
			prev: msgAt("1", base),
			cur:  msgAt("1", base.Add(5*time.Minute+time.Second)),
			want: false,
		},
		{
			name: "same author exactly five minutes",
			prev: msgAt("1", base),
			cur:  msgAt("1", base.Add(5*time.Minute)),
			want: false,
		},
		{
			name: "different author small gap",
			prev: msgAt("1", base),
			cur:  msgAt("2", base.Add(time.Second)),
			want: false,
		},
		{
			name: "system notice never sequential",
			prev: msgAt("1", base),
			cur: &Message{
				ID: "sys", Timestamp: base.Add(time.Second),
				Kind: KindSystem, UserID: "1",
			},
			want: false,
		},
		{
			name: "nil predecessor",
			prev: nil,
			cur:  msgAt("1", base),
			want: false,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Sequential(tc.prev, tc.cur); got != tc.want {
				t.Errorf("Sequential() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestSequential_MidnightSplitBeatsRun(t *testing.T) {
	// 23:59 and 00:01 the next day: under the five-minute window but the
	// day-group boundary takes precedence, so they land in separate groups.
	before := time.Date(2025, 3, 10, 23, 59, 0, 0, time.Local)
	after := time.Date(2025, 3, 11, 0, 1, 0, 0, time.Local)

	msgs := []*Message{msgAt("1", before), msgAt("1", after)}
	groups := GroupByDay(msgs)
	if len(groups) != 2 {
		t.Fatalf("GroupByDay() produced %d groups, want 2", len(groups))
	}

	// Within their own groups there is no predecessor, so neither renders
	// sequentially even though Sequential() is true for the raw pair.
	if !Sequential(msgs[0], msgs[1]) {
		t.Error("raw pair should satisfy the author/gap rule")
	}
	if len(groups[0].Messages) != 1 || len(groups[1].Messages) != 1 {
		t.Error("messages straddling midnight must not share a day group")
	}
}

// =============================================================================
// DAY LABEL TESTS
// =============================================================================

func TestDayLabel(t *testing.T) {
	now := time.Date(2025, 3, 12, 10, 30, 0, 0, time.Local)

	tests := []struct {
		name string
		day  time.Time
		want string
	}{
		{"same day", time.Date(2025, 3, 12, 23, 0, 0, 0, time.Local), "Today"},
		{"one day earlier", time.Date(2025, 3, 11, 0, 30, 0, 0, time.Local), "Yesterday"},
		{"two days earlier", time.Date(2025, 3, 10, 12, 0, 0, 0, time.Local), "Monday, March 10, 2025"},
		{"future day", time.Date(2025, 3, 14, 12, 0, 0, 0, time.Local), "Friday, March 14, 2025"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := DayLabel(tc.day, now); got != tc.want {
				t.Errorf("DayLabel() = %q, want %q", got, tc.want)
			}
		})
	}
}

// =============================================================================
// ENUM ORDERING TESTS
// =============================================================================

func TestRoleRank_TotalOrder(t *testing.T) {
	ordered := []Role{RoleOwner, RoleAdmin, RoleModerator, RoleMember, RoleNone}
	for i := 1; i < len(ordered); i++ {
		if ordered[i-1].Rank() >= ordered[i].Rank() {
			t.Errorf("Role %q (rank %d) should sort before %q (rank %d)",
				ordered[i-1], ordered[i-1].Rank(), ordered[i], ordered[i].Rank())
		}
	}
}

func TestPresenceRank_TotalOrder(t *testing.T) {
	ordered := []Presence{PresenceOnline, PresenceAway, PresenceOffline}
	for i := 1; i < len(ordered); i++ {
		if ordered[i-1].Rank() >= ordered[i].Rank() {
			t.Errorf("Presence %q should sort before %q", ordered[i-1], ordered[i])
		}
	}
}
