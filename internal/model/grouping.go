// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package model contains the data structures for rooms, users, and messages.
package model

import "time"

// SequentialWindow is the maximum gap between two messages from the same
// author for the second to render as a continuation of the first.
const SequentialWindow = 5 * time.Minute

// =============================================================================
// DAY GROUPS
// =============================================================================

// DayGroup is a run of messages sharing one calendar day.
// Derived on every render, never stored.
type DayGroup struct {
	// Day is midnight of the group's calendar day in the messages' location.
	Day time.Time

	// Messages holds the group's messages in store order.
	Messages []*Message
}

// DayOf truncates a timestamp to midnight of its calendar day.
func DayOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// GroupByDay partitions an ordered message sequence into day groups.
//
// Day order follows the first occurrence of each calendar day in the input,
// not calendar order. Store order is always chronological in this client, so
// the two coincide, but the function itself is stable rather than sorting.
func GroupByDay(messages []*Message) []DayGroup {
	var groups []DayGroup
	index := make(map[string]int)

	for _, msg := range messages {
		day := DayOf(msg.Timestamp)
		key := day.Format("2006-01-02")
		i, ok := index[key]
		if !ok {
			i = len(groups)
			index[key] = i
			groups = append(groups, DayGroup{Day: day})
		}
		groups[i].Messages = append(groups[i].Messages, msg)
	}

	return groups
}

// Sequential reports whether cur continues a run from prev: same author and
// a gap under SequentialWindow. System notices never participate in runs.
//
// Callers must only compare messages within one day group; the day split
// takes precedence over the author/gap rule, so two messages straddling
// midnight are never sequential even when their gap is under the window.
func Sequential(prev, cur *Message) bool {
	if prev == nil || cur == nil {
		return false
	}
	if prev.IsSystem() || cur.IsSystem() {
		return false
	}
	if prev.UserID != cur.UserID {
		return false
	}
	gap := cur.Timestamp.Sub(prev.Timestamp)
	return gap >= 0 && gap < SequentialWindow
}

// =============================================================================
// DAY LABELS
// =============================================================================

// DayLabel formats a day-group heading relative to now: "Today" for the
// current calendar day, "Yesterday" for exactly one day earlier, and a full
// weekday/month/day/year string otherwise.
func DayLabel(day, now time.Time) string {
	d := DayOf(day)
	today := DayOf(now)
	if d.Equal(today) {
		return "Today"
	}
	if d.Equal(today.AddDate(0, 0, -1)) {
		return "Yesterday"
	}
	return day.Format("Monday, January 2, 2006")
}
