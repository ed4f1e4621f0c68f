// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package model contains the data structures for rooms, users, and messages.
package model

// =============================================================================
// ROOM KIND
// =============================================================================

// RoomKind distinguishes text channels from voice channels.
type RoomKind string

const (
	RoomText  RoomKind = "text"
	RoomVoice RoomKind = "voice"
)

// String returns the string representation of the room kind.
func (k RoomKind) String() string {
	return string(k)
}

// =============================================================================
// ROOM TYPE
// =============================================================================

// Room is a named channel that messages are scoped to.
// Rooms are defined at startup and never mutated.
type Room struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Kind        RoomKind `json:"kind"`
	Description string   `json:"description,omitempty"`
	Unread      int      `json:"unread,omitempty"`
}

// IsVoice reports whether the room is a voice channel.
// Voice channels appear in the sidebar but carry no message history.
func (r Room) IsVoice() bool {
	return r.Kind == RoomVoice
}
