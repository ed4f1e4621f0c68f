// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package model contains the data structures for rooms, users, and messages.
package model

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/connectify/connectify-tui/internal/util"
)

// =============================================================================
// MESSAGE KIND
// =============================================================================

// MessageKind distinguishes ordinary chat messages from system notices.
type MessageKind string

const (
	KindMessage MessageKind = "message"
	KindSystem  MessageKind = "system"
)

// String returns the string representation of the message kind.
func (k MessageKind) String() string {
	return string(k)
}

// =============================================================================
// MESSAGE TYPE
// =============================================================================

// Message is a single entry in a room's conversation.
//
// Username and Avatar are snapshots taken at creation time so a rendered
// message never changes retroactively. Messages are owned by the store for
// the active room and discarded wholesale on room switch.
type Message struct {
	// Identity
	ID        string      `json:"id"`
	Timestamp time.Time   `json:"timestamp"`
	Kind      MessageKind `json:"kind"`

	// Author snapshot
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	Avatar   string `json:"avatar,omitempty"`

	// Content
	Content string `json:"content"`
}

// NewMessage creates a chat message with a generated ID and the current time.
func NewMessage(userID, username, avatar, content string) *Message {
	return &Message{
		ID:        generateID(),
		Timestamp: time.Now(),
		Kind:      KindMessage,
		UserID:    userID,
		Username:  username,
		Avatar:    avatar,
		Content:   content,
	}
}

// NewSystemMessage creates a system notice authored by the workspace bot.
func NewSystemMessage(content string) *Message {
	return &Message{
		ID:        generateID(),
		Timestamp: time.Now(),
		Kind:      KindSystem,
		UserID:    "system",
		Username:  "Connectify Bot",
		Content:   content,
	}
}

// IsSystem reports whether the message is a system notice.
func (m *Message) IsSystem() bool {
	return m.Kind == KindSystem
}

// IsEmpty reports whether the message content is empty after trimming.
func (m *Message) IsEmpty() bool {
	return strings.TrimSpace(m.Content) == ""
}

// Preview returns a truncated preview of the message content.
// Uses rune-based truncation to handle Unicode correctly.
func (m *Message) Preview(maxLen int) string {
	return util.TruncateRunes(m.Content, maxLen)
}

// =============================================================================
// HELPER FUNCTIONS
// =============================================================================

// generateID creates a unique message ID.
// Wall-clock derived tokens collide under rapid successive sends within the
// same millisecond, so IDs come from a random UUID instead.
func generateID() string {
	return "msg_" + uuid.NewString()
}
