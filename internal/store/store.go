// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package store owns the in-memory message sequence for the active room.
package store

import (
	"strings"
	"time"

	"github.com/connectify/connectify-tui/internal/model"
)

// =============================================================================
// STORE TYPE
// =============================================================================

// Store is the message sequence for the currently active room.
type Store struct {
	room     model.Room
	messages []*model.Message
}

// New creates an empty store. Call Reset to seed it for a room.
func New() *Store {
	return &Store{}
}

// Room returns the room the store currently holds messages for.
func (s *Store) Room() model.Room {
	return s.room
}

// Messages returns the message sequence in store order.
func (s *Store) Messages() []*model.Message {
	return s.messages
}

// Count returns the number of messages in the store.
func (s *Store) Count() int {
	return len(s.messages)
}

// =============================================================================
// OPERATIONS
// =============================================================================

// Reset replaces the entire message sequence with the seed history for the
// given room: one system welcome message referencing the room name followed
// by the canned historical messages, ascending by timestamp. Called whenever
// the active room changes; always succeeds.
func (s *Store) Reset(room model.Room, now time.Time) {
	s.room = room
	s.messages = seedMessages(room, now)
}

// Append adds a message to the end of the sequence.
func (s *Store) Append(msg *model.Message) {
	s.messages = append(s.messages, msg)
}

// Send appends a message authored by the signed-in account.
//
// A send with whitespace-only content, or with no author (empty userID,
// meaning nobody is signed in), is silently rejected: no message is
// appended, no error is surfaced. On success the appended message is
// returned.
func (s *Store) Send(content, userID, username, avatar string) (*model.Message, bool) {
	content = strings.TrimSpace(content)
	if content == "" || userID == "" {
		return nil, false
	}

	msg := model.NewMessage(userID, username, avatar, content)
	s.Append(msg)
	return msg, true
}
