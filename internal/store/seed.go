// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package store owns the in-memory message sequence for the active room.
package store

import (
	"time"

	"github.com/connectify/connectify-tui/internal/model"
)

// seedEntry is one pre-authored historical message: who said what, and how
// far into the past it lands relative to the seed instant.
type seedEntry struct {
	userID   string
	username string
	content  string
	ago      time.Duration
}

// seedHistory is the fixed set of historical messages every room is seeded
// with. Offsets decrease so timestamps ascend.
var seedHistory = []seedEntry{
	{
		userID:   "1",
		username: "Alex Johnson",
		content:  "Hey everyone! Welcome to our new chat platform. Feel free to introduce yourselves!",
		ago:      23 * time.Hour,
	},
	{
		userID:   "2",
		username: "Sarah Chen",
		content:  "This looks amazing! Great work on setting this up 👏",
		ago:      22 * time.Hour,
	},
	{
		userID:   "4",
		username: "Emily Davis",
		content:  "Love the real-time features! The interface is so clean and modern.",
		ago:      21 * time.Hour,
	},
	{
		userID:   "1",
		username: "Alex Johnson",
		content:  "Thanks everyone! We have voice channels too, so feel free to hop in when you want to chat live.",
		ago:      20 * time.Hour,
	},
	{
		userID:   "3",
		username: "Mike Wilson",
		content:  "The typing indicators and message animations are a nice touch! 🚀",
		ago:      2 * time.Hour,
	},
}

// seedMessages builds the fixed seed for a room: a welcome notice from a
// day ago, then the historical messages in ascending timestamp order.
func seedMessages(room model.Room, now time.Time) []*model.Message {
	msgs := make([]*model.Message, 0, len(seedHistory)+1)

	welcome := model.NewSystemMessage("Welcome to #" + room.Name + "! 🎉")
	welcome.Timestamp = now.Add(-24 * time.Hour)
	msgs = append(msgs, welcome)

	for _, e := range seedHistory {
		msg := model.NewMessage(e.userID, e.username, "", e.content)
		msg.Timestamp = now.Add(-e.ago)
		msgs = append(msgs, msg)
	}

	return msgs
}
