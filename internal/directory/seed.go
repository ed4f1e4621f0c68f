// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package directory

import "github.com/connectify/connectify-tui/internal/model"

// defaultRooms returns the built-in channel list: three text channels and
// two voice channels.
func defaultRooms() []model.Room {
	return []model.Room{
		{ID: "general", Name: "general", Kind: model.RoomText, Description: "General discussion"},
		{ID: "random", Name: "random", Kind: model.RoomText, Description: "Random conversations", Unread: 3},
		{ID: "announcements", Name: "announcements", Kind: model.RoomText, Description: "Important updates"},
		{ID: "general-voice", Name: "General Voice", Kind: model.RoomVoice},
		{ID: "meeting-room", Name: "Meeting Room", Kind: model.RoomVoice},
	}
}

// defaultUsers returns the built-in member list.
func defaultUsers() []model.User {
	return []model.User{
		{
			ID:       "1",
			Name:     "Alex Johnson",
			Presence: model.PresenceOnline,
			Role:     model.RoleOwner,
			Activity: "Building something amazing",
		},
		{
			ID:       "2",
			Name:     "Sarah Chen",
			Presence: model.PresenceOnline,
			Role:     model.RoleAdmin,
			Activity: "In a meeting",
		},
		{
			ID:       "3",
			Name:     "Mike Wilson",
			Presence: model.PresenceAway,
			Role:     model.RoleModerator,
		},
		{
			ID:       "4",
			Name:     "Emily Davis",
			Presence: model.PresenceOnline,
			Role:     model.RoleMember,
			Activity: "Working on project",
		},
		{
			ID:       "5",
			Name:     "Tom Brown",
			Presence: model.PresenceOffline,
			Role:     model.RoleMember,
		},
	}
}
