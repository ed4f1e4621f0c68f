// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package directory holds the static room and user lists for the workspace.
package directory

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/connectify/connectify-tui/internal/model"
)

// nameCollator orders member names the way a user expects for the current
// locale rather than by raw byte value.
var nameCollator = collate.New(language.English, collate.IgnoreCase)

// =============================================================================
// DIRECTORY TYPE
// =============================================================================

// Directory exposes the workspace's static rooms and users.
type Directory struct {
	rooms []model.Room
	users []model.User
}

// New creates a directory over the given rooms and users.
// The slices are not copied; callers must not mutate them afterwards.
func New(rooms []model.Room, users []model.User) *Directory {
	return &Directory{rooms: rooms, users: users}
}

// Default returns the built-in workspace directory.
func Default() *Directory {
	return New(defaultRooms(), defaultUsers())
}

// =============================================================================
// ROOM VIEWS
// =============================================================================

// Rooms returns all rooms in definition order.
func (d *Directory) Rooms() []model.Room {
	return d.rooms
}

// TextRooms returns the text channels in definition order.
func (d *Directory) TextRooms() []model.Room {
	return d.roomsByKind(model.RoomText)
}

// VoiceRooms returns the voice channels in definition order.
// Voice channels are inert list entries in this client.
func (d *Directory) VoiceRooms() []model.Room {
	return d.roomsByKind(model.RoomVoice)
}

func (d *Directory) roomsByKind(kind model.RoomKind) []model.Room {
	var out []model.Room
	for _, r := range d.rooms {
		if r.Kind == kind {
			out = append(out, r)
		}
	}
	return out
}

// RoomByID looks up a room by identifier.
func (d *Directory) RoomByID(id string) (model.Room, bool) {
	for _, r := range d.rooms {
		if r.ID == id {
			return r, true
		}
	}
	return model.Room{}, false
}

// =============================================================================
// USER VIEWS
// =============================================================================

// Users returns all users in definition order.
func (d *Directory) Users() []model.User {
	return d.users
}

// UserCount returns the total number of directory users.
func (d *Directory) UserCount() int {
	return len(d.users)
}

// OnlineUsers returns the users whose presence is online, in member order.
func (d *Directory) OnlineUsers() []model.User {
	var out []model.User
	for _, u := range d.sortedUsers() {
		if u.Presence == model.PresenceOnline {
			out = append(out, u)
		}
	}
	return out
}

// PresenceGroup is one members-panel section: a presence bucket and its
// users in display order.
type PresenceGroup struct {
	Presence model.Presence
	Users    []model.User
}

// MembersByPresence partitions users into presence buckets for the members
// panel. Buckets appear in presence rank order (online, away, offline) and
// empty buckets are omitted. Within a bucket users are ordered by role rank
// (owner first), then alphabetically by name.
func (d *Directory) MembersByPresence() []PresenceGroup {
	sorted := d.sortedUsers()

	var groups []PresenceGroup
	for _, p := range []model.Presence{model.PresenceOnline, model.PresenceAway, model.PresenceOffline} {
		var bucket []model.User
		for _, u := range sorted {
			if u.Presence == p {
				bucket = append(bucket, u)
			}
		}
		if len(bucket) > 0 {
			groups = append(groups, PresenceGroup{Presence: p, Users: bucket})
		}
	}
	return groups
}

// sortedUsers returns a copy of the user list in member display order:
// role rank, then collated name.
func (d *Directory) sortedUsers() []model.User {
	out := make([]model.User, len(d.users))
	copy(out, d.users)

	sort.SliceStable(out, func(i, j int) bool {
		if ri, rj := out[i].Role.Rank(), out[j].Role.Rank(); ri != rj {
			return ri < rj
		}
		return nameCollator.CompareString(out[i].Name, out[j].Name) < 0
	})
	return out
}
