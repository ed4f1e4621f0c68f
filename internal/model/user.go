// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package model contains the data structures for rooms, users, and messages.
package model

// =============================================================================
// PRESENCE
// =============================================================================

// Presence represents a user's availability state.
type Presence string

const (
	PresenceOnline  Presence = "online"
	PresenceAway    Presence = "away"
	PresenceOffline Presence = "offline"
)

// String returns the string representation of the presence.
func (p Presence) String() string {
	return string(p)
}

// DisplayName returns the section heading used for this presence bucket
// in the members panel.
func (p Presence) DisplayName() string {
	switch p {
	case PresenceOnline:
		return "Online"
	case PresenceAway:
		return "Away"
	case PresenceOffline:
		return "Offline"
	default:
		return string(p)
	}
}

// Rank returns the total order of presence buckets for display.
// Lower ranks sort first: online, then away, then offline.
func (p Presence) Rank() int {
	switch p {
	case PresenceOnline:
		return 0
	case PresenceAway:
		return 1
	case PresenceOffline:
		return 2
	default:
		return 3
	}
}

// =============================================================================
// ROLE
// =============================================================================

// Role represents a user's role within the workspace.
// The zero value (RoleNone) means no role was assigned.
type Role string

const (
	RoleNone      Role = ""
	RoleOwner     Role = "owner"
	RoleAdmin     Role = "admin"
	RoleModerator Role = "moderator"
	RoleMember    Role = "member"
)

// String returns the string representation of the role.
func (r Role) String() string {
	return string(r)
}

// Rank returns the total order of roles for member list sorting.
// Lower ranks sort first: owner < admin < moderator < member < none.
// The ordering is defined once here rather than re-derived per render.
func (r Role) Rank() int {
	switch r {
	case RoleOwner:
		return 0
	case RoleAdmin:
		return 1
	case RoleModerator:
		return 2
	case RoleMember:
		return 3
	default:
		return 4
	}
}

// =============================================================================
// USER TYPE
// =============================================================================

// User is a directory entry with presence and role metadata.
// Users are defined at startup and never mutated; presence and role
// changes have no mutation path in this client.
type User struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Avatar   string   `json:"avatar,omitempty"`
	Presence Presence `json:"presence"`
	Role     Role     `json:"role,omitempty"`
	Activity string   `json:"activity,omitempty"`
}
