// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package store owns the in-memory message sequence for the active room.
//
// The store holds messages for exactly one room at a time. Switching rooms
// discards the sequence entirely and re-seeds it with the room's canned
// history; no cross-room message history is retained and nothing is
// persisted across runs. Messages are append-only: there is no delete,
// edit, or reorder operation, so insertion order always equals
// chronological send order.
package store
