// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package responder simulates remote peers replying to sent messages.
//
// After each successful local send, the responder decides (with fixed
// probability) whether a reply should arrive, who it comes from, what it
// says, and how long it takes. The decision is pure data; the UI layer owns
// the timer and delivers the reply only if the room it was scheduled for is
// still the active one when the timer fires. Multiple replies may be in
// flight at once, one per send, with no coalescing.
package responder
