// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package chat provides the main chat view for the Connectify TUI: the
// channel sidebar, the message pane with day dividers and sequential
// grouping, the members panel, and the composer. It follows the Elm
// architecture; the Model is a value and Update returns the next state.
package chat
