// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package components provides the visual UI components for the Connectify
// TUI: the room header, the channel sidebar, the members panel, and the
// status bar. Components hold no application state beyond what they render;
// the chat model feeds them on every frame.
package components
