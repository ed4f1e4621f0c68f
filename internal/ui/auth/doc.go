// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package auth provides the sign-in / sign-up screen shown before the
// chat view. It drives the identity provider and emits AuthenticatedMsg
// once a session exists; the root model swaps in the chat view.
package auth
