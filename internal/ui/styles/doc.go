// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package styles provides the visual styling system for the Connectify TUI.
//
// colors.go defines the palette as Lip Gloss adaptive colors; theme.go
// assembles them into the Theme struct of ready-to-use styles consumed by
// the view code. Nothing here carries semantics: presence and role meaning
// live in the model package, styles only decide how they look.
package styles
