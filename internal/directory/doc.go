// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package directory holds the static room and user lists for the workspace.
//
// The directory is read-only: rooms and users are defined once at startup
// and no operation mutates them. The package provides the partitioned views
// the UI needs (rooms split by kind for the sidebar, users split by
// presence for the members panel) with member ordering defined by role
// rank and language-aware name collation.
package directory
