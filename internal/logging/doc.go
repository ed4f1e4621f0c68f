// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package logging builds the debug logger for the Connectify client.
//
// A TUI owns the terminal, so the logger writes JSON to a file under the
// app home directory instead of stdout. When debug logging is disabled the
// returned logger is a no-op so call sites never nil-check.
package logging
