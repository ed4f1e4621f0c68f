// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config provides configuration loading for the Connectify client.
//
// Configuration is TOML, read from ~/.connectify/config.toml when present,
// with built-in defaults and CONNECTIFY_* environment variable overrides.
// Everything is optional: a missing file yields the defaults, and invalid
// tunables are clamped rather than rejected.
package config
