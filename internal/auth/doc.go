// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package auth is the identity provider boundary for the Connectify client.
//
// The chat layer consumes exactly two facts from this package: whether a
// user is currently signed in, and, if so, that account's display name
// and avatar reference, copied verbatim into authored messages. It never
// sees credentials, hashes, or the accounts file.
//
// The bundled provider is local: accounts live in a TOML file under the
// app home directory with bcrypt password hashes, and the session exists
// only in memory for the lifetime of the process.
package auth
