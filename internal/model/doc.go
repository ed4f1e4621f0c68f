// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package model contains the data structures for rooms, users, and messages.
//
// The types here are deliberately small and immutable once constructed:
// rooms and users are defined at startup by the directory package and never
// mutated, and messages are append-only records owned by the store package.
//
// The package also provides the conversation grouping algorithm: a pure
// function that partitions an ordered message sequence into day groups and
// marks messages as "sequential" when they continue a run from the same
// author within a five-minute window. Grouping is recomputed on every render
// and never stored.
package model
