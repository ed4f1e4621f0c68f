// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package util provides small string helpers shared across the client.
package util

import "testing"

func TestTruncateRunes(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		maxRunes int
		want     string
	}{
		{"shorter than limit", "hello", 10, "hello"},
		{"exactly at limit", "hello", 5, "hello"},
		{"truncated with ellipsis", "hello world", 8, "hello..."},
		{"tiny limit", "hello", 2, "he"},
		{"zero limit", "hello", 0, ""},
		{"unicode preserved", "日本語テキストです", 6, "日本語..."},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := TruncateRunes(tc.input, tc.maxRunes); got != tc.want {
				t.Errorf("TruncateRunes(%q, %d) = %q, want %q", tc.input, tc.maxRunes, got, tc.want)
			}
		})
	}
}

func TestTruncateWidth(t *testing.T) {
	// CJK characters occupy two display cells each.
	got := TruncateWidth("日本語テキスト", 9)
	if got != "日本語..." {
		t.Errorf("TruncateWidth(CJK, 9) = %q, want %q", got, "日本語...")
	}

	if got := TruncateWidth("abc", 10); got != "abc" {
		t.Errorf("TruncateWidth(abc, 10) = %q, want unchanged", got)
	}
	if got := TruncateWidth("abc", 0); got != "" {
		t.Errorf("TruncateWidth(abc, 0) = %q, want empty", got)
	}
}

func TestInitials(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"two word name", "Alex Johnson", "AL"},
		{"single word", "alex", "AL"},
		{"single rune", "a", "A"},
		{"empty", "", "??"},
		{"whitespace only", "   ", "??"},
		{"padded", "  sarah  ", "SA"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Initials(tc.input); got != tc.want {
				t.Errorf("Initials(%q) = %q, want %q", tc.input, got, tc.want)
			}
		})
	}
}
