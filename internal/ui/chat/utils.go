// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import "time"

// formatTime renders a message timestamp as a 12-hour clock reading,
// e.g. "2:35 PM".
func formatTime(t time.Time) string {
	return t.Format("3:04 PM")
}
