// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package responder simulates remote peers replying to sent messages.
package responder

import (
	"math/rand"
	"time"

	"github.com/connectify/connectify-tui/internal/config"
	"github.com/connectify/connectify-tui/internal/model"
)

// Default tuning, matching the classic demo behavior: 70% of sends draw a
// reply after one to four seconds.
const (
	DefaultChance   = 0.7
	DefaultMinDelay = 1000 * time.Millisecond
	DefaultMaxDelay = 4000 * time.Millisecond
)

// acknowledgements is the fixed set of canned reply texts.
var acknowledgements = []string{
	"That's a great point!",
	"I agree with that approach.",
	"Thanks for sharing!",
	"Interesting perspective 🤔",
	"Let me think about that...",
	"Good idea! 👍",
	"Makes sense to me.",
	"I'll look into that.",
}

// =============================================================================
// RESPONDER TYPE
// =============================================================================

// Responder plans simulated replies to local sends.
type Responder struct {
	users    []model.User
	rng      *rand.Rand
	chance   float64
	minDelay time.Duration
	maxDelay time.Duration
}

// New creates a responder drawing authors from the given directory users.
// The sender is not excluded from the draw: a reply may well come from the
// user who just sent the message.
func New(users []model.User, chance float64, minDelay, maxDelay time.Duration) *Responder {
	if chance < 0 || chance > 1 {
		chance = DefaultChance
	}
	if minDelay <= 0 || maxDelay <= minDelay {
		minDelay = DefaultMinDelay
		maxDelay = DefaultMaxDelay
	}
	return &Responder{
		users:    users,
		rng:      rand.New(rand.NewSource(time.Now().UnixNano())),
		chance:   chance,
		minDelay: minDelay,
		maxDelay: maxDelay,
	}
}

// NewDefault creates a responder with the default tuning.
func NewDefault(users []model.User) *Responder {
	return New(users, DefaultChance, DefaultMinDelay, DefaultMaxDelay)
}

// NewFromConfig creates a responder tuned by the config section.
func NewFromConfig(users []model.User, cfg config.ResponderConfig) *Responder {
	return New(users, cfg.Chance,
		time.Duration(cfg.MinDelayMs)*time.Millisecond,
		time.Duration(cfg.MaxDelayMs)*time.Millisecond)
}

// SetRand replaces the random source. Tests use this for determinism.
func (r *Responder) SetRand(rng *rand.Rand) {
	r.rng = rng
}

// =============================================================================
// REPLY PLANNING
// =============================================================================

// Reply is one planned simulated response. RoomID pins the reply to the
// room that was active at schedule time so it can be dropped if the user
// has navigated away by the time the delay elapses.
type Reply struct {
	RoomID  string
	Delay   time.Duration
	Author  model.User
	Content string
}

// Plan decides whether the send that just happened in roomID draws a reply.
// With the configured probability it returns a reply with a uniformly
// random delay in [minDelay, maxDelay), a uniformly random author from the
// full directory, and a uniformly random canned acknowledgement. Otherwise
// it returns false and nothing is scheduled.
func (r *Responder) Plan(roomID string) (Reply, bool) {
	if len(r.users) == 0 || r.rng.Float64() >= r.chance {
		return Reply{}, false
	}

	spread := r.maxDelay - r.minDelay
	delay := r.minDelay + time.Duration(r.rng.Int63n(int64(spread)))
	author := r.users[r.rng.Intn(len(r.users))]
	content := acknowledgements[r.rng.Intn(len(acknowledgements))]

	return Reply{
		RoomID:  roomID,
		Delay:   delay,
		Author:  author,
		Content: content,
	}, true
}

// Message materializes the reply as a chat message timestamped now.
func (p Reply) Message() *model.Message {
	return model.NewMessage(p.Author.ID, p.Author.Name, p.Author.Avatar, p.Content)
}
