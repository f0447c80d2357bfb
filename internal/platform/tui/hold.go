package tui

import (
	"time"

	"github.com/vovakirdan/bullet-time/internal/config"
	"github.com/vovakirdan/bullet-time/internal/core"
)

// opposite pairs movement actions; pressing one releases the other at once.
var opposite = map[core.Action]core.Action{
	core.ActionUp:    core.ActionDown,
	core.ActionDown:  core.ActionUp,
	core.ActionLeft:  core.ActionRight,
	core.ActionRight: core.ActionLeft,
}

// heldKeys emulates key-down state from press and auto-repeat events.
// Terminals never report key release, so an action stays held until its
// deadline passes without a repeat.
type heldKeys struct {
	initial time.Duration
	repeat  time.Duration
	until   map[core.Action]time.Time
}

func newHeldKeys(cfg config.InputConfig) *heldKeys {
	return &heldKeys{
		initial: max(cfg.InitialHold, cfg.Hold),
		repeat:  cfg.Hold,
		until:   make(map[core.Action]time.Time),
	}
}

// press records a key event for a movement action.
func (h *heldKeys) press(a core.Action, now time.Time) {
	hold := h.initial
	if h.held(a, now) {
		hold = h.repeat
	}
	deadline := now.Add(hold)
	if prev, ok := h.until[a]; !ok || deadline.After(prev) {
		h.until[a] = deadline
	}
	if opp, ok := opposite[a]; ok {
		delete(h.until, opp)
	}
}

// held reports whether a is still down at now.
func (h *heldKeys) held(a core.Action, now time.Time) bool {
	u, ok := h.until[a]
	return ok && now.Before(u)
}

// apply sets every held action on frame and forgets expired ones.
func (h *heldKeys) apply(frame *core.InputFrame, now time.Time) {
	for a, u := range h.until {
		if now.Before(u) {
			frame.Set(a)
		} else {
			delete(h.until, a)
		}
	}
}

// releaseAll drops every held action.
func (h *heldKeys) releaseAll() {
	clear(h.until)
}
