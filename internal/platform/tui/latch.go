package tui

import (
	"time"

	"github.com/vovakirdan/tui-pong/internal/core"
)

// KeyLatch turns terminal key events into held buttons. Terminals send a
// press and then auto-repeats, never a release, so a button stays down
// until window has passed since its last event.
type KeyLatch struct {
	window time.Duration
	last   [core.ButtonCount]time.Time
}

// NewKeyLatch returns a latch with the given hold window.
func NewKeyLatch(window time.Duration) *KeyLatch {
	return &KeyLatch{window: window}
}

// Touch records a key event for b at now.
func (l *KeyLatch) Touch(b core.Button, now time.Time) {
	if b < 0 || b >= core.ButtonCount {
		return
	}
	l.last[b] = now
}

// Held reports whether b counts as down at now.
func (l *KeyLatch) Held(b core.Button, now time.Time) bool {
	if b < 0 || b >= core.ButtonCount {
		return false
	}
	t := l.last[b]
	return !t.IsZero() && now.Sub(t) < l.window
}

// Fill writes this frame's snapshot into in: edges are computed against
// the previous frame's state already held in in.
func (l *KeyLatch) Fill(in *core.Input, now time.Time) {
	in.BeginFrame()
	for b := range core.ButtonCount {
		in.Process(b, l.Held(b, now))
	}
}

// Release forgets every key, so all buttons read as up from now on.
func (l *KeyLatch) Release() {
	l.last = [core.ButtonCount]time.Time{}
}
