package tui

import "time"

// ascendLatch turns key presses into begin/end edges. Terminals send a press
// and then auto-repeats while a key is held, never a release, so the ascend
// ends once no press has arrived for the hold window.
type ascendLatch struct {
	window time.Duration
	held   bool
	last   time.Time
}

func newAscendLatch(window time.Duration) ascendLatch {
	return ascendLatch{window: window}
}

// Press records a key event. It reports true on the first press of a hold.
func (l *ascendLatch) Press(now time.Time) bool {
	l.last = now
	if l.held {
		return false
	}
	l.held = true
	return true
}

// Expired reports true once per hold, when the window has passed without a press.
func (l *ascendLatch) Expired(now time.Time) bool {
	if !l.held || now.Sub(l.last) < l.window {
		return false
	}
	l.held = false
	return true
}

// Reset forgets any hold in progress.
func (l *ascendLatch) Reset() {
	l.held = false
	l.last = time.Time{}
}
