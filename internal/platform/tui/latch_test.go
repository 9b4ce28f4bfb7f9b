package tui

import (
	"testing"
	"time"
)

func TestAscendLatch(t *testing.T) {
	t0 := time.Unix(1000, 0)
	l := newAscendLatch(180 * time.Millisecond)

	if l.Expired(t0) {
		t.Error("idle latch should not expire")
	}
	if !l.Press(t0) {
		t.Error("first press should begin a hold")
	}
	if l.Press(t0.Add(50 * time.Millisecond)) {
		t.Error("repeat press should not begin a new hold")
	}

	// Window counts from the last repeat
	if l.Expired(t0.Add(200 * time.Millisecond)) {
		t.Error("latch expired before the window passed since the last press")
	}
	if !l.Expired(t0.Add(230 * time.Millisecond)) {
		t.Error("latch should expire once the window passed")
	}
	if l.Expired(t0.Add(500 * time.Millisecond)) {
		t.Error("latch should expire only once per hold")
	}

	if !l.Press(t0.Add(time.Second)) {
		t.Error("press after expiry should begin a new hold")
	}
	l.Reset()
	if l.Expired(t0.Add(time.Hour)) {
		t.Error("reset latch should not expire")
	}
}
