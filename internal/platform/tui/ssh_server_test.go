package tui

import (
	"testing"
	"time"

	"github.com/vovakirdan/tui-flappy/internal/config"
)

func TestDefaultSSHServerConfig(t *testing.T) {
	cfg := DefaultSSHServerConfig()

	if cfg.Address != ":23234" {
		t.Errorf("Address = %q, expected :23234", cfg.Address)
	}
	if cfg.IdleTimeout != 30*time.Minute {
		t.Errorf("IdleTimeout = %v, expected 30m", cfg.IdleTimeout)
	}
	if cfg.Game != config.DefaultFlappyConfig() {
		t.Error("sessions should play with the default game config")
	}
	if err := cfg.Game.Validate(); err != nil {
		t.Errorf("default game config invalid: %v", err)
	}
}

func TestSSHServerAddr(t *testing.T) {
	cfg := DefaultSSHServerConfig()
	cfg.Address = "127.0.0.1:2222"

	s := &SSHServer{config: cfg}
	if got := s.Addr(); got != "127.0.0.1:2222" {
		t.Errorf("Addr() = %q, expected the configured address", got)
	}
}

func TestResolveHostKeyPath(t *testing.T) {
	want := t.TempDir() + "/keys/host_key"

	got, err := resolveHostKeyPath(want)
	if err != nil {
		t.Fatalf("resolveHostKeyPath: %v", err)
	}
	if got != want {
		t.Errorf("path = %q, expected %q", got, want)
	}
}
