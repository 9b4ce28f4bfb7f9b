package config

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	var cfg FlappyConfig
	if err := Decode(DefaultYAML(), FormatYAML, &cfg); err != nil {
		t.Fatalf("embedded yaml does not parse: %v", err)
	}
	if cfg != DefaultFlappyConfig() {
		t.Errorf("embedded defaults differ from DefaultFlappyConfig():\n got %+v\nwant %+v", cfg, DefaultFlappyConfig())
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestLoadFileYAMLPartialOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "flappy.yaml")
	data := []byte("obstacles:\n  speed: 3\nloop:\n  tick_rate: 60\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile() failed: %v", err)
	}
	if cfg.Obstacles.Speed != 3 {
		t.Errorf("speed = %v, expected 3", cfg.Obstacles.Speed)
	}
	if cfg.Loop.TickRate != 60 {
		t.Errorf("tick_rate = %d, expected 60", cfg.Loop.TickRate)
	}
	// Untouched fields keep defaults
	if cfg.Obstacles.Gap != 120 || cfg.Player.Y != 150 {
		t.Errorf("missing fields should keep defaults, got gap=%d y=%v", cfg.Obstacles.Gap, cfg.Player.Y)
	}
}

func TestLoadFileTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "flappy.toml")
	data := []byte("[physics]\ngravity = 0.3\nascend_gravity = -0.5\n\n[obstacles]\ngap = 150\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile() failed: %v", err)
	}
	if cfg.Physics.Gravity != 0.3 || cfg.Physics.AscendGravity != -0.5 {
		t.Errorf("physics = %+v, expected 0.3/-0.5", cfg.Physics)
	}
	if cfg.Obstacles.Gap != 150 {
		t.Errorf("gap = %d, expected 150", cfg.Obstacles.Gap)
	}
}

func TestLoadFileRejectsInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "flappy.yaml")
	// Gap smaller than the 30-unit player
	if err := os.WriteFile(path, []byte("obstacles:\n  gap: 10\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	_, err := LoadFile(path)
	if !errors.Is(err, ErrInvalid) {
		t.Errorf("expected ErrInvalid, got %v", err)
	}
}

func TestLoadMissingCustomPath(t *testing.T) {
	_, _, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Error("expected error for missing custom config")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*FlappyConfig)
		ok     bool
	}{
		{"defaults", func(*FlappyConfig) {}, true},
		{"negative area", func(c *FlappyConfig) { c.Area.Width = -1 }, false},
		{"fractional area height", func(c *FlappyConfig) { c.Area.Height = 600.5 }, false},
		{"fractional area width", func(c *FlappyConfig) { c.Area.Width = 500.5 }, true},
		{"gap below player height", func(c *FlappyConfig) { c.Obstacles.Gap = 29 }, false},
		{"gap equals player height", func(c *FlappyConfig) { c.Obstacles.Gap = 30 }, true},
		{"segments exceed area", func(c *FlappyConfig) { c.Obstacles.MinHeight = 250 }, false},
		{"zero spawn period", func(c *FlappyConfig) { c.Obstacles.SpawnEvery = 0 }, false},
		{"zero tick rate", func(c *FlappyConfig) { c.Loop.TickRate = 0 }, false},
		{"zero score divisor", func(c *FlappyConfig) { c.Score.FramesPerPoint = 0 }, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultFlappyConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if tc.ok && err != nil {
				t.Errorf("Validate() = %v, expected nil", err)
			}
			if !tc.ok && !errors.Is(err, ErrInvalid) {
				t.Errorf("Validate() = %v, expected ErrInvalid", err)
			}
		})
	}
}

func TestEncodeDecodeFormats(t *testing.T) {
	for _, format := range []Format{FormatYAML, FormatTOML} {
		t.Run(string(format), func(t *testing.T) {
			var buf bytes.Buffer
			if err := Encode(&buf, DefaultFlappyConfig(), format); err != nil {
				t.Fatalf("Encode() failed: %v", err)
			}

			var cfg FlappyConfig
			if err := Decode(buf.Bytes(), format, &cfg); err != nil {
				t.Fatalf("Decode() failed: %v\n%s", err, buf.String())
			}
			if cfg != DefaultFlappyConfig() {
				t.Errorf("decoded config differs: %+v", cfg)
			}
		})
	}
}

func TestParseFormat(t *testing.T) {
	if f, err := ParseFormat("TOML"); err != nil || f != FormatTOML {
		t.Errorf("ParseFormat(TOML) = %q, %v", f, err)
	}
	if f, err := ParseFormat("yml"); err != nil || f != FormatYAML {
		t.Errorf("ParseFormat(yml) = %q, %v", f, err)
	}
	if _, err := ParseFormat("json"); err == nil {
		t.Error("ParseFormat(json) should fail")
	}
	if FormatFromPath("a/b/flappy.TOML") != FormatTOML {
		t.Error("FormatFromPath should be case-insensitive")
	}
}
