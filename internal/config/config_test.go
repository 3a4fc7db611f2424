package config

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := Parse(nil)
	if err != nil {
		t.Fatalf("Parse(nil) failed: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultFlappyConfig()) {
		t.Errorf("embedded defaults drifted from DefaultFlappyConfig():\n got %+v\nwant %+v", cfg, DefaultFlappyConfig())
	}
}

func TestParseOverlaysPartialFile(t *testing.T) {
	cfg, err := Parse([]byte("physics:\n  gravity: 900\ntheme:\n  fade_in: 2s\n"))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if cfg.Physics.Gravity != 900 {
		t.Errorf("gravity = %g, expected 900", cfg.Physics.Gravity)
	}
	if cfg.Physics.JumpForce != -360 {
		t.Errorf("jump_force = %g, expected default -360", cfg.Physics.JumpForce)
	}
	if cfg.Theme.FadeIn != 2*time.Second {
		t.Errorf("fade_in = %v, expected 2s", cfg.Theme.FadeIn)
	}
	if cfg.Theme.Stagger != 800*time.Millisecond {
		t.Errorf("stagger = %v, expected default 800ms", cfg.Theme.Stagger)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*FlappyConfig)
	}{
		{"zero gravity", func(c *FlappyConfig) { c.Physics.Gravity = 0 }},
		{"upward jump must be negative", func(c *FlappyConfig) { c.Physics.JumpForce = 10 }},
		{"world too short for respawn band", func(c *FlappyConfig) { c.World.Height = 300 }},
		{"pipe never leaves screen", func(c *FlappyConfig) { c.Pipe.ScrollTo = -50 }},
		{"theme interval", func(c *FlappyConfig) { c.Theme.SwapEvery = 0 }},
		{"start mode", func(c *FlappyConfig) { c.Session.StartMode = "later" }},
		{"scroll duration", func(c *FlappyConfig) { c.Ground.ScrollDuration = 0 }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultFlappyConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Validate() = %v, expected ErrInvalidConfig", err)
			}
		})
	}

	if err := DefaultFlappyConfig().Validate(); err != nil {
		t.Errorf("defaults should validate, got %v", err)
	}
}

func TestLoadCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	if err := os.WriteFile(path, []byte("world:\n  width: 600\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.World.Width != 600 || cfg.World.Height != 800 {
		t.Errorf("world = %gx%g, expected 600x800", cfg.World.Width, cfg.World.Height)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("missing explicit config should fail")
	}

	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("physics:\n  gravity: -1\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("Load(bad) = %v, expected ErrInvalidConfig", err)
	}
}

func TestLoadUserConfigFallsBackWhenBroken(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir := filepath.Join(home, ".flappy", "configs")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(dir, ConfigFile)

	if err := os.WriteFile(path, []byte("pipe:\n  gap_distance: 220\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Pipe.GapDistance != 220 {
		t.Errorf("gap_distance = %g, expected user value 220", cfg.Pipe.GapDistance)
	}

	if err := os.WriteFile(path, []byte(": not yaml ["), 0o600); err != nil {
		t.Fatal(err)
	}
	cfg, err = Load("")
	if err != nil {
		t.Fatalf("Load with broken user file failed: %v", err)
	}
	if cfg.Pipe.GapDistance != 190 {
		t.Errorf("gap_distance = %g, expected default 190", cfg.Pipe.GapDistance)
	}
}

func TestApplyPreset(t *testing.T) {
	cfg := DefaultFlappyConfig()

	ApplyPreset(&cfg, PresetClassic)
	if cfg.Session.StartMode != StartImmediate || cfg.Theme.SwapEvery != 10 {
		t.Errorf("classic preset = %q/%d, expected immediate/10", cfg.Session.StartMode, cfg.Theme.SwapEvery)
	}

	ApplyPreset(&cfg, PresetTutorial)
	if cfg.Session.StartMode != StartTutorial || cfg.Theme.SwapEvery != 15 {
		t.Errorf("tutorial preset = %q/%d, expected tutorial/15", cfg.Session.StartMode, cfg.Theme.SwapEvery)
	}

	before := cfg
	ApplyPreset(&cfg, "")
	if !reflect.DeepEqual(before, cfg) {
		t.Error("empty preset should not change the config")
	}
}

func TestMarshalRoundTripsDurations(t *testing.T) {
	data, err := Marshal(DefaultFlappyConfig())
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse(Marshal(defaults)) failed: %v", err)
	}
	if cfg.Pipe.ScrollDuration != 3*time.Second {
		t.Errorf("scroll_duration = %v after round trip", cfg.Pipe.ScrollDuration)
	}
}
