// Package config provides YAML-based configuration for the flappy game:
// world geometry, physics, sprite sizes, animation timings and the session
// rule set.
package config

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// FlappyConfig contains all configuration for the game.
type FlappyConfig struct {
	World     WorldConfig     `yaml:"world"`
	Physics   PhysicsConfig   `yaml:"physics"`
	Bird      BirdConfig      `yaml:"bird"`
	Pipe      PipeConfig      `yaml:"pipe"`
	Ground    GroundConfig    `yaml:"ground"`
	Collision CollisionConfig `yaml:"collision"`
	Theme     ThemeConfig     `yaml:"theme"`
	Session   SessionConfig   `yaml:"session"`
	Audio     AudioConfig     `yaml:"audio"`
}

// WorldConfig is the logical playfield in pixels. The terminal frontend
// scales it onto whatever cell grid is available.
type WorldConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PhysicsConfig holds the vertical motion constants.
type PhysicsConfig struct {
	Gravity   float64 `yaml:"gravity"`    // px/s², positive is downward
	JumpForce float64 `yaml:"jump_force"` // px/s, negative is upward
}

// BirdConfig defines the bird sprite and its starting state.
type BirdConfig struct {
	Width         float64 `yaml:"width"`
	Height        float64 `yaml:"height"`
	XOffset       float64 `yaml:"x_offset"` // bird x = world width / 4 - XOffset
	StartY        float64 `yaml:"start_y"`
	StartVelocity float64 `yaml:"start_velocity"`
	MaxTilt       float64 `yaml:"max_tilt"`      // radians at TiltVelocity
	TiltVelocity  float64 `yaml:"tilt_velocity"` // |velocity| mapped to MaxTilt
}

// PipeConfig defines the pipe pair and its scroll loop.
type PipeConfig struct {
	Width          float64       `yaml:"width"`
	Height         float64       `yaml:"height"`
	GapDistance    float64       `yaml:"gap_distance"`
	StartTopOffset float64       `yaml:"start_top_offset"` // initial top y = height/2 + offset
	RespawnMargin  int           `yaml:"respawn_margin"`   // gap y drawn from [margin, height-margin]
	ScrollTo       float64       `yaml:"scroll_to"`        // x at the end of one loop
	ScrollDuration time.Duration `yaml:"scroll_duration"`
	StartDelay     time.Duration `yaml:"start_delay"`
	PassDivisor    float64       `yaml:"pass_divisor"` // pass line = world width / divisor
}

// GroundConfig defines the ground strip and the ground collision line.
type GroundConfig struct {
	Height          float64       `yaml:"height"`
	CollisionMargin float64       `yaml:"collision_margin"` // ground line = world height - margin
	ScrollDuration  time.Duration `yaml:"scroll_duration"`
}

// CollisionConfig holds the hitbox insets applied in the pipe test.
type CollisionConfig struct {
	LeftInset   float64 `yaml:"left_inset"`
	RightInset  float64 `yaml:"right_inset"`
	BottomInset float64 `yaml:"bottom_inset"`
}

// ThemeConfig controls the day/night background cross-fade.
type ThemeConfig struct {
	SwapEvery    int           `yaml:"swap_every"`
	FadeOut      time.Duration `yaml:"fade_out"`
	Stagger      time.Duration `yaml:"stagger"`
	FadeIn       time.Duration `yaml:"fade_in"`
	BannerFadeIn time.Duration `yaml:"banner_fade_in"`
}

// StartMode selects how a fresh session begins.
type StartMode string

const (
	// StartTutorial waits in NotStarted for a first tap.
	StartTutorial StartMode = "tutorial"
	// StartImmediate begins playing as soon as the game is reset.
	StartImmediate StartMode = "immediate"
)

// SessionConfig selects the session rule set.
type SessionConfig struct {
	StartMode StartMode `yaml:"start_mode"`
}

// AudioConfig controls the sound cues.
type AudioConfig struct {
	Enabled     bool    `yaml:"enabled"`
	MusicVolume float64 `yaml:"music_volume"`
	JumpVolume  float64 `yaml:"jump_volume"`
}

// Preset names a bundled rule set.
type Preset string

const (
	PresetTutorial Preset = "tutorial"
	PresetClassic  Preset = "classic"
)

// ApplyPreset overrides the session rules with a bundled rule set.
// The tutorial preset is the canonical one; classic keeps the simpler
// variant that starts immediately and swaps themes every 10 points.
func ApplyPreset(cfg *FlappyConfig, preset Preset) {
	switch preset {
	case PresetTutorial:
		cfg.Session.StartMode = StartTutorial
		cfg.Theme.SwapEvery = 15
	case PresetClassic:
		cfg.Session.StartMode = StartImmediate
		cfg.Theme.SwapEvery = 10
	}
}

// Validate checks the invariants the simulation relies on.
func (c FlappyConfig) Validate() error {
	switch {
	case c.World.Width <= 0 || c.World.Height <= 0:
		return fmt.Errorf("%w: world size must be positive, got %gx%g", ErrInvalidConfig, c.World.Width, c.World.Height)
	case c.Physics.Gravity <= 0:
		return fmt.Errorf("%w: gravity must be positive, got %g", ErrInvalidConfig, c.Physics.Gravity)
	case c.Physics.JumpForce >= 0:
		return fmt.Errorf("%w: jump_force must be negative, got %g", ErrInvalidConfig, c.Physics.JumpForce)
	case c.Pipe.Width <= 0 || c.Pipe.Height <= 0:
		return fmt.Errorf("%w: pipe sprite must have positive size", ErrInvalidConfig)
	case c.Pipe.RespawnMargin < 0 || float64(2*c.Pipe.RespawnMargin) > c.World.Height:
		return fmt.Errorf("%w: world height %g leaves no respawn band for margin %d", ErrInvalidConfig, c.World.Height, c.Pipe.RespawnMargin)
	case c.Pipe.ScrollDuration <= 0 || c.Ground.ScrollDuration <= 0:
		return fmt.Errorf("%w: scroll durations must be positive", ErrInvalidConfig)
	case c.Pipe.ScrollTo > -c.Pipe.Width:
		return fmt.Errorf("%w: scroll_to %g must be left of -pipe.width so the pipe can respawn", ErrInvalidConfig, c.Pipe.ScrollTo)
	case c.Pipe.PassDivisor <= 0:
		return fmt.Errorf("%w: pass_divisor must be positive", ErrInvalidConfig)
	case c.Theme.SwapEvery <= 0:
		return fmt.Errorf("%w: theme.swap_every must be positive, got %d", ErrInvalidConfig, c.Theme.SwapEvery)
	case c.Session.StartMode != StartTutorial && c.Session.StartMode != StartImmediate:
		return fmt.Errorf("%w: unknown session.start_mode %q", ErrInvalidConfig, c.Session.StartMode)
	}
	return nil
}
