package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/flappy.yaml
var defaultFlappyYAML []byte

// DefaultFlappyConfig returns the built-in configuration. It mirrors
// defaults/flappy.yaml and is used when the embedded file cannot be parsed.
func DefaultFlappyConfig() FlappyConfig {
	return FlappyConfig{
		World: WorldConfig{
			Width:  800,
			Height: 800,
		},
		Physics: PhysicsConfig{
			Gravity:   700,
			JumpForce: -360,
		},
		Bird: BirdConfig{
			Width:         64,
			Height:        40,
			XOffset:       20,
			StartY:        200,
			StartVelocity: 200,
			MaxTilt:       0.5,
			TiltVelocity:  500,
		},
		Pipe: PipeConfig{
			Width:          104,
			Height:         640,
			GapDistance:    190,
			StartTopOffset: 200,
			RespawnMargin:  200,
			ScrollTo:       -140,
			ScrollDuration: 3 * time.Second,
			StartDelay:     time.Second,
			PassDivisor:    5,
		},
		Ground: GroundConfig{
			Height:          100,
			CollisionMargin: 150,
			ScrollDuration:  3 * time.Second,
		},
		Collision: CollisionConfig{
			LeftInset:   15,
			RightInset:  5,
			BottomInset: 23,
		},
		Theme: ThemeConfig{
			SwapEvery:    15,
			FadeOut:      time.Second,
			Stagger:      800 * time.Millisecond,
			FadeIn:       1500 * time.Millisecond,
			BannerFadeIn: 800 * time.Millisecond,
		},
		Session: SessionConfig{
			StartMode: StartTutorial,
		},
		Audio: AudioConfig{
			Enabled:     true,
			MusicVolume: 0.7,
			JumpVolume:  1.0,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultFlappyYAML
}
