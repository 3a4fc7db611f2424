package flappy

import "fmt"

// SpriteKind identifies what a Sprite depicts.
type SpriteKind int

const (
	SpriteBackgroundDay SpriteKind = iota
	SpriteBackgroundNight
	SpritePipeBottom // anchored at Pipe.BottomY, above the gap
	SpritePipeTop    // anchored at Pipe.TopY, below the gap
	SpriteGround
	SpriteBird
	SpriteBanner
)

// Sprite is one positioned image in the retained scene, in world pixels.
type Sprite struct {
	Kind     SpriteKind
	X, Y     float64
	W, H     float64
	Opacity  float64
	Rotation float64 // radians, about the sprite centre
}

// Scene is a full description of one frame. It is rebuilt from session
// state every frame and handed to a rasterizer.
type Scene struct {
	Width, Height float64

	// Draw order: backgrounds, pipes, ground, bird, banner.
	Sprites []Sprite

	ScoreText    string
	ShowTutorial bool // waiting for the first tap
	ShowRetry    bool // the restart affordance after game over
	Paused       bool
}

// Sprite returns the first sprite of the given kind.
func (sc Scene) Sprite(kind SpriteKind) (Sprite, bool) {
	for _, sp := range sc.Sprites {
		if sp.Kind == kind {
			return sp, true
		}
	}
	return Sprite{}, false
}

// Scene builds the retained scene for the current frame.
func (s *Session) Scene() Scene {
	cfg := &s.cfg
	w, h := cfg.World.Width, cfg.World.Height
	skyH := h - cfg.Ground.Height

	rotation := 0.0
	if s.started {
		rotation = s.bird.Tilt(cfg.Bird.MaxTilt, cfg.Bird.TiltVelocity)
	}

	sc := Scene{
		Width:        w,
		Height:       h,
		ScoreText:    fmt.Sprintf("Score: %d", s.score),
		ShowTutorial: s.state == StateNotStarted,
		ShowRetry:    s.state == StateGameOver,
	}
	sc.Sprites = []Sprite{
		{Kind: SpriteBackgroundDay, W: w, H: skyH, Opacity: s.theme.Day.Value()},
		{Kind: SpriteBackgroundNight, W: w, H: skyH, Opacity: s.theme.Night.Value()},
		{
			Kind: SpritePipeBottom, X: s.pipe.X, Y: s.pipe.BottomY(cfg.Pipe.GapDistance, cfg.Pipe.Height),
			W: cfg.Pipe.Width, H: cfg.Pipe.Height, Opacity: 1,
		},
		{Kind: SpritePipeTop, X: s.pipe.X, Y: s.pipe.TopY, W: cfg.Pipe.Width, H: cfg.Pipe.Height, Opacity: 1},
		{Kind: SpriteGround, X: s.groundLoop.Value(), Y: skyH, W: w * 2, H: cfg.Ground.Height, Opacity: 1},
		{
			Kind: SpriteBird, X: s.bird.X, Y: s.bird.Y, W: cfg.Bird.Width, H: cfg.Bird.Height,
			Opacity: 1, Rotation: rotation,
		},
	}
	if op := s.banner.Value(); op > 0 {
		bw := w * 0.7
		sc.Sprites = append(sc.Sprites, Sprite{
			Kind: SpriteBanner, X: w/2 - bw/2, Y: h/2 - 84, W: bw, H: 84, Opacity: op,
		})
	}
	return sc
}
