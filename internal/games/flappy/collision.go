package flappy

import "github.com/vovakirdan/tui-flappy/internal/config"

// Cause records what ended a session.
type Cause int

const (
	CauseNone Cause = iota
	CauseGround
	CauseCeiling
	CauseTopPipe    // the sprite anchored at Pipe.TopY
	CauseBottomPipe // the sprite anchored at Pipe.BottomY
)

// String returns a human-readable name for the cause.
func (c Cause) String() string {
	switch c {
	case CauseNone:
		return "none"
	case CauseGround:
		return "ground"
	case CauseCeiling:
		return "ceiling"
	case CauseTopPipe:
		return "top pipe"
	case CauseBottomPipe:
		return "bottom pipe"
	default:
		return "unknown"
	}
}

// DetectCollision tests the bird's current sample against the world.
// prev and cur are the bird's y on the previous and current frame.
//
// The test is a single-point check, not a sweep: a fast bird can skip past
// a pipe edge between frames. The thresholds deliberately mix strict and
// inclusive comparisons.
func DetectCollision(cfg *config.FlappyConfig, birdX, prev, cur float64, pipe Pipe) Cause {
	ground := cfg.World.Height - cfg.Ground.CollisionMargin
	if cur > ground && prev > ground {
		return CauseGround
	}
	if cur <= 0 && prev > 0 {
		return CauseCeiling
	}

	overlapX := birdX-cfg.Collision.LeftInset >= pipe.X-cfg.Bird.Width &&
		birdX+cfg.Collision.RightInset <= pipe.X+cfg.Pipe.Width
	if !overlapX {
		return CauseNone
	}
	if cur >= pipe.TopY-cfg.Bird.Height {
		return CauseTopPipe
	}
	bottomY := pipe.BottomY(cfg.Pipe.GapDistance, cfg.Pipe.Height)
	if cur-cfg.Collision.BottomInset <= cfg.Pipe.Height+bottomY-cfg.Bird.Height {
		return CauseBottomPipe
	}
	return CauseNone
}
