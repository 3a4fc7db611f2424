package flappy

import "github.com/vovakirdan/tui-flappy/internal/core"

// Bird is the player avatar. X is fixed for the whole session; Y is the top
// of the sprite in world pixels, growing downward.
type Bird struct {
	X        float64
	Y        float64
	Velocity float64 // px/s, negative is upward
}

// Advance integrates one frame of constant-gravity motion. The position uses
// the velocity from before this frame's gravity is applied. Non-positive dt
// (the first frame has none) is ignored.
func (b *Bird) Advance(dt, gravity float64) {
	if dt <= 0 {
		return
	}
	b.Y += b.Velocity * dt
	b.Velocity += gravity * dt
}

// Jump overwrites the velocity with the impulse. Taps never stack.
func (b *Bird) Jump(force float64) {
	b.Velocity = force
}

// Tilt maps the vertical velocity onto a rotation in radians, clamped to
// ±maxTilt once |velocity| reaches tiltVelocity.
func (b Bird) Tilt(maxTilt, tiltVelocity float64) float64 {
	return core.Interpolate(b.Velocity, -tiltVelocity, tiltVelocity, -maxTilt, maxTilt)
}
