package flappy

import "math/rand"

// Pipe is the single obstacle pair. Both sprites share X. TopY anchors the
// sprite below the gap; the sprite above the gap sits GapDistance higher and
// is derived by BottomY so the gap never changes size.
type Pipe struct {
	X    float64
	TopY float64
}

// BottomY returns the y of the sprite on the other side of the gap.
func (p Pipe) BottomY(gapDistance, pipeHeight float64) float64 {
	return p.TopY - gapDistance - pipeHeight
}

// PipeEvents are the crossings detected for one frame.
type PipeEvents struct {
	Scored    bool // crossed the pass line moving left
	Respawned bool // left the screen; the gap must be re-randomized
}

// PipeCycle watches the pipe's x and reports pass-line and offscreen
// crossings. It never moves the pipe itself.
type PipeCycle struct {
	x        watch[float64]
	passLine float64
	offLine  float64
}

// NewPipeCycle creates a watcher for a world of the given width.
func NewPipeCycle(worldWidth, passDivisor, pipeWidth float64) PipeCycle {
	return PipeCycle{
		passLine: worldWidth / passDivisor,
		offLine:  -pipeWidth,
	}
}

// PassLine returns the x at which a pipe pair counts as cleared.
func (c *PipeCycle) PassLine() float64 {
	return c.passLine
}

// Observe records this frame's x and reports the crossings since the
// previous frame. Each fires once per crossing, never on rightward motion.
func (c *PipeCycle) Observe(x float64) PipeEvents {
	prev, changed := c.x.Observe(x)
	if !changed {
		return PipeEvents{}
	}
	return PipeEvents{
		Scored:    prev > c.passLine && x <= c.passLine,
		Respawned: prev >= c.offLine && x < c.offLine,
	}
}

// Reset forgets the previous sample.
func (c *PipeCycle) Reset() {
	c.x.Reset()
}

// RandomGapY draws a new TopY uniformly from the integers in
// [margin, floor(worldHeight-margin)].
func RandomGapY(rng *rand.Rand, margin int, worldHeight float64) float64 {
	hi := int(worldHeight) - margin
	if hi <= margin {
		return float64(margin)
	}
	return float64(margin + rng.Intn(hi-margin+1))
}
