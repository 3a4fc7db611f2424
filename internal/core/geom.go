// Package core provides the platform-neutral types shared by the game and
// the terminal frontend. It has no Bubble Tea dependency so game logic stays
// pure and testable.
package core

import "math"

// Rect is an axis-aligned cell rectangle on a Screen.
type Rect struct {
	X, Y int // Top-left corner
	W, H int
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate one past the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate one past the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Empty reports whether the rectangle covers no cells.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// ClampF restricts a float64 value to be within [lo, hi].
func ClampF(val, lo, hi float64) float64 {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}

// Interpolate maps v from [inLo, inHi] onto [outLo, outHi], clamping the
// result to the output range.
func Interpolate(v, inLo, inHi, outLo, outHi float64) float64 {
	if inHi == inLo {
		return outLo
	}
	t := ClampF((v-inLo)/(inHi-inLo), 0, 1)
	return outLo + t*(outHi-outLo)
}

// Scale converts a world coordinate into a cell coordinate given the world
// and screen extents along the same axis.
func Scale(v, world float64, cells int) int {
	if world <= 0 {
		return 0
	}
	return int(math.Floor(v * float64(cells) / world))
}
