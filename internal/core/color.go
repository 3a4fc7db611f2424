package core

// Color is a foreground colour for a screen cell.
// The platform maps each value to an ANSI 256-colour code.
type Color uint8

// Palette used by the scene rasterizer.
const (
	ColorDefault Color = iota
	ColorSkyDay
	ColorSkyNight
	ColorStar
	ColorCloud
	ColorPipe
	ColorPipeCap
	ColorGround
	ColorGrass
	ColorBird
	ColorBeak
	ColorText
	ColorBanner
	ColorHint
)
