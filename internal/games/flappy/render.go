package flappy

import (
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Visual characters for rendering
const (
	PipeChar      = '█'
	PipeCapTop    = '▄'
	PipeCapBottom = '▀'
	GrassChar     = '▀'
	BirdChar      = '█'
	StarChar      = '·'
	CloudChar     = '░'
)

// Beak glyphs by tilt
const (
	BeakLevel = '▶'
	BeakUp    = '◥'
	BeakDown  = '◢'
)

const tiltThreshold = 0.15

// Rasterize draws a scene onto the cell screen, scaling world pixels to the
// screen's cell grid. The screen is overwritten completely.
func Rasterize(sc Scene, dst *core.Screen) {
	dst.Clear()
	if sc.Width <= 0 || sc.Height <= 0 || dst.Width() == 0 || dst.Height() == 0 {
		return
	}
	r := raster{sc: sc, dst: dst}

	for _, sp := range sc.Sprites {
		switch sp.Kind {
		case SpriteBackgroundDay:
			r.clouds(sp)
		case SpriteBackgroundNight:
			r.stars(sp)
		case SpritePipeBottom:
			r.pipe(sp, false)
		case SpritePipeTop:
			r.pipe(sp, true)
		case SpriteGround:
			r.ground(sp)
		case SpriteBird:
			r.bird(sp)
		case SpriteBanner:
			r.banner(sp, sc.ShowRetry)
		}
	}

	r.hud()
}

type raster struct {
	sc  Scene
	dst *core.Screen
}

func (r raster) sx(x float64) int { return core.Scale(x, r.sc.Width, r.dst.Width()) }
func (r raster) sy(y float64) int { return core.Scale(y, r.sc.Height, r.dst.Height()) }

// rect converts a sprite to cells, keeping at least one cell on each axis.
func (r raster) rect(sp Sprite) core.Rect {
	x0, y0 := r.sx(sp.X), r.sy(sp.Y)
	x1, y1 := r.sx(sp.X+sp.W), r.sy(sp.Y+sp.H)
	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y1 = y0 + 1
	}
	return core.NewRect(x0, y0, x1-x0, y1-y0)
}

// hash gives a stable per-cell value so background texture does not flicker.
func hash(x, y int) int {
	h := uint32(x)*73856093 ^ uint32(y)*19349663
	h ^= h >> 13
	return int(h % 100)
}

// clouds draws the day sky. Cloud density follows the sprite opacity so a
// cross-fade thins the clouds out.
func (r raster) clouds(sp Sprite) {
	rc := r.rect(sp)
	density := int(sp.Opacity * 6)
	for y := rc.Y; y < rc.Bottom(); y++ {
		for x := rc.X; x < rc.Right(); x++ {
			// clouds are 4-cell wide puffs
			if hash(x/4, y) < density {
				r.dst.SetCell(x, y, CloudChar, core.ColorCloud)
			}
		}
	}
}

func (r raster) stars(sp Sprite) {
	rc := r.rect(sp)
	density := int(sp.Opacity * 5)
	for y := rc.Y; y < rc.Bottom(); y++ {
		for x := rc.X; x < rc.Right(); x++ {
			if hash(x+7, y+3) < density {
				r.dst.SetCell(x, y, StarChar, core.ColorStar)
			}
		}
	}
}

// pipe draws one pipe sprite with a cap on the side facing the gap.
func (r raster) pipe(sp Sprite, capOnTop bool) {
	rc := r.rect(sp)
	r.dst.DrawRect(rc, PipeChar, core.ColorPipe)
	if capOnTop {
		r.dst.DrawHLine(rc.X, rc.Y, rc.W, PipeCapTop, core.ColorPipeCap)
	} else {
		r.dst.DrawHLine(rc.X, rc.Bottom()-1, rc.W, PipeCapBottom, core.ColorPipeCap)
	}
}

// ground draws the strip with a grass edge. The pattern shifts with the
// sprite's x so the ground appears to scroll.
func (r raster) ground(sp Sprite) {
	top := r.sy(sp.Y)
	shift := -r.sx(sp.X)
	for y := top; y < r.dst.Height(); y++ {
		for x := 0; x < r.dst.Width(); x++ {
			if y == top {
				ch := GrassChar
				if (x+shift)%4 == 0 {
					ch = '▚'
				}
				r.dst.SetCell(x, y, ch, core.ColorGrass)
				continue
			}
			ch := '░'
			if (x+shift+y)%3 == 0 {
				ch = '▒'
			}
			r.dst.SetCell(x, y, ch, core.ColorGround)
		}
	}
}

func (r raster) bird(sp Sprite) {
	rc := r.rect(sp)
	r.dst.DrawRect(rc, BirdChar, core.ColorBird)

	beak := BeakLevel
	switch {
	case sp.Rotation < -tiltThreshold:
		beak = BeakUp
	case sp.Rotation > tiltThreshold:
		beak = BeakDown
	}
	r.dst.SetCell(rc.Right(), rc.Y+rc.H/2, beak, core.ColorBeak)
}

func (r raster) banner(sp Sprite, retry bool) {
	color := core.ColorHint
	if sp.Opacity >= 0.5 {
		color = core.ColorBanner
	}
	rc := r.rect(sp)
	if rc.H < 3 {
		rc.Y -= (3 - rc.H) / 2
		rc.H = 3
	}
	r.dst.DrawRect(rc, ' ', core.ColorDefault)
	r.dst.DrawBox(rc, color)
	r.dst.DrawTextCentered(rc.Y+rc.H/2, "GAME OVER", color)
	if retry && rc.Bottom() < r.dst.Height() {
		r.dst.DrawTextCentered(rc.Bottom(), "Tap or press R to try again", core.ColorHint)
	}
}

func (r raster) hud() {
	h := r.dst.Height()
	row := 1
	if h < 3 {
		row = 0
	}
	r.dst.DrawTextCentered(row, " "+r.sc.ScoreText+" ", core.ColorText)

	if r.sc.ShowTutorial {
		r.dst.DrawTextCentered(h/2, " Press SPACE or click to flap ", core.ColorHint)
	}
	if r.sc.Paused {
		r.dst.DrawTextCentered(h/2, " PAUSED - press P to resume ", core.ColorText)
	}
}
