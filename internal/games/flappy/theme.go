package flappy

import (
	"time"

	"github.com/vovakirdan/tui-flappy/internal/config"
)

// Theme cross-fades the day and night backgrounds every SwapEvery points.
// It only affects presentation.
type Theme struct {
	Day   Fade
	Night Fade
	cfg   config.ThemeConfig
}

// NewTheme creates a theme showing the day background.
func NewTheme(cfg config.ThemeConfig) Theme {
	t := Theme{cfg: cfg}
	t.Reset()
	return t
}

// Reset snaps back to full day.
func (t *Theme) Reset() {
	t.Day.Set(1)
	t.Night.Set(0)
}

// OnScore reacts to a new score. At every positive multiple of SwapEvery
// the visible background fades out and, after the stagger, the other one
// fades in. It reports whether a swap started.
func (t *Theme) OnScore(score int) bool {
	if score <= 0 || t.cfg.SwapEvery <= 0 || score%t.cfg.SwapEvery != 0 {
		return false
	}
	out, in := &t.Night, &t.Day
	if t.Day.Value() == 1 {
		out, in = &t.Day, &t.Night
	}
	out.To(0, t.cfg.FadeOut, 0)
	in.To(1, t.cfg.FadeIn, t.cfg.Stagger)
	return true
}

// Advance moves both fades forward.
func (t *Theme) Advance(dt time.Duration) {
	t.Day.Advance(dt)
	t.Night.Advance(dt)
}

// IsNight reports whether the night background dominates.
func (t *Theme) IsNight() bool {
	return t.Night.Value() > t.Day.Value()
}
