package flappy

import (
	"testing"

	"github.com/vovakirdan/tui-flappy/internal/config"
)

func TestDetectCollision(t *testing.T) {
	cfg := config.DefaultFlappyConfig()
	const birdX = 180 // 800/4 - 20
	far := Pipe{X: 800, TopY: 600}

	tests := []struct {
		name      string
		prev, cur float64
		pipe      Pipe
		expected  Cause
	}{
		{"free flight", 300, 310, far, CauseNone},
		{"ground on both samples", 651, 652, far, CauseGround},
		{"ground on current only", 640, 660, far, CauseNone},
		{"ground on previous only", 660, 640, far, CauseNone},
		{"ground line itself is safe", 650, 650.5, far, CauseNone},
		{"ceiling crossing", 5, 0, far, CauseCeiling},
		{"ceiling crossing below zero", 3, -4, far, CauseCeiling},
		{"already above ceiling", 0, -1, far, CauseNone},
		{"still above ceiling", -1, -2, far, CauseNone},
		{"top pipe edge", 550, 560, Pipe{X: 150, TopY: 600}, CauseTopPipe},
		{"just above top pipe", 550, 559, Pipe{X: 150, TopY: 600}, CauseNone},
		{"bottom pipe edge", 400, 393, Pipe{X: 150, TopY: 600}, CauseBottomPipe},
		{"just below bottom pipe", 400, 393.5, Pipe{X: 150, TopY: 600}, CauseNone},
		{"left overlap limit", 600, 601, Pipe{X: 229, TopY: 600}, CauseTopPipe},
		{"past left overlap", 600, 601, Pipe{X: 230, TopY: 600}, CauseNone},
		{"right overlap limit", 600, 601, Pipe{X: 81, TopY: 600}, CauseTopPipe},
		{"past right overlap", 600, 601, Pipe{X: 80, TopY: 600}, CauseNone},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := DetectCollision(&cfg, birdX, tc.prev, tc.cur, tc.pipe)
			if got != tc.expected {
				t.Errorf("DetectCollision(%v -> %v, %+v) = %v, expected %v", tc.prev, tc.cur, tc.pipe, got, tc.expected)
			}
		})
	}
}

func TestCauseString(t *testing.T) {
	for c, want := range map[Cause]string{
		CauseNone:       "none",
		CauseGround:     "ground",
		CauseCeiling:    "ceiling",
		CauseTopPipe:    "top pipe",
		CauseBottomPipe: "bottom pipe",
		Cause(42):       "unknown",
	} {
		if got := c.String(); got != want {
			t.Errorf("Cause(%d).String() = %q, expected %q", int(c), got, want)
		}
	}
}
