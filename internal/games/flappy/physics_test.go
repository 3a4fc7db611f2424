package flappy

import (
	"math"
	"testing"
)

const eps = 1e-9

func TestBirdAdvance(t *testing.T) {
	tests := []struct {
		name         string
		y, v, dt     float64
		wantY, wantV float64
	}{
		{"reference frame", 200, 200, 0.1, 220, 270},
		{"rising", 300, -360, 0.05, 282, -325},
		{"zero dt is skipped", 200, 200, 0, 200, 200},
		{"negative dt is skipped", 200, 200, -0.1, 200, 200},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b := Bird{Y: tc.y, Velocity: tc.v}
			b.Advance(tc.dt, 700)
			if math.Abs(b.Y-tc.wantY) > eps || math.Abs(b.Velocity-tc.wantV) > eps {
				t.Errorf("Advance(%v) = (%v, %v), expected (%v, %v)", tc.dt, b.Y, b.Velocity, tc.wantY, tc.wantV)
			}
		})
	}
}

func TestBirdVelocityIsNotClamped(t *testing.T) {
	b := Bird{Y: 0, Velocity: 0}
	for i := 0; i < 100; i++ {
		b.Advance(0.1, 700)
	}
	if math.Abs(b.Velocity-7000) > 1e-6 {
		t.Errorf("velocity after 10s = %v, expected 7000", b.Velocity)
	}
}

func TestBirdJumpOverwrites(t *testing.T) {
	for _, v := range []float64{-1000, -360, 0, 45.5, 900} {
		b := Bird{Velocity: v}
		b.Jump(-360)
		if b.Velocity != -360 {
			t.Errorf("Jump from %v left velocity %v", v, b.Velocity)
		}
	}

	b := Bird{}
	b.Jump(-360)
	b.Jump(-360)
	if b.Velocity != -360 {
		t.Errorf("double jump stacked to %v", b.Velocity)
	}
}

func TestBirdTilt(t *testing.T) {
	tests := []struct {
		v, want float64
	}{
		{-500, -0.5},
		{-900, -0.5},
		{0, 0},
		{250, 0.25},
		{700, 0.5},
	}
	for _, tc := range tests {
		b := Bird{Velocity: tc.v}
		if got := b.Tilt(0.5, 500); math.Abs(got-tc.want) > eps {
			t.Errorf("Tilt at %v = %v, expected %v", tc.v, got, tc.want)
		}
	}
}
