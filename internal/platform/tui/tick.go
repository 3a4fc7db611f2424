// Package tui provides the Bubble Tea frontend for the game: the frame loop,
// input mapping, the game picker, the run log and SSH serving via Wish.
package tui

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// maxFrameDelta caps dt so a stalled terminal does not teleport the bird
// through a pipe.
const maxFrameDelta = 250 * time.Millisecond

// TickMsg is sent to trigger a game simulation tick. Loop identifies the
// game model that scheduled it, so ticks still in flight when a game is
// left do not drive the next one.
type TickMsg struct {
	At   time.Time
	Loop uint64
}

var loopIDs atomic.Uint64

func nextLoopID() uint64 {
	return loopIDs.Add(1)
}

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int, loop uint64) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{At: t, Loop: loop}
	})
}

// frameClock turns tick timestamps into frame deltas.
type frameClock struct {
	last time.Time
}

// Next returns the time since the previous tick. The first tick after a
// reset yields zero.
func (c *frameClock) Next(now time.Time) time.Duration {
	if c.last.IsZero() {
		c.last = now
		return 0
	}
	dt := now.Sub(c.last)
	c.last = now
	switch {
	case dt < 0:
		return 0
	case dt > maxFrameDelta:
		return maxFrameDelta
	}
	return dt
}

// Reset forgets the previous tick.
func (c *frameClock) Reset() {
	c.last = time.Time{}
}
