package flappy

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// State is the session phase.
type State int

const (
	StateNotStarted State = iota
	StatePlaying
	StateGameOver
)

// String returns a human-readable name for the state.
func (s State) String() string {
	switch s {
	case StateNotStarted:
		return "not started"
	case StatePlaying:
		return "playing"
	case StateGameOver:
		return "game over"
	default:
		return "unknown"
	}
}

// Session holds all per-run state and drives it one frame at a time.
//
// Frame order: animations advance, then physics, then the position and
// pipe watchers fire their side effects, then the theme reacts to any new
// score. Everything runs on the caller's goroutine.
type Session struct {
	cfg config.FlappyConfig
	rng *rand.Rand

	state   State
	started bool // left NotStarted at least once
	score   int
	cause   Cause

	bird       Bird
	pipe       Pipe
	pipeLoop   Loop
	groundLoop Loop
	theme      Theme
	banner     Fade

	birdY  watch[float64]
	cycle  PipeCycle
	events []core.Event
}

// NewSession creates a session from a validated config. The RNG seed only
// affects gap placement.
func NewSession(cfg config.FlappyConfig, seed int64) *Session {
	s := &Session{
		cfg: cfg,
		rng: rand.New(rand.NewSource(seed)),
	}
	s.Reset()
	return s
}

// Reset puts the session back to its mount state. A tutorial session waits
// for the first tap; an immediate one starts playing right away.
func (s *Session) Reset() {
	w, h := s.cfg.World.Width, s.cfg.World.Height

	s.state = StateNotStarted
	s.started = false
	s.score = 0
	s.cause = CauseNone
	s.events = s.events[:0]

	s.bird = Bird{
		X:        w/4 - s.cfg.Bird.XOffset,
		Y:        s.cfg.Bird.StartY,
		Velocity: s.cfg.Bird.StartVelocity,
	}
	s.pipe = Pipe{X: w, TopY: h/2 + s.cfg.Pipe.StartTopOffset}
	s.pipeLoop = NewLoop(w, s.cfg.Pipe.ScrollTo, s.cfg.Pipe.ScrollDuration)
	s.groundLoop = NewLoop(0, -w, s.cfg.Ground.ScrollDuration)
	s.theme = NewTheme(s.cfg.Theme)
	s.banner.Set(0)

	s.birdY.Reset()
	s.cycle = NewPipeCycle(w, s.cfg.Pipe.PassDivisor, s.cfg.Pipe.Width)

	if s.cfg.Session.StartMode == config.StartImmediate {
		s.start()
	}
}

// Tap applies the single player input.
//
//	NotStarted: start playing
//	Playing:    overwrite velocity with the jump impulse
//	GameOver:   restart
func (s *Session) Tap() {
	switch s.state {
	case StateNotStarted:
		s.start()
	case StatePlaying:
		s.bird.Jump(s.cfg.Physics.JumpForce)
		s.emit(core.EventJump, "")
	case StateGameOver:
		s.Restart()
	}
}

func (s *Session) start() {
	s.started = true
	s.Restart()
}

// Restart resets score, bird, pipe x, theme and banner and re-arms the
// scroll loops. The ground scrolls at once; the pipe waits for its start
// delay. It can be called from any state.
func (s *Session) Restart() {
	w := s.cfg.World.Width

	s.state = StatePlaying
	s.started = true
	s.score = 0
	s.cause = CauseNone
	s.banner.Set(0)
	s.theme.Reset()

	s.bird.Y = s.cfg.Bird.StartY
	s.bird.Velocity = s.cfg.Bird.StartVelocity
	s.pipe.X = w

	s.groundLoop.Start(0)
	s.pipeLoop.Start(s.cfg.Pipe.StartDelay)

	s.emit(core.EventStarted, "")
}

// Update advances the session by one frame of dt.
func (s *Session) Update(dt time.Duration) {
	s.pipeLoop.Advance(dt)
	s.groundLoop.Advance(dt)
	s.theme.Advance(dt)
	s.banner.Advance(dt)

	if s.pipeLoop.Running() {
		s.pipe.X = s.pipeLoop.Value()
	}

	if s.state == StatePlaying {
		s.bird.Advance(dt.Seconds(), s.cfg.Physics.Gravity)
	}

	s.watchBird()
	s.watchPipe()
}

func (s *Session) watchBird() {
	prev, changed := s.birdY.Observe(s.bird.Y)
	if !changed || s.state != StatePlaying {
		return
	}
	if cause := DetectCollision(&s.cfg, s.bird.X, prev, s.bird.Y, s.pipe); cause != CauseNone {
		s.gameOver(cause)
	}
}

func (s *Session) watchPipe() {
	ev := s.cycle.Observe(s.pipe.X)
	if ev.Scored {
		s.score++
		s.emit(core.EventScore, "")
		if s.theme.OnScore(s.score) {
			s.emit(core.EventThemeSwap, "")
		}
	}
	if ev.Respawned {
		s.pipe.TopY = RandomGapY(s.rng, s.cfg.Pipe.RespawnMargin, s.cfg.World.Height)
		s.emit(core.EventRespawn, "")
	}
}

func (s *Session) gameOver(cause Cause) {
	s.state = StateGameOver
	s.cause = cause
	s.pipeLoop.Stop()
	s.groundLoop.Stop()
	s.banner.To(1, s.cfg.Theme.BannerFadeIn, 0)
	s.emit(core.EventGameOver, cause.String())
}

func (s *Session) emit(kind core.EventKind, detail string) {
	s.events = append(s.events, core.Event{Kind: kind, Detail: detail})
}

// Drain returns and clears the events emitted since the last call.
func (s *Session) Drain() []core.Event {
	if len(s.events) == 0 {
		return nil
	}
	out := make([]core.Event, len(s.events))
	copy(out, s.events)
	s.events = s.events[:0]
	return out
}

// State returns the current phase.
func (s *Session) State() State { return s.state }

// Started reports whether the session has left NotStarted at least once.
func (s *Session) Started() bool { return s.started }

// Score returns the number of pipes cleared this run.
func (s *Session) Score() int { return s.score }

// Cause returns what ended the last run, or CauseNone.
func (s *Session) Cause() Cause { return s.cause }

// Bird returns a copy of the bird state.
func (s *Session) Bird() Bird { return s.bird }

// Pipe returns a copy of the pipe state.
func (s *Session) Pipe() Pipe { return s.pipe }

// GroundOffset returns the ground strip's scroll offset in pixels.
func (s *Session) GroundOffset() float64 { return s.groundLoop.Value() }

// Config returns the configuration the session runs with.
func (s *Session) Config() config.FlappyConfig { return s.cfg }
