package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Frames per second requested from the platform loop
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState is the platform-facing summary of a running game.
type GameState struct {
	Score    int
	Started  bool // false until the first tap of a tutorial-style session
	GameOver bool
	Paused   bool
}

// EventKind identifies something that happened during a step.
type EventKind int

const (
	EventStarted    EventKind = iota // session entered play (music cue)
	EventJump                        // impulse applied (jump cue)
	EventScore                       // pipe pair cleared the pass line
	EventRespawn                     // pipe gap re-randomized
	EventThemeSwap                   // background cross-fade began
	EventGameOver                    // collision ended the session
)

// String returns a human-readable name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventStarted:
		return "started"
	case EventJump:
		return "jump"
	case EventScore:
		return "score"
	case EventRespawn:
		return "respawn"
	case EventThemeSwap:
		return "theme_swap"
	case EventGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Event is emitted by a game step for the platform to react to.
// Detail carries a short free-form qualifier such as a collision cause.
type Event struct {
	Kind   EventKind
	Detail string
}

// StepResult is returned by Game.Step() after each frame.
type StepResult struct {
	State  GameState
	Events []Event
}

// Has reports whether an event of the given kind was emitted.
func (r StepResult) Has(kind EventKind) bool {
	for _, e := range r.Events {
		if e.Kind == kind {
			return true
		}
	}
	return false
}
