// Package flappy implements a Flappy Bird-style game.
// The player taps to keep a bird aloft and steer it through the gap of a
// scrolling pipe pair. Touching the ground, the ceiling or a pipe ends the run.
package flappy

import (
	"time"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/registry"
)

// Registered game IDs
const (
	IDTutorial = "flappy"
	IDClassic  = "flappy_classic"
)

// configPath stores the custom config path set via CLI
var configPath string

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// LoadConfig loads the config from the current search path and applies the
// preset. Errors from an explicit --config path are returned; the search
// path itself always yields a usable config.
func LoadConfig(preset config.Preset) (config.FlappyConfig, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return config.FlappyConfig{}, err
	}
	config.ApplyPreset(&cfg, preset)
	return cfg, nil
}

// Game adapts a Session to the platform's game interface.
type Game struct {
	id      string
	title   string
	preset  config.Preset
	session *Session
	paused  bool
	loadErr error
}

// New creates the canonical game: a tutorial tap starts the first run and
// the theme swaps every 15 points.
func New() *Game {
	return &Game{id: IDTutorial, title: "Flappy Bird", preset: config.PresetTutorial}
}

// NewClassic creates the simpler variant that starts playing immediately and
// swaps themes every 10 points.
func NewClassic() *Game {
	return &Game{id: IDClassic, title: "Flappy Bird (classic)", preset: config.PresetClassic}
}

// NewWithConfig creates a game that uses cfg verbatim instead of loading one.
func NewWithConfig(id string, cfg config.FlappyConfig) *Game {
	g := &Game{id: id, title: "Flappy Bird"}
	g.session = NewSession(cfg, 0)
	return g
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return g.id
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return g.title
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.paused = false

	var cfg config.FlappyConfig
	switch {
	case g.preset != "":
		loaded, err := LoadConfig(g.preset)
		g.loadErr = err
		if err != nil {
			loaded = config.DefaultFlappyConfig()
			config.ApplyPreset(&loaded, g.preset)
		}
		cfg = loaded
	case g.session != nil:
		cfg = g.session.Config()
	default:
		cfg = config.DefaultFlappyConfig()
	}

	g.session = NewSession(cfg, runtime.Seed)
}

// Err returns the config error from the last Reset, if any. The game still
// runs on defaults when it is set.
func (g *Game) Err() error {
	return g.loadErr
}

// Step advances the game by one frame of dt.
func (g *Game) Step(in core.InputFrame, dt time.Duration) core.StepResult {
	s := g.session

	if in.Has(core.ActionPause) && s.State() == StatePlaying {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	switch {
	case in.Has(core.ActionTap):
		s.Tap()
	case in.Has(core.ActionRestart) && s.State() == StateGameOver:
		s.Restart()
	}

	s.Update(dt)

	return core.StepResult{State: g.State(), Events: s.Drain()}
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	sc := g.session.Scene()
	sc.Paused = g.paused
	Rasterize(sc, dst)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	s := g.session
	return core.GameState{
		Score:    s.Score(),
		Started:  s.State() != StateNotStarted,
		GameOver: s.State() == StateGameOver,
		Paused:   g.paused,
	}
}

// Session exposes the underlying session.
func (g *Game) Session() *Session {
	return g.session
}

// Register the game with the registry
func init() {
	registry.Register(IDTutorial, func() registry.Game {
		return New()
	})
	registry.Register(IDClassic, func() registry.Game {
		return NewClassic()
	})
}
