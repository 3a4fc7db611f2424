package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-flappy/internal/audio"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/logging"
	"github.com/vovakirdan/tui-flappy/internal/registry"
)

// statusTTL is how long a status line (e.g. "screenshot saved") stays up.
const statusTTL = 2 * time.Second

// GameOptions carries the collaborators a GameModel needs. Zero values are
// usable: no audio, no run log, no logging.
type GameOptions struct {
	Audio    audio.Player
	Runs     *RunLog
	Player   string
	Logger   *log.Logger
	Renderer *lipgloss.Renderer

	// Embedded games return to a menu on Back instead of ignoring it.
	Embedded bool

	// ScreenshotDir overrides ~/.flappy/screenshots.
	ScreenshotDir string

	// Clipboard also copies screenshots to the system clipboard. Only
	// meaningful for a local terminal.
	Clipboard bool
}

// GameModel is the Bubble Tea model that drives one game.
type GameModel struct {
	game    registry.Game
	screen  *core.Screen
	palette Palette
	config  core.RuntimeConfig
	keys    GameKeyMap
	opts    GameOptions
	clock   frameClock
	loop    uint64
	input   core.InputFrame
	state   core.GameState

	runStart time.Time

	status      string
	statusUntil time.Time

	quitting   bool
	backToMenu bool
}

// NewGameModel creates a new game model.
func NewGameModel(game registry.Game, cfg core.RuntimeConfig, opts GameOptions) GameModel {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if opts.Audio == nil {
		opts.Audio = audio.Nop{}
	}
	if opts.Logger == nil {
		opts.Logger = logging.Discard()
	}

	return GameModel{
		game:    game,
		screen:  core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		palette: NewPalette(opts.Renderer),
		config:  cfg,
		keys:    DefaultGameKeyMap(),
		opts:    opts,
		input:   core.NewInputFrame(),
		loop:    nextLoopID(),
	}
}

// Init resets the game and starts the frame loop.
func (m GameModel) Init() tea.Cmd {
	m.game.Reset(m.config)
	if e, ok := m.game.(interface{ Err() error }); ok && e.Err() != nil {
		m.opts.Logger.Warn("config not loaded, using defaults", "game", m.game.ID(), "error", e.Err())
	}
	m.opts.Logger.Info("game started", "game", m.game.ID(), "seed", m.config.Seed,
		"width", m.config.ScreenW, "height", m.config.ScreenH)
	return tickCmd(m.config.TickRate, m.loop)
}

// Update handles messages.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		if isTap(msg) {
			m.input.Set(core.ActionTap)
		}
		return m, nil

	case tea.WindowSizeMsg:
		// The world is scaled to the grid, so a resize keeps the run going.
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		if msg.Loop != m.loop {
			return m, nil
		}
		return m.handleTick(msg.At)
	}
	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	switch action := m.keys.Action(msg); action {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case core.ActionBack:
		if m.opts.Embedded && (m.state.GameOver || m.state.Paused || !m.state.Started) {
			m.backToMenu = true
		}
	case core.ActionNone:
	default:
		m.input.Set(action)
	}
	return m, nil
}

// handleTick runs one simulation frame.
func (m GameModel) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	if m.backToMenu || m.quitting {
		return m, nil
	}

	dt := m.clock.Next(now)
	res := m.game.Step(m.input, dt)
	m.state = res.State

	for _, ev := range res.Events {
		m.handleEvent(ev, now)
	}

	m.input.Clear()
	return m, tickCmd(m.config.TickRate, m.loop)
}

// handleEvent plays the cue for an event and records finished runs.
func (m *GameModel) handleEvent(ev core.Event, now time.Time) {
	if cue, ok := audio.CueFor(ev.Kind); ok {
		m.opts.Audio.Play(cue)
	}

	switch ev.Kind {
	case core.EventStarted:
		m.runStart = now
		m.opts.Logger.Debug("run started", "game", m.game.ID())
	case core.EventScore:
		m.opts.Logger.Debug("score", "game", m.game.ID(), "score", m.state.Score)
	case core.EventThemeSwap:
		m.opts.Logger.Debug("theme swap", "game", m.game.ID(), "score", m.state.Score)
	case core.EventGameOver:
		var played time.Duration
		if !m.runStart.IsZero() {
			played = now.Sub(m.runStart)
		}
		m.opts.Logger.Info("game over", "game", m.game.ID(), "score", m.state.Score,
			"cause", ev.Detail, "duration", played.Round(time.Millisecond))
		if m.opts.Runs != nil {
			m.opts.Runs.Add(RunEntry{
				GameID: m.game.ID(),
				Player: m.opts.Player,
				Score:  m.state.Score,
				Cause:  ev.Detail,
				Played: played,
				Ended:  now,
			})
		}
	}
}

// saveScreenshot writes the current frame as plain text.
func (m *GameModel) saveScreenshot() {
	path, err := m.writeScreenshot(time.Now())
	if err != nil {
		m.opts.Logger.Warn("screenshot failed", "error", err)
		m.setStatus("screenshot failed")
		return
	}
	m.opts.Logger.Info("screenshot saved", "path", path)
	m.setStatus("saved " + filepath.Base(path))

	if !m.opts.Clipboard {
		return
	}
	if err := clipboard.WriteAll(m.screen.String()); err != nil {
		m.opts.Logger.Debug("clipboard copy failed", "error", err)
		return
	}
	m.setStatus("saved " + filepath.Base(path) + " (copied)")
}

func (m *GameModel) writeScreenshot(now time.Time) (string, error) {
	m.game.Render(m.screen)

	dir := m.opts.ScreenshotDir
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("cannot get home directory: %w", err)
		}
		dir = filepath.Join(home, ".flappy", "screenshots")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create screenshot directory: %w", err)
	}

	filename := fmt.Sprintf("%s_%s.txt", m.game.ID(), now.Format("20060102_150405"))
	path := filepath.Join(dir, filename)
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return "", fmt.Errorf("write screenshot: %w", err)
	}
	return path, nil
}

func (m *GameModel) setStatus(s string) {
	m.status = s
	m.statusUntil = time.Now().Add(statusTTL)
}

// View renders the game.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	if m.status != "" && time.Now().Before(m.statusUntil) && m.screen.Height() > 0 {
		m.screen.DrawText(0, m.screen.Height()-1, " "+m.status+" ", core.ColorText)
	}
	return m.palette.Render(m.screen)
}

// State returns the state after the last frame.
func (m GameModel) State() core.GameState {
	return m.state
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// Run plays a single game in the local terminal until the player quits.
func Run(game registry.Game, cfg core.RuntimeConfig, opts GameOptions) error {
	model := NewGameModel(game, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err := p.Run()
	return err
}
