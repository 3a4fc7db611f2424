package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/tui-flappy/internal/audio"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/logging"
	"github.com/vovakirdan/tui-flappy/internal/registry"
)

// SessionOptions configures a SessionModel.
type SessionOptions struct {
	Audio    audio.Player
	Runs     *RunLog
	Player   string
	Logger   *log.Logger
	Renderer *lipgloss.Renderer

	// Clipboard is passed through to every game; see GameOptions.
	Clipboard bool
}

type sessionView int

const (
	viewMenu sessionView = iota
	viewGame
	viewRunLog
)

// SessionModel manages the full flow: menu -> game -> menu, plus the run
// log. It is the top-level model for SSH sessions and the local menu.
type SessionModel struct {
	id     uuid.UUID
	config core.RuntimeConfig
	opts   SessionOptions

	view      sessionView
	menu      MenuModel
	gameModel *GameModel
	runLog    *RunLogModel
	quitting  bool
}

// NewSessionModel creates a new session model.
func NewSessionModel(cfg core.RuntimeConfig, opts SessionOptions) SessionModel {
	if opts.Audio == nil {
		opts.Audio = audio.Nop{}
	}
	if opts.Runs == nil {
		opts.Runs = NewRunLog(0)
	}
	if opts.Logger == nil {
		opts.Logger = logging.Discard()
	}

	id := uuid.New()
	opts.Logger = opts.Logger.With("session", id.String())

	return SessionModel{
		id:     id,
		config: cfg,
		opts:   opts,
		menu:   NewMenuModel(cfg, opts.Renderer).WithRunCount(opts.Runs.Len()),
	}
}

// ID returns the session identifier used in logs.
func (m SessionModel) ID() uuid.UUID {
	return m.id
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW = wsm.Width
		m.config.ScreenH = wsm.Height
	}

	switch m.view {
	case viewGame:
		return m.updateGame(msg)
	case viewRunLog:
		return m.updateRunLog(msg)
	default:
		return m.updateMenu(msg)
	}
}

// updateMenu handles updates when in menu mode.
func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	newMenu, cmd := m.menu.Update(msg)
	if menuModel, ok := newMenu.(MenuModel); ok {
		m.menu = menuModel
	}

	if m.menu.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.menu.WantsRunLog() {
		rl := NewRunLogModel(m.opts.Runs, m.opts.Renderer, m.config.ScreenW, m.config.ScreenH)
		m.runLog = &rl
		m.view = viewRunLog
		return m, rl.Init()
	}

	if selected := m.menu.Selected(); selected != nil {
		game, err := registry.Create(selected.GameID)
		if err != nil {
			// The menu only lists registered games.
			m.opts.Logger.Error("cannot create game", "game", selected.GameID, "error", err)
			m.menu = m.newMenu()
			return m, nil
		}

		m.config = m.menu.Config()
		gm := NewGameModel(game, m.config, GameOptions{
			Audio:     m.opts.Audio,
			Runs:      m.opts.Runs,
			Player:    m.opts.Player,
			Logger:    m.opts.Logger,
			Renderer:  m.opts.Renderer,
			Embedded:  true,
			Clipboard: m.opts.Clipboard,
		})
		m.gameModel = &gm
		m.view = viewGame
		return m, m.gameModel.Init()
	}

	return m, cmd
}

// updateGame handles updates when in game mode.
func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.gameModel.Update(msg)
	if gm, ok := newModel.(GameModel); ok {
		m.gameModel = &gm
	}

	if m.gameModel.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.gameModel.BackToMenu() {
		m.gameModel = nil
		m.view = viewMenu
		m.menu = m.newMenu()
		return m, m.menu.Init()
	}

	return m, cmd
}

// updateRunLog handles updates when the run log is open.
func (m SessionModel) updateRunLog(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.runLog.Update(msg)
	if rl, ok := newModel.(RunLogModel); ok {
		m.runLog = &rl
	}

	if m.runLog.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.runLog.IsGoingBack() {
		m.runLog = nil
		m.view = viewMenu
		m.menu = m.newMenu()
		return m, m.menu.Init()
	}

	return m, cmd
}

func (m SessionModel) newMenu() MenuModel {
	return NewMenuModel(m.config, m.opts.Renderer).WithRunCount(m.opts.Runs.Len())
}

// View renders the current view.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.view {
	case viewGame:
		return m.gameModel.View()
	case viewRunLog:
		return m.runLog.View()
	default:
		return m.menu.View()
	}
}

// RunSession runs the menu-driven session in the local terminal.
func RunSession(cfg core.RuntimeConfig, opts SessionOptions) error {
	p := tea.NewProgram(
		NewSessionModel(cfg, opts),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	_, err := p.Run()
	return err
}
