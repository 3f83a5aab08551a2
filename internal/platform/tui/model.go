package tui

import (
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

// Model is the Bubble Tea model that drives one game.
// Commands are applied as soon as their input arrives; ticks advance the
// simulation by the wall-clock time since the previous tick.
type Model struct {
	game     *flappy.Game
	screen   *core.Screen
	store    *storage.Store
	logger   *log.Logger
	config   core.RuntimeConfig
	keys     KeyMap
	help     help.Model
	maxFrame time.Duration
	lastTick time.Time
	width    int
	height   int
	quitting bool
}

// NewModel creates a new Bubble Tea model for the given game.
// store and logger may be nil.
func NewModel(game *flappy.Game, store *storage.Store, logger *log.Logger, cfg core.RuntimeConfig) Model {
	if logger == nil {
		logger = log.New(io.Discard)
	}

	h := help.New()
	h.ShowAll = false

	m := Model{
		game:     game,
		store:    store,
		logger:   logger,
		config:   cfg,
		keys:     DefaultKeyMap(),
		help:     h,
		maxFrame: time.Duration(game.Config().Timing.MaxFrameMs * float64(time.Millisecond)),
		width:    cfg.ScreenW,
		height:   cfg.ScreenH,
	}
	m.screen = core.NewScreen(m.width, m.playHeight())
	return m
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	m.logger.Debug("starting game", "game", m.game.Title(), "fps", m.config.TickRate, "seed", m.config.Seed)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		m.apply(MouseCommand(msg))
		return m, nil

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.screen.Resize(m.width, m.playHeight())
		return m, nil
	}

	m.apply(m.keys.Command(msg))
	return m, nil
}

// handleResize processes window resize events. The world is scaled to the
// screen, so the session carries on.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.help.Width = msg.Width
	m.screen.Resize(m.width, m.playHeight())
	return m, nil
}

// handleTick advances the simulation and schedules the next tick.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	dt := frameDelta(m.lastTick, now, m.maxFrame)
	m.lastTick = now

	m.observe(m.game.Advance(millis(dt)))

	return m, tickCmd(m.config.TickRate)
}

// apply feeds a command to the game.
func (m Model) apply(cmd flappy.Command) {
	if cmd == flappy.CommandNone {
		return
	}
	m.observe(m.game.ApplyCommand(cmd))
}

// observe logs phase changes and records finished runs.
func (m Model) observe(t flappy.Transition) {
	if !t.Changed() {
		return
	}
	m.logger.Debug("phase changed", "from", t.From, "to", t.To)

	if t.Ended() {
		m.recordRun()
	}
}

// recordRun saves the session that just ended to the run history.
func (m Model) recordRun() {
	snap := m.game.Snapshot()
	m.logger.Info("game over", "score", snap.Score, "best", snap.Best, "flaps", snap.Flaps, "elapsed_ms", int64(snap.Elapsed))

	if m.store == nil {
		return
	}
	run := storage.Run{
		GameID:     m.game.ID(),
		Score:      snap.Score,
		DurationMs: int64(snap.Elapsed),
		Flaps:      snap.Flaps,
	}
	if _, err := m.store.SaveRun(run); err != nil {
		m.logger.Warn("could not record run", "error", err)
	}
}

// playHeight is the number of rows left for the game once help is drawn.
func (m Model) playHeight() int {
	return core.Max(m.height-lipgloss.Height(m.help.View(m.keys)), 0)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	flappy.Render(m.game.Snapshot(), m.screen)

	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// Run starts the Bubble Tea program with the given game.
func Run(game *flappy.Game, store *storage.Store, logger *log.Logger, cfg core.RuntimeConfig) error {
	model := NewModel(game, store, logger, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Left click flaps
	)

	_, err := p.Run()
	return err
}
