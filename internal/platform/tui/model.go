package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/game"
	"github.com/vovakirdan/tui-snake/internal/registry"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

// snapshotter is implemented by games that expose their full state, which
// enriches saved scores and screenshots.
type snapshotter interface {
	Snapshot() game.Snapshot
	SessionID() string
}

// intervalSource is implemented by games with their own tick interval.
type intervalSource interface {
	TickInterval() time.Duration
}

// Option configures a Model.
type Option func(*Model)

// WithLogger sets the logger used for game events.
func WithLogger(l *log.Logger) Option {
	return func(m *Model) {
		if l != nil {
			m.logger = l
		}
	}
}

// WithDifficulty speeds the game up as the score rises.
func WithDifficulty(dm *config.DifficultyManager) Option {
	return func(m *Model) {
		m.difficulty = dm
	}
}

// WithBackToMenu lets B/Esc leave a paused or finished game instead of pausing.
func WithBackToMenu() Option {
	return func(m *Model) {
		m.allowBack = true
	}
}

// WithScreenshotDir overrides where Ctrl+S writes board screenshots.
func WithScreenshotDir(dir string) Option {
	return func(m *Model) {
		m.screenshotDir = dir
	}
}

// Model is the Bubble Tea model for running a snake game.
type Model struct {
	game          registry.Game
	screen        *core.Screen
	store         *storage.Store
	config        core.RuntimeConfig
	difficulty    *config.DifficultyManager
	logger        *log.Logger
	keyMapper     *KeyMapper
	inputFrame    core.InputFrame
	gameState     core.GameState
	screenshotDir string
	allowBack     bool
	tickGen       uint64 // Ticks from other loops are ignored
	ticking       bool   // A tick is scheduled; cleared once the game ends
	quitting      bool
	backToMenu    bool
	scoreSaved    bool // Whether the result of the current game has been recorded
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(g registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts ...Option) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	m := Model{
		game:       g,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		config:     cfg,
		logger:     log.New(io.Discard),
		keyMapper:  NewKeyMapper(),
		inputFrame: core.NewInputFrame(),
		tickGen:    nextTickGen(),
		ticking:    true,
	}
	for _, opt := range opts {
		opt(&m)
	}
	return m
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.logger.Debug("game started", "variant", m.game.ID(), "seed", m.config.Seed)
	return tickCmd(m.nextInterval(), m.tickGen)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		// The board has a fixed size, so only the screen buffer follows the window.
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		if msg.Gen != m.tickGen {
			return m, nil
		}
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input. Direction and pause requests are
// buffered until the next tick; quit and restart take effect immediately.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keyMapper.MapKey(msg)
	switch {
	case isQuit:
		m.quit()
		return m, tea.Quit

	case action == core.ActionBack:
		if m.allowBack && (m.gameState.GameOver || m.gameState.Paused) {
			m.quit()
			m.quitting = false
			m.backToMenu = true
			return m, nil
		}
		if !m.allowBack {
			m.inputFrame.Set(core.ActionPause)
		}

	case action == core.ActionRestart:
		if m.gameState.GameOver {
			return m.restart()
		}

	case action != core.ActionNone:
		m.inputFrame.Set(action)
	}

	return m, nil
}

// quit ends the running game, records its result and stops ticking.
func (m *Model) quit() {
	if !m.gameState.GameOver {
		frame := core.NewInputFrame()
		frame.Set(core.ActionQuit)
		m.gameState = m.game.Step(frame).State
		m.recordResult()
	}
	m.ticking = false
	m.quitting = true
}

// restart starts a new game on the same variant and resumes ticking.
func (m Model) restart() (tea.Model, tea.Cmd) {
	frame := core.NewInputFrame()
	frame.Set(core.ActionRestart)
	m.gameState = m.game.Step(frame).State
	m.scoreSaved = false
	m.inputFrame.Clear()
	m.logger.Debug("game restarted", "variant", m.game.ID())

	if m.ticking {
		return m, nil
	}
	m.ticking = true
	m.tickGen = nextTickGen()
	return m, tickCmd(m.nextInterval(), m.tickGen)
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if !m.ticking {
		return m, nil
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.inputFrame.Clear()

	if m.gameState.GameOver {
		m.recordResult()
		m.ticking = false
		return m, nil
	}

	return m, tickCmd(m.nextInterval(), m.tickGen)
}

// nextInterval returns the delay before the next tick.
func (m Model) nextInterval() time.Duration {
	base := m.config.TickInterval
	if src, ok := m.game.(intervalSource); ok {
		base = src.TickInterval()
	}
	if base <= 0 {
		base = core.DefaultTickInterval
	}
	if m.difficulty == nil {
		return base
	}

	var ticks uint64
	if snap, ok := m.game.(snapshotter); ok {
		ticks = snap.Snapshot().Tick
	}
	return m.difficulty.Interval(base, m.gameState.Score, ticks)
}

// recordResult logs the finished game and saves its score once.
func (m *Model) recordResult() {
	if m.scoreSaved {
		return
	}
	m.scoreSaved = true

	rec := storage.ScoreRecord{
		Variant: m.game.ID(),
		Score:   m.gameState.Score,
	}
	if snap, ok := m.game.(snapshotter); ok {
		s := snap.Snapshot()
		rec.Length = s.Length()
		rec.EndReason = string(s.Reason)
		rec.SessionID = snap.SessionID()
	}

	m.logger.Info("game over",
		"variant", rec.Variant,
		"score", rec.Score,
		"length", rec.Length,
		"reason", rec.EndReason,
		"session", rec.SessionID,
	)

	if m.store == nil || rec.Score == 0 {
		return
	}
	if _, err := m.store.SaveScore(rec); err != nil {
		// Best-effort save, the game continues regardless
		m.logger.Warn("could not save score", "error", err)
	}
}

// saveScreenshot writes the current board to a text file.
func (m *Model) saveScreenshot() {
	path, err := m.writeScreenshot()
	if err != nil {
		m.logger.Warn("could not save screenshot", "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

func (m *Model) writeScreenshot() (string, error) {
	dir := m.screenshotDir
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("cannot get home directory: %w", err)
		}
		dir = filepath.Join(home, ".snake", "screenshots")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("cannot create %s: %w", dir, err)
	}

	var content string
	if snap, ok := m.game.(snapshotter); ok {
		content = game.BoardString(snap.Snapshot())
	} else {
		m.game.Render(m.screen)
		content = m.screen.String()
	}

	timestamp := time.Now().Format("20060102_150405.000")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(content+"\n"), 0o600); err != nil {
		return "", err
	}
	return path, nil
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting || m.backToMenu {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// GameState returns the last observed game state.
func (m Model) GameState() core.GameState {
	return m.gameState
}

// Ticking reports whether the tick loop is running.
func (m Model) Ticking() bool {
	return m.ticking
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Run starts the Bubble Tea program with the given model.
func Run(g registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts ...Option) error {
	model := NewModel(g, store, cfg, opts...)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
