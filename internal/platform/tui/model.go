package tui

import (
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/blockfall/internal/core"
)

// Game is what the model drives: one Step per tick at the game's own
// rate, one Render per frame.
type Game interface {
	ID() string
	Reset(cfg core.RuntimeConfig)
	Resize(w, h int)
	Step(in core.InputFrame) core.GameState
	Render(dst *core.Screen)
	State() core.GameState
	TickRate() int
}

// Model is the Bubble Tea model for running a game.
type Model struct {
	game       Game
	screen     *core.Screen
	config     core.RuntimeConfig
	logger     *log.Logger
	keys       KeyMap
	help       help.Model
	inputFrame core.InputFrame
	gameState  core.GameState
	ticking    bool
	quitting   bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game Game, cfg core.RuntimeConfig, logger *log.Logger) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, gameHeight(cfg.ScreenH)),
		config:     cfg,
		logger:     logger,
		keys:       DefaultKeyMap(),
		help:       help.New(),
		inputFrame: core.NewInputFrame(),
	}
}

// gameHeight leaves the last terminal line for the help footer.
func gameHeight(h int) int {
	return max(h-1, 0)
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	rc := m.config
	rc.ScreenH = gameHeight(rc.ScreenH)
	m.game.Reset(rc)
	// ticking is set by the first tick (value receiver limitation)
	return tickCmd(m.game.TickRate())
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input. Actions are collected into the
// frame and applied on the next tick.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.keys.MapKeyToFrame(msg, &m.inputFrame) {
		// Let the game record the quit before the program exits.
		m.inputFrame.Set(core.ActionQuit)
		m.gameState = m.game.Step(m.inputFrame.Clone())
		m.inputFrame.Clear()
		m.quitting = true
		m.logger.Info("quit requested", "score", m.gameState.Score)
		return m, tea.Quit
	}
	// The tick loop halts on game over; restart resumes it.
	if m.inputFrame.Has(core.ActionRestart) && m.gameState.GameOver && !m.ticking {
		return m.handleTick()
	}
	return m, nil
}

// handleResize processes window resize events without resetting the game.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	h := gameHeight(msg.Height)
	m.screen.Resize(msg.Width, h)
	m.game.Resize(msg.Width, h)
	m.help.Width = msg.Width
	m.logger.Debug("window resized", "width", msg.Width, "height", msg.Height)
	return m, nil
}

// handleTick processes simulation ticks. The game gets its own copy of
// the frame, which is cleared for the next tick.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	m.gameState = m.game.Step(m.inputFrame.Clone())
	m.inputFrame.Clear()

	if m.gameState.GameOver {
		m.ticking = false
		m.logger.Debug("tick loop halted", "score", m.gameState.Score)
		return m, nil
	}

	// Continue ticking at the game's current speed
	m.ticking = true
	return m, tickCmd(m.game.TickRate())
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	// Render game to screen buffer
	m.game.Render(m.screen)

	return RenderScreen(m.screen) + "\n" + m.help.View(m.keys)
}

// Run starts the Bubble Tea program with the given game.
func Run(game Game, cfg core.RuntimeConfig, logger *log.Logger) error {
	model := NewModel(game, cfg, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
