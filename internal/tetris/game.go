package tetris

import (
	"io"
	"math/rand"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/blockfall/internal/core"
)

// Game wraps the engine with the driver-side behavior of a playable
// session: raw actions go through the input reducer, row-clear strobes
// are played back frame by frame, and the session can be paused or
// restarted. The platform calls Step once per tick at TickRate().
type Game struct {
	cfg          Config
	releaseAfter int
	logger       *log.Logger
	rng          *rand.Rand

	engine   *Engine
	reducer  *Reducer
	last     StepResult
	strobe   *playback
	session  string
	paused   bool
	tooSmall bool

	screenW int
	screenH int
}

// playback walks the strobe frames of one step's row clears, one row at a
// time in event order.
type playback struct {
	before Grid
	events []RowClearEvent
	index  int
	frame  int
}

// advance moves to the next frame and reports whether frames remain.
func (p *playback) advance() bool {
	p.frame++
	if p.frame == StrobeFrames {
		p.frame = 0
		p.index++
	}
	return p.index < len(p.events)
}

// NewGame validates cfg and returns a game ready for Reset.
// releaseAfter is the idle release window of the input reducer.
func NewGame(cfg Config, releaseAfter int, logger *log.Logger) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Game{
		cfg:          cfg,
		releaseAfter: releaseAfter,
		logger:       logger,
		reducer:      NewReducer(releaseAfter),
	}, nil
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "blockfall"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Blockfall"
}

// Reset starts a new session. The runtime seed drives both the piece
// sequence and the seeds of later restarts.
func (g *Game) Reset(rc core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(rc.Seed))
	g.start(rc.Seed)
	g.Resize(rc.ScreenW, rc.ScreenH)
}

func (g *Game) start(seed int64) {
	cfg := g.cfg
	cfg.Seed = seed
	g.session = uuid.NewString()
	logger := g.logger.With("session", g.session)

	engine, err := Initialize(cfg, WithLogger(logger))
	if err != nil {
		// NewGame validated the same config; only the seed differs.
		panic(err)
	}
	g.engine = engine
	g.reducer.Reset()
	g.last = engine.View()
	g.strobe = nil
	g.paused = false
	logger.Info("session started", "seed", seed)
}

// Resize updates the screen dimensions without touching game state.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	bw, bh := g.boardSize()
	g.tooSmall = w < bw || h < bh+hudHeight
}

// Step advances the session by one tick.
func (g *Game) Step(in core.InputFrame) core.GameState {
	if in.Has(core.ActionQuit) {
		if !g.last.Terminal {
			g.reducer.Press(IntentQuit)
			g.last = g.engine.Step(g.reducer.Tick())
			g.strobe = nil
		}
		return g.State()
	}

	if in.Has(core.ActionRestart) && g.over() {
		g.start(g.rng.Int63())
		return g.State()
	}

	if g.tooSmall {
		return g.State()
	}
	if g.last.Terminal {
		// The clear that ended the game still plays out.
		if g.strobe != nil && !g.strobe.advance() {
			g.strobe = nil
		}
		return g.State()
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return g.State()
	}

	g.press(in)

	if g.strobe != nil {
		if g.strobe.advance() {
			return g.State()
		}
		g.strobe = nil
	}

	g.reducer.ReleaseIdle()
	g.last = g.engine.Step(g.reducer.Tick())
	if len(g.last.RowClears) > 0 {
		g.strobe = &playback{before: g.last.BeforeClear, events: g.last.RowClears}
	}
	return g.State()
}

// press feeds this frame's actions into the reducer.
func (g *Game) press(in core.InputFrame) {
	actions := []struct {
		action core.Action
		intent Intent
	}{
		{core.ActionLeft, IntentLeft},
		{core.ActionRight, IntentRight},
		{core.ActionDown, IntentDown},
		{core.ActionRotate, IntentRotate},
	}
	for _, a := range actions {
		if in.Has(a.action) {
			g.reducer.Press(a.intent)
		}
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.last.Score,
		Level:    g.last.Level,
		Speed:    g.last.Speed,
		GameOver: g.over(),
		Paused:   g.paused || g.tooSmall,
	}
}

// over reports a finished session whose last row clear has played out.
func (g *Game) over() bool {
	return g.last.Terminal && g.strobe == nil
}

// TickRate is the current engine speed in ticks per second.
func (g *Game) TickRate() int {
	return g.last.Speed
}

// Last returns the most recent engine result.
func (g *Game) Last() StepResult {
	return g.last
}

// Strobing reports whether a row-clear animation is playing.
func (g *Game) Strobing() bool {
	return g.strobe != nil
}

// Session returns the id of the current session.
func (g *Game) Session() string {
	return g.session
}
