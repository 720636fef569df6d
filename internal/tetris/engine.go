package tetris

import (
	"io"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/blockfall/internal/core"
)

// StrobeFrames is the number of color frames played for each cleared row.
const StrobeFrames = 5

// TerminalReason says why a session ended.
type TerminalReason int

const (
	ReasonNone TerminalReason = iota
	ReasonQuit
	ReasonGameOver
)

func (r TerminalReason) String() string {
	switch r {
	case ReasonNone:
		return "none"
	case ReasonQuit:
		return "quit"
	case ReasonGameOver:
		return "game over"
	default:
		return "unknown"
	}
}

// RowClearEvent describes the strobe animation for one cleared row. Row is
// the index in StepResult.BeforeClear. Even frames repeat the row's
// original color, odd frames are random strobe colors.
type RowClearEvent struct {
	Row    int
	Frames [StrobeFrames]core.Color
}

// StepResult is everything a driver needs after one tick.
type StepResult struct {
	Tick     uint64
	Grid     Grid       // locked cells after this tick
	Active   *PieceView // nil once the game is over
	Score    int
	Level    int
	Speed    int
	Phase    LockPhase
	Terminal bool
	Reason   TerminalReason

	// Set only on ticks where a piece locked.
	Locked      *PieceView
	RowClears   []RowClearEvent // bottom row first
	BeforeClear Grid            // grid with the full rows still in place
	LevelUps    int
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger routes engine logs to l.
func WithLogger(l *log.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.logger = l
		}
	}
}

// WithRand replaces the seeded random source.
func WithRand(rng *rand.Rand) Option {
	return func(e *Engine) {
		if rng != nil {
			e.rng = rng
		}
	}
}

// Engine is the game state machine. It is not safe for concurrent use;
// a single driver goroutine calls Step once per tick.
type Engine struct {
	cfg     Config
	rng     *rand.Rand
	logger  *log.Logger
	catalog Catalog

	field *Playfield
	ctrl  *Controller
	sched *Scheduler
	prog  *Progression

	tick     uint64
	pieces   int
	terminal bool
	reason   TerminalReason
}

// Initialize validates cfg and returns an engine with the first piece
// already spawned. Configuration problems are reported as *ConfigError.
func Initialize(cfg Config, opts ...Option) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	catalog, err := NewCatalog(cfg.Shapes, cfg.Palette)
	if err != nil {
		return nil, err
	}

	field := NewPlayfield(cfg.GridWidth, cfg.GridHeight)
	e := &Engine{
		cfg:     cfg,
		rng:     rand.New(rand.NewSource(cfg.Seed)),
		logger:  log.New(io.Discard),
		catalog: catalog,
		field:   field,
		ctrl:    NewController(field),
		sched:   NewScheduler(cfg.LockDelayTicks),
		prog:    NewProgression(cfg.InitialSpeed, cfg.SpeedIncrement, cfg.RowsPerLevel, cfg.PointsPerRow),
	}
	for _, opt := range opts {
		opt(e)
	}

	// Validate guarantees every shape fits an empty grid.
	e.spawn()
	e.logger.Debug("engine initialized",
		"width", cfg.GridWidth,
		"height", cfg.GridHeight,
		"speed", cfg.InitialSpeed,
		"shapes", len(cfg.Shapes),
	)
	return e, nil
}

// Step advances the simulation by one tick. Phases run in a fixed order:
// quit, input, gravity, lock with row clears and progression, spawn.
// Once a step reports Terminal, later steps return the same terminal
// state without changing anything.
func (e *Engine) Step(in Intents) StepResult {
	if e.terminal {
		return e.result(lockOutcome{})
	}
	e.tick++

	if in.Quit {
		e.end(ReasonQuit)
		return e.result(lockOutcome{})
	}

	if e.sched.CanAdjust() {
		e.applyInput(in)
		e.sched.Adjusted()
	}

	var out lockOutcome
	if e.ctrl.TryMove(0, 1) {
		e.sched.Descended()
	} else if e.sched.Blocked() == PhaseLocked {
		out = e.lock()
	}
	return e.result(out)
}

// applyInput runs one adjustment pass. A held horizontal direction moves
// one cell, and one more on ticks where the repeat counter is a multiple
// of the acceleration interval.
func (e *Engine) applyInput(in Intents) {
	st := in.State

	if in.Rotate {
		e.ctrl.TryRotate()
	}

	steps := 1
	if st.Acceleration > 0 && st.Acceleration%e.cfg.AccelerationInterval == 0 {
		steps = 2
	}
	if st.Left {
		for range steps {
			e.ctrl.TryMove(-1, 0)
		}
	}
	if st.Right {
		for range steps {
			e.ctrl.TryMove(1, 0)
		}
	}
	if st.Down {
		e.ctrl.TryMove(0, 1)
	}
}

type lockOutcome struct {
	locked   *PieceView
	clears   []RowClearEvent
	before   Grid
	levelUps int
}

func (e *Engine) lock() lockOutcome {
	piece := e.ctrl.Lock()
	out := lockOutcome{locked: piece.view()}

	rows := e.field.FullRows()
	if len(rows) > 0 {
		out.before = e.field.Snapshot()
		out.clears = e.strobe(rows)
		e.field.ClearRows(rows)
		out.levelUps = e.prog.RowsCleared(len(rows))
		e.logger.Debug("rows cleared", "rows", rows, "score", e.prog.Score())
		if out.levelUps > 0 {
			e.logger.Info("level up", "level", e.prog.Level(), "speed", e.prog.Speed())
		}
	}

	if !e.spawn() {
		e.end(ReasonGameOver)
		return out
	}
	e.sched.Spawned()
	return out
}

// strobe builds the animation frames for rows, bottom row first.
func (e *Engine) strobe(rows []int) []RowClearEvent {
	events := make([]RowClearEvent, 0, len(rows))
	for i := len(rows) - 1; i >= 0; i-- {
		y := rows[i]
		original := e.field.At(0, y).Color
		ev := RowClearEvent{Row: y}
		for f := range ev.Frames {
			if f%2 == 0 {
				ev.Frames[f] = original
			} else {
				ev.Frames[f] = core.RGB(uint8(e.rng.Intn(256)), uint8(e.rng.Intn(256)), uint8(e.rng.Intn(256)))
			}
		}
		events = append(events, ev)
	}
	return events
}

func (e *Engine) spawn() bool {
	shape, color := e.catalog.PickRandom(e.rng)
	e.pieces++
	return e.ctrl.Spawn(shape, color)
}

func (e *Engine) end(reason TerminalReason) {
	e.terminal = true
	e.reason = reason
	e.logger.Info("session ended",
		"reason", reason,
		"score", e.prog.Score(),
		"level", e.prog.Level(),
		"pieces", e.pieces,
		"ticks", e.tick,
	)
}

func (e *Engine) result(out lockOutcome) StepResult {
	r := StepResult{
		Tick:        e.tick,
		Grid:        e.field.Snapshot(),
		Score:       e.prog.Score(),
		Level:       e.prog.Level(),
		Speed:       e.prog.Speed(),
		Phase:       e.sched.Phase(),
		Terminal:    e.terminal,
		Reason:      e.reason,
		Locked:      out.locked,
		RowClears:   out.clears,
		BeforeClear: out.before,
		LevelUps:    out.levelUps,
	}
	if e.reason != ReasonGameOver {
		r.Active = e.ctrl.Piece().view()
	}
	return r
}

// Speed returns the current tick rate in ticks per second.
func (e *Engine) Speed() int { return e.prog.Speed() }

// Score returns the current score.
func (e *Engine) Score() int { return e.prog.Score() }

// Level returns the current level.
func (e *Engine) Level() int { return e.prog.Level() }

// Terminal reports whether the session has ended, and why.
func (e *Engine) Terminal() (bool, TerminalReason) { return e.terminal, e.reason }

// Width returns the grid width.
func (e *Engine) Width() int { return e.field.Width() }

// Height returns the grid height.
func (e *Engine) Height() int { return e.field.Height() }

// View returns the current state without advancing the simulation.
func (e *Engine) View() StepResult {
	return e.result(lockOutcome{})
}
