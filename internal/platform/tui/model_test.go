package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/blockfall/internal/core"
)

// fakeGame records what the model asks of it.
type fakeGame struct {
	resets   int
	steps    []core.InputFrame
	state    core.GameState
	w, h     int
	rate     int
	gameOver func(in core.InputFrame) bool
}

func (g *fakeGame) ID() string { return "fake" }

func (g *fakeGame) Reset(cfg core.RuntimeConfig) {
	g.resets++
	g.w, g.h = cfg.ScreenW, cfg.ScreenH
}

func (g *fakeGame) Resize(w, h int) { g.w, g.h = w, h }

func (g *fakeGame) Step(in core.InputFrame) core.GameState {
	g.steps = append(g.steps, in)
	if g.gameOver != nil {
		g.state.GameOver = g.gameOver(in)
	}
	return g.state
}

func (g *fakeGame) Render(dst *core.Screen) {
	dst.DrawText(0, 0, "fake game")
}

func (g *fakeGame) State() core.GameState { return g.state }

func (g *fakeGame) TickRate() int { return g.rate }

func newTestModel(g *fakeGame) Model {
	return NewModel(g, core.RuntimeConfig{ScreenW: 40, ScreenH: 20, Seed: 1}, nil)
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	return next.(Model), cmd
}

func TestModelInitResetsGame(t *testing.T) {
	g := &fakeGame{rate: 10}
	m := newTestModel(g)

	if cmd := m.Init(); cmd == nil {
		t.Fatal("Init() should start the tick loop")
	}
	if g.resets != 1 {
		t.Errorf("Reset called %d times, want 1", g.resets)
	}
	if g.w != 40 || g.h != 19 {
		t.Errorf("game sized %dx%d, want 40x19", g.w, g.h)
	}
}

func TestModelKeysApplyOnNextTick(t *testing.T) {
	g := &fakeGame{rate: 10}
	m := newTestModel(g)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyUp})
	if len(g.steps) != 0 {
		t.Fatal("keys alone must not step the game")
	}

	m, cmd := update(t, m, TickMsg{})
	if cmd == nil {
		t.Error("tick should schedule the next tick")
	}
	if len(g.steps) != 1 || !g.steps[0].Has(core.ActionLeft) || !g.steps[0].Has(core.ActionRotate) {
		t.Fatalf("steps = %+v, want one frame with left and rotate", g.steps)
	}

	update(t, m, TickMsg{})
	if g.steps[1].Has(core.ActionLeft) {
		t.Error("input frame should be cleared after each tick")
	}
}

func TestModelQuitForwardsToGame(t *testing.T) {
	g := &fakeGame{rate: 10}
	m := newTestModel(g)

	m, cmd := update(t, m, runeKey('q'))

	if cmd == nil {
		t.Fatal("quit should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("quit should return tea.Quit")
	}
	if len(g.steps) != 1 || !g.steps[0].Has(core.ActionQuit) {
		t.Errorf("game did not see the quit: %+v", g.steps)
	}
	if m.View() != "" {
		t.Error("quitting model should render nothing")
	}
}

func TestModelHaltsOnGameOverAndRestarts(t *testing.T) {
	g := &fakeGame{rate: 10}
	g.gameOver = func(in core.InputFrame) bool { return !in.Has(core.ActionRestart) }
	m := newTestModel(g)

	m, cmd := update(t, m, TickMsg{})
	if cmd != nil {
		t.Fatal("tick loop should halt on game over")
	}

	m, cmd = update(t, m, runeKey('r'))
	if cmd == nil {
		t.Fatal("restart should resume the tick loop")
	}
	if n := len(g.steps); n != 2 || !g.steps[1].Has(core.ActionRestart) {
		t.Errorf("restart should step the game immediately, steps = %+v", g.steps)
	}

	// A second restart while ticking waits for the next tick.
	update(t, m, runeKey('r'))
	if len(g.steps) != 2 {
		t.Error("restart during play should not step immediately")
	}
}

func TestModelResizeKeepsGame(t *testing.T) {
	g := &fakeGame{rate: 10}
	m := newTestModel(g)
	m.Init()

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 50})

	if g.resets != 1 {
		t.Error("resize should not reset the game")
	}
	if g.w != 100 || g.h != 49 {
		t.Errorf("game sized %dx%d, want 100x49", g.w, g.h)
	}
	if m.screen.Width() != 100 || m.screen.Height() != 49 {
		t.Errorf("screen sized %dx%d, want 100x49", m.screen.Width(), m.screen.Height())
	}
}

func TestModelView(t *testing.T) {
	g := &fakeGame{rate: 10}
	m := newTestModel(g)

	view := m.View()

	if !strings.Contains(view, "fake game") {
		t.Error("view should contain the game render")
	}
	if !strings.Contains(view, "rotate") {
		t.Error("view should contain the help footer")
	}
}
