package tetris

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/blockfall/internal/core"
)

func frame(actions ...core.Action) core.InputFrame {
	f := core.NewInputFrame()
	for _, a := range actions {
		f.Set(a)
	}
	return f
}

func newTestGame(t *testing.T, cfg Config) *Game {
	t.Helper()
	g, err := NewGame(cfg, 1, nil)
	require.NoError(t, err)
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 40, Seed: 1})
	return g
}

func TestNewGameRejectsInvalidConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.RowsPerLevel = 0

	_, err := NewGame(cfg, 1, nil)
	assert.True(t, errors.Is(err, ErrInvalidConfig))
}

func TestGameReset(t *testing.T) {
	g := newTestGame(t, DefaultConfig())

	assert.Equal(t, "blockfall", g.ID())
	assert.Equal(t, "Blockfall", g.Title())
	assert.NotEmpty(t, g.Session())
	assert.Equal(t, core.GameState{Level: 1, Speed: 10}, g.State())
	assert.Equal(t, 10, g.TickRate())
	require.NotNil(t, g.Last().Active)
}

func TestGameStepsEngine(t *testing.T) {
	g := newTestGame(t, DefaultConfig())

	g.Step(frame())
	g.Step(frame())

	assert.Equal(t, uint64(2), g.Last().Tick)
	assert.Equal(t, 2, g.Last().Active.Y)
}

func TestGameMovesPiece(t *testing.T) {
	g := newTestGame(t, testConfig(10, 20, "#"))
	startX := g.Last().Active.X

	g.Step(frame(core.ActionLeft))
	assert.Equal(t, startX-1, g.Last().Active.X)

	// Without another key event the direction is released.
	g.Step(frame())
	assert.Equal(t, startX-1, g.Last().Active.X)

	g.Step(frame(core.ActionRight))
	assert.Equal(t, startX, g.Last().Active.X)
}

func TestGameStrobePlayback(t *testing.T) {
	g := newTestGame(t, testConfig(4, 1, "####"))

	g.Step(frame())
	require.True(t, g.Strobing())
	require.Equal(t, uint64(1), g.Last().Tick)
	assert.Equal(t, 100, g.State().Score)

	for i := 1; i < StrobeFrames; i++ {
		g.Step(frame())
		assert.True(t, g.Strobing(), "frame %d", i)
		assert.Equal(t, uint64(1), g.Last().Tick, "engine paused during strobe")
	}

	g.Step(frame())
	assert.Equal(t, uint64(2), g.Last().Tick)
}

func TestGameStrobeRendersFlashingRow(t *testing.T) {
	g := newTestGame(t, testConfig(4, 2, "####"))
	screen := core.NewScreen(80, 40)

	g.Step(frame())
	g.Step(frame())
	require.True(t, g.Strobing())

	g.Render(screen)

	bw, _ := g.boardSize()
	boardX := (80 - bw) / 2
	cell := screen.GetCell(boardX+1, hudHeight+2)
	assert.Equal(t, blockRune, cell.Rune)
	assert.Equal(t, g.strobe.events[0].Frames[0], cell.Color)
}

// boardCell returns the screen cell showing grid cell (x, y).
func boardCell(g *Game, screen *core.Screen, x, y int) core.Cell {
	bw, _ := g.boardSize()
	boardX := (screen.Width() - bw) / 2
	return screen.GetCell(boardX+1+x*cellWidth, hudHeight+1+y)
}

func TestGameStrobeHidesPieceAndCollapsesClearedRows(t *testing.T) {
	g := newTestGame(t, testConfig(4, 5, "####", "####"))
	g.engine.field.Fill(0, 4, testColor)
	screen := core.NewScreen(80, 40)

	for range 3 {
		g.Step(frame())
	}
	require.True(t, g.Strobing())
	require.Len(t, g.Last().RowClears, 2)
	require.NotNil(t, g.Last().Active, "next piece already spawned")

	g.Render(screen)
	assert.Equal(t, ' ', boardCell(g, screen, 0, 0).Rune, "active piece hidden while strobing")
	assert.Equal(t, blockRune, boardCell(g, screen, 0, 2).Rune)
	assert.Equal(t, blockRune, boardCell(g, screen, 0, 3).Rune)
	assert.Equal(t, 18, strings.Count(screen.String(), string(blockRune)))

	for range StrobeFrames {
		g.Step(frame())
	}
	require.True(t, g.Strobing())

	g.Render(screen)
	assert.Equal(t, ' ', boardCell(g, screen, 0, 2).Rune, "rows above the finished row shift down")
	flashing := boardCell(g, screen, 0, 3)
	assert.Equal(t, blockRune, flashing.Rune)
	assert.Equal(t, g.Last().RowClears[1].Frames[0], flashing.Color)
	assert.Equal(t, blockRune, boardCell(g, screen, 0, 4).Rune)
	assert.Equal(t, 10, strings.Count(screen.String(), string(blockRune)))
}

func TestGameOverWaitsForStrobe(t *testing.T) {
	g := newTestGame(t, testConfig(4, 3, "##", "##"))
	g.engine.field.Fill(1, 2, testColor)
	g.engine.field.Fill(2, 2, testColor)
	g.engine.field.Fill(0, 1, testColor)
	g.engine.field.Fill(3, 1, testColor)

	state := g.Step(frame())
	require.Equal(t, ReasonGameOver, g.Last().Reason)
	require.Len(t, g.Last().RowClears, 1)
	assert.False(t, state.GameOver, "game over held back while the clear plays")
	assert.Equal(t, 100, state.Score)

	screen := core.NewScreen(80, 40)
	g.Render(screen)
	assert.NotContains(t, screen.String(), "Game Over")

	for i := 1; i < StrobeFrames; i++ {
		assert.False(t, g.Step(frame(core.ActionRestart)).GameOver, "frame %d", i)
		assert.Equal(t, ReasonGameOver, g.Last().Reason, "restart ignored until the clear finishes")
	}

	assert.True(t, g.Step(frame()).GameOver)
	assert.False(t, g.Strobing())
	g.Render(screen)
	assert.Contains(t, screen.String(), "Game Over")
}

func TestGamePause(t *testing.T) {
	g := newTestGame(t, DefaultConfig())

	g.Step(frame(core.ActionPause))
	assert.True(t, g.State().Paused)
	assert.Equal(t, uint64(0), g.Last().Tick)

	g.Step(frame())
	assert.Equal(t, uint64(0), g.Last().Tick)

	g.Step(frame(core.ActionPause))
	assert.False(t, g.State().Paused)
	assert.Equal(t, uint64(1), g.Last().Tick)
}

func TestGameQuitAndRestart(t *testing.T) {
	g := newTestGame(t, DefaultConfig())
	first := g.Session()

	g.Step(frame(core.ActionRestart))
	assert.Equal(t, first, g.Session(), "restart is ignored while playing")

	state := g.Step(frame(core.ActionQuit))
	assert.True(t, state.GameOver)
	assert.Equal(t, ReasonQuit, g.Last().Reason)

	before := g.Last().Tick
	g.Step(frame(core.ActionLeft))
	assert.Equal(t, before, g.Last().Tick, "ended session does not step")

	state = g.Step(frame(core.ActionRestart))
	assert.False(t, state.GameOver)
	assert.NotEqual(t, first, g.Session())
	assert.Equal(t, uint64(0), g.Last().Tick)
}

func TestGameTooSmall(t *testing.T) {
	g := newTestGame(t, DefaultConfig())
	g.Resize(20, 10)

	assert.True(t, g.State().Paused)
	g.Step(frame())
	assert.Equal(t, uint64(0), g.Last().Tick)

	screen := core.NewScreen(20, 10)
	g.Render(screen)
	assert.Contains(t, screen.String(), "Window too small")

	g.Resize(80, 40)
	g.Step(frame())
	assert.Equal(t, uint64(1), g.Last().Tick)
}

func TestGameRender(t *testing.T) {
	g := newTestGame(t, DefaultConfig())
	screen := core.NewScreen(80, 40)

	g.Render(screen)
	out := screen.String()

	hud := screen.Row(0)
	assert.Contains(t, hud, "Blockfall")
	assert.Contains(t, hud, "Score: 0")
	assert.Contains(t, hud, "Level: 1")
	assert.Equal(t, core.ColorWhite, screen.GetCell(1, 0).Color)
	assert.Equal(t, cellWidth*g.Last().Active.Shape.Footprint(), strings.Count(out, string(blockRune)))
	assert.Contains(t, out, string(highlightRune), "drop guide under the falling piece")
}

func TestGameRenderGameOver(t *testing.T) {
	g := newTestGame(t, testConfig(4, 3, "##"))
	g.engine.field.Fill(1, 1, testColor)
	g.engine.field.Fill(2, 1, testColor)

	g.Step(frame())
	require.Equal(t, ReasonGameOver, g.Last().Reason)

	screen := core.NewScreen(80, 40)
	g.Render(screen)
	assert.Contains(t, screen.String(), "Game Over")
	assert.Contains(t, screen.String(), "R to restart")
}
