package tetris

import (
	"fmt"

	"github.com/vovakirdan/blockfall/internal/core"
)

const (
	hudHeight = 2 // status line + separator
	cellWidth = 2 // screen columns per grid cell
)

const (
	blockRune     = '█'
	highlightRune = '░'
)

// boardSize returns the board's on-screen size including its border.
func (g *Game) boardSize() (int, int) {
	return g.cfg.GridWidth*cellWidth + 2, g.cfg.GridHeight + 2
}

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	g.renderHUD(dst)

	if g.tooSmall {
		g.renderOverlay(dst, "Window too small", "Resize to continue")
		return
	}

	bw, bh := g.boardSize()
	board := core.NewRect((dst.Width()-bw)/2, hudHeight, bw, bh)
	dst.DrawBox(board)

	g.renderDropGuide(dst, board)
	g.renderCells(dst, board)
	if p := g.last.Active; p != nil && g.strobe == nil {
		g.renderPiece(dst, board, p)
	}

	switch {
	case g.over() && g.last.Reason == ReasonGameOver:
		g.renderOverlay(dst, "Game Over", fmt.Sprintf("Score: %d - R to restart", g.last.Score))
	case g.paused:
		g.renderOverlay(dst, "Paused", "Press P to continue")
	}
}

// renderHUD draws the top status bar.
func (g *Game) renderHUD(dst *core.Screen) {
	title := " " + g.Title()
	dst.DrawTextColored(0, 0, title, core.ColorWhite)
	stats := fmt.Sprintf("  Score: %d  Level: %d  Speed: %d", g.last.Score, g.last.Level, g.last.Speed)
	dst.DrawText(len(title), 0, stats)
	if g.strobe != nil {
		dst.DrawTextColored(len(title)+len(stats)+2, 0, "CLEAR!", core.ColorYellow)
	}
	dst.DrawHLine(0, 1, dst.Width(), '─')
}

// setCell paints grid cell (x, y) inside the board.
func setCell(dst *core.Screen, board core.Rect, x, y int, r rune, c core.Color) {
	sx := board.X + 1 + x*cellWidth
	sy := board.Y + 1 + y
	for i := range cellWidth {
		if board.Contains(sx+i, sy) {
			dst.SetColored(sx+i, sy, r, c)
		}
	}
}

// renderDropGuide shades the columns under the falling piece wherever the
// grid is still empty.
func (g *Game) renderDropGuide(dst *core.Screen, board core.Rect) {
	p := g.last.Active
	if p == nil || g.strobe != nil {
		return
	}
	columns := make(map[int]bool)
	for _, c := range p.Shape.Cells() {
		columns[p.X+c.X] = true
	}
	for x := range columns {
		for y, row := range g.last.Grid {
			if x >= 0 && x < len(row) && !row[x].Filled {
				setCell(dst, board, x, y, highlightRune, core.ColorHighlight)
			}
		}
	}
}

// renderCells draws locked cells. During a strobe it draws the grid from
// before the clear with the current row flashing. Rows whose animation
// already finished are removed and the rows above them shifted down.
func (g *Game) renderCells(dst *core.Screen, board core.Rect) {
	s := g.strobe
	if s == nil {
		for y, row := range g.last.Grid {
			for x, cell := range row {
				if cell.Filled {
					setCell(dst, board, x, y, blockRune, cell.Color)
				}
			}
		}
		return
	}

	removed := make(map[int]bool, s.index)
	for _, ev := range s.events[:s.index] {
		removed[ev.Row] = true
	}
	current := s.events[s.index]

	// Walk bottom-up so surviving rows land below the gap left at the top.
	y := len(s.before) - 1
	for src := len(s.before) - 1; src >= 0; src-- {
		if removed[src] {
			continue
		}
		for x, cell := range s.before[src] {
			switch {
			case src == current.Row:
				setCell(dst, board, x, y, blockRune, current.Frames[s.frame])
			case cell.Filled:
				setCell(dst, board, x, y, blockRune, cell.Color)
			}
		}
		y--
	}
}

func (g *Game) renderPiece(dst *core.Screen, board core.Rect, p *PieceView) {
	for _, c := range p.Shape.Cells() {
		setCell(dst, board, p.X+c.X, p.Y+c.Y, blockRune, p.Color)
	}
}

// renderOverlay draws a centered two-line message box.
func (g *Game) renderOverlay(dst *core.Screen, line1, line2 string) {
	width := core.Clamp(max(len([]rune(line1)), len([]rune(line2)))+4, 0, dst.Width())
	box := core.NewRect(0, 0, dst.Width(), dst.Height()).Centered(width, 5)

	dst.DrawRect(box, ' ')
	dst.DrawBox(box)
	dst.DrawTextCentered(box.Y+1, line1)
	dst.DrawTextCentered(box.Y+3, line2)
}
