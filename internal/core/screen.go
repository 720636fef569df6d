package core

import (
	"strings"
	"unicode/utf8"
)

// Cell is one character position of a Screen.
// Styled is false for cells drawn with the terminal's default foreground.
type Cell struct {
	Rune   rune
	Color  Color
	Styled bool
}

var blankCell = Cell{Rune: ' '}

// Screen is the off-terminal frame a game draws into. The TUI layer turns
// it into styled text once per frame.
type Screen struct {
	width  int
	height int
	cells  [][]Cell
}

// NewScreen returns a blank width x height screen.
func NewScreen(width, height int) *Screen {
	s := &Screen{
		width:  width,
		height: height,
	}
	s.allocate()
	s.Clear()
	return s
}

func (s *Screen) allocate() {
	s.cells = make([][]Cell, s.height)
	for y := range s.cells {
		s.cells[y] = make([]Cell, s.width)
	}
}

// Width is the number of columns.
func (s *Screen) Width() int {
	return s.width
}

// Height is the number of rows.
func (s *Screen) Height() int {
	return s.height
}

// Resize reallocates the buffer, keeping the overlapping top-left region.
func (s *Screen) Resize(width, height int) {
	if width == s.width && height == s.height {
		return
	}

	prev, keepW, keepH := s.cells, min(s.width, width), min(s.height, height)

	s.width, s.height = width, height
	s.allocate()
	s.Clear()

	for y := range keepH {
		copy(s.cells[y][:keepW], prev[y][:keepW])
	}
}

// Clear resets every cell to an unstyled space.
func (s *Screen) Clear() {
	for y := range s.cells {
		for x := range s.cells[y] {
			s.cells[y][x] = blankCell
		}
	}
}

// Set stores r with the default foreground.
func (s *Screen) Set(x, y int, r rune) {
	s.SetCell(x, y, Cell{Rune: r})
}

// SetColored places a rune drawn in the given color.
func (s *Screen) SetColored(x, y int, r rune, c Color) {
	s.SetCell(x, y, Cell{Rune: r, Color: c, Styled: true})
}

// SetCell stores a full cell. Out-of-bounds coordinates are ignored.
func (s *Screen) SetCell(x, y int, c Cell) {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return
	}
	s.cells[y][x] = c
}

// Get is GetCell(x, y).Rune.
func (s *Screen) Get(x, y int) rune {
	return s.GetCell(x, y).Rune
}

// GetCell returns the cell at the given position, or a blank cell when
// the position is out of bounds.
func (s *Screen) GetCell(x, y int) Cell {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return blankCell
	}
	return s.cells[y][x]
}

// DrawText writes text left to right from (x, y), one rune per column.
// Runes past the edge are dropped.
func (s *Screen) DrawText(x, y int, text string) {
	for _, r := range text {
		s.Set(x, y, r)
		x++
	}
}

// DrawTextColored is DrawText with a foreground color.
func (s *Screen) DrawTextColored(x, y int, text string, c Color) {
	for _, r := range text {
		s.SetColored(x, y, r, c)
		x++
	}
}

// DrawTextCentered writes text on row y so it sits in the middle column-wise.
func (s *Screen) DrawTextCentered(y int, text string) {
	s.DrawText((s.width-utf8.RuneCountInString(text))/2, y, text)
}

// DrawRect fills r with the fill rune.
func (s *Screen) DrawRect(r Rect, fill rune) {
	for y := r.Y; y < r.Bottom(); y++ {
		for x := r.X; x < r.Right(); x++ {
			s.Set(x, y, fill)
		}
	}
}

// DrawBox outlines r with single-line box-drawing runes. The outline
// occupies the outermost rows and columns of r.
func (s *Screen) DrawBox(r Rect) {
	left, top, right, bottom := r.X, r.Y, r.Right()-1, r.Bottom()-1

	s.DrawHLine(left+1, top, right-left-1, '─')
	s.DrawHLine(left+1, bottom, right-left-1, '─')
	for y := top + 1; y < bottom; y++ {
		s.Set(left, y, '│')
		s.Set(right, y, '│')
	}
	s.Set(left, top, '┌')
	s.Set(right, top, '┐')
	s.Set(left, bottom, '└')
	s.Set(right, bottom, '┘')
}

// DrawHLine repeats r for n columns starting at (x, y).
func (s *Screen) DrawHLine(x, y, n int, r rune) {
	for i := range n {
		s.Set(x+i, y, r)
	}
}

// String is the plain-text frame, rows separated by newlines. Colors are
// dropped.
func (s *Screen) String() string {
	var sb strings.Builder
	for y := range s.height {
		if y > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(s.Row(y))
	}
	return sb.String()
}

// Row is the plain text of row y, or blanks when y is out of range.
func (s *Screen) Row(y int) string {
	if y < 0 || y >= s.height {
		return strings.Repeat(" ", s.width)
	}
	runes := make([]rune, s.width)
	for x, c := range s.cells[y] {
		runes[x] = c.Rune
	}
	return string(runes)
}
