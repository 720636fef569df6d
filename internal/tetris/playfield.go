package tetris

import (
	"fmt"

	"github.com/vovakirdan/blockfall/internal/core"
)

// Cell is one grid position: empty, or filled with a color.
type Cell struct {
	Filled bool
	Color  core.Color
}

// Grid is a row-major cell matrix, row 0 at the top.
type Grid [][]Cell

// Clone returns a deep copy of the grid.
func (g Grid) Clone() Grid {
	if g == nil {
		return nil
	}
	out := make(Grid, len(g))
	for y, row := range g {
		out[y] = append([]Cell(nil), row...)
	}
	return out
}

// Playfield owns the grid of locked cells. Its dimensions never change.
type Playfield struct {
	width  int
	height int
	grid   Grid
}

// NewPlayfield creates an empty w×h playfield.
func NewPlayfield(w, h int) *Playfield {
	p := &Playfield{width: w, height: h, grid: make(Grid, h)}
	for y := range p.grid {
		p.grid[y] = make([]Cell, w)
	}
	return p
}

// Width returns the number of columns.
func (p *Playfield) Width() int { return p.width }

// Height returns the number of rows.
func (p *Playfield) Height() int { return p.height }

// InBounds reports whether (x, y) is a grid position.
func (p *Playfield) InBounds(x, y int) bool {
	return x >= 0 && x < p.width && y >= 0 && y < p.height
}

// IsOccupied reports whether (x, y) holds a locked cell. Positions outside
// the grid count as occupied so callers can treat walls and floor like
// any other obstacle.
func (p *Playfield) IsOccupied(x, y int) bool {
	if !p.InBounds(x, y) {
		return true
	}
	return p.grid[y][x].Filled
}

// Fits reports whether every occupied sub-cell of shape placed at (x, y)
// lands inside the grid on an empty cell.
func (p *Playfield) Fits(shape Shape, x, y int) bool {
	for _, c := range shape.Cells() {
		if p.IsOccupied(x+c.X, y+c.Y) {
			return false
		}
	}
	return true
}

// Commit writes color into every cell covered by shape at (x, y).
// The placement must already have been validated with Fits; a violation
// is a programming error and panics before touching the grid.
func (p *Playfield) Commit(shape Shape, color core.Color, x, y int) {
	if !p.Fits(shape, x, y) {
		panic(fmt.Sprintf("tetris: commit of %s at (%d, %d) overlaps or leaves the grid", shape, x, y))
	}
	for _, c := range shape.Cells() {
		p.grid[y+c.Y][x+c.X] = Cell{Filled: true, Color: color}
	}
}

// Fill sets a single cell. Out-of-bounds positions are ignored.
func (p *Playfield) Fill(x, y int, color core.Color) {
	if !p.InBounds(x, y) {
		return
	}
	p.grid[y][x] = Cell{Filled: true, Color: color}
}

// At returns the cell at (x, y), or an empty cell out of bounds.
func (p *Playfield) At(x, y int) Cell {
	if !p.InBounds(x, y) {
		return Cell{}
	}
	return p.grid[y][x]
}

// IsFull reports whether every cell of row y is filled.
func (p *Playfield) IsFull(y int) bool {
	if y < 0 || y >= p.height {
		return false
	}
	for _, c := range p.grid[y] {
		if !c.Filled {
			return false
		}
	}
	return true
}

// FullRows returns the indices of all full rows in ascending order.
// The result is a snapshot taken before any row is removed.
func (p *Playfield) FullRows() []int {
	var rows []int
	for y := range p.grid {
		if p.IsFull(y) {
			rows = append(rows, y)
		}
	}
	return rows
}

// ClearRow removes row y, shifts every row above it down by one and
// inserts an empty row at the top.
func (p *Playfield) ClearRow(y int) {
	if y < 0 || y >= p.height {
		return
	}
	copy(p.grid[1:y+1], p.grid[:y])
	p.grid[0] = make([]Cell, p.width)
}

// ClearRows removes all the given rows in a single compaction pass and
// inserts as many empty rows at the top. Indices refer to the grid as it
// was before the call, so the order of rows does not matter. Returns the
// number of rows removed.
func (p *Playfield) ClearRows(rows []int) int {
	remove := make(map[int]bool, len(rows))
	for _, y := range rows {
		if y >= 0 && y < p.height {
			remove[y] = true
		}
	}
	if len(remove) == 0 {
		return 0
	}

	kept := make(Grid, 0, p.height)
	for y, row := range p.grid {
		if !remove[y] {
			kept = append(kept, row)
		}
	}
	fresh := make(Grid, len(remove), p.height)
	for i := range fresh {
		fresh[i] = make([]Cell, p.width)
	}
	p.grid = append(fresh, kept...)
	return len(remove)
}

// Snapshot returns a deep copy of the grid.
func (p *Playfield) Snapshot() Grid {
	return p.grid.Clone()
}
