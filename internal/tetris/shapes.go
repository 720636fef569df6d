package tetris

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/vovakirdan/blockfall/internal/core"
)

// Shape is an immutable footprint of occupied sub-cells relative to the
// top-left corner of its bounding box. Values are safe to share: every
// operation that would change a shape returns a new one.
type Shape struct {
	rows [][]bool
}

// NewShape copies rows into a new Shape. Rows shorter than the widest row
// are padded with empty sub-cells.
func NewShape(rows [][]bool) Shape {
	w := 0
	for _, r := range rows {
		w = max(w, len(r))
	}
	out := make([][]bool, len(rows))
	for y, r := range rows {
		out[y] = make([]bool, w)
		copy(out[y], r)
	}
	return Shape{rows: out}
}

// ParseShape builds a shape from text rows where '#' marks an occupied
// sub-cell and any other rune an empty one.
func ParseShape(rows ...string) Shape {
	grid := make([][]bool, len(rows))
	for y, r := range rows {
		for _, ch := range r {
			grid[y] = append(grid[y], ch == '#')
		}
	}
	return NewShape(grid)
}

// Width returns the number of columns of the bounding box.
func (s Shape) Width() int {
	if len(s.rows) == 0 {
		return 0
	}
	return len(s.rows[0])
}

// Height returns the number of rows of the bounding box.
func (s Shape) Height() int {
	return len(s.rows)
}

// Filled reports whether the sub-cell at (x, y) is occupied.
func (s Shape) Filled(x, y int) bool {
	if y < 0 || y >= len(s.rows) || x < 0 || x >= len(s.rows[y]) {
		return false
	}
	return s.rows[y][x]
}

// Footprint returns the number of occupied sub-cells.
func (s Shape) Footprint() int {
	n := 0
	for _, r := range s.rows {
		for _, c := range r {
			if c {
				n++
			}
		}
	}
	return n
}

// Offset is a sub-cell position inside a shape.
type Offset struct {
	X, Y int
}

// Cells lists the occupied sub-cells in row-major order.
func (s Shape) Cells() []Offset {
	cells := make([]Offset, 0, s.Footprint())
	for y, r := range s.rows {
		for x, c := range r {
			if c {
				cells = append(cells, Offset{X: x, Y: y})
			}
		}
	}
	return cells
}

// Rotate returns the shape turned 90 degrees clockwise: the transpose of
// the rows, each reversed. The receiver is left untouched.
func (s Shape) Rotate() Shape {
	h, w := s.Height(), s.Width()
	out := make([][]bool, w)
	for x := range w {
		out[x] = make([]bool, h)
		for y := range h {
			out[x][y] = s.rows[h-1-y][x]
		}
	}
	return Shape{rows: out}
}

// Equal reports whether two shapes have the same footprint layout.
func (s Shape) Equal(o Shape) bool {
	if s.Width() != o.Width() || s.Height() != o.Height() {
		return false
	}
	for y, r := range s.rows {
		for x, c := range r {
			if o.rows[y][x] != c {
				return false
			}
		}
	}
	return true
}

// String renders the shape as '#'/'.' rows separated by '/'.
func (s Shape) String() string {
	parts := make([]string, len(s.rows))
	for y, r := range s.rows {
		var b strings.Builder
		for _, c := range r {
			if c {
				b.WriteByte('#')
			} else {
				b.WriteByte('.')
			}
		}
		parts[y] = b.String()
	}
	return strings.Join(parts, "/")
}

// Catalog is the fixed library of shapes and colors new pieces are drawn
// from. Shape and color are picked independently.
type Catalog struct {
	shapes  []Shape
	palette []core.Color
}

// NewCatalog validates and returns a catalog.
func NewCatalog(shapes []Shape, palette []core.Color) (Catalog, error) {
	if len(shapes) == 0 {
		return Catalog{}, &ConfigError{Field: "shapes", Reason: "catalog is empty"}
	}
	for i, s := range shapes {
		if s.Footprint() == 0 {
			return Catalog{}, &ConfigError{Field: fmt.Sprintf("shapes[%d]", i), Reason: "shape has zero footprint"}
		}
	}
	if len(palette) == 0 {
		return Catalog{}, &ConfigError{Field: "palette", Reason: "palette is empty"}
	}
	return Catalog{
		shapes:  append([]Shape(nil), shapes...),
		palette: append([]core.Color(nil), palette...),
	}, nil
}

// PickRandom returns a uniformly random shape and an independently
// uniformly random color.
func (c Catalog) PickRandom(rng *rand.Rand) (Shape, core.Color) {
	shape := c.shapes[rng.Intn(len(c.shapes))]
	color := c.palette[rng.Intn(len(c.palette))]
	return shape, color
}

// Shapes returns a copy of the catalog's shapes.
func (c Catalog) Shapes() []Shape {
	return append([]Shape(nil), c.shapes...)
}

// Duplicates returns pairs of catalog indices whose footprints are equal.
// Duplicates are legal and act as probability weights.
func Duplicates(shapes []Shape) [][2]int {
	var pairs [][2]int
	for i := range shapes {
		for j := i + 1; j < len(shapes); j++ {
			if shapes[i].Equal(shapes[j]) {
				pairs = append(pairs, [2]int{i, j})
			}
		}
	}
	return pairs
}

// ReferenceShapes is the classic seven-entry blockfall catalog.
// It repeats the T and the J-foot footprints and has no S, Z or L, so those
// two footprints come up twice as often.
func ReferenceShapes() []Shape {
	return []Shape{
		ParseShape("####"),
		ParseShape("##", "##"),
		ParseShape("###", ".#."),
		ParseShape("###", "#.."),
		ParseShape("###", "..#"),
		ParseShape("###", ".#."),
		ParseShape("###", "..#"),
	}
}

// StandardShapes is the canonical I, O, T, S, Z, J, L set.
func StandardShapes() []Shape {
	return []Shape{
		ParseShape("####"),
		ParseShape("##", "##"),
		ParseShape("###", ".#."),
		ParseShape(".##", "##."),
		ParseShape("##.", ".##"),
		ParseShape("#..", "###"),
		ParseShape("..#", "###"),
	}
}

// ReferencePalette is the default set of seven light piece colors.
func ReferencePalette() []core.Color {
	return []core.Color{
		core.RGB(255, 100, 100), // light red
		core.RGB(100, 255, 100), // light green
		core.RGB(100, 100, 255), // light blue
		core.RGB(255, 255, 100), // light yellow
		core.RGB(255, 100, 255), // light magenta
		core.RGB(100, 255, 255), // light cyan
		core.RGB(200, 200, 200), // light gray
	}
}
