package tetris

import "github.com/vovakirdan/blockfall/internal/core"

// Piece is the falling piece: a shape, its color and the grid position of
// the shape's top-left corner.
type Piece struct {
	Shape Shape
	Color core.Color
	X, Y  int
}

// PieceView is the read-only copy of a piece published to callers.
type PieceView struct {
	Shape Shape
	Color core.Color
	X, Y  int
}

func (p Piece) view() *PieceView {
	return &PieceView{Shape: p.Shape, Color: p.Color, X: p.X, Y: p.Y}
}

// Controller owns the active piece and validates every change to it
// against the playfield. While a piece is active it always fits.
type Controller struct {
	field *Playfield
	piece Piece
}

// NewController creates a controller bound to field.
func NewController(field *Playfield) *Controller {
	return &Controller{field: field}
}

// Spawn replaces the active piece with shape centered on the top row.
// It reports whether the spawn position is valid; an invalid spawn is the
// game-over condition and the caller must not keep playing it.
func (c *Controller) Spawn(shape Shape, color core.Color) bool {
	c.piece = Piece{
		Shape: shape,
		Color: color,
		X:     (c.field.Width() - shape.Width()) / 2,
		Y:     0,
	}
	return c.Valid()
}

// Piece returns a copy of the active piece.
func (c *Controller) Piece() Piece {
	return c.piece
}

// Valid reports whether the active piece fits where it is.
func (c *Controller) Valid() bool {
	return c.field.Fits(c.piece.Shape, c.piece.X, c.piece.Y)
}

// TryMove shifts the piece by (dx, dy) if the target placement fits.
// On failure nothing changes.
func (c *Controller) TryMove(dx, dy int) bool {
	if !c.field.Fits(c.piece.Shape, c.piece.X+dx, c.piece.Y+dy) {
		return false
	}
	c.piece.X += dx
	c.piece.Y += dy
	return true
}

// TryRotate turns the piece clockwise in place. There are no wall kicks: a
// rotation that does not fit at the current position is rejected.
func (c *Controller) TryRotate() bool {
	rotated := c.piece.Shape.Rotate()
	if !c.field.Fits(rotated, c.piece.X, c.piece.Y) {
		return false
	}
	c.piece.Shape = rotated
	return true
}

// Lock commits the active piece into the playfield and returns it.
func (c *Controller) Lock() Piece {
	c.field.Commit(c.piece.Shape, c.piece.Color, c.piece.X, c.piece.Y)
	return c.piece
}
