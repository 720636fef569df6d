package core

import "fmt"

// Color is an opaque RGB triple attached to screen and board cells.
// It carries no gameplay meaning beyond "this cell is painted".
type Color struct {
	R, G, B uint8
}

// RGB builds a Color from its components.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b}
}

// Hex returns the color as a #rrggbb string, the form lipgloss accepts.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// String implements fmt.Stringer.
func (c Color) String() string {
	return c.Hex()
}

// Frequently used interface colors.
var (
	ColorWhite     = RGB(255, 255, 255)
	ColorYellow    = RGB(255, 255, 100)
	ColorHighlight = RGB(50, 50, 50)
)
