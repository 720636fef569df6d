package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/blockfall/internal/core"
)

var plainStyle = lipgloss.NewStyle()

// colorStyles caches one foreground style per color seen.
var colorStyles = map[core.Color]lipgloss.Style{}

func styleFor(c core.Cell) lipgloss.Style {
	if !c.Styled {
		return plainStyle
	}
	style, ok := colorStyles[c.Color]
	if !ok {
		style = lipgloss.NewStyle().Foreground(lipgloss.Color(c.Color.Hex()))
		colorStyles[c.Color] = style
	}
	return style
}

// sameStyle reports whether two cells can share one styled run.
func sameStyle(a, b core.Cell) bool {
	return a.Styled == b.Styled && (!a.Styled || a.Color == b.Color)
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		// Group consecutive cells with the same color for efficiency
		x := 0
		for x < s.Width() {
			start := s.GetCell(x, y)

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if !sameStyle(cell, start) {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			sb.WriteString(styleFor(start).Render(run.String()))
		}
	}
	return sb.String()
}
