package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/blockfall/internal/core"
)

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(6, 2)
	s.DrawText(0, 0, "ab")
	s.SetColored(2, 0, '█', core.RGB(255, 0, 0))
	s.SetColored(3, 0, '█', core.RGB(255, 0, 0))
	s.SetColored(4, 0, '█', core.RGB(0, 0, 255))
	s.DrawText(0, 1, "cd")

	out := RenderScreen(s)
	lines := strings.Split(out, "\n")

	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2", len(lines))
	}
	if !strings.Contains(lines[0], "ab") || strings.Count(lines[0], "█") != 3 {
		t.Errorf("line 0 = %q", lines[0])
	}
	if !strings.Contains(lines[1], "cd") {
		t.Errorf("line 1 = %q", lines[1])
	}
}

func TestSameStyle(t *testing.T) {
	red := core.Cell{Rune: 'x', Color: core.RGB(255, 0, 0), Styled: true}
	blue := core.Cell{Rune: 'x', Color: core.RGB(0, 0, 255), Styled: true}
	plain := core.Cell{Rune: 'x'}
	plainOther := core.Cell{Rune: 'y', Color: core.RGB(1, 2, 3)}

	tests := []struct {
		name string
		a, b core.Cell
		want bool
	}{
		{"same color", red, red, true},
		{"different color", red, blue, false},
		{"styled vs plain", red, plain, false},
		{"plain ignores color", plain, plainOther, true},
	}
	for _, tt := range tests {
		if got := sameStyle(tt.a, tt.b); got != tt.want {
			t.Errorf("%s: sameStyle() = %v, want %v", tt.name, got, tt.want)
		}
	}
}
