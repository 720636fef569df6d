package tetris

import "strings"

// Snapshot captures the complete engine state for determinism testing and
// replay comparison.
type Snapshot struct {
	Tick        uint64
	Score       int
	Level       int
	Speed       int
	ClearedRows int
	TotalRows   int
	Pieces      int
	Phase       LockPhase
	GraceTicks  int
	PieceX      int
	PieceY      int
	PieceShape  string
	Terminal    bool
	Reason      TerminalReason
	Rows        []string // '#' filled, '.' empty, row 0 first
}

// Snapshot returns the current engine snapshot.
func (e *Engine) Snapshot() Snapshot {
	p := e.ctrl.Piece()
	return Snapshot{
		Tick:        e.tick,
		Score:       e.prog.Score(),
		Level:       e.prog.Level(),
		Speed:       e.prog.Speed(),
		ClearedRows: e.prog.ClearedRows(),
		TotalRows:   e.prog.TotalRows(),
		Pieces:      e.pieces,
		Phase:       e.sched.Phase(),
		GraceTicks:  e.sched.GraceTicks(),
		PieceX:      p.X,
		PieceY:      p.Y,
		PieceShape:  p.Shape.String(),
		Terminal:    e.terminal,
		Reason:      e.reason,
		Rows:        gridRows(e.field.grid),
	}
}

func gridRows(g Grid) []string {
	rows := make([]string, len(g))
	for y, row := range g {
		var b strings.Builder
		for _, c := range row {
			if c.Filled {
				b.WriteByte('#')
			} else {
				b.WriteByte('.')
			}
		}
		rows[y] = b.String()
	}
	return rows
}
