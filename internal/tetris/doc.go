// Package tetris implements the falling-block puzzle engine: the shape
// catalog, the playfield, the active piece controller, the lock-delay
// scheduler, progression and the per-tick state machine that ties them
// together.
//
// The engine is pure and tick driven. It never sleeps, never reads the
// clock and never draws. Callers feed it one Intents value per tick and get
// back a StepResult describing the new state, the rows cleared during the
// tick (with the strobe frames to play back) and whether the session ended.
package tetris
