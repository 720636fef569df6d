package tetris

import "fmt"

// LockPhase is the state of the lock-delay scheduler for the active piece.
type LockPhase int

const (
	// PhaseFalling: the piece descends under gravity and accepts input.
	PhaseFalling LockPhase = iota
	// PhaseGrace: gravity failed; the piece locks when the grace counter
	// reaches the lock delay.
	PhaseGrace
	// PhaseLocked: the piece was committed; a spawn starts a new sequence.
	PhaseLocked
)

func (p LockPhase) String() string {
	switch p {
	case PhaseFalling:
		return "falling"
	case PhaseGrace:
		return "grace"
	case PhaseLocked:
		return "locked"
	default:
		return "unknown"
	}
}

type lockEvent int

const (
	eventDescended lockEvent = iota
	eventBlocked
	eventExpired
	eventSpawned
)

// lockTransitions is the complete transition table. A missing entry is an
// illegal transition.
var lockTransitions = map[LockPhase]map[lockEvent]LockPhase{
	PhaseFalling: {
		eventDescended: PhaseFalling,
		eventBlocked:   PhaseGrace,
	},
	PhaseGrace: {
		eventDescended: PhaseFalling,
		eventBlocked:   PhaseGrace,
		eventExpired:   PhaseLocked,
	},
	PhaseLocked: {
		eventSpawned: PhaseFalling,
	},
}

// Scheduler decides when the active piece locks. Each lock sequence (one
// piece, spawn to lock) grants a grace period of delay failed gravity
// checks and exactly one adjustment pass inside it.
type Scheduler struct {
	phase    LockPhase
	delay    int
	grace    int
	adjusted bool
}

// NewScheduler returns a scheduler in PhaseFalling.
func NewScheduler(delay int) *Scheduler {
	return &Scheduler{phase: PhaseFalling, delay: delay}
}

func (s *Scheduler) fire(ev lockEvent) {
	next, ok := lockTransitions[s.phase][ev]
	if !ok {
		panic(fmt.Sprintf("tetris: illegal lock transition from %s on event %d", s.phase, ev))
	}
	s.phase = next
}

// Phase returns the current phase.
func (s *Scheduler) Phase() LockPhase { return s.phase }

// GraceTicks returns the failed gravity checks counted in this sequence.
func (s *Scheduler) GraceTicks() int { return s.grace }

// CanAdjust reports whether the input phase may move or rotate the piece
// this tick.
func (s *Scheduler) CanAdjust() bool {
	switch s.phase {
	case PhaseFalling:
		return true
	case PhaseGrace:
		return !s.adjusted
	default:
		return false
	}
}

// Adjusted records that an input pass ran. Inside the grace period this
// uses up the sequence's single adjustment pass.
func (s *Scheduler) Adjusted() {
	if s.phase == PhaseGrace {
		s.adjusted = true
	}
}

// Descended records a successful gravity step.
func (s *Scheduler) Descended() {
	s.fire(eventDescended)
}

// Blocked records a failed gravity step and returns the resulting phase.
// The grace counter keeps running if the piece was freed earlier in the
// same sequence.
func (s *Scheduler) Blocked() LockPhase {
	s.fire(eventBlocked)
	s.grace++
	if s.grace >= s.delay {
		s.fire(eventExpired)
	}
	return s.phase
}

// Spawned starts a new lock sequence after a lock.
func (s *Scheduler) Spawned() {
	s.fire(eventSpawned)
	s.grace = 0
	s.adjusted = false
}
