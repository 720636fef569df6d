package tetris

// Intent is a movement or control request derived from raw input.
type Intent int

const (
	IntentLeft Intent = iota
	IntentRight
	IntentDown
	IntentRotate
	IntentQuit
)

func (i Intent) String() string {
	switch i {
	case IntentLeft:
		return "left"
	case IntentRight:
		return "right"
	case IntentDown:
		return "down"
	case IntentRotate:
		return "rotate"
	case IntentQuit:
		return "quit"
	default:
		return "unknown"
	}
}

func (i Intent) held() bool {
	return i == IntentLeft || i == IntentRight || i == IntentDown
}

// InputState is the held-direction state plus the key-repeat counter.
// Acceleration counts the ticks a direction has been held since the last
// release.
type InputState struct {
	Left, Right, Down bool
	Acceleration      int
}

// Intents is everything the engine consumes from input for one tick.
type Intents struct {
	State  InputState
	Rotate bool
	Quit   bool
}

// Reducer converts press and release events into per-tick Intents. It is
// the only owner of InputState.
type Reducer struct {
	state  InputState
	rotate bool
	quit   bool

	tick         uint64
	lastPress    [3]uint64
	releaseAfter int
}

// NewReducer creates a reducer. releaseAfter is used by ReleaseIdle; zero
// disables idle release.
func NewReducer(releaseAfter int) *Reducer {
	return &Reducer{releaseAfter: releaseAfter}
}

// Press records a key-down for intent.
func (r *Reducer) Press(in Intent) {
	switch in {
	case IntentLeft:
		r.state.Left = true
	case IntentRight:
		r.state.Right = true
	case IntentDown:
		r.state.Down = true
	case IntentRotate:
		r.rotate = true
	case IntentQuit:
		r.quit = true
	}
	if in.held() {
		r.lastPress[in] = r.tick
	}
}

// Release records a key-up. Releasing a held direction re-arms key repeat
// from zero.
func (r *Reducer) Release(in Intent) {
	var wasHeld bool
	switch in {
	case IntentLeft:
		wasHeld, r.state.Left = r.state.Left, false
	case IntentRight:
		wasHeld, r.state.Right = r.state.Right, false
	case IntentDown:
		wasHeld, r.state.Down = r.state.Down, false
	default:
		return
	}
	if wasHeld {
		r.state.Acceleration = 0
	}
}

// ReleaseIdle releases every held direction not pressed during the last
// releaseAfter ticks. Terminals report key repeats but no key-ups, so the
// driver calls this before Tick to turn a stream of repeats into a hold.
func (r *Reducer) ReleaseIdle() {
	if r.releaseAfter <= 0 {
		return
	}
	for _, in := range []Intent{IntentLeft, IntentRight, IntentDown} {
		if r.isHeld(in) && r.tick-r.lastPress[in] >= uint64(r.releaseAfter) {
			r.Release(in)
		}
	}
}

func (r *Reducer) isHeld(in Intent) bool {
	switch in {
	case IntentLeft:
		return r.state.Left
	case IntentRight:
		return r.state.Right
	case IntentDown:
		return r.state.Down
	}
	return false
}

// Tick closes the current tick: it advances the repeat counter while any
// direction is held and returns the intents for the engine. Rotate and
// quit are edge intents and are consumed.
func (r *Reducer) Tick() Intents {
	if r.state.Left || r.state.Right || r.state.Down {
		r.state.Acceleration++
	}
	out := Intents{State: r.state, Rotate: r.rotate, Quit: r.quit}
	r.rotate = false
	r.quit = false
	r.tick++
	return out
}

// State returns the current input state.
func (r *Reducer) State() InputState {
	return r.state
}

// Reset drops all held keys and pending edges.
func (r *Reducer) Reset() {
	*r = Reducer{releaseAfter: r.releaseAfter}
}
