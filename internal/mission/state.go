package mission

import "sync"

// State is the displayed state of a single mission.
type State int

const (
	InProgress State = iota
	Complete
)

func (s State) String() string {
	switch s {
	case Complete:
		return "complete"
	default:
		return "in progress"
	}
}

// StateOf derives the state from a progress value.
func StateOf(p Progress) State {
	if p.Complete() {
		return Complete
	}
	return InProgress
}

// Tracker remembers which missions have reached Complete so the
// InProgress -> Complete transition is reported once per mission.
// Missions never return to InProgress.
type Tracker struct {
	mu     sync.Mutex
	states map[string]State
}

// NewTracker creates an empty tracker.
func NewTracker() *Tracker {
	return &Tracker{states: make(map[string]State)}
}

// Seed records the current state of every mission without reporting
// transitions. Missions that are already complete stay silent.
func (t *Tracker) Seed(missions []Mission) {
	for _, m := range missions {
		t.Observe(m.ID, m.Value())
	}
}

// Observe records a new progress value for the mission and returns true
// only when this observation moves it from InProgress to Complete.
func (t *Tracker) Observe(id string, p Progress) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	prev, seen := t.states[id]
	if prev == Complete {
		return false
	}
	next := StateOf(p)
	t.states[id] = next
	return seen && next == Complete
}

// State returns the recorded state for a mission, InProgress if unseen.
func (t *Tracker) State(id string) State {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.states[id]
}

// Forget drops all recorded states, as after a progress reset.
func (t *Tracker) Forget() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.states = make(map[string]State)
}
