package keys

import "sort"

// Status classifies a key for display.
type Status int

const (
	// StatusIdle marks a key untouched since the last reset.
	StatusIdle Status = iota
	// StatusTested marks a key pressed since the last reset but not held now.
	StatusTested
	// StatusActive marks a key that is currently held.
	StatusActive
)

func (s Status) String() string {
	switch s {
	case StatusActive:
		return "active"
	case StatusTested:
		return "tested"
	default:
		return "idle"
	}
}

// Tracker holds the key state of one tester view.
type Tracker struct {
	held    map[ID]struct{}
	pressed map[ID]struct{}
	last    ID
}

// NewTracker returns an empty tracker.
func NewTracker() *Tracker {
	return &Tracker{
		held:    map[ID]struct{}{},
		pressed: map[ID]struct{}{},
	}
}

// OnDown records a down signal. Repeats for a held key leave the held set unchanged.
func (t *Tracker) OnDown(code ID) {
	t.held[code] = struct{}{}
	t.pressed[code] = struct{}{}
	t.last = code
}

// OnUp records an up signal. Up signals without a matching down are ignored.
func (t *Tracker) OnUp(code ID) {
	delete(t.held, code)
}

// Reset forgets tested keys and the last pressed key. Held keys stay held.
func (t *Tracker) Reset() {
	t.pressed = map[ID]struct{}{}
	t.last = ""
}

// StatusOf classifies code.
func (t *Tracker) StatusOf(code ID) Status {
	if t.IsHeld(code) {
		return StatusActive
	}
	if _, ok := t.pressed[code]; ok {
		return StatusTested
	}
	return StatusIdle
}

// IsHeld reports whether code is currently down.
func (t *Tracker) IsHeld(code ID) bool {
	_, ok := t.held[code]
	return ok
}

// TestedCount returns the number of distinct keys pressed since the last reset.
func (t *Tracker) TestedCount() int {
	return len(t.pressed)
}

// LastPressed returns the most recent down-signaled key.
func (t *Tracker) LastPressed() (ID, bool) {
	return t.last, t.last != ""
}

// Held returns the held keys in sorted order.
func (t *Tracker) Held() []ID {
	return sortedIDs(t.held)
}

func sortedIDs(set map[ID]struct{}) []ID {
	out := make([]ID, 0, len(set))
	for id := range set {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
