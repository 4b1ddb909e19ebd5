package input

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/verte-zerg/keix/internal/keys"
)

// DefaultReleaseWindow is how long a key stays down without a repeat.
const DefaultReleaseWindow = 600 * time.Millisecond

// ReleaseMsg fires when a synthesized release window ends.
type ReleaseMsg struct {
	Code keys.ID
	Gen  int
}

// Releaser synthesizes key releases. Terminals report presses and
// auto-repeats only, so a key counts as released once no repeat arrived
// within the window.
type Releaser struct {
	window time.Duration
	gens   map[keys.ID]int
	tick   func(time.Duration, func(time.Time) tea.Msg) tea.Cmd
}

// NewReleaser returns a Releaser with the given window.
func NewReleaser(window time.Duration) *Releaser {
	if window <= 0 {
		window = DefaultReleaseWindow
	}
	return &Releaser{
		window: window,
		gens:   map[keys.ID]int{},
		tick:   tea.Tick,
	}
}

// Press records a press of code and returns whether it repeats a held key,
// plus the timer command for its release.
func (r *Releaser) Press(code keys.ID) (bool, tea.Cmd) {
	gen, repeat := r.gens[code]
	gen++
	r.gens[code] = gen
	return repeat, r.tick(r.window, func(time.Time) tea.Msg {
		return ReleaseMsg{Code: code, Gen: gen}
	})
}

// Expire reports whether msg releases its key. Timers superseded by a later
// press are stale and ignored.
func (r *Releaser) Expire(msg ReleaseMsg) bool {
	gen, ok := r.gens[msg.Code]
	if !ok || gen != msg.Gen {
		return false
	}
	delete(r.gens, msg.Code)
	return true
}

// Pending returns the keys currently considered down.
func (r *Releaser) Pending() []keys.ID {
	out := make([]keys.ID, 0, len(r.gens))
	for code := range r.gens {
		out = append(out, code)
	}
	return out
}

// Forget drops every pending key, for instance when focus leaves the tester.
func (r *Releaser) Forget() {
	r.gens = map[keys.ID]int{}
}
