package keys

import (
	"math/rand"
	"testing"
)

func TestTrackerDownUp(t *testing.T) {
	tr := NewTracker()
	tr.OnDown("KeyA")
	if tr.StatusOf("KeyA") != StatusActive {
		t.Fatalf("expected KeyA active, got %s", tr.StatusOf("KeyA"))
	}
	tr.OnUp("KeyA")
	if tr.StatusOf("KeyA") != StatusTested {
		t.Fatalf("expected KeyA tested, got %s", tr.StatusOf("KeyA"))
	}
	if tr.StatusOf("KeyB") != StatusIdle {
		t.Fatalf("expected KeyB idle")
	}
	last, ok := tr.LastPressed()
	if !ok || last != "KeyA" {
		t.Fatalf("expected last KeyA, got %q", last)
	}
}

func TestTrackerRepeatIsIdempotent(t *testing.T) {
	tr := NewTracker()
	for i := 0; i < 5; i++ {
		tr.OnDown("Space")
	}
	if got := len(tr.Held()); got != 1 {
		t.Fatalf("expected 1 held key, got %d", got)
	}
	if tr.TestedCount() != 1 {
		t.Fatalf("expected 1 tested key, got %d", tr.TestedCount())
	}
	tr.OnUp("Space")
	if tr.IsHeld("Space") {
		t.Fatalf("expected a single up to release a repeated key")
	}
}

func TestTrackerUnmatchedUp(t *testing.T) {
	tr := NewTracker()
	tr.OnUp("KeyQ")
	if len(tr.Held()) != 0 || tr.TestedCount() != 0 {
		t.Fatalf("expected unmatched up to be a no-op")
	}
	if _, ok := tr.LastPressed(); ok {
		t.Fatalf("expected no last key")
	}
}

func TestTrackerInterleaved(t *testing.T) {
	tr := NewTracker()
	tr.OnDown("ShiftLeft")
	tr.OnDown("KeyA")
	tr.OnUp("ShiftLeft")
	if !tr.IsHeld("KeyA") || tr.IsHeld("ShiftLeft") {
		t.Fatalf("unexpected held set: %v", tr.Held())
	}
	tr.OnUp("KeyA")
	if len(tr.Held()) != 0 {
		t.Fatalf("expected nothing held, got %v", tr.Held())
	}
	if tr.TestedCount() != 2 {
		t.Fatalf("expected 2 tested keys, got %d", tr.TestedCount())
	}
}

func TestTrackerResetKeepsHeld(t *testing.T) {
	tr := NewTracker()
	tr.OnDown("KeyA")
	tr.OnDown("KeyB")
	tr.OnUp("KeyB")
	tr.Reset()
	if tr.TestedCount() != 0 {
		t.Fatalf("expected reset to clear tested keys")
	}
	if _, ok := tr.LastPressed(); ok {
		t.Fatalf("expected reset to clear last key")
	}
	if !tr.IsHeld("KeyA") {
		t.Fatalf("expected KeyA to stay held after reset")
	}
	if tr.StatusOf("KeyA") != StatusActive {
		t.Fatalf("expected held key to stay active after reset")
	}
	if tr.StatusOf("KeyB") != StatusIdle {
		t.Fatalf("expected KeyB idle after reset")
	}
}

func TestTrackerUnknownKey(t *testing.T) {
	tr := NewTracker()
	tr.OnDown("Lang1")
	if tr.StatusOf("Lang1") != StatusActive {
		t.Fatalf("expected unknown key to be tracked")
	}
	if Known("Lang1") {
		t.Fatalf("expected Lang1 outside the catalog")
	}
}

func TestTrackerMatchesReferenceModel(t *testing.T) {
	rnd := rand.New(rand.NewSource(7))
	codes := []ID{"KeyA", "KeyB", "Space", "ShiftLeft", "Numpad5"}
	tr := NewTracker()
	held := map[ID]bool{}
	pressed := map[ID]bool{}
	prevTested := 0

	for step := 0; step < 2000; step++ {
		code := codes[rnd.Intn(len(codes))]
		switch rnd.Intn(7) {
		case 0, 1, 2:
			tr.OnDown(code)
			held[code] = true
			pressed[code] = true
		case 3, 4, 5:
			tr.OnUp(code)
			delete(held, code)
		default:
			tr.Reset()
			pressed = map[ID]bool{}
			prevTested = 0
		}

		if tr.TestedCount() < prevTested {
			t.Fatalf("step %d: tested count decreased without reset", step)
		}
		prevTested = tr.TestedCount()

		for _, c := range Catalog() {
			checkStatus(t, tr, c, held, pressed)
		}
		for _, c := range codes {
			checkStatus(t, tr, c, held, pressed)
		}
	}
}

func checkStatus(t *testing.T, tr *Tracker, code ID, held, pressed map[ID]bool) {
	t.Helper()
	want := StatusIdle
	switch {
	case held[code]:
		want = StatusActive
	case pressed[code]:
		want = StatusTested
	}
	if got := tr.StatusOf(code); got != want {
		t.Fatalf("status of %s: expected %s, got %s", code, want, got)
	}
}
