package typing

import (
	"strings"
	"testing"
	"time"
)

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	return c.now
}

func (c *fakeClock) advance(d time.Duration) {
	c.now = c.now.Add(d)
}

func newTestSession(corpus Corpus) (*Session, *fakeClock) {
	clock := &fakeClock{now: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)}
	return NewSession(corpus, NewPicker(1), clock), clock
}

func TestSessionCompletesOnExactMatch(t *testing.T) {
	s, clock := newTestSession(Corpus{"test"})
	if s.Target() != "test" {
		t.Fatalf("expected target test, got %q", s.Target())
	}

	steps := []string{"t", "te", "tes"}
	for _, step := range steps {
		clock.advance(time.Second)
		if s.OnInputChange(step) {
			t.Fatalf("did not expect completion at %q", step)
		}
		if s.Completed() {
			t.Fatalf("did not expect completed at %q", step)
		}
	}
	clock.advance(time.Second)
	if !s.OnInputChange("test") {
		t.Fatalf("expected completion edge on full match")
	}
	if !s.Completed() {
		t.Fatalf("expected completed")
	}
	// 4 chars over 3s from the first keystroke: (4/5) / (3/60) = 16.
	if s.FinalSpeed() != 16 {
		t.Fatalf("expected final speed 16, got %d", s.FinalSpeed())
	}
	started, ok := s.StartedAt()
	if !ok || !started.Equal(time.Date(2024, 1, 1, 12, 0, 1, 0, time.UTC)) {
		t.Fatalf("expected start anchored at first keystroke, got %v", started)
	}
}

func TestSessionFinalSpeedSixtyChars(t *testing.T) {
	phrase := strings.Repeat("a", 60)
	s, clock := newTestSession(Corpus{phrase})
	s.OnInputChange("a")
	clock.advance(60 * time.Second)
	if !s.OnInputChange(phrase) {
		t.Fatalf("expected completion")
	}
	if s.FinalSpeed() != 12 {
		t.Fatalf("expected 12 WPM, got %d", s.FinalSpeed())
	}
	if s.Speed() != 12 {
		t.Fatalf("expected displayed speed 12, got %d", s.Speed())
	}
}

func TestSessionSpeedBeforeInput(t *testing.T) {
	s, clock := newTestSession(Corpus{"hello"})
	if s.Speed() != 0 {
		t.Fatalf("expected 0 before input, got %d", s.Speed())
	}
	s.OnInputChange("h")
	if s.Speed() != 0 {
		t.Fatalf("expected 0 with zero elapsed time, got %d", s.Speed())
	}
	clock.advance(12 * time.Second)
	// 1 char over 12s: (1/5) / 0.2 = 1.
	if s.Speed() != 1 {
		t.Fatalf("expected live speed 1, got %d", s.Speed())
	}
}

func TestSessionPasteCompletesWithZeroElapsed(t *testing.T) {
	s, _ := newTestSession(Corpus{"paste"})
	if !s.OnInputChange("paste") {
		t.Fatalf("expected completion")
	}
	if s.FinalSpeed() != 0 {
		t.Fatalf("expected zero speed for zero elapsed time, got %d", s.FinalSpeed())
	}
}

func TestSessionIgnoresInputAfterCompletion(t *testing.T) {
	s, clock := newTestSession(Corpus{"ok"})
	s.OnInputChange("o")
	clock.advance(time.Second)
	s.OnInputChange("ok")
	final := s.FinalSpeed()

	clock.advance(time.Minute)
	if s.OnInputChange("okay") {
		t.Fatalf("expected no second completion")
	}
	if s.OnInputChange("ok") {
		t.Fatalf("expected no second completion")
	}
	if s.Input() != "ok" {
		t.Fatalf("expected input to stay ok, got %q", s.Input())
	}
	if s.FinalSpeed() != final {
		t.Fatalf("expected final speed to stay %d, got %d", final, s.FinalSpeed())
	}
}

func TestSessionCaseAndWhitespaceSensitive(t *testing.T) {
	s, _ := newTestSession(Corpus{"Go fast"})
	for _, value := range []string{"go fast", "Go fast ", "Go  fast"} {
		if s.OnInputChange(value) {
			t.Fatalf("did not expect %q to complete", value)
		}
	}
}

func TestSessionRestartClearsState(t *testing.T) {
	corpus := Corpus{"one", "two", "three"}
	s, clock := newTestSession(corpus)
	s.OnInputChange(s.Target()[:1])
	clock.advance(time.Second)
	s.OnInputChange(s.Target())

	for i := 0; i < 20; i++ {
		s.Restart()
		if !contains(corpus, s.Target()) {
			t.Fatalf("target %q not from corpus", s.Target())
		}
		if s.Input() != "" || s.Completed() || s.FinalSpeed() != 0 || s.Speed() != 0 {
			t.Fatalf("expected cleared session after restart")
		}
		if _, ok := s.StartedAt(); ok {
			t.Fatalf("expected start time cleared")
		}
	}
}

func TestSessionClassify(t *testing.T) {
	s, _ := newTestSession(Corpus{"abcd"})
	s.OnInputChange("ax")
	got := s.Classify()
	want := []CharState{CharCorrect, CharIncorrect, CharCursor, CharUntyped}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("position %d: expected %d, got %d", i, want[i], got[i])
		}
	}

	s.OnInputChange("abcd")
	for i, st := range s.Classify() {
		if st != CharCorrect {
			t.Fatalf("position %d: expected correct after completion, got %d", i, st)
		}
	}
}

func TestSessionClassifyCyrillic(t *testing.T) {
	s, _ := newTestSession(Corpus{"ёж"})
	s.OnInputChange("ё")
	got := s.Classify()
	if len(got) != 2 {
		t.Fatalf("expected 2 positions, got %d", len(got))
	}
	if got[0] != CharCorrect || got[1] != CharCursor {
		t.Fatalf("unexpected classification: %v", got)
	}
}

func TestSessionKeystrokeStats(t *testing.T) {
	s, clock := newTestSession(Corpus{"ab c"})
	s.OnInputChange("a")
	clock.advance(200 * time.Millisecond)
	s.OnInputChange("ax")
	s.OnInputChange("a")
	clock.advance(300 * time.Millisecond)
	s.OnInputChange("ab")
	s.OnInputChange("ab ")
	clock.advance(100 * time.Millisecond)
	s.OnInputChange("ab c")

	attempt, chars, ok := s.Result("en")
	if !ok {
		t.Fatalf("expected result after completion")
	}
	if attempt.Correct != 3 || attempt.Incorrect != 1 {
		t.Fatalf("expected 3 correct / 1 incorrect, got %d / %d", attempt.Correct, attempt.Incorrect)
	}
	if attempt.PhraseChars != 4 || attempt.DurationMs != 600 {
		t.Fatalf("unexpected attempt: %+v", attempt)
	}
	byChar := map[string]int{}
	for _, cs := range chars {
		byChar[cs.Char] = cs.Incorrect
		if cs.Char == " " {
			t.Fatalf("spaces should not be counted")
		}
	}
	if byChar["b"] != 1 {
		t.Fatalf("expected one miss on b, got %d", byChar["b"])
	}
}

func TestSessionResultBeforeCompletion(t *testing.T) {
	s, _ := newTestSession(Corpus{"abc"})
	if _, _, ok := s.Result("en"); ok {
		t.Fatalf("expected no result before completion")
	}
}

func contains(corpus Corpus, phrase string) bool {
	for _, p := range corpus {
		if p == phrase {
			return true
		}
	}
	return false
}
