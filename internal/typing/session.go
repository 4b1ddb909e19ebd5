// Package typing implements the typing speed test session.
package typing

import (
	"time"
	"unicode/utf8"

	"github.com/verte-zerg/keix/internal/model"
)

// Clock supplies the current time.
type Clock interface {
	Now() time.Time
}

// ClockFunc adapts a function to Clock.
type ClockFunc func() time.Time

// Now implements Clock.
func (f ClockFunc) Now() time.Time {
	return f()
}

// SystemClock reads the wall clock.
var SystemClock Clock = ClockFunc(time.Now)

// CharState classifies one target position for rendering.
type CharState int

const (
	// CharUntyped is a position past the end of the input.
	CharUntyped CharState = iota
	// CharCorrect is a typed position matching the target.
	CharCorrect
	// CharIncorrect is a typed position differing from the target.
	CharIncorrect
	// CharCursor is the next position to type.
	CharCursor
)

type charStat struct {
	correct      int
	incorrect    int
	latencySumMs int64
	latencyCount int64
}

// Session is one attempt at typing a target phrase.
type Session struct {
	corpus     Corpus
	picker     *Picker
	clock      Clock
	weakSet    map[rune]struct{}
	weakFactor float64

	target     string
	targetLen  int
	input      string
	inputRunes []rune

	started    bool
	startedAt  time.Time
	completed  bool
	endedAt    time.Time
	finalSpeed int

	correct       int
	incorrect     int
	prevCorrectAt time.Time
	charStats     map[rune]*charStat
}

// NewSession builds a session and starts the first attempt.
func NewSession(corpus Corpus, picker *Picker, clock Clock) *Session {
	if clock == nil {
		clock = SystemClock
	}
	if picker == nil {
		picker = NewPicker(0)
	}
	s := &Session{
		corpus: corpus,
		picker: picker,
		clock:  clock,
	}
	s.Start()
	return s
}

// SetWeakFocus biases later phrase picks toward phrases containing weak characters.
func (s *Session) SetWeakFocus(weakSet map[rune]struct{}, factor float64) {
	s.weakSet = weakSet
	s.weakFactor = factor
}

// Start picks a new target phrase and clears all attempt state.
func (s *Session) Start() {
	if len(s.weakSet) > 0 {
		s.target = s.picker.PickWeighted(s.corpus, s.weakSet, s.weakFactor)
	} else {
		s.target = s.picker.Pick(s.corpus)
	}
	s.targetLen = utf8.RuneCountInString(s.target)
	s.input = ""
	s.inputRunes = nil
	s.started = false
	s.startedAt = time.Time{}
	s.completed = false
	s.endedAt = time.Time{}
	s.finalSpeed = 0
	s.correct = 0
	s.incorrect = 0
	s.prevCorrectAt = time.Time{}
	s.charStats = map[rune]*charStat{}
}

// Restart is Start under the name the UI action uses.
func (s *Session) Restart() {
	s.Start()
}

// OnInputChange applies the full current input value. It returns true only
// on the call that completes the attempt; changes after completion are ignored.
func (s *Session) OnInputChange(value string) bool {
	if s.completed {
		return false
	}
	now := s.clock.Now()
	if !s.started {
		s.started = true
		s.startedAt = now
	}
	next := []rune(value)
	s.recordKeystrokes(next, now)
	s.input = value
	s.inputRunes = next

	if value != s.target {
		return false
	}
	s.completed = true
	s.endedAt = now
	s.finalSpeed = WordsPerMinute(s.targetLen, now.Sub(s.startedAt))
	return true
}

func (s *Session) recordKeystrokes(next []rune, now time.Time) {
	prev := s.inputRunes
	if len(next) <= len(prev) {
		return
	}
	for i, r := range prev {
		if next[i] != r {
			return
		}
	}
	target := []rune(s.target)
	for pos := len(prev); pos < len(next); pos++ {
		if pos >= len(target) {
			return
		}
		expected := target[pos]
		if expected == ' ' {
			continue
		}
		entry := s.charEntry(expected)
		if next[pos] == expected {
			s.correct++
			entry.correct++
			if !s.prevCorrectAt.IsZero() {
				entry.latencySumMs += now.Sub(s.prevCorrectAt).Milliseconds()
				entry.latencyCount++
			}
			s.prevCorrectAt = now
			continue
		}
		s.incorrect++
		entry.incorrect++
	}
}

func (s *Session) charEntry(expected rune) *charStat {
	entry, ok := s.charStats[expected]
	if !ok {
		entry = &charStat{}
		s.charStats[expected] = entry
	}
	return entry
}

// Speed returns the displayed WPM: the final value once completed, the live
// value while typing, and 0 before the first input.
func (s *Session) Speed() int {
	if s.completed {
		return s.finalSpeed
	}
	if !s.started {
		return 0
	}
	return WordsPerMinute(len(s.inputRunes), s.clock.Now().Sub(s.startedAt))
}

// Target returns the phrase to type.
func (s *Session) Target() string {
	return s.target
}

// Input returns the submitted text.
func (s *Session) Input() string {
	return s.input
}

// Completed reports whether the input matched the target.
func (s *Session) Completed() bool {
	return s.completed
}

// FinalSpeed returns the WPM computed at completion, or 0.
func (s *Session) FinalSpeed() int {
	return s.finalSpeed
}

// StartedAt returns the first-keystroke time.
func (s *Session) StartedAt() (time.Time, bool) {
	return s.startedAt, s.started
}

// Progress returns the typed share of the target in [0, 1].
func (s *Session) Progress() float64 {
	if s.targetLen == 0 {
		return 0
	}
	p := float64(len(s.inputRunes)) / float64(s.targetLen)
	if p > 1 {
		return 1
	}
	return p
}

// Classify returns one state per target rune.
func (s *Session) Classify() []CharState {
	target := []rune(s.target)
	out := make([]CharState, len(target))
	for i, r := range target {
		switch {
		case i < len(s.inputRunes) && s.inputRunes[i] == r:
			out[i] = CharCorrect
		case i < len(s.inputRunes):
			out[i] = CharIncorrect
		case i == len(s.inputRunes) && !s.completed:
			out[i] = CharCursor
		default:
			out[i] = CharUntyped
		}
	}
	return out
}

// Result returns the completed attempt for the history store.
func (s *Session) Result(lang string) (model.Attempt, []model.CharStats, bool) {
	if !s.completed {
		return model.Attempt{}, nil, false
	}
	attempt := model.Attempt{
		StartedAt:   s.startedAt,
		EndedAt:     s.endedAt,
		Lang:        lang,
		Phrase:      s.target,
		PhraseChars: s.targetLen,
		DurationMs:  s.endedAt.Sub(s.startedAt).Milliseconds(),
		WPM:         s.finalSpeed,
		Correct:     s.correct,
		Incorrect:   s.incorrect,
	}
	chars := make([]model.CharStats, 0, len(s.charStats))
	for ch, entry := range s.charStats {
		chars = append(chars, model.CharStats{
			Char:         string(ch),
			Correct:      entry.correct,
			Incorrect:    entry.incorrect,
			LatencySumMs: entry.latencySumMs,
			LatencyCount: entry.latencyCount,
		})
	}
	return attempt, chars, true
}
