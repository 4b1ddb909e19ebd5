// Package model defines shared data structures.
package model

import "time"

// Mode selects the view shown by the application shell.
type Mode string

const (
	// ModeTester shows the keyboard switch tester.
	ModeTester Mode = "tester"
	// ModeTyping shows the typing speed test.
	ModeTyping Mode = "typing"
)

// Config defines application settings after merging file, env and flags.
type Config struct {
	Lang       string
	Mode       Mode
	CorpusPath string
	Seed       int64
	ReleaseMs  int
	History    bool
	FocusWeak  bool
	WeakTop    int
	WeakFactor float64
	WeakWindow int
}

// StatsConfig defines filters and options for stats output.
type StatsConfig struct {
	Lang        string
	Since       *time.Time
	Last        int
	CurveWindow int
}

// Attempt captures a completed typing attempt.
type Attempt struct {
	StartedAt   time.Time
	EndedAt     time.Time
	Lang        string
	Phrase      string
	PhraseChars int
	DurationMs  int64
	WPM         int
	Correct     int
	Incorrect   int
}

// CharStats stores per-character keystroke stats for an attempt.
type CharStats struct {
	Char         string
	Correct      int
	Incorrect    int
	LatencySumMs int64
	LatencyCount int64
}

// CharAggregate aggregates character stats across attempts.
type CharAggregate struct {
	Char         string
	Correct      int
	Incorrect    int
	LatencySumMs int64
	LatencyCount int64
}

// AttemptAggregate summarizes an attempt for reporting.
type AttemptAggregate struct {
	AttemptID   int64
	EndedAt     time.Time
	Lang        string
	Phrase      string
	PhraseChars int
	DurationMs  int64
	WPM         int
	Correct     int
	Incorrect   int
}
