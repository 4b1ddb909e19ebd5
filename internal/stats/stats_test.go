package stats

import (
	"math"
	"testing"
	"unicode/utf8"

	"github.com/verte-zerg/keix/internal/model"
)

func TestSessionMetrics(t *testing.T) {
	wpm, cpm := SessionMetrics(60, 60000)
	if math.Abs(wpm-12) > 1e-9 || math.Abs(cpm-60) > 1e-9 {
		t.Fatalf("unexpected metrics: %v %v", wpm, cpm)
	}
	if wpm, cpm := SessionMetrics(10, 0); wpm != 0 || cpm != 0 {
		t.Fatalf("expected zero for zero duration")
	}
}

func TestAccuracy(t *testing.T) {
	if got := Accuracy(3, 1); got != 0.75 {
		t.Fatalf("expected 0.75, got %v", got)
	}
	if got := Accuracy(0, 0); got != 0 {
		t.Fatalf("expected 0 for no keystrokes, got %v", got)
	}
}

func TestMovingAverage(t *testing.T) {
	got := MovingAverage([]float64{2, 4, 6, 8}, 2)
	want := []float64{2, 3, 5, 7}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("index %d: expected %v, got %v", i, want[i], got[i])
		}
	}
	if got := MovingAverage([]float64{1, 2}, 0); got[1] != 2 {
		t.Fatalf("expected copy for window 0, got %v", got)
	}
}

func TestSparkline(t *testing.T) {
	if got := Sparkline([]float64{1, 2, 3}, 0); got != "▁▅█" {
		t.Fatalf("unexpected sparkline: %q", got)
	}
	if got := Sparkline([]float64{5, 5}, 0); got != "▅▅" {
		t.Fatalf("unexpected flat sparkline: %q", got)
	}
	values := make([]float64, 100)
	for i := range values {
		values[i] = float64(i)
	}
	if got := utf8.RuneCountInString(Sparkline(values, 10)); got != 10 {
		t.Fatalf("expected resampled width 10, got %d", got)
	}
}

func TestSelectWeakChars(t *testing.T) {
	aggs := []model.CharAggregate{
		{Char: "a", Correct: 9, Incorrect: 1},
		{Char: "b", Correct: 1, Incorrect: 1},
		{Char: "c", Correct: 0, Incorrect: 0},
		{Char: "ж", Correct: 1, Incorrect: 3},
	}
	weak := SelectWeakChars(aggs, 2)
	if len(weak) != 2 {
		t.Fatalf("expected 2 weak chars, got %v", weak)
	}
	if _, ok := weak['ж']; !ok {
		t.Fatalf("expected ж to be weak")
	}
	if _, ok := weak['b']; !ok {
		t.Fatalf("expected b to be weak")
	}
	if got := SelectWeakChars(nil, 3); len(got) != 0 {
		t.Fatalf("expected empty set")
	}
}

func TestCharTableRowsSortsWeakestFirst(t *testing.T) {
	headers, rows := CharTableRows([]model.CharAggregate{
		{Char: "a", Correct: 4, Incorrect: 0, LatencySumMs: 400, LatencyCount: 4},
		{Char: " ", Correct: 1, Incorrect: 1},
	})
	if len(headers) != 5 || len(rows) != 2 {
		t.Fatalf("unexpected table shape")
	}
	if rows[0][0] != "<space>" || rows[0][1] != "50.00%" {
		t.Fatalf("unexpected first row: %v", rows[0])
	}
	if rows[1][2] != "100.0" {
		t.Fatalf("unexpected latency: %v", rows[1])
	}
}
