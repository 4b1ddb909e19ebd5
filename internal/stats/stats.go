// Package stats contains statistics calculations and reporting.
package stats

import (
	"fmt"
	"io"
	"math"
	"sort"
	"strings"

	"github.com/verte-zerg/keix/internal/model"
)

var sparkRunes = []rune("▁▂▃▄▅▆▇█")

// SessionMetrics computes words and characters per minute for a run of chars.
func SessionMetrics(chars int, durationMs int64) (wpm, cpm float64) {
	if durationMs <= 0 || chars <= 0 {
		return 0, 0
	}
	minutes := float64(durationMs) / 60000.0
	wpm = (float64(chars) / 5.0) / minutes
	cpm = float64(chars) / minutes
	return wpm, cpm
}

// Accuracy returns the share of correct keystrokes in [0, 1].
func Accuracy(correct, incorrect int) float64 {
	total := correct + incorrect
	if total <= 0 {
		return 0
	}
	return float64(correct) / float64(total)
}

// MovingAverage computes a rolling mean over the provided window size.
func MovingAverage(values []float64, window int) []float64 {
	out := make([]float64, len(values))
	if window <= 1 {
		copy(out, values)
		return out
	}
	var sum float64
	for i, v := range values {
		sum += v
		if i >= window {
			sum -= values[i-window]
		}
		den := float64(i + 1)
		if i >= window {
			den = float64(window)
		}
		out[i] = sum / den
	}
	return out
}

// Sparkline renders the values as block characters, resampled to width when width > 0.
func Sparkline(values []float64, width int) string {
	if len(values) == 0 {
		return ""
	}
	if width > 0 && len(values) > width {
		values = resample(values, width)
	}
	minVal, maxVal := values[0], values[0]
	for _, v := range values[1:] {
		minVal = math.Min(minVal, v)
		maxVal = math.Max(maxVal, v)
	}
	if maxVal-minVal < 1e-9 {
		return strings.Repeat(string(sparkRunes[len(sparkRunes)/2]), len(values))
	}
	var b strings.Builder
	for _, v := range values {
		pos := (v - minVal) / (maxVal - minVal)
		idx := int(math.Round(pos * float64(len(sparkRunes)-1)))
		idx = max(0, min(idx, len(sparkRunes)-1))
		b.WriteRune(sparkRunes[idx])
	}
	return b.String()
}

// resample averages values into width buckets.
func resample(values []float64, width int) []float64 {
	out := make([]float64, width)
	step := float64(len(values)) / float64(width)
	for i := range out {
		start := int(float64(i) * step)
		end := int(float64(i+1) * step)
		if end <= start {
			end = start + 1
		}
		var sum float64
		for _, v := range values[start:end] {
			sum += v
		}
		out[i] = sum / float64(end-start)
	}
	return out
}

// RenderSummary prints a summary block for attempts.
func RenderSummary(w io.Writer, attempts []model.AttemptAggregate) error {
	if len(attempts) == 0 {
		_, err := fmt.Fprintln(w, "No attempts found.")
		return err
	}
	var totalWPM, totalCPM, totalAcc float64
	best := 0
	for _, a := range attempts {
		_, cpm := SessionMetrics(a.PhraseChars, a.DurationMs)
		totalWPM += float64(a.WPM)
		totalCPM += cpm
		totalAcc += Accuracy(a.Correct, a.Incorrect)
		best = max(best, a.WPM)
	}
	count := float64(len(attempts))
	lines := []string{
		"Summary",
		fmt.Sprintf("Attempts: %d", len(attempts)),
		fmt.Sprintf("Avg WPM: %.2f", totalWPM/count),
		fmt.Sprintf("Best WPM: %d", best),
		fmt.Sprintf("Avg CPM: %.2f", totalCPM/count),
		fmt.Sprintf("Avg Accuracy: %.2f%%", (totalAcc/count)*100),
		"",
	}
	return writeLines(w, lines)
}

// RenderCurves prints moving-average sparklines for WPM and accuracy.
func RenderCurves(w io.Writer, attempts []model.AttemptAggregate, window, width int) error {
	if len(attempts) == 0 {
		return nil
	}
	wpms := make([]float64, len(attempts))
	accs := make([]float64, len(attempts))
	for i, a := range attempts {
		wpms[i] = float64(a.WPM)
		accs[i] = Accuracy(a.Correct, a.Incorrect) * 100
	}
	wpms = MovingAverage(wpms, window)
	accs = MovingAverage(accs, window)
	lines := []string{
		fmt.Sprintf("Learning Curves (window %d)", window),
		curveLine("WPM", wpms, width),
		curveLine("Acc%", accs, width),
		"",
	}
	return writeLines(w, lines)
}

// RenderCharCurves prints accuracy sparklines for the selected characters.
func RenderCharCurves(w io.Writer, attempts []model.AttemptAggregate, perAttempt map[int64]map[string]model.CharAggregate, chars []string, window, width int) error {
	if len(chars) == 0 || len(attempts) == 0 {
		return nil
	}
	lines := []string{"Per-Character Accuracy"}
	for _, ch := range chars {
		series := make([]float64, len(attempts))
		for i, a := range attempts {
			if agg, ok := perAttempt[a.AttemptID][ch]; ok {
				series[i] = Accuracy(agg.Correct, agg.Incorrect) * 100
			}
		}
		lines = append(lines, curveLine(charLabel(ch), MovingAverage(series, window), width))
	}
	lines = append(lines, "")
	return writeLines(w, lines)
}

func curveLine(name string, values []float64, width int) string {
	last := 0.0
	if len(values) > 0 {
		last = values[len(values)-1]
	}
	sparkWidth := 0
	if width > 0 {
		sparkWidth = max(width-24, 8)
	}
	return fmt.Sprintf("%-8s %s %.1f", name, Sparkline(values, sparkWidth), last)
}

// RenderCharTable prints per-character aggregates, weakest first.
func RenderCharTable(w io.Writer, aggs []model.CharAggregate) error {
	if len(aggs) == 0 {
		_, err := fmt.Fprintln(w, "No character stats found.")
		return err
	}
	headers, rows := CharTableRows(aggs)
	lines := []string{"Per-Character (Windowed)"}
	lines = append(lines, formatTable(headers, rows, map[int]bool{1: true, 2: true, 3: true, 4: true})...)
	lines = append(lines, "")
	return writeLines(w, lines)
}

// CharTableRows returns the header and rows of the per-character table.
func CharTableRows(aggs []model.CharAggregate) ([]string, [][]string) {
	sorted := make([]model.CharAggregate, len(aggs))
	copy(sorted, aggs)
	sort.Slice(sorted, func(i, j int) bool {
		ai := Accuracy(sorted[i].Correct, sorted[i].Incorrect)
		aj := Accuracy(sorted[j].Correct, sorted[j].Incorrect)
		if ai == aj {
			return sorted[i].Char < sorted[j].Char
		}
		return ai < aj
	})
	headers := []string{"Char", "Accuracy", "Avg Latency (ms)", "Correct", "Incorrect"}
	rows := make([][]string, 0, len(sorted))
	for _, agg := range sorted {
		lat := 0.0
		if agg.LatencyCount > 0 {
			lat = float64(agg.LatencySumMs) / float64(agg.LatencyCount)
		}
		rows = append(rows, []string{
			charLabel(agg.Char),
			fmt.Sprintf("%.2f%%", Accuracy(agg.Correct, agg.Incorrect)*100),
			fmt.Sprintf("%.1f", lat),
			fmt.Sprintf("%d", agg.Correct),
			fmt.Sprintf("%d", agg.Incorrect),
		})
	}
	return headers, rows
}

// RenderAttempts prints the attempt log, newest first.
func RenderAttempts(w io.Writer, attempts []model.AttemptAggregate) error {
	if len(attempts) == 0 {
		return nil
	}
	headers, rows := AttemptRows(attempts)
	lines := []string{"Attempts"}
	lines = append(lines, formatTable(headers, rows, map[int]bool{2: true, 3: true, 4: true})...)
	lines = append(lines, "")
	return writeLines(w, lines)
}

// AttemptRows returns the header and rows of the attempt log, newest first.
func AttemptRows(attempts []model.AttemptAggregate) ([]string, [][]string) {
	headers := []string{"Ended", "Lang", "WPM", "Accuracy", "Time (s)", "Phrase"}
	rows := make([][]string, 0, len(attempts))
	for i := len(attempts) - 1; i >= 0; i-- {
		a := attempts[i]
		rows = append(rows, []string{
			a.EndedAt.Local().Format("2006-01-02 15:04"),
			a.Lang,
			fmt.Sprintf("%d", a.WPM),
			fmt.Sprintf("%.1f%%", Accuracy(a.Correct, a.Incorrect)*100),
			fmt.Sprintf("%.1f", float64(a.DurationMs)/1000),
			a.Phrase,
		})
	}
	return headers, rows
}

func charLabel(ch string) string {
	if ch == " " {
		return "<space>"
	}
	return ch
}

func writeLines(w io.Writer, lines []string) error {
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
