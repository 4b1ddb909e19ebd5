package typing

import (
	"math"
	"time"
)

// CharsPerWord is the standard word length used for WPM.
const CharsPerWord = 5.0

// WordsPerMinute returns round((chars/5) / minutes). Zero or negative
// elapsed time and non-finite results yield 0.
func WordsPerMinute(chars int, elapsed time.Duration) int {
	minutes := elapsed.Minutes()
	if minutes <= 0 {
		return 0
	}
	wpm := math.Round((float64(chars) / CharsPerWord) / minutes)
	if math.IsNaN(wpm) || math.IsInf(wpm, 0) {
		return 0
	}
	return int(wpm)
}
