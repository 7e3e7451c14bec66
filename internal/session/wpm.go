package session

import (
	"strings"
	"time"
)

// CountWords counts whitespace-separated words.
func CountWords(s string) int {
	return len(strings.Fields(s))
}

func wordsPerMinute(words int, elapsed time.Duration) float64 {
	if elapsed <= 0 {
		return 0
	}
	return float64(words) / elapsed.Minutes()
}

// LiveWPM estimates speed from the uncommitted input buffer only.
// Completed sentences are not counted, so the figure drops each time the
// buffer is cleared. The final result uses FinalWPM instead.
func LiveWPM(buffer string, elapsed time.Duration) float64 {
	return wordsPerMinute(CountWords(buffer), elapsed)
}

// FinalWPM totals the words of fully completed sentences and divides by
// the elapsed minutes. Zero elapsed time yields 0.
func FinalWPM(completed []string, elapsed time.Duration) (int, float64) {
	words := 0
	for _, s := range completed {
		words += CountWords(s)
	}
	return words, wordsPerMinute(words, elapsed)
}

// Progress returns elapsed/limit clamped to [0, 1].
func Progress(elapsed, limit time.Duration) float64 {
	if limit <= 0 {
		return 0
	}
	if elapsed < 0 {
		elapsed = 0
	}
	if elapsed > limit {
		elapsed = limit
	}
	return float64(elapsed) / float64(limit)
}
