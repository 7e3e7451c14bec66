package session

import (
	"math"
	"testing"
	"time"
)

func TestCountWords(t *testing.T) {
	tests := []struct {
		input    string
		expected int
	}{
		{"", 0},
		{"   ", 0},
		{"hello", 1},
		{"  hello   world ", 2},
		{"Don't watch the clock; do what it does.", 8},
		{"tab\tand\nnewline", 3},
	}

	for _, tt := range tests {
		if got := CountWords(tt.input); got != tt.expected {
			t.Errorf("CountWords(%q) = %d, want %d", tt.input, got, tt.expected)
		}
	}
}

func TestLiveWPM(t *testing.T) {
	tests := []struct {
		name     string
		buffer   string
		elapsed  time.Duration
		expected float64
	}{
		{"zero elapsed", "some words", 0, 0},
		{"negative elapsed", "some words", -time.Second, 0},
		{"empty buffer", "", 30 * time.Second, 0},
		{"two words in six seconds", "two words", 6 * time.Second, 20},
		{"ten words in a minute", "a b c d e f g h i j", time.Minute, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := LiveWPM(tt.buffer, tt.elapsed)
			if math.Abs(got-tt.expected) > 1e-9 {
				t.Errorf("LiveWPM(%q, %s) = %f, want %f", tt.buffer, tt.elapsed, got, tt.expected)
			}
		})
	}
}

func TestFinalWPM(t *testing.T) {
	words, wpm := FinalWPM([]string{"The quick brown fox"}, 5*time.Second)
	if words != 4 {
		t.Errorf("Expected 4 words, got %d", words)
	}
	if math.Abs(wpm-48) > 1e-9 {
		t.Errorf("Expected 48 WPM, got %f", wpm)
	}

	words, wpm = FinalWPM([]string{"Dream bigger. Do bigger.", "Great things take time."}, 30*time.Second)
	if words != 8 {
		t.Errorf("Expected 8 words, got %d", words)
	}
	if math.Abs(wpm-16) > 1e-9 {
		t.Errorf("Expected 16 WPM, got %f", wpm)
	}
}

func TestFinalWPMZeroElapsed(t *testing.T) {
	words, wpm := FinalWPM([]string{"one two"}, 0)
	if words != 2 {
		t.Errorf("Expected 2 words, got %d", words)
	}
	if wpm != 0 {
		t.Errorf("Expected 0 WPM for zero elapsed time, got %f", wpm)
	}
}

func TestFinalWPMNoSentences(t *testing.T) {
	words, wpm := FinalWPM(nil, 10*time.Second)
	if words != 0 || wpm != 0 {
		t.Errorf("Expected 0 words and 0 WPM, got %d and %f", words, wpm)
	}
}

func TestProgress(t *testing.T) {
	limit := 10 * time.Second
	tests := []struct {
		elapsed  time.Duration
		expected float64
	}{
		{-time.Second, 0},
		{0, 0},
		{2500 * time.Millisecond, 0.25},
		{5 * time.Second, 0.5},
		{limit, 1},
		{time.Minute, 1},
	}

	for _, tt := range tests {
		if got := Progress(tt.elapsed, limit); got != tt.expected {
			t.Errorf("Progress(%s, %s) = %f, want %f", tt.elapsed, limit, got, tt.expected)
		}
	}

	if got := Progress(time.Second, 0); got != 0 {
		t.Errorf("Progress with zero limit = %f, want 0", got)
	}
}

func TestParseTimeLimit(t *testing.T) {
	d, err := ParseTimeLimit("45")
	if err != nil {
		t.Fatalf("ParseTimeLimit failed: %v", err)
	}
	if d != 45*time.Second {
		t.Errorf("Expected 45s, got %s", d)
	}

	if _, err := ParseTimeLimit("9223372037"); err == nil {
		t.Error("Expected overflowing time limit to be rejected")
	}
}
