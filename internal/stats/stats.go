// Package stats contains score calculations and result reporting.
package stats

import (
	"fmt"
	"math"
)

// ComputeWPM returns completed words per minute of elapsed time.
// Elapsed time is capped at the configured duration when one is given.
func ComputeWPM(wordsCompleted, elapsedSeconds, durationSeconds int) float64 {
	if durationSeconds > 0 && elapsedSeconds > durationSeconds {
		elapsedSeconds = durationSeconds
	}
	if elapsedSeconds <= 0 || wordsCompleted <= 0 {
		return 0
	}
	minutes := float64(elapsedSeconds) / 60.0
	return float64(wordsCompleted) / minutes
}

// ComputeAccuracy returns the share of correct keystrokes as a percentage in [0, 100].
func ComputeAccuracy(correct, total int) float64 {
	if total <= 0 {
		return 0
	}
	return clamp(float64(correct)/float64(total)*100, 0, 100)
}

// FormatCountdown renders seconds as MM:SS.
func FormatCountdown(seconds int) string {
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}

// DisplayValue rounds a score for on-screen display.
func DisplayValue(v float64) int {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return int(math.Round(v))
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
