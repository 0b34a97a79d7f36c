package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatCountdown(t *testing.T) {
	tests := []struct {
		seconds int
		want    string
	}{
		{0, "00:00"},
		{5, "00:05"},
		{59, "00:59"},
		{60, "01:00"},
		{75, "01:15"},
		{600, "10:00"},
		{6000, "100:00"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatCountdown(tt.seconds), "seconds=%d", tt.seconds)
	}
}

func TestComputeAccuracy(t *testing.T) {
	assert.Equal(t, 0.0, ComputeAccuracy(0, 0))
	assert.Equal(t, 100.0, ComputeAccuracy(5, 5))
	assert.Equal(t, 75.0, ComputeAccuracy(3, 4))
	assert.Equal(t, 0.0, ComputeAccuracy(0, 7))
}

func TestComputeAccuracyClamped(t *testing.T) {
	assert.Equal(t, 100.0, ComputeAccuracy(9, 4))
	assert.Equal(t, 0.0, ComputeAccuracy(-3, 4))
	assert.Equal(t, 0.0, ComputeAccuracy(3, -4))
}

func TestComputeWPM(t *testing.T) {
	assert.Equal(t, 0.0, ComputeWPM(10, 0, 60), "no elapsed time")
	assert.Equal(t, 0.0, ComputeWPM(10, -5, 60))
	assert.Equal(t, 0.0, ComputeWPM(0, 30, 60))
	assert.Equal(t, 20.0, ComputeWPM(10, 30, 60))
	assert.Equal(t, 10.0, ComputeWPM(10, 60, 60))
	assert.Equal(t, 10.0, ComputeWPM(10, 90, 60), "elapsed capped at duration")
	assert.Equal(t, 5.0, ComputeWPM(10, 120, 0), "no duration cap")
}

func TestDisplayValue(t *testing.T) {
	assert.Equal(t, 0, DisplayValue(0))
	assert.Equal(t, 67, DisplayValue(66.5))
	assert.Equal(t, 66, DisplayValue(66.49))
	assert.Equal(t, 100, DisplayValue(100))
}
