package stats

import (
	"bytes"
	"fmt"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/verte-zerg/typesprint/internal/model"
)

func TestRenderResult(t *testing.T) {
	r := model.Result{
		Phase:             "finished",
		WordsCompleted:    20,
		TotalWords:        30,
		CorrectKeystrokes: 90,
		TotalKeystrokes:   95,
		WPM:               40.4,
		Accuracy:          94.7,
		ElapsedSeconds:    30,
		DurationSeconds:   60,
		Trace:             model.Trace{
			WPM:      []float64{10, 20, 30},
			Accuracy: []float64{100, 96, 94.7},
		},
	}
	var buf bytes.Buffer
	require.NoError(t, RenderResult(&buf, r, 40))

	row := func(label, value string) string { return fmt.Sprintf("%-10s %s", label, value) }
	want := []string{
		"Result",
		row("Status", "finished"),
		row("WPM", "40"),
		row("Accuracy", "95%"),
		row("Words", "20/30"),
		row("Keystrokes", "90 correct of 95"),
		row("Time", "00:30 of 01:00"),
		"",
		curvesTitle,
		"WPM: 10.0 to 30.0",
		"Accuracy: 94.7 to 100.0",
	}
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, len(want)+defaultPlotHeight+1)
	assert.Equal(t, want, lines[:len(want)])
	plotRow := lines[len(want)]
	assert.True(t, strings.HasPrefix(plotRow, axisLabelHigh+axisSeparator))
	assert.Equal(t, PlotWidthFor(40), utf8.RuneCountInString(strings.TrimPrefix(plotRow, axisLabelHigh+axisSeparator)))
	assert.True(t, strings.HasPrefix(lines[len(lines)-1], "Legend:"))
	assert.NotContains(t, buf.String(), "\x1b[")
}

func TestRenderResultWithoutTrace(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, RenderResult(&buf, model.Result{Phase: "running", DurationSeconds: 60}, 80))
	out := buf.String()
	assert.NotContains(t, out, curvesTitle)
	assert.Contains(t, out, "00:00 of 01:00")
}
