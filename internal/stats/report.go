// Package stats contains score calculations and result reporting.
package stats

import (
	"fmt"
	"io"

	"github.com/verte-zerg/typesprint/internal/model"
)

const curvesTitle = "Session curves"

// RenderResult prints the end-of-session summary sized to the given terminal width.
// Sessions that ticked at least once get WPM and accuracy curves under the table.
func RenderResult(w io.Writer, r model.Result, width int) error {
	if _, err := fmt.Fprintln(w, "Result"); err != nil {
		return err
	}
	rows := [][]string{
		{"Status", r.Phase},
		{"WPM", fmt.Sprintf("%d", DisplayValue(r.WPM))},
		{"Accuracy", fmt.Sprintf("%d%%", DisplayValue(r.Accuracy))},
		{"Words", fmt.Sprintf("%d/%d", r.WordsCompleted, r.TotalWords)},
		{"Keystrokes", fmt.Sprintf("%d correct of %d", r.CorrectKeystrokes, r.TotalKeystrokes)},
		{"Time", fmt.Sprintf("%s of %s", FormatCountdown(r.ElapsedSeconds), FormatCountdown(r.DurationSeconds))},
	}
	for _, line := range formatTable(nil, rows, map[int]bool{}) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	if r.Trace.Len() == 0 {
		return nil
	}
	if _, err := fmt.Fprintln(w, ""); err != nil {
		return err
	}
	return PlotSeriesWithColor(w, curvesTitle, []Series{
		{Name: "WPM", Values: r.Trace.WPM},
		{Name: "Accuracy", Values: r.Trace.Accuracy},
	}, PlotWidthFor(width), defaultPlotHeight, false)
}
