package stats

import (
	"fmt"
	"io"
	"math"
	"os"
	"strings"
	"unicode/utf8"

	"golang.org/x/term"
)

// Series is one named curve of a plot.
type Series struct {
	Name   string
	Values []float64
}

type dashPattern struct {
	name   string
	period int
	on     int
}

func (d dashPattern) draws(x int) bool {
	if d.period <= 1 {
		return true
	}
	if x < 0 {
		x = -x
	}
	return x%d.period < d.on
}

const (
	defaultPlotHeight = 8
	minPlotWidth      = 10
	axisLabelHigh     = "max"
	axisLabelMid      = "mid"
	axisLabelLow      = "min"
	axisSeparator     = " │ "
	fallbackWidth     = 80
	ansiReset         = "\x1b[0m"
)

var dashPatterns = []dashPattern{
	{name: "solid", period: 1, on: 1},
	{name: "dashed", period: 6, on: 3},
	{name: "dotted", period: 4, on: 1},
}

var seriesColors = []string{
	"\x1b[36m", // cyan
	"\x1b[35m", // magenta
	"\x1b[33m", // yellow
}

// PlotSeries draws the series as braille curves, each scaled to its own range.
// A non-positive width uses the terminal width; a non-positive height uses the default.
func PlotSeries(w io.Writer, title string, series []Series, width, height int) error {
	return PlotSeriesWithColor(w, title, series, width, height, false)
}

// PlotSeriesWithColor is PlotSeries with color forced on even when w is not a terminal.
// NO_COLOR always disables color.
func PlotSeriesWithColor(w io.Writer, title string, series []Series, width, height int, forceColor bool) error {
	curves := make([]Series, 0, len(series))
	for _, s := range series {
		if len(s.Values) > 0 {
			curves = append(curves, s)
		}
	}
	if len(curves) == 0 {
		return nil
	}
	if height <= 0 {
		height = defaultPlotHeight
	}
	if width <= 0 {
		width = PlotWidthFor(terminalWidth())
	}
	if width < minPlotWidth {
		width = minPlotWidth
	}

	canvases := make([]*brailleCanvas, len(curves))
	ranges := make([][2]float64, len(curves))
	for i, s := range curves {
		lo, hi := valueRange(s.Values)
		values := resampleSeries(s.Values, width)
		ranges[i] = [2]float64{lo, hi}
		canvases[i] = newBrailleCanvas(width, height)
		canvases[i].drawCurve(values, lo, hi, dashPatterns[i%len(dashPatterns)])
	}

	color := colorEnabled(w, forceColor)
	var out strings.Builder
	if title != "" {
		out.WriteString(title + "\n")
	}
	for i, s := range curves {
		fmt.Fprintf(&out, "%s: %.1f to %.1f\n", s.Name, ranges[i][0], ranges[i][1])
	}
	labels := axisLabels(height)
	labelWidth := utf8.RuneCountInString(axisLabelHigh)
	for y := 0; y < height; y++ {
		fmt.Fprintf(&out, "%*s%s", labelWidth, labels[y], axisSeparator)
		for x := 0; x < width; x++ {
			mask, owner := mergeCells(canvases, x, y)
			cell := string(brailleRune(mask))
			if color && owner >= 0 {
				cell = seriesColors[owner%len(seriesColors)] + cell + ansiReset
			}
			out.WriteString(cell)
		}
		out.WriteString("\n")
	}
	out.WriteString(legend(curves, color) + "\n")
	_, err := io.WriteString(w, out.String())
	return err
}

// PlotWidthFor returns the plot width that fits beside the axis in totalWidth columns.
func PlotWidthFor(totalWidth int) int {
	if totalWidth <= 0 {
		return minPlotWidth
	}
	width := totalWidth - utf8.RuneCountInString(axisLabelHigh) - utf8.RuneCountInString(axisSeparator)
	if width < minPlotWidth {
		return minPlotWidth
	}
	return width
}

func terminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return fallbackWidth
	}
	return width
}

func colorEnabled(w io.Writer, force bool) bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	if force {
		return true
	}
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func axisLabels(height int) []string {
	labels := make([]string, height)
	if height == 0 {
		return labels
	}
	labels[0] = axisLabelHigh
	if height > 2 {
		labels[height/2] = axisLabelMid
	}
	if height > 1 {
		labels[height-1] = axisLabelLow
	}
	return labels
}

// valueRange returns the bounds of values, widened by one on each side when flat.
func valueRange(values []float64) (float64, float64) {
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, v := range values {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	if math.IsInf(lo, 1) {
		lo, hi = 0, 0
	}
	if hi-lo < 1e-9 {
		lo--
		hi++
	}
	return lo, hi
}

// resampleSeries fits values to exactly width points. Longer series are
// bucket-averaged, shorter ones linearly interpolated.
func resampleSeries(values []float64, width int) []float64 {
	n := len(values)
	if n == 0 || width <= 0 {
		return nil
	}
	out := make([]float64, width)
	switch {
	case n == width:
		copy(out, values)
	case n > width:
		for i := range out {
			start := i * n / width
			end := max((i+1)*n/width, start+1)
			var sum float64
			for _, v := range values[start:end] {
				sum += v
			}
			out[i] = sum / float64(end-start)
		}
	case n == 1 || width == 1:
		for i := range out {
			out[i] = values[0]
		}
	default:
		for i := range out {
			pos := float64(i) * float64(n-1) / float64(width-1)
			idx := int(pos)
			if idx >= n-1 {
				out[i] = values[n-1]
				continue
			}
			frac := pos - float64(idx)
			out[i] = values[idx]*(1-frac) + values[idx+1]*frac
		}
	}
	return out
}

// brailleCanvas is a grid of braille cells, each holding 2x4 dots.
type brailleCanvas struct {
	cells  [][]uint8
	width  int
	height int
}

func newBrailleCanvas(width, height int) *brailleCanvas {
	cells := make([][]uint8, height)
	for y := range cells {
		cells[y] = make([]uint8, width)
	}
	return &brailleCanvas{cells: cells, width: width, height: height}
}

// drawCurve plots one value per cell column, joining neighbours with lines.
func (c *brailleCanvas) drawCurve(values []float64, lo, hi float64, dash dashPattern) {
	dotRows := c.height * 4
	prevX, prevY := -1, -1
	for i, v := range values {
		x := i * 2
		y := int(math.Round((1 - (v-lo)/(hi-lo)) * float64(dotRows-1)))
		y = min(max(y, 0), dotRows-1)
		if prevX < 0 {
			if dash.draws(x) {
				c.setDot(x, y)
			}
		} else {
			bresenham(prevX, prevY, x, y, func(px, py int) {
				if dash.draws(px) {
					c.setDot(px, py)
				}
			})
		}
		prevX, prevY = x, y
	}
}

func (c *brailleCanvas) setDot(x, y int) {
	cx, cy := x/2, y/4
	if x < 0 || y < 0 || cx >= c.width || cy >= c.height {
		return
	}
	c.cells[cy][cx] |= dotBit(x%2, y%4)
}

// dotBit maps a dot position inside a cell to its Unicode braille bit.
func dotBit(col, row int) uint8 {
	bits := [2][4]uint8{
		{0x01, 0x02, 0x04, 0x40},
		{0x08, 0x10, 0x20, 0x80},
	}
	return bits[col][row]
}

func brailleRune(mask uint8) rune {
	return rune(0x2800 + int(mask))
}

// mergeCells overlays the canvases at one cell; the first series with a dot owns its color.
func mergeCells(canvases []*brailleCanvas, x, y int) (uint8, int) {
	var mask uint8
	owner := -1
	for i, c := range canvases {
		m := c.cells[y][x]
		if m == 0 {
			continue
		}
		if owner < 0 {
			owner = i
		}
		mask |= m
	}
	return mask, owner
}

func legend(series []Series, color bool) string {
	parts := make([]string, len(series))
	for i, s := range series {
		label := fmt.Sprintf("%c %s (%s)", brailleRune(0x01), s.Name, dashPatterns[i%len(dashPatterns)].name)
		if color {
			label = seriesColors[i%len(seriesColors)] + label + ansiReset
		}
		parts[i] = label
	}
	return "Legend: " + strings.Join(parts, "  ")
}

func bresenham(x0, y0, x1, y1 int, plot func(x, y int)) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	e := dx + dy
	for {
		plot(x0, y0)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x0 += sx
		}
		if e2 <= dx {
			e += dx
			y0 += sy
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
