// Package tui provides the Bubble Tea typing interface.
package tui

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

type styledWord struct {
	s     string
	width int
}

// buildStyledWords marks the expected word and leaves every other word plain.
// A highlight equal to len(words) marks nothing.
func buildStyledWords(words []string, highlight int) []styledWord {
	out := make([]styledWord, 0, len(words))
	for i, word := range words {
		style := wordStyle
		if i == highlight {
			style = currentWordStyle
		}
		out = append(out, styledWord{
			s:     style.Render(word),
			width: runewidth.StringWidth(word),
		})
	}
	return out
}

func renderStyledWords(words []styledWord) string {
	parts := make([]string, len(words))
	for i, item := range words {
		parts[i] = item.s
	}
	return strings.Join(parts, " ")
}

// wrapStyledWords breaks lines between words so no line exceeds width cells.
// A single word wider than width gets a line of its own.
func wrapStyledWords(words []styledWord, width int) string {
	if width <= 0 {
		return renderStyledWords(words)
	}
	var out strings.Builder
	line := make([]styledWord, 0, len(words))
	lineWidth := 0
	for _, item := range words {
		extra := item.width
		if len(line) > 0 {
			extra++
		}
		if lineWidth+extra > width && len(line) > 0 {
			out.WriteString(renderStyledWords(line))
			out.WriteRune('\n')
			line = line[:0]
			lineWidth = 0
			extra = item.width
		}
		line = append(line, item)
		lineWidth += extra
	}
	out.WriteString(renderStyledWords(line))
	return out.String()
}
