package tui

import (
	"strings"
	"testing"
)

func plainWords(words ...string) []styledWord {
	out := make([]styledWord, len(words))
	for i, w := range words {
		out[i] = styledWord{s: w, width: len(w)}
	}
	return out
}

func TestBuildStyledWordsHighlight(t *testing.T) {
	source := []string{"one", "two", "three"}
	words := buildStyledWords(source, 1)
	if len(words) != 3 {
		t.Fatalf("expected 3 words, got %d", len(words))
	}
	if words[1].s != currentWordStyle.Render("two") {
		t.Fatalf("expected current style for second word")
	}
	for _, i := range []int{0, 2} {
		if words[i].s != wordStyle.Render(source[i]) {
			t.Fatalf("expected plain style for word %d", i)
		}
	}
	if words[2].width != 5 {
		t.Fatalf("expected width 5, got %d", words[2].width)
	}
}

func TestBuildStyledWordsNoHighlightWhenComplete(t *testing.T) {
	source := []string{"one", "two"}
	words := buildStyledWords(source, len(source))
	for i, w := range words {
		if w.s != wordStyle.Render(source[i]) {
			t.Fatalf("expected plain style for word %d", i)
		}
	}
}

func TestBuildStyledWordsWideRunes(t *testing.T) {
	words := buildStyledWords([]string{"日本"}, 0)
	if words[0].width != 4 {
		t.Fatalf("expected width 4, got %d", words[0].width)
	}
}

func TestWrapStyledWordsBreaksBetweenWords(t *testing.T) {
	out := wrapStyledWords(plainWords("aa", "bb", "cc", "dd"), 5)
	want := "aa bb\ncc dd"
	if out != want {
		t.Fatalf("expected %q, got %q", want, out)
	}
}

func TestWrapStyledWordsLongWord(t *testing.T) {
	out := wrapStyledWords(plainWords("a", "abcdefgh", "b"), 4)
	lines := strings.Split(out, "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %q", out)
	}
	if lines[1] != "abcdefgh" {
		t.Fatalf("expected long word on its own line, got %q", lines[1])
	}
}

func TestWrapStyledWordsNoWidth(t *testing.T) {
	out := wrapStyledWords(plainWords("a", "b"), 0)
	if out != "a b" {
		t.Fatalf("expected single line, got %q", out)
	}
}
