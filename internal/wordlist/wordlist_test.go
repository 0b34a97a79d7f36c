package wordlist

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadWordsFilters(t *testing.T) {
	path := filepath.Join(t.TempDir(), "en.txt")
	if err := os.WriteFile(path, []byte("the\n\n  quick \nCo-op\nfox\n"), 0o644); err != nil {
		t.Fatalf("write word list: %v", err)
	}

	words, err := LoadWords(path, FilterForLang("en"))
	if err != nil {
		t.Fatalf("LoadWords failed: %v", err)
	}
	expected := []string{"the", "quick", "fox"}
	if len(words) != len(expected) {
		t.Fatalf("expected %d words, got %v", len(expected), words)
	}
	for i, word := range expected {
		if words[i] != word {
			t.Fatalf("expected %q at index %d, got %q", word, i, words[i])
		}
	}
}

func TestLoadWordsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.txt")
	if err := os.WriteFile(path, []byte("Upper\n\n"), 0o644); err != nil {
		t.Fatalf("write word list: %v", err)
	}
	if _, err := LoadWords(path, FilterForLang("en")); err == nil {
		t.Fatalf("expected error for list with no usable words")
	}
}

func TestLoadWordsMissing(t *testing.T) {
	if _, err := LoadWords(filepath.Join(t.TempDir(), "nope.txt"), nil); err == nil {
		t.Fatalf("expected error for missing file")
	}
}
