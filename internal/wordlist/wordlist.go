// Package wordlist loads word lists from files.
package wordlist

import (
	"bufio"
	"os"
	"strings"

	"github.com/cockroachdb/errors"
)

// LoadWords reads one word per line and keeps the words accepted by filter.
// A nil filter keeps every word.
func LoadWords(path string, filter FilterFunc) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open word list")
	}
	defer func() {
		if cerr := file.Close(); cerr != nil {
			// Best-effort close for read-only word list.
			_ = cerr
		}
	}()

	var words []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if filter != nil && !filter(line) {
			continue
		}
		words = append(words, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "failed to read word list")
	}
	if len(words) == 0 {
		return nil, errors.Newf("word list %s is empty", path)
	}
	return words, nil
}
