// Package textpack reads sample texts from plain files and YAML packs.
//
// A pack looks like:
//
//	texts:
//	  - name: pangrams
//	    text: The quick brown fox jumps over the lazy dog.
package textpack

import (
	"os"
	"strings"

	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"

	"github.com/verte-zerg/typesprint/internal/model"
)

type packFile struct {
	Texts []packEntry `yaml:"texts"`
}

type packEntry struct {
	Name string `yaml:"name"`
	Text string `yaml:"text"`
}

// LoadPlain returns the whole file as a sample text.
func LoadPlain(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", errors.Wrap(err, "failed to read text file")
	}
	text := string(data)
	if strings.TrimSpace(text) == "" {
		return "", errors.Newf("text file %s is empty", path)
	}
	return text, nil
}

// LoadPack reads a YAML pack of named texts.
func LoadPack(path string) ([]model.SampleText, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read text pack")
	}
	return ParsePack(data)
}

// ParsePack decodes and validates a YAML pack.
func ParsePack(data []byte) ([]model.SampleText, error) {
	var pack packFile
	if err := yaml.Unmarshal(data, &pack); err != nil {
		return nil, errors.Wrap(err, "failed to parse text pack")
	}
	if len(pack.Texts) == 0 {
		return nil, errors.New("text pack has no texts")
	}
	seen := make(map[string]struct{}, len(pack.Texts))
	out := make([]model.SampleText, 0, len(pack.Texts))
	for i, entry := range pack.Texts {
		name := strings.TrimSpace(entry.Name)
		if name == "" {
			return nil, errors.Newf("text #%d has no name", i+1)
		}
		if strings.TrimSpace(entry.Text) == "" {
			return nil, errors.Newf("text %q is empty", name)
		}
		if _, ok := seen[name]; ok {
			return nil, errors.Newf("duplicate text name %q", name)
		}
		seen[name] = struct{}{}
		out = append(out, model.SampleText{Name: name, Body: strings.TrimSpace(entry.Text)})
	}
	return out, nil
}
