// Package sample decides which text a typing run uses.
package sample

import (
	"context"
	"fmt"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/verte-zerg/typesprint/internal/generator"
	"github.com/verte-zerg/typesprint/internal/model"
	"github.com/verte-zerg/typesprint/internal/session"
	"github.com/verte-zerg/typesprint/internal/textpack"
	"github.com/verte-zerg/typesprint/internal/wordlist"
)

// Library is the part of the text store the resolver needs.
type Library interface {
	GetText(ctx context.Context, name string) (model.SampleText, error)
	RandomText(ctx context.Context) (model.SampleText, error)
}

// Resolved is the chosen sample and where it came from.
type Resolved struct {
	Text   string
	Origin string
}

// Resolver picks a sample text from the configured sources.
type Resolver struct {
	Library   Library
	Generator *generator.Generator
}

// Resolve returns the first configured source in this order: inline text,
// text file, named library text, random library text, generated text.
// Without any of them the built-in default sample is used.
// Library may be nil when neither library source is configured.
func (r Resolver) Resolve(ctx context.Context, cfg model.Config) (Resolved, error) {
	switch {
	case strings.TrimSpace(cfg.Text) != "":
		return Resolved{Text: cfg.Text, Origin: "inline text"}, nil
	case cfg.TextFile != "":
		text, err := textpack.LoadPlain(cfg.TextFile)
		if err != nil {
			return Resolved{}, err
		}
		return Resolved{Text: text, Origin: "file " + cfg.TextFile}, nil
	case cfg.TextName != "":
		if r.Library == nil {
			return Resolved{}, errors.New("text library is not available")
		}
		text, err := r.Library.GetText(ctx, cfg.TextName)
		if err != nil {
			return Resolved{}, err
		}
		return Resolved{Text: text.Body, Origin: "library text " + text.Name}, nil
	case cfg.RandomText:
		if r.Library == nil {
			return Resolved{}, errors.New("text library is not available")
		}
		text, err := r.Library.RandomText(ctx)
		if err != nil {
			return Resolved{}, err
		}
		return Resolved{Text: text.Body, Origin: "library text " + text.Name}, nil
	case cfg.WordList != "":
		words, err := wordlist.LoadWords(cfg.WordList, wordlist.FilterForLang(cfg.Lang))
		if err != nil {
			return Resolved{}, err
		}
		gen := r.Generator
		if gen == nil {
			gen = generator.New(0)
		}
		return Resolved{
			Text:   gen.Generate(words, cfg.Words, cfg.CapsPct),
			Origin: fmt.Sprintf("%d words from %s", cfg.Words, cfg.WordList),
		}, nil
	default:
		return Resolved{Text: session.DefaultSampleText, Origin: "built-in sample"}, nil
	}
}

// NeedsLibrary reports whether cfg selects a text from the library.
func NeedsLibrary(cfg model.Config) bool {
	if strings.TrimSpace(cfg.Text) != "" || cfg.TextFile != "" {
		return false
	}
	return cfg.TextName != "" || cfg.RandomText
}
