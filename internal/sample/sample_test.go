package sample

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/verte-zerg/typesprint/internal/generator"
	"github.com/verte-zerg/typesprint/internal/model"
	"github.com/verte-zerg/typesprint/internal/session"
)

var errMissing = errors.New("missing")

type fakeLibrary struct {
	texts map[string]string
}

func (f fakeLibrary) GetText(_ context.Context, name string) (model.SampleText, error) {
	body, ok := f.texts[name]
	if !ok {
		return model.SampleText{}, errMissing
	}
	return model.SampleText{Name: name, Body: body}, nil
}

func (f fakeLibrary) RandomText(_ context.Context) (model.SampleText, error) {
	for name, body := range f.texts {
		return model.SampleText{Name: name, Body: body}, nil
	}
	return model.SampleText{}, errMissing
}

func TestResolveDefault(t *testing.T) {
	res, err := Resolver{}.Resolve(context.Background(), model.Config{})
	require.NoError(t, err)
	assert.Equal(t, session.DefaultSampleText, res.Text)
	assert.Equal(t, "built-in sample", res.Origin)
}

func TestResolvePrecedence(t *testing.T) {
	dir := t.TempDir()
	textFile := filepath.Join(dir, "sample.txt")
	require.NoError(t, os.WriteFile(textFile, []byte("from the file"), 0o644))
	wordFile := filepath.Join(dir, "en.txt")
	require.NoError(t, os.WriteFile(wordFile, []byte("alpha\nbeta\ngamma\n"), 0o644))

	r := Resolver{
		Library:   fakeLibrary{texts: map[string]string{"fox": "quick brown fox"}},
		Generator: generator.New(5),
	}
	ctx := context.Background()

	res, err := r.Resolve(ctx, model.Config{Text: "inline words", TextFile: textFile, TextName: "fox"})
	require.NoError(t, err)
	assert.Equal(t, "inline words", res.Text)

	res, err = r.Resolve(ctx, model.Config{TextFile: textFile, TextName: "fox"})
	require.NoError(t, err)
	assert.Equal(t, "from the file", res.Text)

	res, err = r.Resolve(ctx, model.Config{TextName: "fox", WordList: wordFile})
	require.NoError(t, err)
	assert.Equal(t, "quick brown fox", res.Text)
	assert.Equal(t, "library text fox", res.Origin)

	res, err = r.Resolve(ctx, model.Config{RandomText: true})
	require.NoError(t, err)
	assert.Equal(t, "quick brown fox", res.Text)

	res, err = r.Resolve(ctx, model.Config{WordList: wordFile, Lang: "en", Words: 4})
	require.NoError(t, err)
	assert.Len(t, strings.Fields(res.Text), 4)
}

func TestResolveErrors(t *testing.T) {
	ctx := context.Background()

	_, err := Resolver{}.Resolve(ctx, model.Config{TextName: "fox"})
	assert.Error(t, err)

	r := Resolver{Library: fakeLibrary{}}
	_, err = r.Resolve(ctx, model.Config{TextName: "fox"})
	assert.True(t, errors.Is(err, errMissing))

	_, err = r.Resolve(ctx, model.Config{TextFile: filepath.Join(t.TempDir(), "none.txt")})
	assert.Error(t, err)
}

func TestNeedsLibrary(t *testing.T) {
	assert.False(t, NeedsLibrary(model.Config{}))
	assert.True(t, NeedsLibrary(model.Config{TextName: "fox"}))
	assert.True(t, NeedsLibrary(model.Config{RandomText: true}))
	assert.False(t, NeedsLibrary(model.Config{Text: "x", RandomText: true}))
	assert.False(t, NeedsLibrary(model.Config{TextFile: "a.txt", TextName: "fox"}))
}
