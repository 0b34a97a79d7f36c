// Package model defines shared data structures.
package model

import "time"

// Config defines the effective settings of a typing run.
type Config struct {
	Duration   int     `default:"60" validate:"min=1,max=3600"`
	Text       string  `validate:"-"`
	TextFile   string  `validate:"-"`
	TextName   string  `validate:"-"`
	RandomText bool    `validate:"-"`
	WordList   string  `validate:"-"`
	Lang       string  `default:"en" validate:"-"`
	Words      int     `default:"30" validate:"min=1,max=1000"`
	CapsPct    float64 `validate:"gte=0,lte=1"`
	LogLevel   string  `default:"info" validate:"oneof=debug info warn error"`
	LogFile    string  `validate:"-"`
}

// SampleText is a named text kept in the text library.
type SampleText struct {
	Name      string
	Body      string
	CreatedAt time.Time
}

// Result summarizes a typing session once the UI exits.
type Result struct {
	Phase             string
	WordsCompleted    int
	TotalWords        int
	CorrectKeystrokes int
	TotalKeystrokes   int
	WPM               float64
	Accuracy          float64
	ElapsedSeconds    int
	DurationSeconds   int
	Trace             Trace
}

// Trace holds the scores sampled once per second while a session runs.
// Both slices always have the same length.
type Trace struct {
	WPM      []float64
	Accuracy []float64
}

// Len returns the number of samples.
func (t Trace) Len() int {
	return len(t.WPM)
}
