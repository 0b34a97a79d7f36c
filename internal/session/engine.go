// Package session implements the typing-test state machine.
//
// An Engine owns the tokenized sample, the word cursor, keystroke counters and
// the countdown. It has no clock of its own: the caller forwards every change of
// the entry field to SubmitInput and calls Tick once per elapsed second.
// Calls made in a phase where they do not apply are silent no-ops.
package session

import (
	"strings"
	"unicode/utf8"

	"github.com/verte-zerg/typesprint/internal/model"
	"github.com/verte-zerg/typesprint/internal/stats"
)

// DefaultDuration is the countdown length in seconds used when none is configured.
const DefaultDuration = 60

// DefaultSampleText is the sample used when no other text is configured.
const DefaultSampleText = "The quick brown fox jumps over the lazy dog. " +
	"Pack my box with five dozen liquor jugs. " +
	"How vexingly quick daft zebras jump! " +
	"Sphinx of black quartz, judge my vow. " +
	"The five boxing wizards jump quickly."

// Phase is the lifecycle stage of a session.
type Phase int

const (
	// PhaseIdle means the session has not started yet.
	PhaseIdle Phase = iota
	// PhaseRunning means the countdown is active and input is accepted.
	PhaseRunning
	// PhaseFinished means time ran out or every word was typed.
	PhaseFinished
)

// String returns the lower-case name of the phase.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseRunning:
		return "running"
	case PhaseFinished:
		return "finished"
	default:
		return "unknown"
	}
}

// Snapshot holds the scores derived from the current state.
type Snapshot struct {
	WPM      float64
	Accuracy float64
}

// State is a copy of the mutable session record.
type State struct {
	Cursor            int
	Phase             Phase
	TimeRemaining     int
	TotalKeystrokes   int
	CorrectKeystrokes int
}

// SubmitResult reports the outcome of one SubmitInput call.
type SubmitResult struct {
	Advanced bool
	Snapshot Snapshot
	Phase    Phase
}

// TickResult reports the countdown after one Tick call.
type TickResult struct {
	TimeRemaining int
	Countdown     string
	Phase         Phase
}

// Display bundles every value a presentation layer renders verbatim.
type Display struct {
	Countdown    string
	Words        []string
	Highlight    int
	WPM          int
	Accuracy     int
	InputEnabled bool
	Phase        Phase
}

// Engine is the sole mutator of a session's state.
type Engine struct {
	words    []string
	targets  []string
	duration int

	state State
	trace model.Trace
}

// New tokenizes sampleText and returns an idle engine.
// A non-positive duration falls back to DefaultDuration.
func New(sampleText string, durationSeconds int) *Engine {
	if durationSeconds <= 0 {
		durationSeconds = DefaultDuration
	}
	words := strings.Fields(sampleText)
	targets := make([]string, len(words))
	for i, w := range words {
		targets[i] = normalize(w)
	}
	e := &Engine{
		words:    words,
		targets:  targets,
		duration: durationSeconds,
	}
	e.Reset()
	return e
}

// SubmitInput consumes the current content of the entry field.
func (e *Engine) SubmitInput(entry string) SubmitResult {
	if e.state.Phase == PhaseFinished {
		return SubmitResult{Snapshot: e.Snapshot(), Phase: e.state.Phase}
	}
	if e.state.Phase == PhaseIdle {
		e.state.Phase = PhaseRunning
		e.state.TimeRemaining = e.duration
	}
	if e.state.Cursor >= len(e.targets) {
		e.state.Phase = PhaseFinished
		return SubmitResult{Snapshot: e.Snapshot(), Phase: e.state.Phase}
	}

	candidate := normalize(entry)
	target := e.targets[e.state.Cursor]
	e.state.TotalKeystrokes += utf8.RuneCountInString(candidate)
	e.state.CorrectKeystrokes += positionalMatches(candidate, target)

	advanced := false
	if candidate == target {
		e.state.Cursor++
		advanced = true
	}
	if e.state.Cursor == len(e.targets) {
		e.state.Phase = PhaseFinished
	}
	return SubmitResult{Advanced: advanced, Snapshot: e.Snapshot(), Phase: e.state.Phase}
}

// Tick advances the countdown by one second while running.
func (e *Engine) Tick() TickResult {
	if e.state.Phase == PhaseRunning {
		if e.state.TimeRemaining > 0 {
			e.state.TimeRemaining--
		}
		snap := e.Snapshot()
		e.trace.WPM = append(e.trace.WPM, snap.WPM)
		e.trace.Accuracy = append(e.trace.Accuracy, snap.Accuracy)
		if e.state.TimeRemaining == 0 {
			e.state.Phase = PhaseFinished
		}
	}
	return TickResult{
		TimeRemaining: e.state.TimeRemaining,
		Countdown:     e.Countdown(),
		Phase:         e.state.Phase,
	}
}

// Reset returns the engine to an idle session at the first word.
func (e *Engine) Reset() State {
	e.state = State{
		Phase:         PhaseIdle,
		TimeRemaining: e.duration,
	}
	e.trace = model.Trace{}
	return e.state
}

// CurrentHighlightIndex returns the index of the expected word.
// It equals len(Words()) once every word has been typed.
func (e *Engine) CurrentHighlightIndex() int {
	return e.state.Cursor
}

// Snapshot computes the current scores.
func (e *Engine) Snapshot() Snapshot {
	return Snapshot{
		WPM:      stats.ComputeWPM(e.state.Cursor, e.elapsed(), e.duration),
		Accuracy: stats.ComputeAccuracy(e.state.CorrectKeystrokes, e.state.TotalKeystrokes),
	}
}

// State returns a copy of the session record.
func (e *Engine) State() State {
	return e.state
}

// Words returns the tokenized sample.
func (e *Engine) Words() []string {
	out := make([]string, len(e.words))
	copy(out, e.words)
	return out
}

// Duration returns the configured countdown length in seconds.
func (e *Engine) Duration() int {
	return e.duration
}

// Countdown returns the remaining time as MM:SS.
func (e *Engine) Countdown() string {
	return stats.FormatCountdown(e.state.TimeRemaining)
}

// InputEnabled reports whether the entry field should accept typing.
func (e *Engine) InputEnabled() bool {
	return e.state.Phase != PhaseFinished
}

// Trace returns the WPM and accuracy sampled at every tick of the current session.
func (e *Engine) Trace() model.Trace {
	return model.Trace{
		WPM:      append([]float64(nil), e.trace.WPM...),
		Accuracy: append([]float64(nil), e.trace.Accuracy...),
	}
}

// Display collects the values a presentation layer renders.
func (e *Engine) Display() Display {
	snap := e.Snapshot()
	return Display{
		Countdown:    e.Countdown(),
		Words:        e.Words(),
		Highlight:    e.state.Cursor,
		WPM:          stats.DisplayValue(snap.WPM),
		Accuracy:     stats.DisplayValue(snap.Accuracy),
		InputEnabled: e.InputEnabled(),
		Phase:        e.state.Phase,
	}
}

// Result summarizes the session for reporting.
func (e *Engine) Result() model.Result {
	snap := e.Snapshot()
	return model.Result{
		Phase:             e.state.Phase.String(),
		WordsCompleted:    e.state.Cursor,
		TotalWords:        len(e.words),
		CorrectKeystrokes: e.state.CorrectKeystrokes,
		TotalKeystrokes:   e.state.TotalKeystrokes,
		WPM:               snap.WPM,
		Accuracy:          snap.Accuracy,
		ElapsedSeconds:    e.elapsed(),
		DurationSeconds:   e.duration,
		Trace:             e.Trace(),
	}
}

func (e *Engine) elapsed() int {
	if e.state.Phase == PhaseIdle {
		return 0
	}
	return e.duration - e.state.TimeRemaining
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// positionalMatches counts positions where both strings hold the same rune,
// up to the length of the shorter one.
func positionalMatches(candidate, target string) int {
	c := []rune(candidate)
	t := []rune(target)
	n := len(c)
	if len(t) < n {
		n = len(t)
	}
	matches := 0
	for i := 0; i < n; i++ {
		if c[i] == t[i] {
			matches++
		}
	}
	return matches
}
