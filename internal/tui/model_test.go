package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/verte-zerg/typesprint/internal/session"
)

func typeString(m *Model, s string) {
	for _, r := range s {
		m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

func TestTypingAdvancesAndClearsEntry(t *testing.T) {
	m := NewModel(session.New("cat dog", 60), "test")
	if _, ok := m.Result(); ok {
		t.Fatalf("expected no result before typing")
	}
	typeString(m, "cat")
	if got := m.engine.CurrentHighlightIndex(); got != 1 {
		t.Fatalf("expected highlight 1, got %d", got)
	}
	if m.input.Value() != "" {
		t.Fatalf("expected entry cleared, got %q", m.input.Value())
	}
	if m.engine.State().Phase != session.PhaseRunning {
		t.Fatalf("expected running phase")
	}
	if !m.Started() {
		t.Fatalf("expected started")
	}
}

func TestFinishDisablesInput(t *testing.T) {
	m := NewModel(session.New("cat dog", 60), "test")
	typeString(m, "catdog")
	if m.engine.State().Phase != session.PhaseFinished {
		t.Fatalf("expected finished phase")
	}
	if m.input.Focused() {
		t.Fatalf("expected entry blurred after finish")
	}
	before := m.engine.State()
	typeString(m, "x")
	if m.engine.State() != before {
		t.Fatalf("expected keystrokes ignored after finish")
	}
	res, ok := m.Result()
	if !ok {
		t.Fatalf("expected result after finish")
	}
	if res.WordsCompleted != 2 || res.TotalWords != 2 {
		t.Fatalf("unexpected words %d/%d", res.WordsCompleted, res.TotalWords)
	}
}

func TestTickCountsDown(t *testing.T) {
	m := NewModel(session.New("cat dog", 60), "test")
	typeString(m, "c")
	_, cmd := m.Update(tickMsg{gen: m.tickGen})
	if cmd == nil {
		t.Fatalf("expected next tick scheduled")
	}
	if got := m.engine.State().TimeRemaining; got != 59 {
		t.Fatalf("expected 59 seconds remaining, got %d", got)
	}
}

func TestTickIgnoredWhileIdle(t *testing.T) {
	m := NewModel(session.New("cat dog", 60), "test")
	_, cmd := m.Update(tickMsg{gen: m.tickGen})
	if cmd != nil {
		t.Fatalf("expected no tick while idle")
	}
	if got := m.engine.State().TimeRemaining; got != 60 {
		t.Fatalf("expected 60 seconds remaining, got %d", got)
	}
}

func TestResetDropsStaleTicks(t *testing.T) {
	m := NewModel(session.New("cat dog", 60), "test")
	typeString(m, "c")
	stale := m.tickGen
	m.Update(tea.KeyMsg{Type: tea.KeyCtrlR})
	if m.engine.State().Phase != session.PhaseIdle {
		t.Fatalf("expected idle after reset")
	}
	typeString(m, "c")
	_, cmd := m.Update(tickMsg{gen: stale})
	if cmd != nil {
		t.Fatalf("expected stale tick dropped")
	}
	if got := m.engine.State().TimeRemaining; got != 60 {
		t.Fatalf("expected 60 seconds remaining, got %d", got)
	}
}

func TestTimeExpiryFinishes(t *testing.T) {
	m := NewModel(session.New("cat dog", 2), "test")
	typeString(m, "c")
	m.Update(tickMsg{gen: m.tickGen})
	_, cmd := m.Update(tickMsg{gen: m.tickGen})
	if cmd != nil {
		t.Fatalf("expected no tick after expiry")
	}
	if m.engine.State().Phase != session.PhaseFinished {
		t.Fatalf("expected finished phase")
	}
	if m.input.Focused() {
		t.Fatalf("expected entry blurred after expiry")
	}
}

func TestQuitKey(t *testing.T) {
	m := NewModel(session.New("cat", 60), "test")
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if cmd == nil {
		t.Fatalf("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("expected tea.QuitMsg")
	}
}

func TestViewShowsCountdownAndScores(t *testing.T) {
	m := NewModel(session.New("cat dog", 60), "test")
	m.Update(tea.WindowSizeMsg{Width: 80, Height: 20})
	out := m.View()
	if !containsAll(out, []string{title, "cat", "dog", "01:00", "WPM 0", "Accuracy 0%"}) {
		t.Fatalf("view missing expected segments: %s", out)
	}
	typeString(m, "catdog")
	if !strings.Contains(m.View(), "finished") {
		t.Fatalf("expected finished notice in view")
	}
}

func TestWindowSizeSetsEntryWidth(t *testing.T) {
	m := NewModel(session.New("cat dog", 60), "test")
	m.Update(tea.WindowSizeMsg{Width: 80, Height: 20})
	want := 56 - len(m.input.Prompt) - len("00:00") - entryGap
	if m.input.Width != want {
		t.Fatalf("expected entry width %d, got %d", want, m.input.Width)
	}
	_ = m.View()
	if m.input.Width != want {
		t.Fatalf("expected View to leave the entry width alone, got %d", m.input.Width)
	}

	m.Update(tea.WindowSizeMsg{Width: 4, Height: 20})
	if m.input.Width != 1 {
		t.Fatalf("expected minimum entry width 1, got %d", m.input.Width)
	}
}

func containsAll(haystack string, needles []string) bool {
	for _, needle := range needles {
		if !strings.Contains(haystack, needle) {
			return false
		}
	}
	return true
}
