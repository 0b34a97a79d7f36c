package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
	zlog "github.com/rs/zerolog/log"

	"github.com/verte-zerg/typesprint/internal/model"
	"github.com/verte-zerg/typesprint/internal/session"
)

const (
	title    = "Test your typing skills"
	entryGap = 2
)

// tickMsg carries the generation it was scheduled in; ticks from an
// earlier generation are dropped after a reset.
type tickMsg struct {
	gen int
}

// Model implements the Bubble Tea typing UI.
type Model struct {
	engine *session.Engine
	origin string
	runID  string

	input textinput.Model
	keys  keyMap
	help  help.Model

	width  int
	height int

	tickGen int
	started bool
}

var (
	wordStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0"))
	currentWordStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A")).Underline(true)
	titleStyle       = lipgloss.NewStyle().Bold(true)
	timerStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A")).Bold(true)
	finishedStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F"))
	footerStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
)

// NewModel constructs a typing TUI model around engine.
// origin names where the sample text came from and is only logged.
func NewModel(engine *session.Engine, origin string) *Model {
	input := textinput.New()
	input.Prompt = "> "
	input.Placeholder = "start typing to begin"
	input.CharLimit = 256
	input.Focus()

	m := &Model{
		engine: engine,
		origin: origin,
		runID:  uuid.NewString(),
		input:  input,
		keys:   defaultKeyMap(),
		help:   help.New(),
	}
	zlog.Debug().
		Str("run", m.runID).
		Str("origin", origin).
		Int("words", len(engine.Words())).
		Int("duration", engine.Duration()).
		Msg("session ready")
	return m
}

// Result returns the summary of the current session and whether it ever
// left the idle phase.
func (m *Model) Result() (model.Result, bool) {
	res := m.engine.Result()
	return res, res.Phase != session.PhaseIdle.String()
}

// Started reports whether any session in this program accepted input.
func (m *Model) Started() bool {
	return m.started
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.input.Width = entryWidth(contentWidth(msg.Width), m.input.Prompt)
		return m, nil
	case tickMsg:
		return m, m.handleTick(msg)
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Reset):
			m.reset()
			return m, textinput.Blink
		}
		if !m.engine.InputEnabled() {
			return m, nil
		}
		before := m.input.Value()
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		if m.input.Value() == before {
			return m, cmd
		}
		return m, tea.Batch(cmd, m.submit())
	default:
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
}

func (m *Model) submit() tea.Cmd {
	wasIdle := m.engine.State().Phase == session.PhaseIdle
	res := m.engine.SubmitInput(m.input.Value())
	if res.Advanced {
		m.input.Reset()
	}
	var cmd tea.Cmd
	if wasIdle && res.Phase != session.PhaseIdle {
		m.started = true
		zlog.Info().Str("run", m.runID).Msg("session started")
		if res.Phase == session.PhaseRunning {
			cmd = m.scheduleTick()
		}
	}
	if res.Phase == session.PhaseFinished {
		m.finish("all words typed")
	}
	return cmd
}

func (m *Model) handleTick(msg tickMsg) tea.Cmd {
	if msg.gen != m.tickGen {
		return nil
	}
	if m.engine.State().Phase != session.PhaseRunning {
		return nil
	}
	res := m.engine.Tick()
	if res.Phase == session.PhaseFinished {
		m.finish("time expired")
		return nil
	}
	return m.scheduleTick()
}

func (m *Model) scheduleTick() tea.Cmd {
	gen := m.tickGen
	return tea.Tick(time.Second, func(time.Time) tea.Msg {
		return tickMsg{gen: gen}
	})
}

func (m *Model) finish(reason string) {
	m.input.Blur()
	res := m.engine.Result()
	zlog.Info().
		Str("run", m.runID).
		Str("reason", reason).
		Float64("wpm", res.WPM).
		Float64("accuracy", res.Accuracy).
		Int("words", res.WordsCompleted).
		Msg("session finished")
}

func (m *Model) reset() {
	m.engine.Reset()
	m.tickGen++
	m.input.Reset()
	m.input.Focus()
	prev := m.runID
	m.runID = uuid.NewString()
	zlog.Info().Str("run", m.runID).Str("previous", prev).Msg("session reset")
}

// View implements tea.Model.
func (m *Model) View() string {
	d := m.engine.Display()
	words := buildStyledWords(d.Words, d.Highlight)
	if m.width == 0 || m.height == 0 {
		return strings.Join([]string{
			titleStyle.Render(title),
			renderStyledWords(words),
			m.renderEntry(d),
			m.renderStatus(d),
		}, "\n")
	}
	width := contentWidth(m.width)
	wrapped := wrapStyledWords(words, width)
	content := lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render(title),
		"",
		lipgloss.NewStyle().Width(width).Render(wrapped),
		"",
		m.renderEntry(d),
		m.renderStatus(d),
	)
	footer := footerStyle.Render(m.help.View(m.keys))
	if m.height < 3 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
	}
	body := lipgloss.Place(m.width, m.height-1, lipgloss.Center, lipgloss.Center, content)
	footerLine := lipgloss.Place(m.width, 1, lipgloss.Center, lipgloss.Center, footer)
	return body + "\n" + footerLine
}

// contentWidth is the share of the terminal used for the sample and the entry line.
func contentWidth(termWidth int) int {
	return max(int(float64(termWidth)*0.70), 1)
}

// entryWidth leaves room on the entry line for the prompt and the MM:SS countdown.
func entryWidth(width int, prompt string) int {
	return max(width-lipgloss.Width(prompt)-len("00:00")-entryGap, 1)
}

func (m *Model) renderEntry(d session.Display) string {
	return m.input.View() + strings.Repeat(" ", entryGap) + timerStyle.Render(d.Countdown)
}

func (m *Model) renderStatus(d session.Display) string {
	segments := []string{
		fmt.Sprintf("WPM %d", d.WPM),
		fmt.Sprintf("Accuracy %d%%", d.Accuracy),
	}
	status := footerStyle.Render(strings.Join(segments, " · "))
	if d.Phase == session.PhaseFinished {
		status += "  " + finishedStyle.Render("finished, ctrl+r to restart")
	}
	return status
}
