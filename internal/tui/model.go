// Package tui implements an interactive equity explorer: a Bubble Tea
// model grounded on the teacher's internal/tui.TUIModel (textinput +
// viewport layout, the same Update/View/Init shape), repurposed from
// driving a live poker game to driving repeated internal/equity.Compute
// calls against user-entered hole cards.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/lox/pokercore/internal/card"
	"github.com/lox/pokercore/internal/config"
	"github.com/lox/pokercore/internal/equity"
)

var (
	promptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// Model is the equity explorer's Bubble Tea model: an input line accepting
// space-separated hole-card pairs and an optional trailing board, and a
// scrollback viewport of past queries and their results.
type Model struct {
	input    textinput.Model
	history  viewport.Model
	lines    []string
	quitting bool
	width    int
	height   int
	defaults *config.Config
}

// New builds the equity explorer model. defaults sources the equity
// worker-pool size used for every query; a nil defaults falls back to
// config.Default().
func New(defaults *config.Config) *Model {
	if defaults == nil {
		defaults = config.Default()
	}

	ti := textinput.New()
	ti.Placeholder = "AsAc KdKh -- Td7s2h"
	ti.Focus()
	ti.CharLimit = 200
	ti.Prompt = "> "
	ti.PromptStyle = promptStyle

	vp := viewport.New(80, 20)

	return &Model{
		input:    ti,
		history:  vp,
		lines:    []string{"Enter hole-card pairs separated by spaces, optionally ending with '-- <board>'."},
		defaults: defaults,
	}
}

func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.history.Width = msg.Width
		m.history.Height = msg.Height - 3

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.quitting = true
			return m, tea.Quit
		case "enter":
			m.submit(m.input.Value())
			m.input.SetValue("")
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	cmds = append(cmds, cmd)
	m.history, cmd = m.history.Update(msg)
	cmds = append(cmds, cmd)

	m.history.SetContent(strings.Join(m.lines, "\n"))
	m.history.GotoBottom()

	return m, tea.Batch(cmds...)
}

func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	return fmt.Sprintf("%s\n%s\n%s",
		m.history.View(),
		m.input.View(),
		helpStyle.Render("enter: compute equity · esc: quit"))
}

// submit parses one query line and appends its result (or error) to the
// scrollback. A trailing "-- <board>" segment specifies community cards.
func (m *Model) submit(line string) {
	line = strings.TrimSpace(line)
	if line == "" {
		return
	}
	m.lines = append(m.lines, promptStyle.Render("> "+line))

	handPart, boardPart, _ := strings.Cut(line, "--")
	fields := strings.Fields(handPart)
	if len(fields) < 2 {
		m.lines = append(m.lines, errorStyle.Render("need at least 2 hole-card pairs"))
		return
	}

	holes := make([][2]card.Card, 0, len(fields))
	for _, f := range fields {
		cards, err := card.ParseAll(f)
		if err != nil || len(cards) != 2 {
			m.lines = append(m.lines, errorStyle.Render(fmt.Sprintf("invalid hand %q", f)))
			return
		}
		holes = append(holes, [2]card.Card{cards[0], cards[1]})
	}

	var board []card.Card
	if boardStr := strings.TrimSpace(boardPart); boardStr != "" {
		parsed, err := card.ParseAll(boardStr)
		if err != nil {
			m.lines = append(m.lines, errorStyle.Render(fmt.Sprintf("invalid board %q", boardStr)))
			return
		}
		board = parsed
	}

	result, err := equity.Compute(holes, board, equity.WithMaxWorkers(m.defaults.Equity.MaxWorkers))
	if err != nil {
		m.lines = append(m.lines, errorStyle.Render(err.Error()))
		return
	}

	for i, hole := range holes {
		m.lines = append(m.lines, fmt.Sprintf("  %s%s: %.2f%%", hole[0], hole[1], result.Equity(i)*100))
	}
}
