// Package app is the interactive validation playground: type a
// tool-completion message, see exactly how the parser classifies and
// sanitizes it. Useful when adjusting front-end message formats.
package app

import (
	"fmt"
	"os"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/bhairavmehta/MathTeacherAgent/internal/toolresp"
	"github.com/bhairavmehta/MathTeacherAgent/internal/ui/components"
	"github.com/bhairavmehta/MathTeacherAgent/internal/ui/theme"
)

// Options configures the playground.
type Options struct {
	Responses toolresp.ResponseValidator
	SessionID string
}

// maxTranscript caps how many past validations stay on screen.
const maxTranscript = 6

// entry is one validated message and its outcome.
type entry struct {
	message string
	outcome toolresp.Outcome
}

// Model is the root Bubble Tea model for the playground.
type Model struct {
	opts       Options
	input      components.TextInput
	transcript []entry
	width      int
	height     int
}

func newModel(opts Options) Model {
	return Model{
		opts:  opts,
		input: components.NewTextInput("Type a tool-completion message and press enter", 500),
	}
}

func (m Model) Init() tea.Cmd {
	return m.input.Init()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "enter":
			text := strings.TrimSpace(m.input.Value())
			if text == "" {
				return m, nil
			}
			outcome := m.opts.Responses.ValidateResponse(toolresp.Text(text), m.opts.SessionID)
			m.transcript = append(m.transcript, entry{message: text, outcome: outcome})
			if len(m.transcript) > maxTranscript {
				m.transcript = m.transcript[len(m.transcript)-maxTranscript:]
			}
			m.input.Submit(outcome.IsValid)
			m.input.Reset()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	var b strings.Builder
	b.WriteString(theme.Title.Render("Math Teacher — validation playground"))
	b.WriteString("\n")
	b.WriteString(theme.Subtitle.Render(fmt.Sprintf("session %s · esc to quit", m.opts.SessionID)))
	b.WriteString("\n\n")

	for _, e := range m.transcript {
		b.WriteString(theme.Card.Render(renderEntry(e)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.input.View())

	v.SetContent(lipgloss.NewStyle().Padding(1, 2).Render(b.String()))
	return v
}

// renderEntry formats one message and its validation outcome.
func renderEntry(e entry) string {
	var b strings.Builder
	b.WriteString(theme.Body.Render("> " + e.message))
	b.WriteString("\n")

	o := e.outcome
	if o.Security {
		b.WriteString(theme.Security.Render("SECURITY") + " ")
	}
	if o.IsValid {
		b.WriteString(theme.Valid.Render("valid"))
		d := o.Data
		format := "structured"
		if !d.StructuredFormat {
			format = "legacy"
		}
		b.WriteString(theme.Body.Render(fmt.Sprintf("  method=%s problem=%q answer=%s (%s)",
			d.Method, d.Problem, d.Answer, format)))
	} else {
		b.WriteString(theme.Invalid.Render("invalid"))
		for _, errText := range o.Errors {
			b.WriteString("\n" + theme.Hint.Render("  ✗ "+errText))
		}
	}
	for _, w := range o.Warnings {
		b.WriteString("\n" + theme.Warn.Render("  ! "+w))
	}
	return b.String()
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
