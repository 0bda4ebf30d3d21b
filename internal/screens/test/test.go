package test

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"quizdeck/internal/history"
	"quizdeck/internal/router"
	"quizdeck/internal/screen"
	"quizdeck/internal/service"
	"quizdeck/internal/session"
	"quizdeck/internal/ui/components"
	"quizdeck/internal/ui/layout"
	"quizdeck/internal/ui/theme"
)

// FinishedMsg is emitted when the test completes. The app replaces this
// screen with the results screen for the record.
type FinishedMsg struct {
	Record history.Record
}

// TestScreen runs the active session: one question at a time, answer
// reveal, navigation, pause and cancel.
type TestScreen struct {
	svc     *service.Service
	sess    *session.Session
	options components.OptionList
	confirm *components.Confirm
	clamped bool
	errMsg  string
}

var _ screen.Screen = (*TestScreen)(nil)
var _ screen.KeyHintProvider = (*TestScreen)(nil)

// New creates a test screen over an already started session. clamped shows
// a one-line notice that the requested size exceeded the bank.
func New(svc *service.Service, sess *session.Session, clamped bool) *TestScreen {
	s := &TestScreen{svc: svc, sess: sess, clamped: clamped}
	s.loadCurrent()
	return s
}

// loadCurrent rebuilds the option list for the current question, revealing
// it if the question was already answered (resume, or back navigation).
func (s *TestScreen) loadCurrent() {
	q := s.sess.Current()
	s.options = components.NewOptionList(q.Options, q.CorrectAnswer)
	if ans, ok := s.sess.AnswerFor(q.ID); ok {
		s.options.Reveal(ans)
	}
}

func (s *TestScreen) Init() tea.Cmd {
	return nil
}

func (s *TestScreen) Title() string {
	return s.sess.Theme
}

func (s *TestScreen) KeyHints() []layout.KeyHint {
	if s.confirm != nil {
		return []layout.KeyHint{
			{Key: "y/n", Description: "Confirm"},
		}
	}
	hints := []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
	}
	if s.options.Revealed {
		hints[1] = layout.KeyHint{Key: "Enter", Description: "Next"}
	}
	hints = append(hints,
		layout.KeyHint{Key: "←", Description: "Previous"},
		layout.KeyHint{Key: "s", Description: "Save for later"},
		layout.KeyHint{Key: "Esc", Description: "Cancel"},
	)
	return hints
}

func (s *TestScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if s.confirm != nil {
		c, answered, yes := s.confirm.Update(msg)
		s.confirm = &c
		if answered {
			s.confirm = nil
			if yes {
				if err := s.svc.Cancel(); err != nil {
					s.errMsg = err.Error()
					return s, nil
				}
				return s, func() tea.Msg { return router.PopScreenMsg{} }
			}
		}
		return s, nil
	}

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}
	s.errMsg = ""

	switch kmsg.String() {
	case "esc":
		c := components.NewConfirm("Cancel this test? Progress will be lost.")
		s.confirm = &c
		return s, nil

	case "s":
		if _, err := s.svc.Pause(); err != nil {
			s.errMsg = err.Error()
			return s, nil
		}
		return s, func() tea.Msg { return router.PopScreenMsg{} }

	case "left", "p":
		if err := s.svc.Prev(); err != nil {
			s.errMsg = err.Error()
			return s, nil
		}
		s.loadCurrent()
		return s, nil

	case "enter", "right", "n":
		if !s.options.Revealed && kmsg.String() == "enter" {
			ans, err := s.svc.Answer(s.options.Selected)
			if err != nil {
				s.errMsg = err.Error()
				return s, nil
			}
			s.options.Reveal(ans)
			return s, nil
		}
		rec, err := s.svc.Next()
		if err != nil {
			s.errMsg = err.Error()
			return s, nil
		}
		if rec != nil {
			finished := *rec
			return s, func() tea.Msg { return FinishedMsg{Record: finished} }
		}
		s.loadCurrent()
		return s, nil
	}

	var cmd tea.Cmd
	s.options, cmd = s.options.Update(msg)
	return s, cmd
}

func (s *TestScreen) View(width, height int) string {
	var b strings.Builder
	b.WriteString("\n")

	progress := fmt.Sprintf("Question %d of %d        Correct so far: %d",
		s.sess.CurrentIndex+1, s.sess.Len(), s.sess.CorrectCount())
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(progress))
	b.WriteString("\n")

	if s.clamped {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Accent).
			Italic(true).
			Render("Not enough questions for the requested size; using the whole bank."))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	q := s.sess.Current()

	themeLine := lipgloss.NewStyle().Foreground(theme.Secondary).Render(q.Theme)
	prompt := lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(q.Prompt)
	card := theme.CardStyle().Width(min(width-8, 72)).Render(themeLine + "\n\n" + prompt + "\n\n" + s.options.View())
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, card))
	b.WriteString("\n")

	if s.options.Revealed {
		msg := "Correct!"
		style := theme.CorrectStyle()
		if ans, ok := s.sess.AnswerFor(q.ID); ok && !ans.IsCorrect {
			msg = "Incorrect. The correct answer is highlighted."
			style = theme.IncorrectStyle()
		}
		b.WriteString("\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(msg)))
		b.WriteString("\n")
	}

	if s.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.Error).Render(s.errMsg)))
		b.WriteString("\n")
	}

	if s.confirm != nil {
		b.WriteString("\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.confirm.View()))
		b.WriteString("\n")
	}

	return b.String()
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
