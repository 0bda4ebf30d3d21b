package results

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"quizdeck/internal/history"
	"quizdeck/internal/router"
	"quizdeck/internal/screen"
	"quizdeck/internal/screens/test"
	"quizdeck/internal/service"
	"quizdeck/internal/testbuilder"
	"quizdeck/internal/ui/layout"
	"quizdeck/internal/ui/theme"
)

// ResultsScreen shows the score of a finished test and offers the retest
// flows over it.
type ResultsScreen struct {
	svc    *service.Service
	record history.Record
	result history.Result
	notice string
}

var _ screen.Screen = (*ResultsScreen)(nil)
var _ screen.KeyHintProvider = (*ResultsScreen)(nil)

// New creates a results screen for a finished test record.
func New(svc *service.Service, record history.Record) *ResultsScreen {
	return &ResultsScreen{
		svc:    svc,
		record: record,
		result: history.Score(record),
	}
}

func (s *ResultsScreen) Init() tea.Cmd {
	return nil
}

func (s *ResultsScreen) Title() string {
	return "Results"
}

func (s *ResultsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "a", Description: "Retest all"},
		{Key: "i", Description: "Review incorrect"},
		{Key: "Enter", Description: "Home"},
	}
}

func (s *ResultsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	switch kmsg.String() {
	case "enter", "esc":
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	case "a":
		sess, err := s.svc.RetestAll()
		if err != nil {
			s.notice = retestNotice(err)
			return s, nil
		}
		return s, func() tea.Msg {
			return router.ReplaceScreenMsg{Screen: test.New(s.svc, sess, false)}
		}
	case "i":
		sess, err := s.svc.RetestIncorrect()
		if err != nil {
			s.notice = retestNotice(err)
			return s, nil
		}
		return s, func() tea.Msg {
			return router.ReplaceScreenMsg{Screen: test.New(s.svc, sess, false)}
		}
	}
	return s, nil
}

func retestNotice(err error) string {
	switch {
	case errors.Is(err, testbuilder.ErrNothingToReview):
		return "Nothing to review: every answer was correct."
	case errors.Is(err, testbuilder.ErrNoHistory):
		return "This test left no question snapshot to retest."
	default:
		return err.Error()
	}
}

func (s *ResultsScreen) View(width, height int) string {
	var b strings.Builder
	b.WriteString("\n")

	verdict := "Test complete!"
	verdictColor := theme.Primary
	if s.result.Percent >= 80 {
		verdict = "Great score!"
		verdictColor = theme.Success
	} else if s.result.Percent < 50 {
		verdict = "Keep practicing."
		verdictColor = theme.Accent
	}
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(verdictColor).
		Bold(true).
		Render(verdict))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(s.record.Theme))
	b.WriteString("\n\n")

	scoreLine := fmt.Sprintf("Correct: %d / %d        Score: %d%%",
		s.result.Correct, s.result.Total, s.result.Percent)
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Render(scoreLine))
	b.WriteString("\n\n")

	if len(s.result.PerTheme) > 1 {
		divider := lipgloss.NewStyle().Foreground(theme.Border).Render(
			strings.Repeat("─", min(width-8, 60)))
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.TextDim).Render("By theme")))
		b.WriteString("\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, divider))
		b.WriteString("\n\n")

		for _, name := range sortedThemes(s.result.PerTheme) {
			ts := s.result.PerTheme[name]
			line := fmt.Sprintf("  %-20s %d/%d   %d%%", name, ts.Correct, ts.Total, ts.Percent)
			b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
				lipgloss.NewStyle().Foreground(theme.Text).Render(line)))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	if s.notice != "" {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Accent).
			Italic(true).
			Render(s.notice))
		b.WriteString("\n")
	}

	return b.String()
}

func sortedThemes(m map[string]history.ThemeStat) []string {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
