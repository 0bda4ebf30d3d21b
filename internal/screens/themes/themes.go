package themes

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"quizdeck/internal/bank"
	"quizdeck/internal/router"
	"quizdeck/internal/screen"
	"quizdeck/internal/screens/test"
	"quizdeck/internal/service"
	"quizdeck/internal/testbuilder"
	"quizdeck/internal/ui/components"
	"quizdeck/internal/ui/layout"
	"quizdeck/internal/ui/theme"
)

// ThemesScreen lets the user pick one or more themes (or all of them) and
// start a test over the selection.
type ThemesScreen struct {
	svc       *service.Service
	checklist components.Checklist
	themes    []bank.ThemeCount
	errMsg    string
}

var _ screen.Screen = (*ThemesScreen)(nil)
var _ screen.KeyHintProvider = (*ThemesScreen)(nil)

// New creates the theme picker over the bank's current themes.
func New(svc *service.Service) *ThemesScreen {
	themes := svc.Bank().Themes()
	names := make([]string, 0, len(themes))
	display := make([]string, 0, len(themes))
	for _, tc := range themes {
		names = append(names, tc.Name)
		display = append(display, fmt.Sprintf("%s (%d)", tc.Name, tc.Count))
	}
	checklist := components.NewChecklist(testbuilder.AllThemesLabel, names)
	checklist.Display = display
	return &ThemesScreen{
		svc:       svc,
		checklist: checklist,
		themes:    themes,
	}
}

func (s *ThemesScreen) Init() tea.Cmd {
	return nil
}

func (s *ThemesScreen) Title() string {
	return "Test by Theme"
}

func (s *ThemesScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Space", Description: "Toggle"},
		{Key: "Enter", Description: "Start"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *ThemesScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "enter":
			selection := s.checklist.Selected()
			if s.checklist.AllSelected() {
				selection = []string{testbuilder.AllThemes}
			}
			sess, err := s.svc.StartByThemes(selection)
			if err != nil {
				s.errMsg = startNotice(err)
				return s, nil
			}
			return s, func() tea.Msg {
				return router.ReplaceScreenMsg{Screen: test.New(s.svc, sess, false)}
			}
		}
	}

	var cmd tea.Cmd
	s.checklist, cmd = s.checklist.Update(msg)
	s.errMsg = ""
	return s, cmd
}

func startNotice(err error) string {
	switch err {
	case testbuilder.ErrNoThemeSelected:
		return "Select at least one theme."
	case testbuilder.ErrNoMatchingQuestions:
		return "No questions match the selected themes."
	case testbuilder.ErrEmptyBank:
		return "The question bank is empty. Import questions first."
	default:
		return err.Error()
	}
}

func (s *ThemesScreen) View(width, height int) string {
	var b strings.Builder
	b.WriteString("\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("Pick the themes to be tested on."))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		theme.CardStyle().Width(min(width-8, 56)).Render(s.checklist.View())))
	b.WriteString("\n\n")

	total := 0
	for _, tc := range s.themes {
		total += tc.Count
	}
	summary := fmt.Sprintf("%d themes, %d questions in the bank", len(s.themes), total)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.TextDim).Render(summary)))
	b.WriteString("\n")

	if s.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.Error).Render(s.errMsg)))
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
