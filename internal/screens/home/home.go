package home

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"quizdeck/internal/history"
	"quizdeck/internal/router"
	"quizdeck/internal/saved"
	"quizdeck/internal/screen"
	"quizdeck/internal/screens/questions"
	"quizdeck/internal/screens/randomopts"
	"quizdeck/internal/screens/stats"
	"quizdeck/internal/screens/test"
	"quizdeck/internal/screens/themes"
	"quizdeck/internal/service"
	"quizdeck/internal/ui/components"
	"quizdeck/internal/ui/layout"
	"quizdeck/internal/ui/theme"
)

const recentShown = 3

// HomeScreen is the entry point: the main menu, resumable saved tests and
// the most recent results.
type HomeScreen struct {
	svc        *service.Service
	menu       components.Menu
	savedCount int
	errMsg     string
}

var _ screen.Screen = (*HomeScreen)(nil)
var _ screen.KeyHintProvider = (*HomeScreen)(nil)

// New creates the home screen.
func New(svc *service.Service) *HomeScreen {
	h := &HomeScreen{svc: svc, savedCount: -1}
	h.syncMenu()
	return h
}

// syncMenu rebuilds the menu when the saved-test list changed underneath
// it, keeping the cursor where possible.
func (h *HomeScreen) syncMenu() {
	entries := h.svc.Saved().Entries()
	if len(entries) == h.savedCount {
		return
	}
	h.savedCount = len(entries)

	items := []components.MenuItem{
		{Label: "RANDOM TEST", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: randomopts.New(h.svc)}
			}
		}},
		{Label: "TEST BY THEME", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: themes.New(h.svc)}
			}
		}},
		{Label: "QUESTIONS", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: questions.New(h.svc)}
			}
		}},
		{Label: "STATISTICS", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: stats.New(h.svc)}
			}
		}},
	}

	for _, e := range entries {
		entry := e
		items = append(items, components.MenuItem{
			Label: resumeLabel(entry),
			Action: func() tea.Cmd {
				sess, err := h.svc.Resume(entry.ID)
				if err != nil {
					h.errMsg = err.Error()
					return nil
				}
				return func() tea.Msg {
					return router.PushScreenMsg{Screen: test.New(h.svc, sess, false)}
				}
			},
		})
	}

	items = append(items, components.MenuItem{Label: "QUIT", Action: func() tea.Cmd {
		return tea.Quit
	}})

	selected := h.menu.Selected
	h.menu = components.NewMenu(items)
	if selected > 0 && selected < len(items) {
		h.menu.Selected = selected
	}
}

func resumeLabel(e saved.Entry) string {
	return fmt.Sprintf("RESUME: %s (%d/%d, %s)",
		e.Session.Theme,
		len(e.Session.Answers),
		len(e.Session.Questions),
		e.SavedAt.Format("Jan 02 15:04"))
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Title() string {
	return "Home"
}

func (h *HomeScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "t", Description: "Dark/light"},
	}
	if h.selectedSavedIndex() >= 0 {
		hints = append(hints, layout.KeyHint{Key: "x", Description: "Delete saved"})
	}
	hints = append(hints, layout.KeyHint{Key: "q", Description: "Quit"})
	return hints
}

// selectedSavedIndex maps the menu cursor onto the saved entries, -1 when
// the cursor is not on one.
func (h *HomeScreen) selectedSavedIndex() int {
	const fixedAbove = 4 // random, themes, questions, stats
	i := h.menu.Selected - fixedAbove
	if i >= 0 && i < h.savedCount {
		return i
	}
	return -1
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	h.syncMenu()

	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "q":
			return h, tea.Quit
		case "t":
			if err := h.svc.SetDarkMode(!h.svc.DarkMode()); err != nil {
				h.errMsg = err.Error()
				return h, nil
			}
			theme.SetDark(h.svc.DarkMode())
			return h, nil
		case "x":
			if i := h.selectedSavedIndex(); i >= 0 {
				entry := h.svc.Saved().Entries()[i]
				if err := h.svc.DeleteSaved(entry.ID); err != nil {
					h.errMsg = err.Error()
					return h, nil
				}
				h.syncMenu()
			}
			return h, nil
		}
	}

	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	h.syncMenu()

	var b strings.Builder
	b.WriteString("\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Bold(true).
		Render("QUIZDECK"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("Study, test, repeat."))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		theme.CardStyle().Width(min(width-8, 56)).Render(h.menu.View())))
	b.WriteString("\n")

	if recent := h.svc.History().Recent(recentShown); len(recent) > 0 {
		b.WriteString("\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.TextDim).Render("Recent results")))
		b.WriteString("\n")
		for _, rec := range recent {
			res := history.Score(rec)
			line := fmt.Sprintf("  %s  %s  %d/%d (%d%%)",
				rec.EndTime.Format("Jan 02"), rec.Theme, res.Correct, res.Total, res.Percent)
			b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
				lipgloss.NewStyle().Foreground(theme.Text).Render(line)))
			b.WriteString("\n")
		}
	}

	if h.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.Error).Render(h.errMsg)))
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
