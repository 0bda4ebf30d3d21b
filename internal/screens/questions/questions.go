package questions

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"quizdeck/internal/bank"
	"quizdeck/internal/router"
	"quizdeck/internal/screen"
	"quizdeck/internal/service"
	"quizdeck/internal/session"
	"quizdeck/internal/ui/components"
	"quizdeck/internal/ui/layout"
	"quizdeck/internal/ui/theme"
)

const pageSize = 8

// QuestionsScreen browses the bank with live search and edits questions in
// place.
type QuestionsScreen struct {
	svc      *service.Service
	search   components.TextInput
	matches  []bank.Question
	selected int

	editing *editForm
	notice  string
}

var _ screen.Screen = (*QuestionsScreen)(nil)
var _ screen.KeyHintProvider = (*QuestionsScreen)(nil)

// New creates the question browser.
func New(svc *service.Service) *QuestionsScreen {
	s := &QuestionsScreen{
		svc:    svc,
		search: components.NewTextInput("Search prompt or theme...", false, 64),
	}
	s.refresh()
	return s
}

func (s *QuestionsScreen) refresh() {
	s.matches = s.svc.Bank().Search(s.search.Value())
	if s.selected >= len(s.matches) {
		s.selected = len(s.matches) - 1
	}
	if s.selected < 0 {
		s.selected = 0
	}
}

func (s *QuestionsScreen) Init() tea.Cmd {
	return s.search.Init()
}

func (s *QuestionsScreen) Title() string {
	return "Questions"
}

func (s *QuestionsScreen) KeyHints() []layout.KeyHint {
	if s.editing != nil {
		return []layout.KeyHint{
			{Key: "Tab", Description: "Next field"},
			{Key: "Enter", Description: "Save"},
			{Key: "Esc", Description: "Discard"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Edit"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *QuestionsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if s.editing != nil {
		return s.updateEdit(msg)
	}

	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "up":
			if s.selected > 0 {
				s.selected--
			}
			return s, nil
		case "down":
			if s.selected < len(s.matches)-1 {
				s.selected++
			}
			return s, nil
		case "enter":
			if s.selected < len(s.matches) {
				s.editing = newEditForm(s.matches[s.selected])
				s.notice = ""
			}
			return s, nil
		}
	}

	var cmd tea.Cmd
	s.search, cmd = s.search.Update(msg)
	s.refresh()
	return s, cmd
}

func (s *QuestionsScreen) updateEdit(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "esc":
			s.editing = nil
			return s, nil
		case "tab", "down":
			s.editing.focusNext()
			return s, nil
		case "shift+tab", "up":
			s.editing.focusPrev()
			return s, nil
		case "enter":
			if err := s.editing.save(s.svc); err != nil {
				s.editing.errMsg = err.Error()
				return s, nil
			}
			s.editing = nil
			s.notice = "Question saved."
			s.refresh()
			return s, nil
		}
	}

	cmd := s.editing.update(msg)
	return s, cmd
}

func (s *QuestionsScreen) View(width, height int) string {
	if s.editing != nil {
		return s.editing.view(width)
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.search.View()))
	b.WriteString("\n\n")

	if len(s.matches) == 0 {
		b.WriteString(lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("No questions match."))
		return b.String()
	}

	// Window the list around the selection.
	start := s.selected - pageSize/2
	if start > len(s.matches)-pageSize {
		start = len(s.matches) - pageSize
	}
	if start < 0 {
		start = 0
	}
	end := start + pageSize
	if end > len(s.matches) {
		end = len(s.matches)
	}

	for i := start; i < end; i++ {
		q := s.matches[i]
		prompt := q.Prompt
		if len(prompt) > 56 {
			prompt = prompt[:53] + "..."
		}
		line := fmt.Sprintf("  %-12s %s", q.Theme, prompt)
		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == s.selected {
			line = "▸" + line[1:]
			style = style.Foreground(theme.Primary).Bold(true)
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(line)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	counter := fmt.Sprintf("%d of %d questions", len(s.matches), s.svc.Bank().Size())
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.TextDim).Render(counter)))
	b.WriteString("\n")

	if s.notice != "" {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.Success).Render(s.notice)))
		b.WriteString("\n")
	}

	return b.String()
}

// editForm edits one question field by field.
type editForm struct {
	id      string
	labels  []string
	inputs  []components.TextInput
	focused int
	errMsg  string
}

func newEditForm(q bank.Question) *editForm {
	f := &editForm{id: q.ID}

	add := func(label, value string) {
		in := components.NewTextInput(label, false, 200)
		in.Model.SetValue(value)
		in.Model.Blur()
		f.labels = append(f.labels, label)
		f.inputs = append(f.inputs, in)
	}

	add("Theme", q.Theme)
	add("Prompt", q.Prompt)
	for i := 0; i < bank.MaxOptions; i++ {
		value := ""
		if i < len(q.Options) {
			value = q.Options[i]
		}
		add("Option "+session.OptionLetter(i), value)
	}
	add("Correct answer", q.CorrectAnswer)

	f.inputs[0].Model.Focus()
	return f
}

func (f *editForm) focusNext() {
	f.inputs[f.focused].Model.Blur()
	f.focused = (f.focused + 1) % len(f.inputs)
	f.inputs[f.focused].Model.Focus()
}

func (f *editForm) focusPrev() {
	f.inputs[f.focused].Model.Blur()
	f.focused = (f.focused - 1 + len(f.inputs)) % len(f.inputs)
	f.inputs[f.focused].Model.Focus()
}

func (f *editForm) update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	f.inputs[f.focused], cmd = f.inputs[f.focused].Update(msg)
	return cmd
}

func (f *editForm) save(svc *service.Service) error {
	themeName := strings.TrimSpace(f.inputs[0].Value())
	prompt := strings.TrimSpace(f.inputs[1].Value())
	correct := strings.TrimSpace(f.inputs[len(f.inputs)-1].Value())

	var options []string
	for i := 2; i < len(f.inputs)-1; i++ {
		if v := strings.TrimSpace(f.inputs[i].Value()); v != "" {
			options = append(options, v)
		}
	}

	return svc.EditQuestion(f.id, bank.QuestionUpdate{
		Theme:         &themeName,
		Prompt:        &prompt,
		Options:       options,
		CorrectAnswer: &correct,
	})
}

func (f *editForm) view(width int) string {
	var b strings.Builder

	for i, in := range f.inputs {
		label := f.labels[i]
		labelStyle := lipgloss.NewStyle().Foreground(theme.TextDim)
		if i == f.focused {
			labelStyle = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
		}
		b.WriteString(fmt.Sprintf("%s\n%s\n\n", labelStyle.Render(label), in.View()))
	}

	if f.errMsg != "" {
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Error).Render(f.errMsg))
		b.WriteString("\n")
	}

	return "\n" + lipgloss.PlaceHorizontal(width, lipgloss.Center,
		theme.CardStyle().Width(min(width-8, 72)).Render(b.String()))
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
