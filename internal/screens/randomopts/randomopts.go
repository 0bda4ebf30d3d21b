package randomopts

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"quizdeck/internal/router"
	"quizdeck/internal/screen"
	"quizdeck/internal/screens/test"
	"quizdeck/internal/service"
	"quizdeck/internal/testbuilder"
	"quizdeck/internal/ui/components"
	"quizdeck/internal/ui/layout"
	"quizdeck/internal/ui/theme"
)

// RandomOptsScreen asks how many questions a random test should have.
type RandomOptsScreen struct {
	svc    *service.Service
	input  components.TextInput
	errMsg string
}

var _ screen.Screen = (*RandomOptsScreen)(nil)
var _ screen.KeyHintProvider = (*RandomOptsScreen)(nil)

// New creates the random test options screen.
func New(svc *service.Service) *RandomOptsScreen {
	return &RandomOptsScreen{
		svc:   svc,
		input: components.NewTextInput("10", true, 4),
	}
}

func (s *RandomOptsScreen) Init() tea.Cmd {
	return s.input.Init()
}

func (s *RandomOptsScreen) Title() string {
	return "Random Test"
}

func (s *RandomOptsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Start"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *RandomOptsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "enter":
			count, err := s.input.NumericValue()
			if err != nil || count <= 0 {
				s.errMsg = "Enter a number of questions greater than zero."
				return s, nil
			}
			sess, clamped, err := s.svc.StartRandom(count)
			if err != nil {
				if err == testbuilder.ErrEmptyBank {
					s.errMsg = "The question bank is empty. Import questions first."
				} else {
					s.errMsg = err.Error()
				}
				return s, nil
			}
			return s, func() tea.Msg {
				return router.ReplaceScreenMsg{Screen: test.New(s.svc, sess, clamped)}
			}
		}
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	s.errMsg = ""
	return s, cmd
}

func (s *RandomOptsScreen) View(width, height int) string {
	var b strings.Builder
	b.WriteString("\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("How many questions? The bank holds %d.", s.svc.Bank().Size())))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		theme.CardStyle().Render(s.input.View())))
	b.WriteString("\n")

	if s.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.Error).Render(s.errMsg)))
		b.WriteString("\n")
	}

	return b.String()
}
