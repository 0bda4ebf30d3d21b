package components

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"quizdeck/internal/session"
	"quizdeck/internal/ui/theme"
)

// OptionList is the answer selector for one question. Before submission it
// is a cursor over the options; after submission it reveals the correct
// option in green and a wrong choice in red. Revealed state is rebuilt from
// the recorded answer, so a resumed session shows past questions exactly as
// they were left.
type OptionList struct {
	Options     []string
	Correct     string
	Selected    int
	Revealed    bool
	ChosenIndex int
}

// NewOptionList creates an unanswered option list.
func NewOptionList(options []string, correct string) OptionList {
	return OptionList{
		Options:     options,
		Correct:     correct,
		Selected:    0,
		ChosenIndex: -1,
	}
}

// Reveal locks the list into its answered state.
func (o *OptionList) Reveal(ans session.Answer) {
	o.Revealed = true
	o.ChosenIndex = -1
	for i := range o.Options {
		if session.OptionLetter(i) == ans.SelectedOption && ans.SelectedOption != "" {
			o.ChosenIndex = i
			break
		}
	}
}

// Update handles cursor movement. Selection itself is the screen's job so
// it can record the answer before revealing.
func (o OptionList) Update(msg tea.Msg) (OptionList, tea.Cmd) {
	if o.Revealed {
		return o, nil
	}

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return o, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if o.Selected > 0 {
			o.Selected--
		}
	case "down", "j":
		if o.Selected < len(o.Options)-1 {
			o.Selected++
		}
	}

	return o, nil
}

// View renders the option list.
func (o OptionList) View() string {
	var s string
	for i, opt := range o.Options {
		prefix := "  "
		if i == o.Selected && !o.Revealed {
			prefix = "▸ "
		}

		line := fmt.Sprintf("%s%s)  %s", prefix, session.OptionLetter(i), opt)

		if o.Revealed {
			switch {
			case opt == o.Correct:
				s += lipgloss.NewStyle().Foreground(theme.Success).Bold(true).Render(line) + "\n"
			case i == o.ChosenIndex:
				s += lipgloss.NewStyle().Foreground(theme.Error).Bold(true).Render(line) + "\n"
			default:
				s += lipgloss.NewStyle().Foreground(theme.TextDim).Render(line) + "\n"
			}
		} else {
			if i == o.Selected {
				s += lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(line) + "\n"
			} else {
				s += lipgloss.NewStyle().Foreground(theme.Text).Render(line) + "\n"
			}
		}
	}
	return s
}
