package components

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"quizdeck/internal/ui/theme"
)

// Confirm is a yes/no prompt rendered inline over a screen.
type Confirm struct {
	Prompt   string
	Selected int // 0 = yes, 1 = no
}

// NewConfirm creates a confirm prompt defaulting to "No".
func NewConfirm(prompt string) Confirm {
	return Confirm{Prompt: prompt, Selected: 1}
}

// Update handles navigation. It returns (answered, yes) so the owning
// screen can act on the outcome.
func (c Confirm) Update(msg tea.Msg) (Confirm, bool, bool) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return c, false, false
	}

	switch kmsg.String() {
	case "left", "h", "right", "l", "tab":
		c.Selected = 1 - c.Selected
	case "y":
		return c, true, true
	case "n", "esc":
		return c, true, false
	case "enter":
		return c, true, c.Selected == 0
	}
	return c, false, false
}

// View renders the prompt and the two choices.
func (c Confirm) View() string {
	yes := "  Yes  "
	no := "  No  "

	selStyle := lipgloss.NewStyle().Foreground(theme.BgCard).Background(theme.Primary).Bold(true)
	dimStyle := lipgloss.NewStyle().Foreground(theme.Text)

	if c.Selected == 0 {
		yes = selStyle.Render(yes)
		no = dimStyle.Render(no)
	} else {
		yes = dimStyle.Render(yes)
		no = selStyle.Render(no)
	}

	body := lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(c.Prompt) +
		"\n\n" + yes + "   " + no

	return theme.CardStyle().Render(body)
}
