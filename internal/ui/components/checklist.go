package components

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"quizdeck/internal/ui/theme"
)

// Checklist is a multi-select list with an "all" entry at the top. Checking
// the all entry clears individual picks and vice versa, so the selection is
// always either "everything" or an explicit subset.
type Checklist struct {
	AllLabel string
	Items    []string
	// Display overrides the rendered label per item when set; Selected
	// still returns the Items values.
	Display []string
	Cursor  int
	checked map[int]bool
	all     bool
}

// NewChecklist creates a checklist with nothing selected.
func NewChecklist(allLabel string, items []string) Checklist {
	return Checklist{
		AllLabel: allLabel,
		Items:    items,
		checked:  make(map[int]bool),
	}
}

// Update handles navigation and toggling.
func (c Checklist) Update(msg tea.Msg) (Checklist, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return c, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if c.Cursor > 0 {
			c.Cursor--
		}
	case "down", "j":
		if c.Cursor < len(c.Items) {
			c.Cursor++
		}
	case " ", "space":
		if c.Cursor == 0 {
			c.all = !c.all
			if c.all {
				c.checked = make(map[int]bool)
			}
		} else {
			i := c.Cursor - 1
			c.checked[i] = !c.checked[i]
			if c.checked[i] {
				c.all = false
			}
		}
	}

	return c, nil
}

// AllSelected reports whether the "all" entry is checked.
func (c Checklist) AllSelected() bool {
	return c.all
}

// Selected returns the checked items in list order, nil when none.
func (c Checklist) Selected() []string {
	var out []string
	for i, item := range c.Items {
		if c.checked[i] {
			out = append(out, item)
		}
	}
	return out
}

// Empty reports that neither the all entry nor any item is checked.
func (c Checklist) Empty() bool {
	return !c.all && len(c.Selected()) == 0
}

// View renders the checklist.
func (c Checklist) View() string {
	var s string

	render := func(idx int, label string, checked bool) string {
		box := "[ ]"
		if checked {
			box = "[x]"
		}
		prefix := "  "
		if idx == c.Cursor {
			prefix = "▸ "
		}
		line := prefix + box + " " + label
		if idx == c.Cursor {
			return lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(line)
		}
		if checked {
			return lipgloss.NewStyle().Foreground(theme.Secondary).Render(line)
		}
		return lipgloss.NewStyle().Foreground(theme.Text).Render(line)
	}

	s += render(0, c.AllLabel, c.all) + "\n"
	for i, item := range c.Items {
		label := item
		if i < len(c.Display) {
			label = c.Display[i]
		}
		s += render(i+1, label, c.checked[i]) + "\n"
	}
	return s
}
