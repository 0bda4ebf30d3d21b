package screen

import (
	tea "charm.land/bubbletea/v2"

	"quizdeck/internal/ui/layout"
)

// Screen is one face of the app (home, theme picker, a running test, ...)
// managed by the router stack. Screens read application state through the
// service and never mutate it directly.
type Screen interface {
	// Init returns an initial command when the screen is first created.
	Init() tea.Cmd

	// Update handles messages and returns updated screen + command.
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the screen content (excluding header/footer).
	View(width, height int) string

	// Title returns the screen name for the header.
	Title() string
}

// KeyHintProvider is implemented by screens whose footer hints depend on
// their state, like the test screen switching between Select and Next.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}
