package theme

import (
	"image/color"

	"charm.land/lipgloss/v2"
)

// Palette is one color scheme. Colors are package variables so existing
// styles built inline in View funcs pick up a palette switch on the next
// render.
type Palette struct {
	Primary   color.Color
	Secondary color.Color
	Accent    color.Color
	Success   color.Color
	Error     color.Color
	Text      color.Color
	TextDim   color.Color
	BgCard    color.Color
	Border    color.Color
}

// Dark is the default scheme.
var Dark = Palette{
	Primary:   lipgloss.Color("#60A5FA"), // Sky Blue
	Secondary: lipgloss.Color("#14B8A6"), // Teal
	Accent:    lipgloss.Color("#F97316"), // Orange
	Success:   lipgloss.Color("#22C55E"), // Green
	Error:     lipgloss.Color("#F43F5E"), // Rose
	Text:      lipgloss.Color("#F8FAFC"), // White
	TextDim:   lipgloss.Color("#94A3B8"), // Slate
	BgCard:    lipgloss.Color("#1E293B"), // Dark Slate
	Border:    lipgloss.Color("#334155"), // Slate
}

// Light mirrors Dark with readable colors on light terminals.
var Light = Palette{
	Primary:   lipgloss.Color("#1D4ED8"), // Blue
	Secondary: lipgloss.Color("#0F766E"), // Teal
	Accent:    lipgloss.Color("#C2410C"), // Orange
	Success:   lipgloss.Color("#15803D"), // Green
	Error:     lipgloss.Color("#BE123C"), // Rose
	Text:      lipgloss.Color("#0F172A"), // Near Black
	TextDim:   lipgloss.Color("#64748B"), // Slate
	BgCard:    lipgloss.Color("#E2E8F0"), // Pale Slate
	Border:    lipgloss.Color("#94A3B8"), // Slate
}

// Active colors, referenced throughout the UI.
var (
	Primary   = Dark.Primary
	Secondary = Dark.Secondary
	Accent    = Dark.Accent
	Success   = Dark.Success
	Error     = Dark.Error
	Text      = Dark.Text
	TextDim   = Dark.TextDim
	BgCard    = Dark.BgCard
	Border    = Dark.Border
)

// SetDark switches the active palette.
func SetDark(on bool) {
	p := Light
	if on {
		p = Dark
	}
	Primary = p.Primary
	Secondary = p.Secondary
	Accent = p.Accent
	Success = p.Success
	Error = p.Error
	Text = p.Text
	TextDim = p.TextDim
	BgCard = p.BgCard
	Border = p.Border
}

// Typography helpers. Functions, not vars, so they follow palette switches.

func TitleStyle() lipgloss.Style {
	return lipgloss.NewStyle().Bold(true).Foreground(Primary).Align(lipgloss.Center)
}

func SubtitleStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(TextDim).Align(lipgloss.Center)
}

func BodyStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(Text)
}

func HintStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(TextDim).Italic(true)
}

func CardStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(1, 2)
}

func CorrectStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(Success).Bold(true)
}

func IncorrectStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(Error).Bold(true)
}
