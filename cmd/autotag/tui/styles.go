package tui

import (
	"strings"

	catppuccin "github.com/catppuccin/go"
	"github.com/charmbracelet/lipgloss"
)

// FlavorByName maps a theme name to a catppuccin flavor, defaulting to Mocha.
func FlavorByName(name string) catppuccin.Flavor {
	switch strings.ToLower(name) {
	case "latte":
		return catppuccin.Latte
	case "frappe":
		return catppuccin.Frappe
	case "macchiato":
		return catppuccin.Macchiato
	default:
		return catppuccin.Mocha
	}
}

// Styles holds every lipgloss style used by the widget.
type Styles struct {
	// Input row.
	InputBox      lipgloss.Style
	BorderIdle    lipgloss.Color
	BorderFocused lipgloss.Color // focus ring while the panel is open
	Tag           lipgloss.Style
	TagRemove     lipgloss.Style
	ClearAll      lipgloss.Style
	Divider       lipgloss.Style
	Arrow         lipgloss.Style
	ArrowFocused  lipgloss.Style
	Placeholder   lipgloss.Style
	Text          lipgloss.Style

	// Results panel.
	Panel          lipgloss.Style
	CategoryTitle  lipgloss.Style
	Option         lipgloss.Style
	OptionDisabled lipgloss.Style
	NoOptions      lipgloss.Style
	Separator      lipgloss.Style
	Footer         lipgloss.Style

	// Help line.
	Help    lipgloss.Style
	HelpKey lipgloss.Style
}

// NewStyles builds the styles for a catppuccin flavor name.
func NewStyles(theme string) Styles {
	f := FlavorByName(theme)

	var (
		colorBase     = lipgloss.Color(f.Base().Hex)
		colorSurface0 = lipgloss.Color(f.Surface0().Hex)
		colorSurface1 = lipgloss.Color(f.Surface1().Hex)
		colorText     = lipgloss.Color(f.Text().Hex)
		colorSubtext0 = lipgloss.Color(f.Subtext0().Hex)
		colorOverlay0 = lipgloss.Color(f.Overlay0().Hex)
		colorSky      = lipgloss.Color(f.Sky().Hex)
		colorBlue     = lipgloss.Color(f.Blue().Hex)
		colorRed      = lipgloss.Color(f.Red().Hex)
		colorYellow   = lipgloss.Color(f.Yellow().Hex)
		colorMauve    = lipgloss.Color(f.Mauve().Hex)
	)

	return Styles{
		InputBox: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(0, 1),
		BorderIdle:    colorSurface1,
		BorderFocused: colorSky,
		Tag: lipgloss.NewStyle().
			Foreground(colorText).
			Background(colorSurface0),
		TagRemove: lipgloss.NewStyle().
			Foreground(colorRed).
			Background(colorSurface0).
			Bold(true),
		ClearAll: lipgloss.NewStyle().
			Foreground(colorRed),
		Divider: lipgloss.NewStyle().
			Foreground(colorSurface1),
		Arrow: lipgloss.NewStyle().
			Foreground(colorSurface1),
		ArrowFocused: lipgloss.NewStyle().
			Foreground(colorSubtext0),
		Placeholder: lipgloss.NewStyle().
			Foreground(colorOverlay0),
		Text: lipgloss.NewStyle().
			Foreground(colorText),

		Panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorSurface1).
			Background(colorBase),
		CategoryTitle: lipgloss.NewStyle().
			Foreground(colorMauve).
			Bold(true).
			PaddingLeft(1),
		Option: lipgloss.NewStyle().
			Foreground(colorText).
			PaddingLeft(3),
		OptionDisabled: lipgloss.NewStyle().
			Foreground(colorOverlay0).
			Background(colorSurface0).
			PaddingLeft(3),
		NoOptions: lipgloss.NewStyle().
			Foreground(colorOverlay0).
			Italic(true).
			PaddingLeft(3),
		Separator: lipgloss.NewStyle().
			Foreground(colorSurface0),
		Footer: lipgloss.NewStyle().
			Foreground(colorBlue).
			PaddingLeft(1),

		Help: lipgloss.NewStyle().
			Foreground(colorOverlay0),
		HelpKey: lipgloss.NewStyle().
			Foreground(colorYellow).
			Bold(true),
	}
}
