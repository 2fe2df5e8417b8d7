package formatter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Palette roles. Hues follow gruvbox dark.
var (
	ColorAccent = lipgloss.Color("#fe8019")
	ColorText   = lipgloss.Color("#ebdbb2")
	ColorMuted  = lipgloss.Color("#928374")
	ColorOK     = lipgloss.Color("#8ec07c")
	ColorWarn   = lipgloss.Color("#fabd2f")
	ColorError  = lipgloss.Color("#fb4934")
)

var (
	StyleHeading = lipgloss.NewStyle().Foreground(ColorAccent).Bold(true)
	StyleText    = lipgloss.NewStyle().Foreground(ColorText)
	StyleStrong  = StyleText.Bold(true)
	StyleMuted   = lipgloss.NewStyle().Foreground(ColorMuted)
	StyleOK      = lipgloss.NewStyle().Foreground(ColorOK)
	StyleWarn    = lipgloss.NewStyle().Foreground(ColorWarn)
	StyleError   = lipgloss.NewStyle().Foreground(ColorError)
)

// categoryColors keys are domain category labels.
var categoryColors = map[string]lipgloss.Color{
	"major":    "#83a598",
	"minor":    ColorOK,
	"religion": "#d3869b",
	"eil":      ColorWarn,
	"filler":   "#689d6a",
}

// CategoryStyle colors a class by the requirement that brought it in.
func CategoryStyle(category string) lipgloss.Style {
	if c, ok := categoryColors[category]; ok {
		return lipgloss.NewStyle().Foreground(c)
	}
	return StyleText
}

// Header renders an upper-cased heading over a rule of the same width.
func Header(text string) string {
	title := strings.ToUpper(text)
	rule := strings.Repeat("─", lipgloss.Width(title))
	return fmt.Sprintf("%s\n%s", StyleHeading.Render(title), StyleMuted.Render(rule))
}

func Dim(text string) string  { return StyleMuted.Render(text) }
func Bold(text string) string { return StyleStrong.Render(text) }
