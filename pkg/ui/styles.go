package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// Colors adapt to light and dark terminals
var (
	PrimaryColor = lipgloss.AdaptiveColor{Light: "#7D56F4", Dark: "#BD93F9"}
	SuccessColor = lipgloss.AdaptiveColor{Light: "#2E7D32", Dark: "#50FA7B"}
	ErrorColor   = lipgloss.AdaptiveColor{Light: "#C62828", Dark: "#FF5555"}
	WarningColor = lipgloss.AdaptiveColor{Light: "#EF6C00", Dark: "#FFB86C"}
	InfoColor    = lipgloss.AdaptiveColor{Light: "#1565C0", Dark: "#8BE9FD"}
	MutedColor   = lipgloss.AdaptiveColor{Light: "#757575", Dark: "#6272A4"}
)

var (
	TitleStyle = lipgloss.NewStyle().
			Foreground(PrimaryColor).
			Bold(true)

	NameStyle = lipgloss.NewStyle().
			Foreground(InfoColor)

	ActiveStyle = lipgloss.NewStyle().
			Foreground(SuccessColor).
			Bold(true)

	PathStyle = lipgloss.NewStyle().
			Foreground(MutedColor).
			Italic(true)

	SuccessStyle = lipgloss.NewStyle().
			Foreground(SuccessColor).
			Bold(true)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ErrorColor).
			Bold(true)

	WarningStyle = lipgloss.NewStyle().
			Foreground(WarningColor)

	MutedStyle = lipgloss.NewStyle().
			Foreground(MutedColor)
)

// palette applies styles, or nothing for plain text output
type palette struct {
	styled bool
}

func (p palette) apply(style lipgloss.Style, s string) string {
	if !p.styled {
		return s
	}
	return style.Render(s)
}

func (p palette) title(s string) string   { return p.apply(TitleStyle, s) }
func (p palette) name(s string) string    { return p.apply(NameStyle, s) }
func (p palette) active(s string) string  { return p.apply(ActiveStyle, s) }
func (p palette) path(s string) string    { return p.apply(PathStyle, s) }
func (p palette) success(s string) string { return p.apply(SuccessStyle, s) }
func (p palette) err(s string) string     { return p.apply(ErrorStyle, s) }
func (p palette) warning(s string) string { return p.apply(WarningStyle, s) }
func (p palette) muted(s string) string   { return p.apply(MutedStyle, s) }
