// Package tuistyles holds the lipgloss palette shared by the simulator and
// its components.
package tuistyles

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/rgehrsitz/eisim/internal/domain"
)

// Colors
var (
	ColorPrimary   = lipgloss.Color("#2E5EAA")
	ColorSecondary = lipgloss.Color("#7A8FB8")
	ColorAccent    = lipgloss.Color("#E8A33D")
	ColorSuccess   = lipgloss.Color("#3FA34D")
	ColorWarning   = lipgloss.Color("#E8A33D")
	ColorDanger    = lipgloss.Color("#D1495B")
	ColorInfo      = lipgloss.Color("#4A90C2")

	ColorForeground = lipgloss.Color("#E6E6E6")
	ColorMuted      = lipgloss.Color("#8A8A8A")
	ColorBorder     = lipgloss.Color("#4B5563")
)

// Base styles
var (
	AppStyle = lipgloss.NewStyle().Padding(0, 1)

	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	SubtitleStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	BorderStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(0, 1)

	FieldLabelStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			Width(28)

	FieldValueStyle = lipgloss.NewStyle().
			Foreground(ColorForeground)

	FocusedFieldStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(ColorAccent)

	MetricLabelStyle = lipgloss.NewStyle().
				Foreground(ColorMuted)

	MetricValueStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(ColorForeground)

	MetricPositiveStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(ColorSuccess)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ColorDanger)

	SectionStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorSecondary).
			MarginTop(1)
)

// SeverityColor maps a rule severity to its badge color.
func SeverityColor(s domain.Severity) lipgloss.Color {
	switch s {
	case domain.SeverityError:
		return ColorDanger
	case domain.SeverityWarning:
		return ColorWarning
	case domain.SeveritySuccess:
		return ColorSuccess
	default:
		return ColorInfo
	}
}

// SeverityStyle returns the style for text tagged with s.
func SeverityStyle(s domain.Severity) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(SeverityColor(s))
}

// SeverityIcon returns a one-character marker for s.
func SeverityIcon(s domain.Severity) string {
	switch s {
	case domain.SeverityError:
		return "✗"
	case domain.SeverityWarning:
		return "!"
	case domain.SeveritySuccess:
		return "✓"
	default:
		return "i"
	}
}
