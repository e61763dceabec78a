package tui

import (
	"github.com/Bipul-Dubey/loyalty-predictor/constants"
	"github.com/charmbracelet/lipgloss"
)

var (
	Muted       = lipgloss.Color("#6b7280")
	Accent      = lipgloss.Color("#8BC34A")
	Destructive = lipgloss.Color("#e53935")
	Success     = lipgloss.Color("#8BC34A")
	Warning     = lipgloss.Color("#FFC107")
	Info        = lipgloss.Color("#2196F3")
)

// Styles groups every style the form view uses.
type Styles struct {
	Title        lipgloss.Style
	Label        lipgloss.Style
	Note         lipgloss.Style
	Error        lipgloss.Style
	Button       lipgloss.Style
	ActiveButton lipgloss.Style
	Help         lipgloss.Style
	Toast        lipgloss.Style
}

func DefaultStyles() Styles {
	return Styles{
		Title:        lipgloss.NewStyle().Bold(true).Foreground(Accent).MarginBottom(1),
		Label:        lipgloss.NewStyle().Bold(true),
		Note:         lipgloss.NewStyle().Foreground(Muted).Italic(true),
		Error:        lipgloss.NewStyle().Foreground(Destructive),
		Button:       lipgloss.NewStyle().Padding(0, 2).Border(lipgloss.RoundedBorder()).BorderForeground(Muted),
		ActiveButton: lipgloss.NewStyle().Padding(0, 2).Border(lipgloss.RoundedBorder()).BorderForeground(Accent).Bold(true),
		Help:         lipgloss.NewStyle().Foreground(Muted).MarginTop(1),
		Toast:        lipgloss.NewStyle().Padding(0, 1).Bold(true).Border(lipgloss.NormalBorder()),
	}
}

// SeverityColor maps a toast severity onto the palette.
func SeverityColor(severity constants.SeverityEnum) lipgloss.Color {
	switch severity {
	case constants.SeveritySuccess:
		return Success
	case constants.SeverityWarning:
		return Warning
	case constants.SeverityError:
		return Destructive
	default:
		return Info
	}
}

// ToastStyle is the toast box tinted for its severity.
func (s Styles) ToastStyle(severity constants.SeverityEnum) lipgloss.Style {
	color := SeverityColor(severity)
	return s.Toast.Foreground(color).BorderForeground(color)
}
