package tui

import (
	"github.com/MKhiriev/athenc-client/models"
	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true)
	helpStyle     = lipgloss.NewStyle().Faint(true)
	infoStyle     = lipgloss.NewStyle().Faint(true)
	successStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42"))
	errorStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196"))
	disabledStyle = lipgloss.NewStyle().Faint(true)
)

func notificationStyle(severity models.Severity) lipgloss.Style {
	switch severity {
	case models.SeveritySuccess:
		return successStyle
	case models.SeverityError:
		return errorStyle
	default:
		return infoStyle
	}
}
