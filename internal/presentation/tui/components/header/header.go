// Package header provides the module header component.
package header

import (
	"github.com/charmbracelet/lipgloss"
)

// Props defines the properties for the header component.
type Props struct {
	Visible bool
	Route   string
	Summary string
	Accent  lipgloss.Color
}

// Render renders the route path above the query summary.
func Render(p Props) string {
	if !p.Visible {
		return ""
	}
	route := lipgloss.NewStyle().Bold(true).Foreground(p.Accent).Render("/" + p.Route)
	summary := lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Render(p.Summary)
	return lipgloss.JoinVertical(lipgloss.Left, route, summary)
}
