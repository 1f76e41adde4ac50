// Package modal provides modal dialog components.
package modal

import (
	"github.com/charmbracelet/lipgloss"
)

// Kind represents the type of modal.
type Kind int

const (
	// None indicates no modal.
	None Kind = iota
	// Detail shows the selected joke.
	Detail
	// Search shows the search text input.
	Search
	// Quit asks for quit confirmation.
	Quit
	// Help shows the help dialog.
	Help
)

// DetailWidth is the fixed outer width of the joke detail dialog.
const DetailWidth = 64

// Props defines the properties for the modal component.
type Props struct {
	Visible bool
	Kind    Kind
	Title   string
	Body    string
	Width   int
	Height  int
	Accent  lipgloss.Color
}

// Render renders the modal component.
func Render(p Props) string {
	if !p.Visible {
		return ""
	}

	style := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("63")).
		Padding(1, 2)

	switch p.Kind {
	case Detail:
		style = style.Width(DetailWidth).BorderForeground(p.Accent)
	case Search:
		style = style.Width(40).BorderForeground(p.Accent)
	case Quit:
		style = style.BorderForeground(lipgloss.Color("196"))
	}

	body := p.Body
	if p.Title != "" {
		body = lipgloss.NewStyle().Bold(true).Render(p.Title) + "\n\n" + body
	}

	return lipgloss.Place(p.Width, p.Height, lipgloss.Center, lipgloss.Center, style.Render(body))
}
