// Package mainview provides the main content area component.
package mainview

import (
	"github.com/charmbracelet/lipgloss"
)

// Notice is a title and message shown in place of the body.
type Notice struct {
	Title   string
	Message string
	Error   bool
}

// Props defines the properties for the main view component.
type Props struct {
	Width  int
	Height int
	Header string
	Body   string
	Notice *Notice
}

// Render renders the main view component.
func Render(p Props) string {
	mainStyle := lipgloss.NewStyle().
		Width(p.Width).
		Height(p.Height).
		PaddingLeft(1)

	body := p.Body
	if p.Notice != nil {
		body = renderNotice(*p.Notice)
	}

	content := body
	if p.Header != "" {
		if body != "" {
			content = p.Header + "\n" + body
		} else {
			content = p.Header
		}
	}
	return mainStyle.Render(content)
}

func renderNotice(n Notice) string {
	titleStyle := lipgloss.NewStyle().Bold(true)
	if n.Error {
		titleStyle = titleStyle.Foreground(lipgloss.Color("196"))
	}
	if n.Title == "" {
		return "\n" + n.Message
	}
	return "\n" + titleStyle.Render(n.Title) + "\n" + n.Message
}
