// Package sidebar provides the sidebar component.
package sidebar

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Props defines the properties for the sidebar component.
type Props struct {
	View   string
	Width  int
	Height int
	Title  string
	Active bool
	Accent lipgloss.Color
}

// Render renders the sidebar component.
func Render(p Props) string {
	sidebarStyle := lipgloss.NewStyle().
		Width(p.Width).
		Height(p.Height).
		Border(lipgloss.NormalBorder(), false, true, false, false).
		BorderForeground(lipgloss.Color("63"))

	if p.Active {
		sidebarStyle = sidebarStyle.BorderForeground(p.Accent)
	}

	titleStyle := lipgloss.NewStyle().
		PaddingLeft(2).
		PaddingBottom(1).
		Foreground(p.Accent)

	return sidebarStyle.Render(lipgloss.JoinVertical(
		lipgloss.Left,
		titleStyle.Render(p.Title),
		p.View,
	))
}

// Toggle is a labelled on/off control bound to a key.
type Toggle struct {
	Key   string
	Label string
	On    bool
}

// ControlsProps defines the query controls shown on the joke screen.
type ControlsProps struct {
	Category  string
	Count     string
	CountKey  string
	Kind      string
	KindKey   string
	Contains  string
	SearchKey string
	Toggles   []Toggle
	FetchKey  string
	Fetching  bool
}

// Controls renders the query controls as a plain block for Props.View.
func Controls(p ControlsProps) string {
	label := lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	row := func(key, name, value string) string {
		return fmt.Sprintf("  %s %s %s", label.Render("["+key+"]"), name, value)
	}

	contains := p.Contains
	if contains == "" {
		contains = label.Render("-")
	}

	lines := []string{
		"  " + p.Category,
		"",
		row(p.CountKey, "count:", p.Count),
		row(p.KindKey, "kind: ", p.Kind),
		row(p.SearchKey, "text: ", contains),
		"",
		"  blocklist",
	}
	for _, t := range p.Toggles {
		mark := "[ ]"
		if t.On {
			mark = "[x]"
		}
		lines = append(lines, fmt.Sprintf("  %s %s %s", label.Render(t.Key), mark, t.Label))
	}

	fetch := fmt.Sprintf("[%s] fetch", p.FetchKey)
	if p.Fetching {
		fetch = "fetching..."
	}
	lines = append(lines, "", "  "+label.Render(fetch))
	return strings.Join(lines, "\n")
}
