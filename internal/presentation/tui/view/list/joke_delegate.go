package listview

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// JokeItem is an item that can be rendered by JokeDelegate.
type JokeItem interface {
	list.Item
	Title() string
	IsBookmarked() bool
	IsSafe() bool
}

// JokeDelegate handles rendering of joke items.
type JokeDelegate struct {
	Styles list.DefaultItemStyles
}

// NewJokeDelegate creates a new JokeDelegate.
func NewJokeDelegate() *JokeDelegate {
	return &JokeDelegate{
		Styles: withItemPadding(list.NewDefaultItemStyles()),
	}
}

// Height returns the height of the item.
func (d *JokeDelegate) Height() int {
	return 1
}

// Spacing returns the spacing between items.
func (d *JokeDelegate) Spacing() int {
	return 0
}

// Update handles messages for the delegate.
func (d *JokeDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd {
	return nil
}

// Render renders the item.
func (d *JokeDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	i, ok := item.(JokeItem)
	if !ok {
		return
	}

	title := i.Title()
	if !i.IsSafe() {
		title = fmt.Sprintf("[!] %s", title)
	}
	if i.IsBookmarked() {
		title = fmt.Sprintf("[B] %s", title)
	}

	style := itemStyle(d.Styles, m, index)
	title = truncateItemText(m, style, title)

	// Unsafe jokes are dimmed.
	if !i.IsSafe() {
		title = lipgloss.NewStyle().Faint(true).Render(title)
	}

	renderItemText(w, style, title)
}
