// Package listview provides list item delegates for the view layer.
package listview

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// CategoryItem is an item that can be rendered by CategoryDelegate.
type CategoryItem interface {
	list.Item
	Title() string
	Description() string
}

// CategoryDelegate handles rendering of category items.
type CategoryDelegate struct {
	Styles list.DefaultItemStyles
	Alias  lipgloss.Style
}

// NewCategoryDelegate creates a new CategoryDelegate. aliasColor tints the
// alias suffix.
func NewCategoryDelegate(aliasColor lipgloss.Color) *CategoryDelegate {
	return &CategoryDelegate{
		Styles: withItemPadding(list.NewDefaultItemStyles()),
		Alias:  lipgloss.NewStyle().Foreground(aliasColor).Faint(true),
	}
}

// Height returns the height of the item.
func (d *CategoryDelegate) Height() int {
	return 1
}

// Spacing returns the spacing between items.
func (d *CategoryDelegate) Spacing() int {
	return 0
}

// Update handles messages for the delegate.
func (d *CategoryDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd {
	return nil
}

// Render renders the item.
func (d *CategoryDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	i, ok := item.(CategoryItem)
	if !ok {
		return
	}

	style := itemStyle(d.Styles, m, index)
	title := i.Title()
	aliases := strings.TrimSpace(i.Description())
	if aliases == "" {
		renderItemText(w, style, truncateItemText(m, style, title))
		return
	}

	suffix := fmt.Sprintf(" (%s)", aliases)
	full := truncateItemText(m, style, title+suffix)
	if !strings.HasPrefix(full, title) || len(full) == len(title) {
		renderItemText(w, style, full)
		return
	}
	renderItemText(w, style, title+d.Alias.Render(full[len(title):]))
}
