// Package textutil provides small formatting helpers for TUI text.
package textutil

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// SingleLine collapses whitespace into single spaces.
func SingleLine(text string) string {
	if text == "" {
		return ""
	}
	return strings.Join(strings.Fields(text), " ")
}

// Truncate trims a string to the given width with an ellipsis.
func Truncate(text string, width int) string {
	if width <= 0 {
		return ""
	}
	return ansi.Truncate(text, width, "...")
}

// BeforeNth returns the part of text preceding the n-th occurrence of delim.
// Text with fewer than n occurrences is returned unchanged.
func BeforeNth(text, delim string, n int) string {
	if n <= 0 || delim == "" {
		return text
	}
	offset := 0
	for i := 0; i < n; i++ {
		idx := strings.Index(text[offset:], delim)
		if idx < 0 {
			return text
		}
		if i == n-1 {
			return text[:offset+idx]
		}
		offset += idx + len(delim)
	}
	return text
}

// Preview returns the first words of text on a single line, with an
// ellipsis when words were cut.
func Preview(text string, words int) string {
	line := SingleLine(text)
	cut := BeforeNth(line, " ", words)
	if cut != line {
		return cut + "..."
	}
	return line
}
