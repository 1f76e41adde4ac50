// Package intent parses user input into UI intents.
package intent

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/tesso57/jestr/internal/presentation/tui/state"
)

// Type represents a user intent.
type Type int

const (
	None Type = iota
	Quit
	ToggleHelp
	Open
	Back
	Fetch
	CycleCount
	CycleKind
	ToggleBlock
	Search
	Bookmark
)

// Intent represents a parsed user intent.
type Intent struct {
	Type Type
	// Index is the blocklist option for ToggleBlock.
	Index int
}

// FromKeyMsg maps a key message to an intent.
func FromKeyMsg(msg tea.KeyMsg, keys state.KeyMap) Intent {
	switch {
	case key.Matches(msg, keys.Quit):
		return Intent{Type: Quit}
	case key.Matches(msg, keys.Help):
		return Intent{Type: ToggleHelp}
	case key.Matches(msg, keys.Open):
		return Intent{Type: Open}
	case key.Matches(msg, keys.Back):
		return Intent{Type: Back}
	case key.Matches(msg, keys.Fetch):
		return Intent{Type: Fetch}
	case key.Matches(msg, keys.CycleCount):
		return Intent{Type: CycleCount}
	case key.Matches(msg, keys.CycleKind):
		return Intent{Type: CycleKind}
	case key.Matches(msg, keys.Block):
		return Intent{Type: ToggleBlock, Index: int(msg.String()[0] - '1')}
	case key.Matches(msg, keys.Search):
		return Intent{Type: Search}
	case key.Matches(msg, keys.Bookmark):
		return Intent{Type: Bookmark}
	default:
		return Intent{Type: None}
	}
}
