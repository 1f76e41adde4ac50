// Package state holds UI state types for the TUI.
package state

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/tesso57/jestr/internal/application/settings"
)

// Session represents the current input mode.
type Session int

const (
	CategoryView Session = iota
	JokeView
	SearchView
	QuitView
)

// KeyMap defines the keybindings for the application.
type KeyMap struct {
	Up         key.Binding
	Down       key.Binding
	UpPage     key.Binding
	DownPage   key.Binding
	Open       key.Binding
	Back       key.Binding
	Quit       key.Binding
	Fetch      key.Binding
	CycleCount key.Binding
	CycleKind  key.Binding
	Block      key.Binding
	Search     key.Binding
	Bookmark   key.Binding
	Help       key.Binding
}

// ShortHelp returns a subset of keybindings for the help view.
func (k *KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Help, k.Quit, k.Back, k.Open, k.Fetch}
}

// FullHelp returns all keybindings for the help view.
func (k *KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.UpPage, k.DownPage},
		{k.Open, k.Back, k.Quit, k.Help},
		{k.Fetch, k.CycleCount, k.CycleKind, k.Block},
		{k.Search, k.Bookmark},
	}
}

// NewKeyMap creates a new KeyMap from the configuration.
func NewKeyMap(cfg settings.KeyMapConfig) KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys(splitKeys(cfg.Up)...),
			key.WithHelp(cfg.Up, "up"),
		),
		Down: key.NewBinding(
			key.WithKeys(splitKeys(cfg.Down)...),
			key.WithHelp(cfg.Down, "down"),
		),
		UpPage: key.NewBinding(
			key.WithKeys(splitKeys(cfg.UpPage)...),
			key.WithHelp(cfg.UpPage, "pgup"),
		),
		DownPage: key.NewBinding(
			key.WithKeys(splitKeys(cfg.DownPage)...),
			key.WithHelp(cfg.DownPage, "pgdn"),
		),
		Open: key.NewBinding(
			key.WithKeys(splitKeys(cfg.Open)...),
			key.WithHelp(cfg.Open, "open"),
		),
		Back: key.NewBinding(
			key.WithKeys(splitKeys(cfg.Back)...),
			key.WithHelp(cfg.Back, "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys(splitKeys(cfg.Quit)...),
			key.WithHelp(cfg.Quit, "quit"),
		),
		Fetch: key.NewBinding(
			key.WithKeys(splitKeys(cfg.Fetch)...),
			key.WithHelp(cfg.Fetch, "fetch"),
		),
		CycleCount: key.NewBinding(
			key.WithKeys(splitKeys(cfg.CycleCount)...),
			key.WithHelp(cfg.CycleCount, "count"),
		),
		CycleKind: key.NewBinding(
			key.WithKeys(splitKeys(cfg.CycleKind)...),
			key.WithHelp(cfg.CycleKind, "kind"),
		),
		Block: key.NewBinding(
			key.WithKeys("1", "2", "3", "4", "5", "6"),
			key.WithHelp("1-6", "toggle blocklist"),
		),
		Search: key.NewBinding(
			key.WithKeys(splitKeys(cfg.Search)...),
			key.WithHelp(cfg.Search, "search"),
		),
		Bookmark: key.NewBinding(
			key.WithKeys(splitKeys(cfg.Bookmark)...),
			key.WithHelp(cfg.Bookmark, "bookmark"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "toggle help"),
		),
	}
}

func splitKeys(keys string) []string {
	parts := strings.Split(keys, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		keyName := strings.TrimSpace(part)
		if keyName == "" {
			continue
		}
		out = append(out, keyName)
		switch keyName {
		case "pgdn":
			out = append(out, "pgdown")
		case "pgdown":
			out = append(out, "pgdn")
		}
	}
	return out
}
