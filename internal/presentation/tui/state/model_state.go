// Package state holds UI state types for the TUI.
package state

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	"github.com/tesso57/jestr/internal/domain/joke"
)

// ModelState holds the presentation state for the TUI.
type ModelState struct {
	Session       Session
	Previous      Session
	Route         Route
	Categories    *CategoryScreen
	Jokes         *JokeScreen
	QueryDefaults joke.Query
	PreviewWords  int
	CategoryList  list.Model
	JokeList      list.Model
	SearchInput   textinput.Model
	Viewport      viewport.Model
	Help          help.Model
	Spinner       spinner.Model
	Keys          KeyMap
	Width         int
	Height        int
	StatusMessage string
}

// Loading reports whether the active screen waits for a response.
func (s *ModelState) Loading() bool {
	switch s.Route.Screen {
	case JokesScreen:
		return s.Jokes != nil && s.Jokes.Loading()
	default:
		return s.Categories != nil && s.Categories.Loading()
	}
}

// DetailVisible reports whether the joke detail dialog is shown.
func (s *ModelState) DetailVisible() bool {
	return s.Jokes != nil && s.Jokes.DetailVisible()
}
