package state

import (
	"context"
	"strings"

	"github.com/tesso57/jestr/internal/application/usecase"
	"github.com/tesso57/jestr/internal/domain/joke"
)

// CategoryScreen holds the category list state.
type CategoryScreen struct {
	View  CategoryState
	cycle fetchCycle
}

// NewCategoryScreen creates a category screen in the loading state. The
// caller issues the first fetch.
func NewCategoryScreen() *CategoryScreen {
	return &CategoryScreen{View: CategoriesLoading{}}
}

// BeginFetch moves to Loading and returns the context and generation for a
// new categories request. Any request still in flight is canceled.
func (s *CategoryScreen) BeginFetch() (context.Context, uint64) {
	s.View = CategoriesLoading{}
	return s.cycle.begin()
}

// FinishFetch applies a categories result. Results of superseded requests
// are dropped and false is returned.
func (s *CategoryScreen) FinishFetch(generation uint64, list joke.CategoryList, err error) bool {
	if !s.cycle.settle(generation) {
		return false
	}
	if err != nil {
		title, message := usecase.Describe(err)
		s.View = CategoriesFailed{Title: title, Message: message}
		return true
	}
	s.View = CategoriesLoaded{List: list}
	return true
}

// Loading reports whether a categories request is in flight.
func (s *CategoryScreen) Loading() bool {
	_, ok := s.View.(CategoriesLoading)
	return ok
}

// Close cancels any request in flight.
func (s *CategoryScreen) Close() {
	s.cycle.stop()
}

// JokeScreen holds the query parameters and joke list state for one category.
type JokeScreen struct {
	Query        joke.Query
	Blocklist    []bool
	CountIndex   int
	KindIndex    int
	View         JokeState
	FetchEnabled bool
	Selected     *joke.Joke
	Bookmarked   map[int]bool
	cycle        fetchCycle
}

// NewJokeScreen creates a joke screen for the query in the initial state.
func NewJokeScreen(q joke.Query) *JokeScreen {
	s := &JokeScreen{
		Query:        q,
		Blocklist:    make([]bool, len(joke.BlocklistOptions)),
		View:         JokesInitial{},
		FetchEnabled: true,
		Bookmarked:   map[int]bool{},
	}
	if s.Query.Blocklist == nil {
		s.Query.Blocklist = map[joke.BlockFlag]bool{}
	}
	for i, flag := range joke.BlocklistOptions {
		s.Blocklist[i] = s.Query.Blocklist[flag]
	}
	s.Query.Blocklist = blocklistFromSelection(s.Blocklist)
	if i := joke.IndexOfCount(s.Query.Count); i >= 0 {
		s.CountIndex = i
	} else {
		s.Query.Count = joke.CountOptions[0]
	}
	if i := joke.IndexOfKind(s.Query.Kind); i >= 0 {
		s.KindIndex = i
	} else {
		s.Query.Kind = joke.KindOptions[0]
	}
	return s
}

// UpdateBlocklistSelection toggles the blocklist option at index. index must
// be within joke.BlocklistOptions.
func (s *JokeScreen) UpdateBlocklistSelection(index int) {
	selection := append([]bool(nil), s.Blocklist...)
	selection[index] = !selection[index]
	s.Query.Blocklist = blocklistFromSelection(selection)
	s.Blocklist = selection
}

// UpdateJokeKind selects the kind option at index.
func (s *JokeScreen) UpdateJokeKind(index int) {
	s.Query.Kind = joke.KindOptions[index]
	s.KindIndex = index
}

// UpdateCount selects the count option at index.
func (s *JokeScreen) UpdateCount(index int) {
	s.Query.Count = joke.CountOptions[index]
	s.CountIndex = index
}

// SetContains sets the optional search text.
func (s *JokeScreen) SetContains(text string) {
	s.Query.Contains = strings.TrimSpace(text)
}

// BeginFetch disables the fetch trigger, moves to Loading and returns the
// request to run. Any request still in flight is canceled.
func (s *JokeScreen) BeginFetch() (context.Context, uint64, joke.Query) {
	s.FetchEnabled = false
	s.View = JokesLoading{}
	ctx, generation := s.cycle.begin()
	return ctx, generation, s.Query.WithCategory(s.Query.Category)
}

// FinishFetch applies a jokes result and re-enables the fetch trigger.
// Results of superseded requests are dropped and false is returned.
func (s *JokeScreen) FinishFetch(generation uint64, jokes []joke.Joke, err error) bool {
	if !s.cycle.settle(generation) {
		return false
	}
	s.FetchEnabled = true
	if err != nil {
		title, message := usecase.Describe(err)
		s.View = JokesFailed{Title: title, Message: message}
		return true
	}
	if jokes == nil {
		jokes = []joke.Joke{}
	}
	s.View = JokesLoaded{Jokes: jokes}
	return true
}

// Loading reports whether a jokes request is in flight.
func (s *JokeScreen) Loading() bool {
	_, ok := s.View.(JokesLoading)
	return ok
}

// SelectJoke opens the detail dialog for j.
func (s *JokeScreen) SelectJoke(j joke.Joke) {
	s.Selected = &j
}

// ClearSelectedJoke closes the detail dialog.
func (s *JokeScreen) ClearSelectedJoke() {
	s.Selected = nil
}

// DetailVisible reports whether the detail dialog is shown.
func (s *JokeScreen) DetailVisible() bool {
	return s.Selected != nil
}

// Close cancels any request in flight.
func (s *JokeScreen) Close() {
	s.cycle.stop()
}

func blocklistFromSelection(selection []bool) map[joke.BlockFlag]bool {
	set := make(map[joke.BlockFlag]bool, len(selection))
	for i, on := range selection {
		if on {
			set[joke.BlocklistOptions[i]] = true
		}
	}
	return set
}
