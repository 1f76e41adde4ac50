package state

import "github.com/tesso57/jestr/internal/domain/joke"

// CategoryState is the view state of the category screen. Exactly one of
// CategoriesLoading, CategoriesLoaded or CategoriesFailed.
type CategoryState interface {
	categoryState()
}

// CategoriesLoading means a categories request is in flight.
type CategoriesLoading struct{}

// CategoriesLoaded holds the fetched categories.
type CategoriesLoaded struct {
	List joke.CategoryList
}

// CategoriesFailed holds the error shown instead of the list.
type CategoriesFailed struct {
	Title   string
	Message string
}

func (CategoriesLoading) categoryState() {}
func (CategoriesLoaded) categoryState()  {}
func (CategoriesFailed) categoryState()  {}

// JokeState is the view state of the joke list. Exactly one of JokesInitial,
// JokesLoading, JokesLoaded or JokesFailed.
type JokeState interface {
	jokeState()
}

// JokesInitial is the state before the first fetch.
type JokesInitial struct{}

// JokesLoading means a jokes request is in flight.
type JokesLoading struct{}

// JokesLoaded holds the fetched jokes. An empty slice is a valid result.
type JokesLoaded struct {
	Jokes []joke.Joke
}

// JokesFailed holds the error shown instead of the list.
type JokesFailed struct {
	Title   string
	Message string
}

func (JokesInitial) jokeState() {}
func (JokesLoading) jokeState() {}
func (JokesLoaded) jokeState()  {}
func (JokesFailed) jokeState()  {}
