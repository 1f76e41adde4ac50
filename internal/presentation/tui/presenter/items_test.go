package presenter

import (
	"testing"

	"github.com/charmbracelet/bubbles/list"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tesso57/jestr/internal/domain/joke"
	"github.com/tesso57/jestr/internal/presentation/tui/state"
)

func TestBuildCategoryItems(t *testing.T) {
	categories := joke.CategoryList{
		Names: []string{"Any", "Programming"},
		Aliases: []joke.CategoryAlias{
			{Alias: "Coding", Resolved: "Programming"},
			{Alias: "Development", Resolved: "Programming"},
		},
	}

	items := BuildCategoryItems(categories)
	require.Len(t, items, 3)

	programming := items[1].(*CategoryItem)
	assert.Equal(t, "Programming", programming.Title())
	assert.Equal(t, "Coding, Development", programming.Description())
	assert.Contains(t, programming.FilterValue(), "Coding")

	bookmarks := items[2].(*CategoryItem)
	assert.Equal(t, joke.BookmarksCategory, bookmarks.Title())
}

func TestApplyCategoryList(t *testing.T) {
	model := list.New(nil, list.NewDefaultDelegate(), 10, 10)

	ApplyCategoryList(&model, state.CategoriesLoaded{List: joke.CategoryList{Names: []string{"Pun"}}})
	assert.Len(t, model.Items(), 2)

	ApplyCategoryList(&model, state.CategoriesFailed{Title: "Network error"})
	assert.Empty(t, model.Items())
}

func TestBuildJokeItems(t *testing.T) {
	jokes := []joke.Joke{
		{ID: 1, Kind: joke.Single, Text: "one two three four five", Safe: true},
		{ID: 2, Kind: joke.TwoPart, Setup: "setup words here", Delivery: "punchline", Flags: joke.Flags{NSFW: true}},
	}

	items := BuildJokeItems(jokes, map[int]bool{2: true}, 3)
	require.Len(t, items, 2)

	first := items[0].(*JokeItem)
	assert.Equal(t, "one two three...", first.Title())
	assert.False(t, first.IsBookmarked())
	assert.True(t, first.IsSafe())

	second := items[1].(*JokeItem)
	assert.Equal(t, "setup words here", second.Title())
	assert.True(t, second.IsBookmarked())
	assert.Equal(t, "nsfw", second.Description())
	assert.Contains(t, second.FilterValue(), "punchline")
}

func TestApplyJokeList(t *testing.T) {
	model := list.New(nil, list.NewDefaultDelegate(), 10, 10)
	screen := state.NewJokeScreen(joke.NewQuery("Pun"))

	ApplyJokeList(&model, screen, 12)
	assert.Empty(t, model.Items())

	screen.View = state.JokesLoaded{Jokes: []joke.Joke{{ID: 7, Kind: joke.Single, Text: "short"}}}
	ApplyJokeList(&model, screen, 12)
	require.Len(t, model.Items(), 1)
	assert.Equal(t, "Pun", model.Title)

	ApplyJokeList(&model, nil, 12)
	assert.Empty(t, model.Items())
}

func TestDetailTitle(t *testing.T) {
	assert.Equal(t, "Pun #7", DetailTitle(joke.Joke{ID: 7, Category: "Pun"}))
}
