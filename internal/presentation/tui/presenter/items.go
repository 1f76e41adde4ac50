// Package presenter builds view models for the TUI.
package presenter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/tesso57/jestr/internal/domain/joke"
	"github.com/tesso57/jestr/internal/presentation/tui/state"
	"github.com/tesso57/jestr/internal/presentation/tui/textutil"
)

// CategoryItem is a view model for category list items.
type CategoryItem struct {
	Name    string
	Aliases []string
}

// FilterValue implements list.Item.
func (i *CategoryItem) FilterValue() string {
	return strings.Join(append([]string{i.Name}, i.Aliases...), " ")
}

// Title returns the category name.
func (i *CategoryItem) Title() string { return i.Name }

// Description returns the aliases for list display.
func (i *CategoryItem) Description() string { return strings.Join(i.Aliases, ", ") }

// JokeItem is a view model for joke list items.
type JokeItem struct {
	Joke        joke.Joke
	PreviewText string
	Bookmarked  bool
}

// FilterValue implements list.Item.
func (i *JokeItem) FilterValue() string { return i.Joke.Body() }

// Title returns the list preview.
func (i *JokeItem) Title() string { return i.PreviewText }

// Description returns the flag summary.
func (i *JokeItem) Description() string { return strings.Join(i.Joke.Flags.Names(), ", ") }

// IsBookmarked returns the bookmark state.
func (i *JokeItem) IsBookmarked() bool { return i.Bookmarked }

// IsSafe returns the API safety flag.
func (i *JokeItem) IsSafe() bool { return i.Joke.Safe }

// BuildCategoryItems builds list items for the category list. The bookmarks
// entry is always last.
func BuildCategoryItems(categories joke.CategoryList) []list.Item {
	items := make([]list.Item, 0, len(categories.Names)+1)
	for _, name := range categories.Names {
		items = append(items, &CategoryItem{Name: name, Aliases: categories.AliasesOf(name)})
	}
	return append(items, &CategoryItem{Name: joke.BookmarksCategory})
}

// ApplyCategoryList updates the list model from the category view state.
func ApplyCategoryList(model *list.Model, view state.CategoryState) {
	loaded, ok := view.(state.CategoriesLoaded)
	if !ok {
		model.SetItems(nil)
		return
	}
	model.SetItems(BuildCategoryItems(loaded.List))
}

// BuildJokeItems builds list items for jokes.
func BuildJokeItems(jokes []joke.Joke, bookmarked map[int]bool, previewWords int) []list.Item {
	items := make([]list.Item, len(jokes))
	for i, j := range jokes {
		items[i] = &JokeItem{
			Joke:        j,
			PreviewText: textutil.Preview(j.Lead(), previewWords),
			Bookmarked:  bookmarked[j.ID],
		}
	}
	return items
}

// ApplyJokeList updates the joke list from the joke screen state.
func ApplyJokeList(model *list.Model, screen *state.JokeScreen, previewWords int) {
	if screen == nil {
		model.SetItems(nil)
		return
	}
	loaded, ok := screen.View.(state.JokesLoaded)
	if !ok {
		model.SetItems(nil)
		return
	}
	model.SetItems(BuildJokeItems(loaded.Jokes, screen.Bookmarked, previewWords))
	model.Title = screen.Query.Category
}

// DetailTitle returns the detail dialog title for j.
func DetailTitle(j joke.Joke) string {
	return fmt.Sprintf("%s #%d", j.Category, j.ID)
}
