// Package update holds UI update logic for the TUI.
package update

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/tesso57/jestr/internal/application/usecase"
	"github.com/tesso57/jestr/internal/domain/joke"
	"github.com/tesso57/jestr/internal/presentation/tui/intent"
	"github.com/tesso57/jestr/internal/presentation/tui/presenter"
	"github.com/tesso57/jestr/internal/presentation/tui/state"
)

// Deps groups external dependencies for updates.
type Deps struct {
	Jokes     *usecase.JokeService
	Bookmarks *usecase.BookmarkService
}

// CategoriesFetchedMsg is emitted after a categories request completes.
type CategoriesFetchedMsg struct {
	Generation uint64
	List       joke.CategoryList
	Err        error
}

// JokesFetchedMsg is emitted after a jokes request completes.
type JokesFetchedMsg struct {
	Generation uint64
	Jokes      []joke.Joke
	Err        error
}

// FetchCategoriesCmd creates a command that loads the category list.
func FetchCategoriesCmd(ctx context.Context, jokes *usecase.JokeService, generation uint64) tea.Cmd {
	return func() tea.Msg {
		categories, err := jokes.Categories(ctx)
		return CategoriesFetchedMsg{Generation: generation, List: categories, Err: err}
	}
}

// FetchJokesCmd creates a command that loads jokes for the query.
func FetchJokesCmd(ctx context.Context, jokes *usecase.JokeService, generation uint64, q joke.Query) tea.Cmd {
	return func() tea.Msg {
		found, err := jokes.Jokes(ctx, q)
		return JokesFetchedMsg{Generation: generation, Jokes: found, Err: err}
	}
}

// FetchCategories moves the category screen to Loading and issues a request.
func FetchCategories(s *state.ModelState, deps Deps) tea.Cmd {
	if s.Categories == nil {
		s.Categories = state.NewCategoryScreen()
	}
	ctx, generation := s.Categories.BeginFetch()
	presenter.ApplyCategoryList(&s.CategoryList, s.Categories.View)
	return tea.Batch(s.Spinner.Tick, FetchCategoriesCmd(ctx, deps.Jokes, generation))
}

// FetchJokes moves the joke screen to Loading and issues a request for its
// current query. A request still in flight is superseded.
func FetchJokes(s *state.ModelState, deps Deps) tea.Cmd {
	if s.Jokes == nil {
		return nil
	}
	ctx, generation, q := s.Jokes.BeginFetch()
	s.StatusMessage = ""
	presenter.ApplyJokeList(&s.JokeList, s.Jokes, s.PreviewWords)
	return tea.Batch(s.Spinner.Tick, FetchJokesCmd(ctx, deps.Jokes, generation, q))
}

// HandleCategoriesFetchedMsg applies a categories result to the category screen.
func HandleCategoriesFetchedMsg(s *state.ModelState, msg CategoriesFetchedMsg) {
	if s.Categories == nil || !s.Categories.FinishFetch(msg.Generation, msg.List, msg.Err) {
		return
	}
	presenter.ApplyCategoryList(&s.CategoryList, s.Categories.View)
	UpdateListSizes(s)
}

// HandleJokesFetchedMsg applies a jokes result to the joke screen.
func HandleJokesFetchedMsg(s *state.ModelState, msg JokesFetchedMsg, deps Deps) {
	if s.Jokes == nil || !s.Jokes.FinishFetch(msg.Generation, msg.Jokes, msg.Err) {
		return
	}
	if msg.Err == nil {
		refreshBookmarked(s, deps)
		s.StatusMessage = jokesStatusMessage(len(msg.Jokes))
	}
	presenter.ApplyJokeList(&s.JokeList, s.Jokes, s.PreviewWords)
	UpdateListSizes(s)
}

// HandleWindowSize resizes lists and the detail viewport.
func HandleWindowSize(s *state.ModelState, msg tea.WindowSizeMsg) {
	s.Width = msg.Width
	s.Height = msg.Height

	UpdateListSizes(s)
	if s.DetailVisible() {
		refreshDetailViewport(s)
	}
}

// OpenJokes replaces the joke screen with a fresh one for category and
// navigates to it. The new screen starts in the initial state.
func OpenJokes(s *state.ModelState, category string) {
	if s.Jokes != nil {
		s.Jokes.Close()
	}
	s.Jokes = state.NewJokeScreen(s.QueryDefaults.WithCategory(category))
	s.Route = state.JokesRoute(category)
	s.Session = state.JokeView
	s.StatusMessage = ""
	s.JokeList.ResetFilter()
	presenter.ApplyJokeList(&s.JokeList, s.Jokes, s.PreviewWords)
	UpdateListSizes(s)
}

// HandleKeyMsg processes key input based on the current session. It reports
// whether the key was consumed.
func HandleKeyMsg(s *state.ModelState, msg tea.KeyMsg, deps Deps) (tea.Cmd, bool) {
	if s.Session == state.QuitView {
		return handleQuitView(s, msg)
	}
	if s.Session == state.SearchView {
		return handleSearchView(s, msg)
	}
	if activeList, ok := activeListForFiltering(s); ok && activeList.FilterState() == list.Filtering {
		return nil, false
	}

	parsed := intent.FromKeyMsg(msg, s.Keys)
	switch parsed.Type {
	case intent.Quit:
		s.Previous = s.Session
		s.Session = state.QuitView
		return nil, true
	case intent.ToggleHelp:
		s.Help.ShowAll = !s.Help.ShowAll
		UpdateListSizes(s)
		return nil, true
	}

	if s.DetailVisible() {
		return handleDetailIntent(s, parsed, deps)
	}

	switch s.Session {
	case state.CategoryView:
		return handleCategoryViewIntent(s, parsed, deps)
	case state.JokeView:
		return handleJokeViewIntent(s, parsed, deps)
	default:
		return nil, false
	}
}

func activeListForFiltering(s *state.ModelState) (*list.Model, bool) {
	if s.DetailVisible() {
		return nil, false
	}
	switch s.Session {
	case state.CategoryView:
		return &s.CategoryList, true
	case state.JokeView:
		return &s.JokeList, true
	default:
		return nil, false
	}
}

func handleQuitView(s *state.ModelState, msg tea.KeyMsg) (tea.Cmd, bool) {
	switch msg.String() {
	case "y", "Y":
		if s.Jokes != nil {
			s.Jokes.Close()
		}
		if s.Categories != nil {
			s.Categories.Close()
		}
		return tea.Quit, true
	case "n", "N", "esc", "q", "Q":
		s.Session = s.Previous
		return nil, true
	}
	return nil, true
}

func handleSearchView(s *state.ModelState, msg tea.KeyMsg) (tea.Cmd, bool) {
	switch msg.String() {
	case "enter":
		if s.Jokes != nil {
			s.Jokes.SetContains(s.SearchInput.Value())
		}
		s.SearchInput.Blur()
		s.Session = state.JokeView
		return nil, true
	case "esc":
		s.SearchInput.Blur()
		s.Session = state.JokeView
		return nil, true
	}

	var cmd tea.Cmd
	s.SearchInput, cmd = s.SearchInput.Update(msg)
	return cmd, true
}

func handleCategoryViewIntent(s *state.ModelState, in intent.Intent, deps Deps) (tea.Cmd, bool) {
	switch in.Type {
	case intent.Open:
		item, ok := s.CategoryList.SelectedItem().(*presenter.CategoryItem)
		if !ok {
			return nil, true
		}
		OpenJokes(s, item.Name)
		return nil, true
	case intent.Fetch:
		if s.Categories != nil && s.Categories.Loading() {
			return nil, true
		}
		return FetchCategories(s, deps), true
	case intent.Back:
		s.CategoryList.ResetFilter()
		return nil, true
	}
	return nil, false
}

func handleJokeViewIntent(s *state.ModelState, in intent.Intent, deps Deps) (tea.Cmd, bool) {
	screen := s.Jokes
	if screen == nil {
		return nil, false
	}

	switch in.Type {
	case intent.Back:
		if s.JokeList.FilterState() != list.Unfiltered {
			s.JokeList.ResetFilter()
			return nil, true
		}
		return closeJokes(s, deps), true
	case intent.Fetch:
		if !screen.FetchEnabled {
			return nil, true
		}
		return FetchJokes(s, deps), true
	case intent.CycleCount:
		screen.UpdateCount((screen.CountIndex + 1) % len(joke.CountOptions))
		return nil, true
	case intent.CycleKind:
		screen.UpdateJokeKind((screen.KindIndex + 1) % len(joke.KindOptions))
		return nil, true
	case intent.ToggleBlock:
		if in.Index < 0 || in.Index >= len(joke.BlocklistOptions) {
			return nil, true
		}
		screen.UpdateBlocklistSelection(in.Index)
		return nil, true
	case intent.Search:
		s.SearchInput.SetValue(screen.Query.Contains)
		s.SearchInput.CursorEnd()
		s.Session = state.SearchView
		return s.SearchInput.Focus(), true
	case intent.Open:
		item, ok := s.JokeList.SelectedItem().(*presenter.JokeItem)
		if !ok {
			return nil, true
		}
		screen.SelectJoke(item.Joke)
		refreshDetailViewport(s)
		return nil, true
	case intent.Bookmark:
		item, ok := s.JokeList.SelectedItem().(*presenter.JokeItem)
		if !ok {
			return nil, true
		}
		toggleBookmark(s, item.Joke, deps)
		return nil, true
	}
	return nil, false
}

func handleDetailIntent(s *state.ModelState, in intent.Intent, deps Deps) (tea.Cmd, bool) {
	switch in.Type {
	case intent.Back, intent.Open:
		s.Jokes.ClearSelectedJoke()
		return nil, true
	case intent.Bookmark:
		toggleBookmark(s, *s.Jokes.Selected, deps)
		refreshDetailViewport(s)
		return nil, true
	}
	return nil, false
}

func closeJokes(s *state.ModelState, deps Deps) tea.Cmd {
	if s.Jokes != nil {
		s.Jokes.Close()
		s.Jokes = nil
	}
	s.Route = state.CategoriesRoute()
	s.Session = state.CategoryView
	s.StatusMessage = ""
	presenter.ApplyJokeList(&s.JokeList, nil, s.PreviewWords)

	if s.Categories == nil {
		return FetchCategories(s, deps)
	}
	if _, ok := s.Categories.View.(state.CategoriesLoaded); !ok && !s.Categories.Loading() {
		return FetchCategories(s, deps)
	}
	return nil
}

func toggleBookmark(s *state.ModelState, j joke.Joke, deps Deps) {
	if deps.Bookmarks == nil {
		s.StatusMessage = "Bookmarks are disabled"
		return
	}
	screen := s.Jokes
	was := screen.Bookmarked[j.ID]
	now, err := deps.Bookmarks.Toggle(j, was)
	if err != nil {
		s.StatusMessage = fmt.Sprintf("Bookmark failed: %v", err)
		return
	}
	if now {
		screen.Bookmarked[j.ID] = true
		s.StatusMessage = fmt.Sprintf("Bookmarked #%d", j.ID)
	} else {
		delete(screen.Bookmarked, j.ID)
		s.StatusMessage = fmt.Sprintf("Removed bookmark #%d", j.ID)
	}
	applyBookmarkToList(&s.JokeList, j.ID, now)
}

func applyBookmarkToList(model *list.Model, id int, bookmarked bool) {
	for idx, it := range model.Items() {
		item, ok := it.(*presenter.JokeItem)
		if !ok || item.Joke.ID != id {
			continue
		}
		updated := *item
		updated.Bookmarked = bookmarked
		model.SetItem(idx, &updated)
	}
}

func refreshBookmarked(s *state.ModelState, deps Deps) {
	ids, err := deps.Bookmarks.IDs()
	if err != nil {
		s.StatusMessage = fmt.Sprintf("Bookmarks unavailable: %v", err)
		return
	}
	s.Jokes.Bookmarked = ids
}

func jokesStatusMessage(n int) string {
	switch n {
	case 0:
		return ""
	case 1:
		return "Loaded 1 joke"
	default:
		return fmt.Sprintf("Loaded %d jokes", n)
	}
}

func refreshDetailViewport(s *state.ModelState) {
	if s.Jokes == nil || s.Jokes.Selected == nil {
		return
	}
	selected := *s.Jokes.Selected
	s.Viewport.SetContent(buildDetailContentForWidth(selected, s.Jokes.Bookmarked[selected.ID], detailWrapWidth(s)))
	s.Viewport.GotoTop()
}

func detailWrapWidth(s *state.ModelState) int {
	viewportContentWidth := s.Viewport.Width - s.Viewport.Style.GetHorizontalFrameSize()
	if viewportContentWidth > 0 {
		return viewportContentWidth
	}
	// Fallback for early calls before first resize.
	return clampMin(detailInnerWidth, 1)
}
