package update

import (
	"context"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/mock"
	"github.com/tesso57/jestr/internal/application/settings"
	"github.com/tesso57/jestr/internal/application/usecase"
	"github.com/tesso57/jestr/internal/domain/joke"
	"github.com/tesso57/jestr/internal/presentation/tui/state"
)

type stubFetcher struct {
	mock.Mock
}

func (s *stubFetcher) Categories(ctx context.Context) (joke.CategoryList, error) {
	args := s.Called(ctx)
	categories, _ := args.Get(0).(joke.CategoryList)
	return categories, args.Error(1)
}

func (s *stubFetcher) Jokes(ctx context.Context, q joke.Query) ([]joke.Joke, error) {
	args := s.Called(ctx, q)
	jokes, _ := args.Get(0).([]joke.Joke)
	return jokes, args.Error(1)
}

type memoryBookmarks struct {
	bookmarks []joke.Bookmark
	err       error
}

func (m *memoryBookmarks) List() ([]joke.Bookmark, error) {
	return append([]joke.Bookmark(nil), m.bookmarks...), m.err
}

func (m *memoryBookmarks) Save(b joke.Bookmark) error {
	if m.err != nil {
		return m.err
	}
	m.bookmarks = append(m.bookmarks, b)
	return nil
}

func (m *memoryBookmarks) Delete(id int) error {
	if m.err != nil {
		return m.err
	}
	for i, b := range m.bookmarks {
		if b.Joke.ID == id {
			m.bookmarks = append(m.bookmarks[:i], m.bookmarks[i+1:]...)
			break
		}
	}
	return nil
}

func newTestDeps(fetcher usecase.JokeFetcher, repo usecase.BookmarkRepository) Deps {
	bookmarks := usecase.NewBookmarkService(repo, nil)
	return Deps{
		Jokes:     usecase.NewJokeService(fetcher, bookmarks, nil),
		Bookmarks: bookmarks,
	}
}

func newTestState() *state.ModelState {
	keys := state.NewKeyMap(settings.KeyMapConfig{
		Up: "k", Down: "j", UpPage: "ctrl+u", DownPage: "ctrl+d",
		Open: "enter,l", Back: "esc,h", Quit: "q",
		Fetch: "r", CycleCount: "c", CycleKind: "t", Search: "/", Bookmark: "b",
	})
	return &state.ModelState{
		Session:       state.CategoryView,
		Route:         state.CategoriesRoute(),
		Categories:    state.NewCategoryScreen(),
		QueryDefaults: joke.NewQuery(""),
		PreviewWords:  12,
		CategoryList:  list.New(nil, list.NewDefaultDelegate(), 0, 0),
		JokeList:      list.New(nil, list.NewDefaultDelegate(), 0, 0),
		SearchInput:   textinput.New(),
		Viewport:      viewport.New(0, 0),
		Help:          help.New(),
		Spinner:       spinner.New(),
		Keys:          keys,
		Width:         120,
		Height:        40,
	}
}

// runCmd executes cmd and any batched commands, returning every message.
func runCmd(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	batch, ok := msg.(tea.BatchMsg)
	if !ok {
		return []tea.Msg{msg}
	}
	var out []tea.Msg
	for _, c := range batch {
		out = append(out, runCmd(c)...)
	}
	return out
}

func jokesMsg(msgs []tea.Msg) (JokesFetchedMsg, bool) {
	for _, m := range msgs {
		if jm, ok := m.(JokesFetchedMsg); ok {
			return jm, true
		}
	}
	return JokesFetchedMsg{}, false
}

func categoriesMsg(msgs []tea.Msg) (CategoriesFetchedMsg, bool) {
	for _, m := range msgs {
		if cm, ok := m.(CategoriesFetchedMsg); ok {
			return cm, true
		}
	}
	return CategoriesFetchedMsg{}, false
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}
