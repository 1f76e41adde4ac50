package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/mock"
	"github.com/tesso57/jestr/internal/application/settings"
	"github.com/tesso57/jestr/internal/application/usecase"
	"github.com/tesso57/jestr/internal/domain/joke"
)

type stubJokeFetcher struct {
	mock.Mock
	categories joke.CategoryList
	jokes      []joke.Joke
}

func (s *stubJokeFetcher) Categories(ctx context.Context) (joke.CategoryList, error) {
	if len(s.ExpectedCalls) > 0 {
		args := s.Called(ctx)
		list, _ := args.Get(0).(joke.CategoryList)
		return list, args.Error(1)
	}
	return s.categories, nil
}

func (s *stubJokeFetcher) Jokes(ctx context.Context, q joke.Query) ([]joke.Joke, error) {
	if len(s.ExpectedCalls) > 0 {
		args := s.Called(ctx, q)
		jokes, _ := args.Get(0).([]joke.Joke)
		return jokes, args.Error(1)
	}
	return append([]joke.Joke(nil), s.jokes...), nil
}

type stubBookmarkRepo struct {
	mock.Mock
	bookmarks []joke.Bookmark
}

func (s *stubBookmarkRepo) List() ([]joke.Bookmark, error) {
	if len(s.ExpectedCalls) > 0 {
		args := s.Called()
		bookmarks, _ := args.Get(0).([]joke.Bookmark)
		return bookmarks, args.Error(1)
	}
	return append([]joke.Bookmark(nil), s.bookmarks...), nil
}

func (s *stubBookmarkRepo) Save(b joke.Bookmark) error {
	if len(s.ExpectedCalls) > 0 {
		return s.Called(b).Error(0)
	}
	s.bookmarks = append([]joke.Bookmark{b}, s.bookmarks...)
	return nil
}

func (s *stubBookmarkRepo) Delete(id int) error {
	if len(s.ExpectedCalls) > 0 {
		return s.Called(id).Error(0)
	}
	for i, b := range s.bookmarks {
		if b.Joke.ID == id {
			s.bookmarks = append(s.bookmarks[:i], s.bookmarks[i+1:]...)
			break
		}
	}
	return nil
}

func testSettings() settings.Settings {
	return settings.Settings{
		Query:        settings.QueryConfig{Count: 4, Kind: "single"},
		PreviewWords: 12,
		KeyMap: settings.KeyMapConfig{
			Up: "k", Down: "j", UpPage: "ctrl+u", DownPage: "ctrl+d",
			Open: "enter,l", Back: "esc,h", Quit: "q",
			Fetch: "r", CycleCount: "c", CycleKind: "t", Search: "/", Bookmark: "b",
		},
		Theme: settings.ThemeConfig{Accent: "205", Category: "244"},
	}
}

func newTestModel(cfg settings.Settings, fetcher usecase.JokeFetcher, repo usecase.BookmarkRepository) *Model {
	now := func() time.Time { return time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC) }
	bookmarks := usecase.NewBookmarkService(repo, now)
	jokes := usecase.NewJokeService(fetcher, bookmarks, nil)
	m := NewModel(cfg, jokes, bookmarks)
	tm, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	return tm.(*Model)
}

// drive runs cmd and feeds the resulting messages back into the model.
// Follow-up commands are dropped so spinner ticks do not loop.
func drive(m *Model, cmd tea.Cmd) *Model {
	for _, msg := range collect(cmd) {
		tm, _ := m.Update(msg)
		m = tm.(*Model)
	}
	return m
}

func collect(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, collect(c)...)
		}
		return out
	}
	return []tea.Msg{msg}
}

func press(m *Model, msg tea.KeyMsg) (*Model, tea.Cmd) {
	tm, cmd := m.Update(msg)
	return tm.(*Model), cmd
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}
