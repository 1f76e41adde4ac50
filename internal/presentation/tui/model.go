package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/tesso57/jestr/internal/application/settings"
	"github.com/tesso57/jestr/internal/application/usecase"
	"github.com/tesso57/jestr/internal/presentation/tui/state"
	"github.com/tesso57/jestr/internal/presentation/tui/update"
	"github.com/tesso57/jestr/internal/presentation/tui/view"
	listview "github.com/tesso57/jestr/internal/presentation/tui/view/list"
)

// Model represents the main application state.
type Model struct {
	settings  settings.Settings
	jokes     *usecase.JokeService
	bookmarks *usecase.BookmarkService
	state     *state.ModelState
}

// NewModel creates a new application model. A non-empty cfg.StartCategory,
// given as a category name or a "jokes/{category}" path, opens that
// category's joke screen directly.
func NewModel(cfg settings.Settings, jokes *usecase.JokeService, bookmarks *usecase.BookmarkService) *Model {
	return &Model{
		settings:  cfg,
		jokes:     jokes,
		bookmarks: bookmarks,
		state:     newModelState(cfg),
	}
}

// Init starts the categories request.
func (m *Model) Init() tea.Cmd {
	return update.FetchCategories(m.state, m.deps())
}

// Update handles messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		cmd, handled := update.HandleKeyMsg(m.state, msg, m.deps())
		if handled {
			update.UpdateListSizes(m.state)
			return m, cmd
		}
	case tea.WindowSizeMsg:
		update.HandleWindowSize(m.state, msg)
	case update.CategoriesFetchedMsg:
		update.HandleCategoriesFetchedMsg(m.state, msg)
	case update.JokesFetchedMsg:
		update.HandleJokesFetchedMsg(m.state, msg, m.deps())
	}

	if m.state.Loading() {
		m.state.Spinner, cmd = m.state.Spinner.Update(msg)
		cmds = append(cmds, cmd)
	}

	switch {
	case m.state.Session == state.SearchView:
		m.state.SearchInput, cmd = m.state.SearchInput.Update(msg)
		cmds = append(cmds, cmd)
	case m.state.DetailVisible():
		m.state.Viewport, cmd = m.state.Viewport.Update(msg)
		cmds = append(cmds, cmd)
	case m.state.Session == state.CategoryView:
		m.state.CategoryList, cmd = m.state.CategoryList.Update(msg)
		cmds = append(cmds, cmd)
	case m.state.Session == state.JokeView:
		m.state.JokeList, cmd = m.state.JokeList.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

// View renders the application view.
func (m *Model) View() string {
	return view.Render(m.buildProps())
}

func (m *Model) deps() update.Deps {
	return update.Deps{
		Jokes:     m.jokes,
		Bookmarks: m.bookmarks,
	}
}

func newModelState(cfg settings.Settings) *state.ModelState {
	st := &state.ModelState{
		Session:       state.CategoryView,
		Route:         state.CategoriesRoute(),
		Categories:    state.NewCategoryScreen(),
		QueryDefaults: cfg.InitialQuery(""),
		PreviewWords:  cfg.PreviewWords,
		CategoryList:  newCategoryList(cfg),
		JokeList:      newJokeList(),
		SearchInput:   newSearchInput(),
		Viewport:      newViewport(),
		Help:          help.New(),
		Spinner:       newSpinner(cfg),
		Keys:          state.NewKeyMap(cfg.KeyMap),
	}

	for _, l := range []*list.Model{&st.CategoryList, &st.JokeList} {
		l.KeyMap.PrevPage = st.Keys.UpPage
		l.KeyMap.NextPage = st.Keys.DownPage
	}
	st.Viewport.KeyMap.HalfPageUp = st.Keys.UpPage
	st.Viewport.KeyMap.HalfPageDown = st.Keys.DownPage

	if route, ok := startRoute(cfg.StartCategory); ok && route.Screen == state.JokesScreen {
		update.OpenJokes(st, route.Category)
	}
	return st
}

// startRoute accepts either a category name or a route path such as
// "jokes/Programming".
func startRoute(value string) (state.Route, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return state.Route{}, false
	}
	if route, ok := state.ParseRoute(value); ok {
		return route, true
	}
	return state.JokesRoute(value), true
}

func newCategoryList(cfg settings.Settings) list.Model {
	l := list.New([]list.Item{}, listview.NewCategoryDelegate(lipgloss.Color(cfg.Theme.Category)), 0, 0)
	l.Title = "Categories"
	l.SetShowHelp(false)
	l.SetShowTitle(false)
	l.DisableQuitKeybindings()
	return l
}

func newJokeList() list.Model {
	l := list.New([]list.Item{}, listview.NewJokeDelegate(), 0, 0)
	l.Title = "Jokes"
	l.SetShowTitle(false)
	l.SetShowHelp(false)
	l.SetFilteringEnabled(false)
	l.DisableQuitKeybindings()
	return l
}

func newSearchInput() textinput.Model {
	ti := textinput.New()
	ti.Placeholder = "text the joke must contain"
	ti.CharLimit = 100
	ti.Width = 34
	return ti
}

func newSpinner(cfg settings.Settings) spinner.Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(cfg.Theme.Accent))
	return s
}

func newViewport() viewport.Model {
	vp := viewport.New(0, 0)
	vp.Style = lipgloss.NewStyle().
		PaddingLeft(1).
		PaddingRight(1)
	return vp
}
