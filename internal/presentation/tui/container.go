// Package tui provides the main user interface model and view components.
package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/tesso57/jestr/internal/domain/joke"
	"github.com/tesso57/jestr/internal/presentation/tui/components/header"
	mainview "github.com/tesso57/jestr/internal/presentation/tui/components/main"
	"github.com/tesso57/jestr/internal/presentation/tui/components/modal"
	"github.com/tesso57/jestr/internal/presentation/tui/components/sidebar"
	"github.com/tesso57/jestr/internal/presentation/tui/metrics"
	"github.com/tesso57/jestr/internal/presentation/tui/presenter"
	"github.com/tesso57/jestr/internal/presentation/tui/state"
	"github.com/tesso57/jestr/internal/presentation/tui/textutil"
	"github.com/tesso57/jestr/internal/presentation/tui/view"
)

const noJokesMessage = "No jokes matched this query."

func (m *Model) buildProps() view.Props {
	return view.Props{
		Sidebar: m.buildSidebarProps(),
		Header:  m.buildHeaderProps(),
		Main:    m.buildMainProps(),
		Modal:   m.buildModalProps(),
		Footer:  m.buildFooterProps(),
	}
}

func (m *Model) accent() lipgloss.Color {
	return lipgloss.Color(m.settings.Theme.Accent)
}

func (m *Model) buildSidebarProps() sidebar.Props {
	st := m.state
	props := sidebar.Props{
		Width:  st.CategoryList.Width(),
		Height: st.CategoryList.Height(),
		Accent: m.accent(),
	}

	if st.Route.Screen == state.JokesScreen && st.Jokes != nil {
		props.Title = "Query"
		props.View = sidebar.Controls(buildControlsProps(st))
		props.Active = st.Session == state.JokeView || st.Session == state.SearchView
		return props
	}

	props.Title = "Categories"
	props.Active = st.Session == state.CategoryView
	if _, ok := st.Categories.View.(state.CategoriesLoaded); ok {
		props.View = st.CategoryList.View()
	}
	return props
}

func buildControlsProps(st *state.ModelState) sidebar.ControlsProps {
	screen := st.Jokes
	toggles := make([]sidebar.Toggle, len(joke.BlocklistOptions))
	for i, flag := range joke.BlocklistOptions {
		toggles[i] = sidebar.Toggle{
			Key:   strconv.Itoa(i + 1),
			Label: string(flag),
			On:    screen.Blocklist[i],
		}
	}
	return sidebar.ControlsProps{
		Category:  screen.Query.Category,
		Count:     strconv.Itoa(screen.Query.Count),
		CountKey:  st.Keys.CycleCount.Help().Key,
		Kind:      screen.Query.Kind.Label(),
		KindKey:   st.Keys.CycleKind.Help().Key,
		Contains:  screen.Query.Contains,
		SearchKey: st.Keys.Search.Help().Key,
		Toggles:   toggles,
		FetchKey:  st.Keys.Fetch.Help().Key,
		Fetching:  !screen.FetchEnabled,
	}
}

func (m *Model) buildHeaderProps() header.Props {
	st := m.state
	sidebarWidth := st.Width / 3
	availableWidth := st.Width - sidebarWidth - metrics.SidebarRightBorderWidth - metrics.HeaderWidthPadding

	return header.Props{
		Visible: true,
		Route:   headerLine(st.Route.Path(), availableWidth),
		Summary: headerLine(headerSummary(st), availableWidth),
		Accent:  m.accent(),
	}
}

func headerSummary(st *state.ModelState) string {
	if st.Route.Screen == state.JokesScreen && st.Jokes != nil {
		q := st.Jokes.Query
		parts := []string{
			fmt.Sprintf("%d x %s", q.Count, q.Kind.Label()),
		}
		if blocked := q.BlocklistParam(); blocked != "" {
			parts = append(parts, "blocked: "+blocked)
		}
		if q.Contains != "" {
			parts = append(parts, fmt.Sprintf("text: %q", q.Contains))
		}
		return strings.Join(parts, " | ")
	}
	if loaded, ok := st.Categories.View.(state.CategoriesLoaded); ok {
		return fmt.Sprintf("%d categories", len(loaded.List.Names))
	}
	return ""
}

func (m *Model) buildMainProps() mainview.Props {
	st := m.state
	props := mainview.Props{
		Width:  st.JokeList.Width(),
		Height: st.JokeList.Height() + metrics.HeaderLines,
	}

	if st.Route.Screen == state.JokesScreen && st.Jokes != nil {
		switch v := st.Jokes.View.(type) {
		case state.JokesInitial:
			props.Notice = &mainview.Notice{
				Message: fmt.Sprintf("Press %s to fetch jokes.", st.Keys.Fetch.Help().Key),
			}
		case state.JokesLoading:
			props.Body = loadingBody(st, "Loading jokes...")
		case state.JokesLoaded:
			if len(v.Jokes) == 0 {
				props.Notice = &mainview.Notice{Message: noJokesMessage}
			} else {
				props.Body = st.JokeList.View()
			}
		case state.JokesFailed:
			props.Notice = &mainview.Notice{Title: v.Title, Message: v.Message, Error: true}
		}
		return props
	}

	switch v := st.Categories.View.(type) {
	case state.CategoriesLoading:
		props.Body = loadingBody(st, "Loading categories...")
	case state.CategoriesFailed:
		props.Notice = &mainview.Notice{
			Title:   v.Title,
			Message: fmt.Sprintf("%s\n\nPress %s to retry.", v.Message, st.Keys.Fetch.Help().Key),
			Error:   true,
		}
	case state.CategoriesLoaded:
		props.Notice = &mainview.Notice{
			Message: fmt.Sprintf("Pick a category and press %s.", st.Keys.Open.Help().Key),
		}
	}
	return props
}

func loadingBody(st *state.ModelState, message string) string {
	return fmt.Sprintf("\n\n   %s %s", st.Spinner.View(), message)
}

func (m *Model) buildModalProps() modal.Props {
	st := m.state
	base := modal.Props{
		Visible: true,
		Width:   st.Width,
		Height:  st.Height,
		Accent:  m.accent(),
	}

	switch {
	case st.Session == state.QuitView:
		base.Kind = modal.Quit
		base.Body = "Are you sure you want to quit?\n\n(y/n)"
	case st.Session == state.SearchView:
		base.Kind = modal.Search
		base.Title = "Search text"
		base.Body = fmt.Sprintf("%s\n\n(enter to apply, esc to cancel)", st.SearchInput.View())
	case st.Help.ShowAll:
		base.Kind = modal.Help
		base.Body = st.Help.View(&st.Keys)
	case st.DetailVisible():
		base.Kind = modal.Detail
		base.Title = presenter.DetailTitle(*st.Jokes.Selected)
		base.Body = st.Viewport.View()
	default:
		return modal.Props{Visible: false}
	}
	return base
}

func (m *Model) buildFooterProps() string {
	helpText := state.FooterHelpText(m.state.Help, m.state.Keys)
	return state.FooterText(m.state.Loading(), m.state.StatusMessage, helpText)
}

func headerLine(text string, width int) string {
	return textutil.Truncate(textutil.SingleLine(text), width)
}
