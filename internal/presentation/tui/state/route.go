package state

import (
	"net/url"
	"strings"
)

// Screen identifies a navigation destination.
type Screen int

const (
	CategoriesScreen Screen = iota
	JokesScreen
)

// Route is the current navigation destination.
type Route struct {
	Screen   Screen
	Category string
}

// CategoriesRoute returns the route of the category list.
func CategoriesRoute() Route {
	return Route{Screen: CategoriesScreen}
}

// JokesRoute returns the route of the joke list for a category.
func JokesRoute(category string) Route {
	return Route{Screen: JokesScreen, Category: category}
}

// Path renders the route as "categories" or "jokes/{category}".
func (r Route) Path() string {
	if r.Screen == JokesScreen {
		return "jokes/" + url.PathEscape(r.Category)
	}
	return "categories"
}

// ParseRoute parses a path produced by Route.Path.
func ParseRoute(path string) (Route, bool) {
	path = strings.Trim(strings.TrimSpace(path), "/")
	if path == "categories" {
		return CategoriesRoute(), true
	}
	rest, ok := strings.CutPrefix(path, "jokes/")
	if !ok || rest == "" {
		return Route{}, false
	}
	category, err := url.PathUnescape(rest)
	if err != nil || strings.TrimSpace(category) == "" {
		return Route{}, false
	}
	return JokesRoute(category), true
}
