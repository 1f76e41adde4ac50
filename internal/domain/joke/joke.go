// Package joke defines core joke models and query parameters.
package joke

import "strings"

// Kind is the joke shape reported by the API.
type Kind string

const (
	Single  Kind = "single"
	TwoPart Kind = "twopart"
)

// KindOptions lists the selectable joke kinds in display order.
var KindOptions = []Kind{Single, TwoPart}

// Label returns a human readable name for the kind.
func (k Kind) Label() string {
	switch k {
	case Single:
		return "single"
	case TwoPart:
		return "two-part"
	default:
		return string(k)
	}
}

// Flags holds the content warnings attached to a joke.
type Flags struct {
	Explicit  bool
	NSFW      bool
	Political bool
	Racist    bool
	Religious bool
	Sexist    bool
}

// Has reports whether the flag matching the given blocklist entry is set.
func (f Flags) Has(flag BlockFlag) bool {
	switch flag {
	case NSFW:
		return f.NSFW
	case Religious:
		return f.Religious
	case Political:
		return f.Political
	case Racist:
		return f.Racist
	case Sexist:
		return f.Sexist
	case Explicit:
		return f.Explicit
	default:
		return false
	}
}

// Names returns the set flags in blocklist option order.
func (f Flags) Names() []string {
	var names []string
	for _, flag := range BlocklistOptions {
		if f.Has(flag) {
			names = append(names, string(flag))
		}
	}
	return names
}

// Joke represents a single joke returned by the API.
type Joke struct {
	ID       int
	Category string
	Kind     Kind
	Text     string
	Setup    string
	Delivery string
	Lang     string
	Safe     bool
	Flags    Flags
}

// Lead returns the text shown first: the setup of a two-part joke or the whole single joke.
func (j Joke) Lead() string {
	if j.Kind == TwoPart {
		return j.Setup
	}
	return j.Text
}

// Body returns the full joke text for the detail view.
func (j Joke) Body() string {
	if j.Kind == TwoPart {
		setup := strings.TrimSpace(j.Setup)
		delivery := strings.TrimSpace(j.Delivery)
		if delivery == "" {
			return setup
		}
		return setup + "\n\n" + delivery
	}
	return strings.TrimSpace(j.Text)
}

// CategoryAlias maps an alternative category name to its canonical name.
type CategoryAlias struct {
	Alias    string
	Resolved string
}

// CategoryList is the result of listing categories.
type CategoryList struct {
	Names   []string
	Aliases []CategoryAlias
}

// AliasesOf returns the aliases resolving to the given category.
func (c CategoryList) AliasesOf(name string) []string {
	var out []string
	for _, alias := range c.Aliases {
		if strings.EqualFold(alias.Resolved, name) {
			out = append(out, alias.Alias)
		}
	}
	return out
}
