package joke

import (
	"errors"
	"strings"
)

// BookmarksCategory is the synthetic category listing locally stored bookmarks.
const BookmarksCategory = "Bookmarks"

// ErrEmptyCategory is returned when a query has no category.
var ErrEmptyCategory = errors.New("joke category is empty")

// BlockFlag is a content category the API can exclude from results.
type BlockFlag string

const (
	NSFW      BlockFlag = "nsfw"
	Religious BlockFlag = "religious"
	Political BlockFlag = "political"
	Racist    BlockFlag = "racist"
	Sexist    BlockFlag = "sexist"
	Explicit  BlockFlag = "explicit"
)

// BlocklistOptions lists the selectable blocklist flags in display order.
var BlocklistOptions = []BlockFlag{NSFW, Religious, Political, Racist, Sexist, Explicit}

// CountOptions lists the selectable joke counts.
var CountOptions = []int{1, 2, 3, 4, 5, 10}

// ParseBlockFlag returns the flag with the given name.
func ParseBlockFlag(name string) (BlockFlag, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, flag := range BlocklistOptions {
		if string(flag) == name {
			return flag, true
		}
	}
	return "", false
}

// ParseKind returns the kind with the given name. "two-part" is accepted as an alias.
func ParseKind(name string) (Kind, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "single":
		return Single, true
	case "twopart", "two-part":
		return TwoPart, true
	default:
		return "", false
	}
}

// Query holds the parameters of a jokes request.
type Query struct {
	Category  string
	Count     int
	Kind      Kind
	Blocklist map[BlockFlag]bool
	Contains  string
}

// NewQuery returns a query for the category with the first count and kind options.
func NewQuery(category string) Query {
	return Query{
		Category:  category,
		Count:     CountOptions[0],
		Kind:      KindOptions[0],
		Blocklist: map[BlockFlag]bool{},
	}
}

// Validate checks the query can be sent.
func (q Query) Validate() error {
	if strings.TrimSpace(q.Category) == "" {
		return ErrEmptyCategory
	}
	return nil
}

// BlockedFlags returns the blocked flags in option order.
func (q Query) BlockedFlags() []BlockFlag {
	out := make([]BlockFlag, 0, len(q.Blocklist))
	for _, flag := range BlocklistOptions {
		if q.Blocklist[flag] {
			out = append(out, flag)
		}
	}
	return out
}

// BlocklistParam serializes the blocklist as a comma-joined list.
func (q Query) BlocklistParam() string {
	flags := q.BlockedFlags()
	names := make([]string, len(flags))
	for i, flag := range flags {
		names[i] = string(flag)
	}
	return strings.Join(names, ",")
}

// Matches reports whether a joke satisfies the kind, blocklist and search filters.
func (q Query) Matches(j Joke) bool {
	if q.Kind != "" && j.Kind != q.Kind {
		return false
	}
	for _, flag := range q.BlockedFlags() {
		if j.Flags.Has(flag) {
			return false
		}
	}
	contains := strings.ToLower(strings.TrimSpace(q.Contains))
	if contains != "" && !strings.Contains(strings.ToLower(j.Body()), contains) {
		return false
	}
	return true
}

// IndexOfCount returns the option index of count, or -1.
func IndexOfCount(count int) int {
	for i, c := range CountOptions {
		if c == count {
			return i
		}
	}
	return -1
}

// IndexOfKind returns the option index of kind, or -1.
func IndexOfKind(kind Kind) int {
	for i, k := range KindOptions {
		if k == kind {
			return i
		}
	}
	return -1
}

// WithCategory returns a copy of the query for another category. The blocklist
// set is copied.
func (q Query) WithCategory(category string) Query {
	out := q
	out.Category = category
	out.Blocklist = make(map[BlockFlag]bool, len(q.Blocklist))
	for flag, on := range q.Blocklist {
		if on {
			out.Blocklist[flag] = true
		}
	}
	return out
}
