package jokeapi

import "github.com/tesso57/jestr/internal/domain/joke"

// noMatchCode is the API error code for a query that matched no jokes.
const noMatchCode = 106

type aliasDTO struct {
	Alias    string `json:"alias"`
	Resolved string `json:"resolved"`
}

type categoriesResponse struct {
	Categories      []string   `json:"categories"`
	CategoryAliases []aliasDTO `json:"categoryAliases"`
	Error           bool       `json:"error"`
	Timestamp       int64      `json:"timestamp"`
}

type flagsDTO struct {
	Explicit  bool `json:"explicit"`
	NSFW      bool `json:"nsfw"`
	Political bool `json:"political"`
	Racist    bool `json:"racist"`
	Religious bool `json:"religious"`
	Sexist    bool `json:"sexist"`
}

type jokeDTO struct {
	Category string   `json:"category"`
	Delivery string   `json:"delivery,omitempty"`
	Joke     string   `json:"joke,omitempty"`
	Error    bool     `json:"error,omitempty"`
	Flags    flagsDTO `json:"flags"`
	ID       int      `json:"id"`
	Lang     string   `json:"lang"`
	Safe     bool     `json:"safe"`
	Setup    string   `json:"setup,omitempty"`
	Type     string   `json:"type"`
}

// errorResponse is the body the API sends with error set.
type errorResponse struct {
	Error          bool     `json:"error"`
	InternalError  bool     `json:"internalError"`
	Code           int      `json:"code"`
	Message        string   `json:"message"`
	CausedBy       []string `json:"causedBy"`
	AdditionalInfo string   `json:"additionalInfo"`
	Timestamp      int64    `json:"timestamp"`
}

// jokesResponse covers the multi-joke shape. With amount=1 the API sends a
// bare joke object instead, which leaves Jokes nil and Type set.
type jokesResponse struct {
	errorResponse
	Amount int       `json:"amount"`
	Jokes  []jokeDTO `json:"jokes"`
	Type   string    `json:"type"`
}

func (d jokeDTO) toDomain() joke.Joke {
	kind, ok := joke.ParseKind(d.Type)
	if !ok {
		kind = joke.Kind(d.Type)
	}
	return joke.Joke{
		ID:       d.ID,
		Category: d.Category,
		Kind:     kind,
		Text:     d.Joke,
		Setup:    d.Setup,
		Delivery: d.Delivery,
		Lang:     d.Lang,
		Safe:     d.Safe,
		Flags: joke.Flags{
			Explicit:  d.Flags.Explicit,
			NSFW:      d.Flags.NSFW,
			Political: d.Flags.Political,
			Racist:    d.Flags.Racist,
			Religious: d.Flags.Religious,
			Sexist:    d.Flags.Sexist,
		},
	}
}

func (r categoriesResponse) toDomain() joke.CategoryList {
	list := joke.CategoryList{
		Names:   append([]string(nil), r.Categories...),
		Aliases: make([]joke.CategoryAlias, len(r.CategoryAliases)),
	}
	for i, a := range r.CategoryAliases {
		list.Aliases[i] = joke.CategoryAlias{Alias: a.Alias, Resolved: a.Resolved}
	}
	return list
}
