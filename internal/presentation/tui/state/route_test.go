package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoutePath(t *testing.T) {
	assert.Equal(t, "categories", CategoriesRoute().Path())
	assert.Equal(t, "jokes/Programming", JokesRoute("Programming").Path())
	assert.Equal(t, "jokes/Spooky%20Stuff", JokesRoute("Spooky Stuff").Path())
}

func TestParseRoute(t *testing.T) {
	tests := []struct {
		path string
		want Route
		ok   bool
	}{
		{path: "categories", want: CategoriesRoute(), ok: true},
		{path: "/jokes/Pun", want: JokesRoute("Pun"), ok: true},
		{path: "jokes/Spooky%20Stuff", want: JokesRoute("Spooky Stuff"), ok: true},
		{path: "jokes/", ok: false},
		{path: "settings", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got, ok := ParseRoute(tt.path)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, got)
				assert.Equal(t, got, must(ParseRoute(got.Path())))
			}
		})
	}
}

func must(r Route, ok bool) Route {
	if !ok {
		panic("route did not round-trip")
	}
	return r
}
