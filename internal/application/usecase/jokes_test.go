package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/tesso57/jestr/internal/domain/joke"
)

func TestJokeService_Categories(t *testing.T) {
	fetcher := &stubJokeFetcher{}
	want := joke.CategoryList{Names: []string{"Any", "Programming"}}
	fetcher.On("Categories", mock.Anything).Return(want, nil).Once()

	svc := NewJokeService(fetcher, nil, nil)
	got, err := svc.Categories(context.Background())

	require.NoError(t, err)
	assert.Equal(t, want, got)
	fetcher.AssertExpectations(t)
}

func TestJokeService_CategoriesError(t *testing.T) {
	fetcher := &stubJokeFetcher{}
	fetcher.On("Categories", mock.Anything).Return(nil, &NetworkError{Err: errors.New("dial tcp: refused")}).Once()

	svc := NewJokeService(fetcher, nil, nil)
	_, err := svc.Categories(context.Background())

	var netErr *NetworkError
	require.ErrorAs(t, err, &netErr)
}

func TestJokeService_JokesPassesQuery(t *testing.T) {
	fetcher := &stubJokeFetcher{}
	q := joke.NewQuery("Programming")
	q.Count = 4
	q.Blocklist[joke.NSFW] = true
	jokes := []joke.Joke{{ID: 1, Kind: joke.Single, Text: "a"}}
	fetcher.On("Jokes", mock.Anything, q).Return(jokes, nil).Once()

	svc := NewJokeService(fetcher, nil, nil)
	got, err := svc.Jokes(context.Background(), q)

	require.NoError(t, err)
	assert.Equal(t, jokes, got)
	fetcher.AssertExpectations(t)
}

func TestJokeService_JokesRejectsEmptyCategory(t *testing.T) {
	fetcher := &stubJokeFetcher{}
	svc := NewJokeService(fetcher, nil, nil)

	_, err := svc.Jokes(context.Background(), joke.NewQuery(""))

	require.ErrorIs(t, err, joke.ErrEmptyCategory)
	fetcher.AssertNotCalled(t, "Jokes", mock.Anything, mock.Anything)
}

func TestJokeService_JokesFromBookmarks(t *testing.T) {
	fetcher := &stubJokeFetcher{}
	repo := &stubBookmarkRepo{bookmarks: []joke.Bookmark{
		{Joke: joke.Joke{ID: 1, Kind: joke.Single, Text: "one"}},
		{Joke: joke.Joke{ID: 2, Kind: joke.TwoPart, Setup: "two"}},
		{Joke: joke.Joke{ID: 3, Kind: joke.Single, Text: "three", Flags: joke.Flags{NSFW: true}}},
	}}
	svc := NewJokeService(fetcher, NewBookmarkService(repo, nil), nil)

	q := joke.NewQuery(joke.BookmarksCategory)
	q.Count = 10
	q.Blocklist[joke.NSFW] = true
	got, err := svc.Jokes(context.Background(), q)

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, 1, got[0].ID)
	fetcher.AssertNotCalled(t, "Jokes", mock.Anything, mock.Anything)
}

func TestDescribe(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantTitle   string
		wantMessage string
	}{
		{
			name:        "api error falls back to status",
			err:         &APIError{StatusCode: 503, Status: "503 Service Unavailable"},
			wantTitle:   APIErrorTitle,
			wantMessage: "503 Service Unavailable",
		},
		{
			name:        "api error with structured message",
			err:         &APIError{StatusCode: 400, Status: "400 Bad Request", Message: "No matching joke found", CausedBy: []string{"No jokes were found"}},
			wantTitle:   APIErrorTitle,
			wantMessage: "No matching joke found\nNo jokes were found",
		},
		{
			name:        "wrapped network error",
			err:         errors.Join(errors.New("ctx"), &NetworkError{Err: errors.New("connection reset")}),
			wantTitle:   NetworkErrorTitle,
			wantMessage: "connection reset",
		},
		{
			name:        "other error",
			err:         joke.ErrEmptyCategory,
			wantTitle:   ErrorTitle,
			wantMessage: joke.ErrEmptyCategory.Error(),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			title, message := Describe(tt.err)
			assert.Equal(t, tt.wantTitle, title)
			assert.Equal(t, tt.wantMessage, message)
		})
	}
}
