package usecase

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/tesso57/jestr/internal/domain/joke"
)

type stubJokeFetcher struct {
	mock.Mock
}

func (s *stubJokeFetcher) Categories(ctx context.Context) (joke.CategoryList, error) {
	args := s.Called(ctx)
	list, _ := args.Get(0).(joke.CategoryList)
	return list, args.Error(1)
}

func (s *stubJokeFetcher) Jokes(ctx context.Context, q joke.Query) ([]joke.Joke, error) {
	args := s.Called(ctx, q)
	jokes, _ := args.Get(0).([]joke.Joke)
	return jokes, args.Error(1)
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
	s.bookmarks = append(s.bookmarks, b)
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
