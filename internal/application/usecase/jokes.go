// Package usecase contains application-level services.
package usecase

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/tesso57/jestr/internal/domain/joke"
)

// JokeFetcher abstracts the remote joke API.
type JokeFetcher interface {
	Categories(ctx context.Context) (joke.CategoryList, error)
	Jokes(ctx context.Context, q joke.Query) ([]joke.Joke, error)
}

// JokeService coordinates category and joke retrieval.
type JokeService struct {
	Fetcher   JokeFetcher
	Bookmarks *BookmarkService
	Log       *slog.Logger
}

// NewJokeService constructs a JokeService.
func NewJokeService(fetcher JokeFetcher, bookmarks *BookmarkService, log *slog.Logger) *JokeService {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return new(JokeService{
		Fetcher:   fetcher,
		Bookmarks: bookmarks,
		Log:       log,
	})
}

// Categories lists the categories offered by the API.
func (s *JokeService) Categories(ctx context.Context) (joke.CategoryList, error) {
	reqID := uuid.NewString()
	start := time.Now()
	s.Log.Debug("fetch categories", slog.String("request_id", reqID))

	list, err := s.Fetcher.Categories(ctx)
	if err != nil {
		s.Log.Warn("fetch categories failed",
			slog.String("request_id", reqID),
			slog.Duration("elapsed", time.Since(start)),
			slog.Any("error", err),
		)
		return joke.CategoryList{}, err
	}
	s.Log.Info("fetched categories",
		slog.String("request_id", reqID),
		slog.Int("count", len(list.Names)),
		slog.Duration("elapsed", time.Since(start)),
	)
	return list, nil
}

// Jokes runs the query against the API, or against local bookmarks for the
// bookmarks category.
func (s *JokeService) Jokes(ctx context.Context, q joke.Query) ([]joke.Joke, error) {
	if err := q.Validate(); err != nil {
		return nil, err
	}
	if q.Category == joke.BookmarksCategory {
		return s.Bookmarks.Filter(q)
	}

	reqID := uuid.NewString()
	start := time.Now()
	attrs := []any{
		slog.String("request_id", reqID),
		slog.String("category", q.Category),
		slog.Int("amount", q.Count),
		slog.String("type", string(q.Kind)),
		slog.String("blacklist", q.BlocklistParam()),
	}
	s.Log.Debug("fetch jokes", attrs...)

	jokes, err := s.Fetcher.Jokes(ctx, q)
	attrs = append(attrs, slog.Duration("elapsed", time.Since(start)))
	if err != nil {
		s.Log.Warn("fetch jokes failed", append(attrs, slog.Any("error", err))...)
		return nil, err
	}
	s.Log.Info("fetched jokes", append(attrs, slog.Int("count", len(jokes)))...)
	return jokes, nil
}
