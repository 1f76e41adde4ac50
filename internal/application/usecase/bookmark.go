package usecase

import (
	"time"

	"github.com/tesso57/jestr/internal/domain/joke"
)

// BookmarkRepository abstracts bookmark persistence.
type BookmarkRepository interface {
	List() ([]joke.Bookmark, error)
	Save(b joke.Bookmark) error
	Delete(id int) error
}

// BookmarkService provides bookmark-related operations.
type BookmarkService struct {
	Repo BookmarkRepository
	Now  func() time.Time
}

// NewBookmarkService constructs a BookmarkService.
func NewBookmarkService(repo BookmarkRepository, now func() time.Time) *BookmarkService {
	return new(BookmarkService{Repo: repo, Now: now})
}

// List returns all bookmarks, newest first as stored by the repository.
func (s *BookmarkService) List() ([]joke.Bookmark, error) {
	if s == nil || s.Repo == nil {
		return nil, nil
	}
	return s.Repo.List()
}

// IDs returns the set of bookmarked joke IDs.
func (s *BookmarkService) IDs() (map[int]bool, error) {
	bookmarks, err := s.List()
	if err != nil {
		return nil, err
	}
	ids := make(map[int]bool, len(bookmarks))
	for _, b := range bookmarks {
		ids[b.Joke.ID] = true
	}
	return ids, nil
}

// Toggle adds or removes the joke and reports whether it is now bookmarked.
func (s *BookmarkService) Toggle(j joke.Joke, bookmarked bool) (bool, error) {
	if s == nil || s.Repo == nil {
		return bookmarked, nil
	}
	if bookmarked {
		if err := s.Repo.Delete(j.ID); err != nil {
			return true, err
		}
		return false, nil
	}
	if err := s.Repo.Save(joke.Bookmark{Joke: j, SavedAt: s.now()}); err != nil {
		return false, err
	}
	return true, nil
}

// Filter returns bookmarked jokes matching the query, limited to its count.
func (s *BookmarkService) Filter(q joke.Query) ([]joke.Joke, error) {
	bookmarks, err := s.List()
	if err != nil {
		return nil, err
	}
	out := make([]joke.Joke, 0, len(bookmarks))
	for _, b := range bookmarks {
		if !q.Matches(b.Joke) {
			continue
		}
		out = append(out, b.Joke)
		if q.Count > 0 && len(out) >= q.Count {
			break
		}
	}
	return out, nil
}

func (s *BookmarkService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}
