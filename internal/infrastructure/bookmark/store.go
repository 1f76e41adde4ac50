// Package bookmark persists bookmarked jokes in a SQLite database.
package bookmark

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/tesso57/jestr/internal/domain/joke"
	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS bookmarks (
	id         INTEGER PRIMARY KEY,
	category   TEXT    NOT NULL DEFAULT '',
	kind       TEXT    NOT NULL DEFAULT '',
	text       TEXT    NOT NULL DEFAULT '',
	setup      TEXT    NOT NULL DEFAULT '',
	delivery   TEXT    NOT NULL DEFAULT '',
	lang       TEXT    NOT NULL DEFAULT '',
	safe       INTEGER NOT NULL DEFAULT 0,
	flags      TEXT    NOT NULL DEFAULT '',
	saved_at   INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS bookmarks_saved_at ON bookmarks (saved_at DESC);
`

// Store reads and writes bookmarks.
type Store struct {
	mu sync.Mutex
	db *sql.DB
}

// Open opens or creates the database at path.
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return nil, fmt.Errorf("failed to create bookmarks directory: %w", err)
		}
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open bookmarks db: %w", err)
	}
	db.SetMaxOpenConns(1)
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrate bookmarks db: %w", err)
	}
	return &Store{db: db}, nil
}

// Close releases the database handle.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// List returns all bookmarks, most recently saved first.
func (s *Store) List() ([]joke.Bookmark, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rows, err := s.db.Query(`
		SELECT id, category, kind, text, setup, delivery, lang, safe, flags, saved_at
		FROM bookmarks
		ORDER BY saved_at DESC, id ASC`)
	if err != nil {
		return nil, fmt.Errorf("list bookmarks: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var out []joke.Bookmark
	for rows.Next() {
		var (
			j       joke.Joke
			kind    string
			safe    int
			flags   string
			savedAt int64
		)
		if err := rows.Scan(&j.ID, &j.Category, &kind, &j.Text, &j.Setup, &j.Delivery, &j.Lang, &safe, &flags, &savedAt); err != nil {
			return nil, fmt.Errorf("scan bookmark: %w", err)
		}
		j.Kind = joke.Kind(kind)
		j.Safe = safe != 0
		j.Flags = decodeFlags(flags)
		out = append(out, joke.Bookmark{Joke: j, SavedAt: time.Unix(0, savedAt).UTC()})
	}
	return out, rows.Err()
}

// Save inserts or replaces a bookmark.
func (s *Store) Save(b joke.Bookmark) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	j := b.Joke
	safe := 0
	if j.Safe {
		safe = 1
	}
	_, err := s.db.Exec(`
		INSERT INTO bookmarks (id, category, kind, text, setup, delivery, lang, safe, flags, saved_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			category = excluded.category,
			kind = excluded.kind,
			text = excluded.text,
			setup = excluded.setup,
			delivery = excluded.delivery,
			lang = excluded.lang,
			safe = excluded.safe,
			flags = excluded.flags,
			saved_at = excluded.saved_at`,
		j.ID, j.Category, string(j.Kind), j.Text, j.Setup, j.Delivery, j.Lang, safe,
		strings.Join(j.Flags.Names(), ","), b.SavedAt.UnixNano(),
	)
	if err != nil {
		return fmt.Errorf("save bookmark %d: %w", j.ID, err)
	}
	return nil
}

// Delete removes the bookmark for a joke ID. Missing IDs are not an error.
func (s *Store) Delete(id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.db.Exec(`DELETE FROM bookmarks WHERE id = ?`, id); err != nil {
		return fmt.Errorf("delete bookmark %d: %w", id, err)
	}
	return nil
}

func decodeFlags(raw string) joke.Flags {
	var f joke.Flags
	for name := range strings.SplitSeq(raw, ",") {
		flag, ok := joke.ParseBlockFlag(name)
		if !ok {
			continue
		}
		switch flag {
		case joke.NSFW:
			f.NSFW = true
		case joke.Religious:
			f.Religious = true
		case joke.Political:
			f.Political = true
		case joke.Racist:
			f.Racist = true
		case joke.Sexist:
			f.Sexist = true
		case joke.Explicit:
			f.Explicit = true
		}
	}
	return f
}
