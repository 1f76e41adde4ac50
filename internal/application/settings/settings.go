// Package settings defines application-level configuration data.
package settings

import (
	"time"

	"github.com/tesso57/jestr/internal/domain/joke"
)

// KeyMapConfig defines the configuration for keybindings.
type KeyMapConfig struct {
	Up         string `yaml:"up" kong:"help='Up key',default='k'"`
	Down       string `yaml:"down" kong:"help='Down key',default='j'"`
	UpPage     string `yaml:"up_page" kong:"help='Page Up key',default='ctrl+u'"`
	DownPage   string `yaml:"down_page" kong:"help='Page Down key',default='ctrl+d'"`
	Open       string `yaml:"open" kong:"help='Open key',default='enter,l'"`
	Back       string `yaml:"back" kong:"help='Back key',default='esc,h'"`
	Quit       string `yaml:"quit" kong:"help='Quit key',default='q'"`
	Fetch      string `yaml:"fetch" kong:"help='Fetch jokes / reload categories key',default='r'"`
	CycleCount string `yaml:"cycle_count" kong:"help='Cycle joke count key',default='c'"`
	CycleKind  string `yaml:"cycle_kind" kong:"help='Cycle joke kind key',default='t'"`
	Search     string `yaml:"search" kong:"help='Edit search text key',default='/'"`
	Bookmark   string `yaml:"bookmark" kong:"help='Bookmark key',default='b'"`
}

// ThemeConfig defines the color theme configuration.
type ThemeConfig struct {
	Accent   string `yaml:"accent" kong:"help='Accent color',default='205'"`
	Category string `yaml:"category" kong:"help='Category name color',default='244'"`
}

// APIConfig defines how the joke API is reached.
type APIConfig struct {
	BaseURL        string `yaml:"base_url" kong:"help='Joke API base URL',default='https://v2.jokeapi.dev'"`
	TimeoutSeconds int    `yaml:"timeout_seconds" kong:"help='Request timeout in seconds',default='10'"`
	UserAgent      string `yaml:"user_agent" kong:"help='User-Agent header',default='jestr/1.0'"`
}

// Timeout returns the request timeout as a duration.
func (c APIConfig) Timeout() time.Duration {
	if c.TimeoutSeconds <= 0 {
		return 0
	}
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// QueryConfig defines the initial joke query.
type QueryConfig struct {
	Count     int      `yaml:"count" kong:"help='Initial joke count (1,2,3,4,5,10)',default='4'"`
	Kind      string   `yaml:"kind" kong:"help='Initial joke kind (single/twopart)',default='single'"`
	Blocklist []string `yaml:"blocklist" kong:"help='Initially blocked flags (nsfw,religious,political,racist,sexist,explicit)'"`
}

// Settings represents the application configuration.
type Settings struct {
	API           APIConfig    `yaml:"api" kong:"embed,prefix='api.'"`
	Query         QueryConfig  `yaml:"query" kong:"embed,prefix='query.'"`
	StartCategory string       `yaml:"start_category" kong:"help='Open this category or jokes/{category} path on start'"`
	PreviewWords  int          `yaml:"preview_words" kong:"help='Words shown in list previews',default='12'"`
	KeyMap        KeyMapConfig `yaml:"keymap" kong:"embed,prefix='keymap.'"`
	Theme         ThemeConfig  `yaml:"theme" kong:"embed,prefix='theme.'"`
	BookmarksFile string       `yaml:"bookmarks_file" kong:"help='Bookmarks database path'"`
	LogFile       string       `yaml:"log_file" kong:"help='Log file path'"`
	LogLevel      string       `yaml:"log_level" kong:"help='Log level (debug/info/warn/error)',default='info'"`
}

// InitialQuery builds the starting query for a category from the configured defaults.
// Unknown values fall back to the first option.
func (s Settings) InitialQuery(category string) joke.Query {
	q := joke.NewQuery(category)
	if joke.IndexOfCount(s.Query.Count) >= 0 {
		q.Count = s.Query.Count
	}
	if kind, ok := joke.ParseKind(s.Query.Kind); ok {
		q.Kind = kind
	}
	for _, name := range s.Query.Blocklist {
		if flag, ok := joke.ParseBlockFlag(name); ok {
			q.Blocklist[flag] = true
		}
	}
	return q
}
