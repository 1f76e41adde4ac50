package joke

import "time"

// Bookmark is a joke the user saved locally.
type Bookmark struct {
	Joke    Joke
	SavedAt time.Time
}
