package settings

import (
	"testing"
	"time"

	"github.com/tesso57/jestr/internal/domain/joke"
)

func TestSettings_InitialQuery(t *testing.T) {
	cfg := Settings{
		Query: QueryConfig{
			Count:     4,
			Kind:      "twopart",
			Blocklist: []string{"nsfw", "Racist", "unknown"},
		},
	}

	q := cfg.InitialQuery("Programming")
	if q.Category != "Programming" {
		t.Fatalf("Category = %q, want Programming", q.Category)
	}
	if q.Count != 4 {
		t.Fatalf("Count = %d, want 4", q.Count)
	}
	if q.Kind != joke.TwoPart {
		t.Fatalf("Kind = %q, want twopart", q.Kind)
	}
	if got := q.BlocklistParam(); got != "nsfw,racist" {
		t.Fatalf("BlocklistParam() = %q, want nsfw,racist", got)
	}
}

func TestSettings_InitialQueryFallsBack(t *testing.T) {
	cfg := Settings{Query: QueryConfig{Count: 7, Kind: "limerick"}}

	q := cfg.InitialQuery("Misc")
	if q.Count != joke.CountOptions[0] {
		t.Fatalf("Count = %d, want %d", q.Count, joke.CountOptions[0])
	}
	if q.Kind != joke.KindOptions[0] {
		t.Fatalf("Kind = %q, want %q", q.Kind, joke.KindOptions[0])
	}
}

func TestAPIConfig_Timeout(t *testing.T) {
	if got := (APIConfig{TimeoutSeconds: 3}).Timeout(); got != 3*time.Second {
		t.Fatalf("Timeout() = %v, want 3s", got)
	}
	if got := (APIConfig{}).Timeout(); got != 0 {
		t.Fatalf("Timeout() = %v, want 0", got)
	}
}
