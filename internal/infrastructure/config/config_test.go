package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	tmpDir := t.TempDir()
	t.Setenv("XDG_DATA_HOME", filepath.Join(tmpDir, "data"))
	t.Setenv("XDG_STATE_HOME", filepath.Join(tmpDir, "state"))

	configPath := filepath.Join(tmpDir, "config.yaml")
	store, err := Load(configPath)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	s := store.Settings
	if s.API.BaseURL != "https://v2.jokeapi.dev" {
		t.Errorf("Expected default API base URL, got %q", s.API.BaseURL)
	}
	if s.API.TimeoutSeconds != 10 {
		t.Errorf("Expected default timeout 10, got %d", s.API.TimeoutSeconds)
	}
	if s.Query.Count != 4 {
		t.Errorf("Expected default count 4, got %d", s.Query.Count)
	}
	if s.Query.Kind != "single" {
		t.Errorf("Expected default kind single, got %q", s.Query.Kind)
	}
	if s.PreviewWords != 12 {
		t.Errorf("Expected default preview words 12, got %d", s.PreviewWords)
	}
	if s.KeyMap.Fetch != "r" {
		t.Errorf("Expected default fetch key 'r', got %q", s.KeyMap.Fetch)
	}
	if s.Theme.Accent != "205" {
		t.Errorf("Expected default accent '205', got %q", s.Theme.Accent)
	}
	if want := filepath.Join(tmpDir, "data", "jestr", "bookmarks.db"); s.BookmarksFile != want {
		t.Errorf("BookmarksFile = %q, want %q", s.BookmarksFile, want)
	}
	if want := filepath.Join(tmpDir, "state", "jestr", "jestr.log"); s.LogFile != want {
		t.Errorf("LogFile = %q, want %q", s.LogFile, want)
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		t.Error("Config file not created")
	}
	if store.Path() != configPath {
		t.Errorf("Path() = %q, want %q", store.Path(), configPath)
	}
}

func TestLoad_FromFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")
	content := `api:
  base_url: "http://localhost:8080/"
  timeout_seconds: 3
query:
  count: 10
  kind: twopart
  blocklist:
    - "nsfw, racist"
    - explicit
start_category: " Programming "
keymap:
  fetch: f
`
	if err := os.WriteFile(configPath, []byte(content), 0600); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	store, err := Load(configPath)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	s := store.Settings
	if s.API.BaseURL != "http://localhost:8080" {
		t.Errorf("BaseURL = %q, want trailing slash trimmed", s.API.BaseURL)
	}
	if s.API.TimeoutSeconds != 3 {
		t.Errorf("TimeoutSeconds = %d, want 3", s.API.TimeoutSeconds)
	}
	if s.Query.Count != 10 || s.Query.Kind != "twopart" {
		t.Errorf("Query = %+v, want count 10 kind twopart", s.Query)
	}
	want := []string{"nsfw", "racist", "explicit"}
	if len(s.Query.Blocklist) != len(want) {
		t.Fatalf("Blocklist = %v, want %v", s.Query.Blocklist, want)
	}
	for i := range want {
		if s.Query.Blocklist[i] != want[i] {
			t.Fatalf("Blocklist[%d] = %q, want %q", i, s.Query.Blocklist[i], want[i])
		}
	}
	if s.StartCategory != "Programming" {
		t.Errorf("StartCategory = %q, want Programming", s.StartCategory)
	}
	if s.KeyMap.Fetch != "f" {
		t.Errorf("KeyMap.Fetch = %q, want f", s.KeyMap.Fetch)
	}
	if s.KeyMap.Quit != "q" {
		t.Errorf("KeyMap.Quit = %q, want default q", s.KeyMap.Quit)
	}
}

func TestLoad_Corrupt(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	_ = os.WriteFile(configPath, []byte("invalid_yaml: ["), 0600)

	if _, err := Load(configPath); err == nil {
		t.Error("Expected error for corrupt config read, got nil")
	}
}

func TestStore_SaveRoundTrip(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	store, err := Load(configPath)
	if err != nil {
		t.Fatal(err)
	}

	store.Settings.StartCategory = "Pun"
	store.Settings.Query.Count = 2
	if err := store.Save(); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	reloaded, err := Load(configPath)
	if err != nil {
		t.Fatal(err)
	}
	if reloaded.Settings.StartCategory != "Pun" {
		t.Errorf("StartCategory = %q, want Pun", reloaded.Settings.StartCategory)
	}
	if reloaded.Settings.Query.Count != 2 {
		t.Errorf("Count = %d, want 2", reloaded.Settings.Query.Count)
	}
}

func TestNormalizeList(t *testing.T) {
	got := normalizeList([]string{" a,b ", "c\nd", ""})
	want := []string{"a", "b", "c", "d"}
	if len(got) != len(want) {
		t.Fatalf("normalizeList() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("normalizeList()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}
