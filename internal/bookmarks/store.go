// Package bookmarks persists the user's bookmarked recipes across sessions.
//
// The durable state is a single JSON file holding an array of full Recipe
// snapshots in insertion order. The file is read once when the store opens
// and overwritten wholesale after every mutation. A missing or unparseable
// file yields an empty set, never an error.
package bookmarks

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"tastebook/internal/recipe"
)

const defaultStorePath = "~/.local/share/tastebook/bookmarks.json"

// DefaultPath returns the default bookmarks file path.
func DefaultPath() string {
	return defaultStorePath
}

// Store is a durable, insertion-ordered set of bookmarked recipes keyed by
// recipe id. Safe for concurrent use.
type Store struct {
	mu      sync.Mutex
	path    string
	entries []recipe.Recipe
}

// Open loads the bookmark set from path, falling back to an empty set when
// the file is missing or unreadable. An empty path uses the default.
func Open(path string) *Store {
	s := &Store{path: resolvePath(path)}
	s.entries = readEntries(s.path)
	return s
}

// IsBookmarked reports membership of the given recipe id.
func (s *Store) IsBookmarked(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.indexOf(id) >= 0
}

// Add inserts the recipe if its id is not already present. Re-adding an
// existing id keeps the original snapshot untouched.
func (s *Store) Add(r recipe.Recipe) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.indexOf(r.ID) >= 0 {
		return nil
	}
	return s.insert(r)
}

// Remove deletes the recipe with the given id; absent ids are a no-op.
func (s *Store) Remove(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return nil
	}
	s.entries = append(s.entries[:i], s.entries[i+1:]...)
	return s.persist()
}

// Toggle removes the recipe when present, inserts it otherwise. It returns
// the resulting membership state.
func (s *Store) Toggle(r recipe.Recipe) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if i := s.indexOf(r.ID); i >= 0 {
		s.entries = append(s.entries[:i], s.entries[i+1:]...)
		return false, s.persist()
	}
	return true, s.insert(r)
}

// List returns the bookmarked recipes in insertion order. The returned
// slice is independent of the store.
func (s *Store) List() []recipe.Recipe {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]recipe.Recipe, len(s.entries))
	for i, r := range s.entries {
		out[i] = r.Clone()
	}
	return out
}

// Len returns the number of bookmarked recipes.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

// insert appends a snapshot with the bookmark flag forced on, then persists.
// Callers hold the lock.
func (s *Store) insert(r recipe.Recipe) error {
	snapshot := r.Clone()
	snapshot.Bookmarked = true
	s.entries = append(s.entries, snapshot)
	return s.persist()
}

func (s *Store) indexOf(id string) int {
	for i, r := range s.entries {
		if r.ID == id {
			return i
		}
	}
	return -1
}

// persist overwrites the durable slot with the full current set. Callers
// hold the lock.
func (s *Store) persist() error {
	encoded, err := json.Marshal(s.entries)
	if err != nil {
		return fmt.Errorf("encode bookmarks: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create bookmarks dir: %w", err)
	}
	if err := os.WriteFile(s.path, encoded, 0o644); err != nil {
		return fmt.Errorf("write bookmarks: %w", err)
	}
	return nil
}

func readEntries(path string) []recipe.Recipe {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil
	}
	var entries []recipe.Recipe
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil
	}
	return entries
}

func resolvePath(path string) string {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		trimmed = defaultStorePath
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return trimmed
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	resolved, err := filepath.Abs(trimmed)
	if err != nil {
		return trimmed
	}
	return resolved
}
