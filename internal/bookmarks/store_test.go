package bookmarks

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"tastebook/internal/recipe"
)

func testRecipe(id, title string) recipe.Recipe {
	return recipe.Recipe{
		ID:       id,
		Title:    title,
		Servings: 4,
		Ingredients: []recipe.Ingredient{
			{Quantity: recipe.Float(2), Unit: "kg", Description: "flour"},
		},
	}
}

func storePath(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "bookmarks.json")
}

func TestOpen_MissingFileYieldsEmptySet(t *testing.T) {
	s := Open(storePath(t))
	if s.Len() != 0 {
		t.Fatalf("Len = %d, want 0", s.Len())
	}
}

func TestOpen_CorruptFileYieldsEmptySet(t *testing.T) {
	path := storePath(t)
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	s := Open(path)
	if s.Len() != 0 {
		t.Fatalf("Len = %d, want 0", s.Len())
	}
}

func TestAdd_IsIdempotentAndKeepsOriginalSnapshot(t *testing.T) {
	s := Open(storePath(t))

	if err := s.Add(testRecipe("a", "First")); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if err := s.Add(testRecipe("a", "Second")); err != nil {
		t.Fatalf("Add: %v", err)
	}

	list := s.List()
	if len(list) != 1 {
		t.Fatalf("len = %d, want 1", len(list))
	}
	if list[0].Title != "First" {
		t.Fatalf("Title = %q, want original snapshot kept", list[0].Title)
	}
	if !list[0].Bookmarked {
		t.Fatalf("stored snapshot not forced bookmarked")
	}
}

func TestToggle_IsAnInvolution(t *testing.T) {
	s := Open(storePath(t))
	r := testRecipe("a", "Pizza")

	on, err := s.Toggle(r)
	if err != nil || !on {
		t.Fatalf("first Toggle = (%v, %v), want (true, nil)", on, err)
	}
	if !s.IsBookmarked("a") {
		t.Fatalf("IsBookmarked = false after toggle on")
	}

	off, err := s.Toggle(r)
	if err != nil || off {
		t.Fatalf("second Toggle = (%v, %v), want (false, nil)", off, err)
	}
	if s.IsBookmarked("a") || s.Len() != 0 {
		t.Fatalf("set not restored after double toggle")
	}
}

func TestRemove_AbsentIDIsNoOp(t *testing.T) {
	s := Open(storePath(t))
	if err := s.Add(testRecipe("a", "Pizza")); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if err := s.Remove("missing"); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if s.Len() != 1 {
		t.Fatalf("Len = %d, want 1", s.Len())
	}
}

func TestList_PreservesInsertionOrder(t *testing.T) {
	s := Open(storePath(t))
	for _, id := range []string{"c", "a", "b"} {
		if err := s.Add(testRecipe(id, id)); err != nil {
			t.Fatalf("Add(%s): %v", id, err)
		}
	}
	if err := s.Remove("a"); err != nil {
		t.Fatalf("Remove: %v", err)
	}

	list := s.List()
	if len(list) != 2 || list[0].ID != "c" || list[1].ID != "b" {
		t.Fatalf("order = %v, want [c b]", []string{list[0].ID, list[1].ID})
	}
}

func TestMutationsPersistAcrossReopen(t *testing.T) {
	path := storePath(t)

	s := Open(path)
	if err := s.Add(testRecipe("a", "Pizza")); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if _, err := s.Toggle(testRecipe("b", "Soup")); err != nil {
		t.Fatalf("Toggle: %v", err)
	}

	reopened := Open(path)
	if reopened.Len() != 2 {
		t.Fatalf("reopened Len = %d, want 2", reopened.Len())
	}
	if !reopened.IsBookmarked("a") || !reopened.IsBookmarked("b") {
		t.Fatalf("membership lost across reopen")
	}

	// The slot is a plain JSON array of full snapshots.
	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	var entries []recipe.Recipe
	if err := json.Unmarshal(raw, &entries); err != nil {
		t.Fatalf("slot is not a JSON array: %v", err)
	}
	if len(entries) != 2 || !entries[0].Bookmarked {
		t.Fatalf("slot contents = %#v, want 2 bookmarked snapshots", entries)
	}
}

func TestList_ReturnsIndependentCopies(t *testing.T) {
	s := Open(storePath(t))
	if err := s.Add(testRecipe("a", "Pizza")); err != nil {
		t.Fatalf("Add: %v", err)
	}

	list := s.List()
	*list[0].Ingredients[0].Quantity = 99
	list[0].Title = "Mutated"

	again := s.List()
	if again[0].Title != "Pizza" || *again[0].Ingredients[0].Quantity != 2 {
		t.Fatalf("List shares state with the store: %#v", again[0])
	}
}
