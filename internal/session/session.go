package session

import (
	"context"
	"strings"
	"sync"

	"tastebook/internal/bookmarks"
	"tastebook/internal/forkify"
	"tastebook/internal/paging"
	"tastebook/internal/recipe"
	"tastebook/internal/upload"
)

// UploadSuccessMessage is shown after a successful recipe submission.
const UploadSuccessMessage = "Recipe was successfully uploaded :)"

// Options configure a Session.
type Options struct {
	Catalog   forkify.Catalog
	Bookmarks *bookmarks.Store
	PageSize  int // zero uses paging.DefaultPageSize

	// OnLocationChange, when set, receives the id that should be reflected
	// as the durable, shareable location after a successful recipe load or
	// upload.
	OnLocationChange func(id string)
}

// Session is the owned aggregate of all transient interaction state: the
// current search, the selected recipe, and the upload lifecycle. All
// mutations go through named operations; the rendering layer only ever sees
// copies via Snapshot.
//
// Operations that hit the network block until the call settles and may be
// invoked from separate goroutines; a per-concern generation counter makes
// sure a stale completion never overwrites a newer one.
type Session struct {
	mu        sync.Mutex
	catalog   forkify.Catalog
	bookmarks *bookmarks.Store
	pageSize  int

	query     string
	results   []recipe.SearchResult
	page      int
	searching bool
	searchGen uint64

	selected *recipe.Recipe
	loading  bool
	loadGen  uint64

	// errMsg is the shared error slot for search and recipe load; it takes
	// display precedence over the selected recipe.
	errMsg string

	uploading  bool
	uploadErr  string
	uploadMsg  string
	locationID string

	onLocation func(id string)
}

// New creates a Session. Catalog and Bookmarks are required.
func New(opts Options) *Session {
	pageSize := opts.PageSize
	if pageSize < 1 {
		pageSize = paging.DefaultPageSize
	}
	return &Session{
		catalog:    opts.Catalog,
		bookmarks:  opts.Bookmarks,
		pageSize:   pageSize,
		page:       1,
		onLocation: opts.OnLocationChange,
	}
}

// Search runs a catalog search for the trimmed query. A blank query is a
// silent no-op: no request, no loading state, no error. On success the
// result list is replaced, the page resets to 1 and any selection is
// cleared; on failure the previous results stay untouched.
func (s *Session) Search(ctx context.Context, query string) {
	query = strings.TrimSpace(query)
	if query == "" {
		return
	}

	s.mu.Lock()
	s.searchGen++
	gen := s.searchGen
	s.searching = true
	s.errMsg = ""
	s.query = query
	s.mu.Unlock()

	results, err := s.catalog.Search(ctx, query)

	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.searchGen {
		// A newer search owns the state now; discard this completion.
		return
	}
	s.searching = false
	if err != nil {
		s.errMsg = err.Error()
		return
	}
	s.results = results
	s.page = 1
	s.selected = nil
}

// SelectRecipe loads the full recipe for id, merging in the current bookmark
// membership, and publishes the id as the canonical persisted location. The
// same entry point serves result clicks, bookmark clicks and external
// navigation signals. On failure the error message is set and any previously
// displayed recipe is left in place behind it.
func (s *Session) SelectRecipe(ctx context.Context, id string) {
	id = strings.TrimSpace(id)
	if id == "" {
		return
	}

	s.mu.Lock()
	s.loadGen++
	gen := s.loadGen
	s.loading = true
	s.errMsg = ""
	s.mu.Unlock()

	loaded, err := s.catalog.GetRecipe(ctx, id)

	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.loadGen {
		return
	}
	s.loading = false
	if err != nil {
		s.errMsg = err.Error()
		return
	}
	loaded.Bookmarked = s.bookmarks.IsBookmarked(loaded.ID)
	s.selected = &loaded
	s.publishLocation(loaded.ID)
}

// Rescale replaces the selected recipe with a copy scaled to newServings.
// No selection or newServings < 1 is a no-op. The scale factor always comes
// from the recipe's current servings, so repeated steps compound correctly.
func (s *Session) Rescale(newServings int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.selected == nil || newServings < 1 {
		return
	}
	scaled := recipe.Rescale(*s.selected, newServings)
	s.selected = &scaled
}

// ToggleBookmark flips the selected recipe's membership in the bookmark
// store and re-derives its bookmark flag from the store. Persistence errors
// are reported but the in-memory set has already changed.
func (s *Session) ToggleBookmark() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.selected == nil {
		return nil
	}
	_, err := s.bookmarks.Toggle(*s.selected)
	s.resyncBookmarkFlag()
	return err
}

// resyncBookmarkFlag recomputes the derived bookmark flag on the selected
// recipe from store membership. Called after every store mutation; callers
// hold the lock.
func (s *Session) resyncBookmarkFlag() {
	if s.selected == nil {
		return
	}
	s.selected.Bookmarked = s.bookmarks.IsBookmarked(s.selected.ID)
}

// Upload validates the form, submits it, and on success selects and
// bookmarks the new recipe. A failed validation never reaches the network;
// a failed submission changes nothing. Only one upload runs at a time.
func (s *Session) Upload(ctx context.Context, form upload.Form) {
	s.mu.Lock()
	if s.uploading {
		s.mu.Unlock()
		return
	}
	s.uploading = true
	s.uploadErr = ""
	s.uploadMsg = ""
	s.mu.Unlock()

	payload, err := form.Payload()
	if err != nil {
		s.mu.Lock()
		s.uploading = false
		s.uploadErr = err.Error()
		s.mu.Unlock()
		return
	}

	created, err := s.catalog.CreateRecipe(ctx, payload)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.uploading = false
	if err != nil {
		s.uploadErr = err.Error()
		return
	}

	created.Bookmarked = true
	s.selected = &created
	if err := s.bookmarks.Add(created); err != nil {
		// Membership is in memory either way; surface the persistence
		// failure without undoing the selection.
		s.uploadErr = err.Error()
	}
	s.resyncBookmarkFlag()
	s.uploadMsg = UploadSuccessMessage
	s.publishLocation(created.ID)
}

// ClearUploadStatus resets the upload error and success messages, e.g. when
// the add-recipe form is opened.
func (s *Session) ClearUploadStatus() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.uploadErr = ""
	s.uploadMsg = ""
}

// NextPage advances to the next result page, clamped at the last page.
func (s *Session) NextPage() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.page = paging.Next(s.page, paging.PageCount(len(s.results), s.pageSize))
}

// PrevPage moves to the previous result page, clamped at page 1.
func (s *Session) PrevPage() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.page = paging.Prev(s.page)
}

// publishLocation records the canonical shareable id and notifies the
// navigation collaborator. Callers hold the lock.
func (s *Session) publishLocation(id string) {
	s.locationID = id
	if s.onLocation != nil {
		s.onLocation(id)
	}
}
