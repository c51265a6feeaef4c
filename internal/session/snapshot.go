package session

import (
	"tastebook/internal/paging"
	"tastebook/internal/recipe"
)

// Snapshot is the read-only view the rendering layer consumes. Everything in
// it is a copy; mutating a snapshot never touches the session.
type Snapshot struct {
	Query        string
	Page         int
	PageCount    int
	TotalResults int
	Results      []recipe.SearchResult // current page window only

	Searching     bool
	LoadingRecipe bool
	ErrorMessage  string // non-empty takes display precedence over Selected

	Selected  *recipe.Recipe
	Bookmarks []recipe.Recipe

	Uploading     bool
	UploadError   string
	UploadMessage string

	// LocationID is the id that should be reflected as the durable,
	// shareable location; empty until a recipe has been loaded or uploaded.
	LocationID string
}

// Snapshot returns the current session state.
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := Snapshot{
		Query:         s.query,
		Page:          s.page,
		PageCount:     paging.PageCount(len(s.results), s.pageSize),
		TotalResults:  len(s.results),
		Searching:     s.searching,
		LoadingRecipe: s.loading,
		ErrorMessage:  s.errMsg,
		Uploading:     s.uploading,
		UploadError:   s.uploadErr,
		UploadMessage: s.uploadMsg,
		LocationID:    s.locationID,
	}

	window := paging.Page(s.results, s.page, s.pageSize)
	if len(window) > 0 {
		snap.Results = make([]recipe.SearchResult, len(window))
		copy(snap.Results, window)
	}

	if s.selected != nil {
		dup := s.selected.Clone()
		snap.Selected = &dup
	}
	snap.Bookmarks = s.bookmarks.List()

	return snap
}
