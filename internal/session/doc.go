// Package session owns the transient state of a catalog browsing session:
// the current search and its pagination, the selected recipe, the upload
// lifecycle, and the derived bookmark flag.
//
// # State machine
//
// Three concerns run independently, each idle → loading → settled:
//
//   - search: replaces the result list and resets pagination on success,
//     keeps the previous results behind an error message on failure
//   - recipe load: merges bookmark membership into the fetched recipe and
//     publishes the persisted-location id on success
//   - upload: validates locally, submits, and on success selects and
//     bookmarks the new recipe atomically from the caller's point of view
//
// Search and recipe load share one error slot; when it is set the rendering
// layer shows the error rather than the (possibly stale) selection.
//
// # Staleness
//
// Network operations block and may overlap when the user acts again before
// the previous call settles. Each asynchronous concern carries a generation
// counter: a completion whose generation is no longer current is discarded
// wholesale, so a slow response can never overwrite a newer one.
//
// # Snapshots
//
// The rendering layer reads the session only through Snapshot, which returns
// deep copies. Mutations happen only through the named operations.
package session
