// Package app provides the orchestration layer for the tastebook application.
//
// # Overview
//
// This package wires together configuration, the catalog client, bookmark
// storage, the session and the UI. It is the composition root where all
// dependencies are initialized and connected.
//
// # Architecture
//
// Run follows a simple initialization pattern:
//
//  1. Load configuration from ~/.config/tastebook/config.toml
//  2. Load user preferences (theme, last viewed recipe)
//  3. Initialize the HTTP client for the recipe catalog API
//  4. Open the bookmark store (missing or corrupt files start empty)
//  5. Create the session that owns all interaction state
//  6. Restore the persisted location, if any
//  7. Start the TUI and block until the user exits or the context cancels
//
// # Error Handling
//
// Fatal errors (returned from Run):
//   - Configuration file present but invalid
//   - Catalog client initialization failure (malformed base URL)
//
// Everything else degrades: missing prefs fall back to defaults, a corrupt
// bookmark file starts an empty set, and a failing restore of the last
// recipe simply leaves the detail pane empty with the error shown.
package app
