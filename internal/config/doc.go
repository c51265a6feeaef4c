// Package config loads the tastebook configuration file.
//
// The file lives at ~/.config/tastebook/config.toml and is entirely
// optional; a missing file yields working defaults pointed at the public
// Forkify catalog. Recognized keys:
//
//	api_url         = "https://forkify-api.jonas.io/api/v2/recipes/"
//	api_key         = ""    # optional, enables user-generated recipes
//	timeout_seconds = 10
//	page_size       = 10
//	bookmarks_path  = "~/.local/share/tastebook/bookmarks.json"
//
// TASTEBOOK_API_KEY in the environment overrides api_key from the file.
package config
