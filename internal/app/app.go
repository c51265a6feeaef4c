package app

import (
	"context"
	"fmt"
	"time"

	"tastebook/internal/bookmarks"
	"tastebook/internal/config"
	"tastebook/internal/forkify"
	"tastebook/internal/prefs"
	"tastebook/internal/session"
	"tastebook/internal/ui"
)

// Options configure the tastebook application.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses default ~/.config/tastebook/prefs.toml
	RecipeID   string // open this recipe on start, overriding the saved one
}

// Run boots the tastebook TUI until the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	userPrefs, _ := prefs.Load(opts.PrefsPath)

	apiURL := cfg.APIURL
	if apiURL == "" {
		apiURL = forkify.DefaultBaseURL
	}
	clientOpts := []forkify.Option{}
	if cfg.TimeoutSeconds > 0 {
		clientOpts = append(clientOpts, forkify.WithTimeout(time.Duration(cfg.TimeoutSeconds)*time.Second))
	}
	client, err := forkify.NewClient(apiURL, cfg.APIKey, clientOpts...)
	if err != nil {
		return fmt.Errorf("init catalog client: %w", err)
	}

	store := bookmarks.Open(cfg.BookmarksPath)

	sess := session.New(session.Options{
		Catalog:          client,
		Bookmarks:        store,
		PageSize:         cfg.PageSize,
		OnLocationChange: locationSaver(opts.PrefsPath),
	})

	// Restore the last viewed recipe before the UI starts, so the detail
	// pane comes up populated the way a deep link would.
	if id := startRecipeID(opts.RecipeID, userPrefs); id != "" {
		sess.SelectRecipe(ctx, id)
	}

	return ui.Run(ui.Options{
		Context:   ctx,
		Session:   sess,
		ThemeName: userPrefs.Theme,
		PrefsPath: opts.PrefsPath,
	})
}

// startRecipeID picks the recipe to open on start: an explicit override wins
// over the persisted location.
func startRecipeID(override string, p prefs.Prefs) string {
	if override != "" {
		return override
	}
	return p.LastRecipeID
}

// locationSaver persists each published recipe id without disturbing the rest
// of the prefs. Persistence failures are ignored; the location is a
// convenience, not state the session depends on.
func locationSaver(prefsPath string) func(id string) {
	return func(id string) {
		p, _ := prefs.Load(prefsPath)
		if p.LastRecipeID == id {
			return
		}
		p.LastRecipeID = id
		_ = prefs.Save(prefsPath, p)
	}
}
