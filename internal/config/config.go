package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
)

// Config captures everything tastebook needs to reach the recipe catalog
// and to locate its durable state.
type Config struct {
	APIURL         string // catalog base URL; empty selects the public catalog
	APIKey         string // optional; empty means unauthenticated requests
	TimeoutSeconds int    // per-request bound
	PageSize       int    // results per page
	BookmarksPath  string // durable bookmark slot; empty uses the default
}

const (
	defaultConfigPath     = "~/.config/tastebook/config.toml"
	defaultTimeoutSeconds = 10
	defaultPageSize       = 10
)

// Load locates and parses the config file, falling back to defaults when it
// is missing. The API key may also arrive via the TASTEBOOK_API_KEY
// environment variable, which takes precedence over the file.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		TimeoutSeconds: defaultTimeoutSeconds,
		PageSize:       defaultPageSize,
	}

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return applyEnv(cfg), nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		APIURL         string `toml:"api_url"`
		APIKey         string `toml:"api_key"`
		TimeoutSeconds int    `toml:"timeout_seconds"`
		PageSize       int    `toml:"page_size"`
		BookmarksPath  string `toml:"bookmarks_path"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	cfg.APIURL = strings.TrimSpace(raw.APIURL)
	cfg.APIKey = strings.TrimSpace(raw.APIKey)
	if raw.TimeoutSeconds > 0 {
		cfg.TimeoutSeconds = raw.TimeoutSeconds
	}
	if raw.PageSize > 0 {
		cfg.PageSize = raw.PageSize
	}
	if p := strings.TrimSpace(raw.BookmarksPath); p != "" {
		cfg.BookmarksPath = mustExpand(p)
	}

	return applyEnv(cfg), nil
}

func applyEnv(cfg Config) Config {
	if key := strings.TrimSpace(os.Getenv("TASTEBOOK_API_KEY")); key != "" {
		cfg.APIKey = key
	}
	return cfg
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
