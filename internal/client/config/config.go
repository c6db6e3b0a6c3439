// Package config loads the client configuration from flags, environment
// variables, and the TOML file under the user's config directory.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// DefaultBaseURL is the API endpoint used when nothing overrides it. Release
// builds point it at the production API via ldflags; the default targets the
// local development backend.
var DefaultBaseURL = "http://localhost:5001/api"

// Config holds the client settings.
type Config struct {
	// BaseURL is the root of the backend REST API.
	BaseURL string `toml:"base_url"`
}

// Dir returns the per-user configuration directory (~/.credkarma),
// creating it if needed.
func Dir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}
	dir := filepath.Join(home, ".credkarma")
	if err := os.MkdirAll(dir, 0700); err != nil {
		return "", fmt.Errorf("create config directory: %w", err)
	}
	return dir, nil
}

// Load reads config.toml from dir, if present, and applies overrides:
// the CREDKARMA_API_URL environment variable, then the flagURL when
// non-empty. Missing file and empty overrides leave the defaults.
func Load(dir, flagURL string) (Config, error) {
	cfg := Config{BaseURL: DefaultBaseURL}

	path := filepath.Join(dir, "config.toml")
	if _, err := os.Stat(path); err == nil {
		if _, err := toml.DecodeFile(path, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse %s: %w", path, err)
		}
	}

	if env := os.Getenv("CREDKARMA_API_URL"); env != "" {
		cfg.BaseURL = env
	}
	if flagURL != "" {
		cfg.BaseURL = flagURL
	}
	return cfg, nil
}
