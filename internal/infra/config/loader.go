// Package config provides configuration loading functionality.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/runoshun/freewipe/internal/domain"
)

// Ensure Loader implements domain.ConfigLoader.
var _ domain.ConfigLoader = (*Loader)(nil)

// Loader loads configuration from a TOML file.
type Loader struct {
	globalConfDir string // Path to config directory (e.g., ~/.config/freewipe)
}

// NewLoader creates a new Loader for the default config directory.
func NewLoader() *Loader {
	return &Loader{globalConfDir: defaultGlobalConfigDir()}
}

// NewLoaderWithGlobalDir creates a new Loader with a custom config directory.
// This is useful for testing.
func NewLoaderWithGlobalDir(globalConfDir string) *Loader {
	return &Loader{globalConfDir: globalConfDir}
}

// defaultGlobalConfigDir returns the default config directory.
func defaultGlobalConfigDir() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return domain.GlobalAppDir(configHome)
}

// Path returns the config file path, or "" if no config directory is known.
func (l *Loader) Path() string {
	if l.globalConfDir == "" {
		return ""
	}
	return filepath.Join(l.globalConfDir, domain.ConfigFileName)
}

// Load returns the configuration. A missing file yields the defaults.
// Unknown keys are reported in Config.Warnings instead of failing.
func (l *Loader) Load() (*domain.Config, error) {
	cfg := domain.NewDefaultConfig()

	path := l.Path()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	cfg.Warnings = unknownKeys(data)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// unknownKeys decodes data strictly and returns a warning per unknown key.
func unknownKeys(data []byte) []string {
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()

	var probe domain.Config
	err := dec.Decode(&probe)

	var strict *toml.StrictMissingError
	if !errors.As(err, &strict) {
		return nil
	}

	warnings := make([]string, 0, len(strict.Errors))
	for _, e := range strict.Errors {
		warnings = append(warnings, "unknown config key: "+strings.Join(e.Key(), "."))
	}
	return warnings
}
