package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/runoshun/freewipe/internal/domain"
)

// Ensure Manager implements domain.ConfigManager.
var _ domain.ConfigManager = (*Manager)(nil)

// Manager manages the configuration file.
type Manager struct {
	globalConfDir string // Path to config directory (e.g., ~/.config/freewipe)
}

// NewManager creates a new Manager for the default config directory.
func NewManager() *Manager {
	return &Manager{globalConfDir: defaultGlobalConfigDir()}
}

// NewManagerWithGlobalDir creates a new Manager with a custom config directory.
// This is useful for testing.
func NewManagerWithGlobalDir(globalConfDir string) *Manager {
	return &Manager{globalConfDir: globalConfDir}
}

// GetGlobalConfigInfo returns information about the config file.
func (m *Manager) GetGlobalConfigInfo() domain.ConfigInfo {
	if m.globalConfDir == "" {
		return domain.ConfigInfo{}
	}
	path := filepath.Join(m.globalConfDir, domain.ConfigFileName)

	content, err := os.ReadFile(path)
	if err != nil {
		return domain.ConfigInfo{
			Path:   path,
			Exists: false,
		}
	}
	return domain.ConfigInfo{
		Path:    path,
		Content: string(content),
		Exists:  true,
	}
}

// InitGlobalConfig writes the config template rendered from cfg and returns its path.
func (m *Manager) InitGlobalConfig(cfg *domain.Config, overwrite bool) (string, error) {
	if m.globalConfDir == "" {
		return "", errors.New("config directory not available")
	}
	path := filepath.Join(m.globalConfDir, domain.ConfigFileName)

	if !overwrite {
		if _, err := os.Stat(path); err == nil {
			return path, domain.ErrConfigExists
		}
	}

	if err := os.MkdirAll(m.globalConfDir, 0o700); err != nil {
		return path, fmt.Errorf("create config directory: %w", err)
	}

	content := domain.RenderConfigTemplate(cfg)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		return path, fmt.Errorf("write config: %w", err)
	}
	return path, nil
}
