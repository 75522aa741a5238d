// Package config provides configuration loading functionality.
package config

import (
	"os"
	"path/filepath"

	"github.com/runoshun/todo/internal/domain"
)

// Ensure Manager implements domain.ConfigManager.
var _ domain.ConfigManager = (*Manager)(nil)

// Manager manages configuration files.
type Manager struct {
	globalConfDir string // Path to global config directory (e.g., ~/.config/todo)
}

// NewManager creates a new Manager.
func NewManager() *Manager {
	return &Manager{
		globalConfDir: defaultGlobalConfigDir(),
	}
}

// NewManagerWithGlobalDir creates a new Manager with a custom global config directory.
// This is useful for testing.
func NewManagerWithGlobalDir(globalConfDir string) *Manager {
	return &Manager{
		globalConfDir: globalConfDir,
	}
}

// GetGlobalConfigInfo returns information about the global config file.
func (m *Manager) GetGlobalConfigInfo() domain.ConfigInfo {
	if m.globalConfDir == "" {
		return domain.ConfigInfo{
			Path:   "",
			Exists: false,
		}
	}
	return readConfigInfo(filepath.Join(m.globalConfDir, domain.ConfigFileName))
}

// InitGlobalConfig creates the global config file from the default template.
func (m *Manager) InitGlobalConfig(cfg *domain.Config, force bool) error {
	if m.globalConfDir == "" {
		return domain.ErrNoGlobalConfDir
	}
	path := filepath.Join(m.globalConfDir, domain.ConfigFileName)

	// Create parent directory if it doesn't exist
	if err := os.MkdirAll(m.globalConfDir, 0o700); err != nil {
		return err
	}

	if _, err := os.Stat(path); err == nil && !force {
		return domain.ErrConfigExists
	}

	content, err := RenderTemplate(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, []byte(content), 0o600)
}
