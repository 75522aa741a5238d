// Package config provides configuration loading functionality.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/pelletier/go-toml/v2"
	"github.com/runoshun/todo/internal/domain"
)

// Ensure Loader implements domain.ConfigLoader.
var _ domain.ConfigLoader = (*Loader)(nil)

// Loader loads configuration from TOML files.
type Loader struct {
	workDir       string // Directory searched for .todo.toml
	explicitPath  string // Path given with --config (optional)
	globalConfDir string // Path to global config directory (e.g., ~/.config/todo)
}

// NewLoader creates a new Loader.
func NewLoader(workDir, explicitPath string) *Loader {
	return &Loader{
		workDir:       workDir,
		explicitPath:  explicitPath,
		globalConfDir: defaultGlobalConfigDir(),
	}
}

// NewLoaderWithGlobalDir creates a new Loader with a custom global config directory.
// This is useful for testing.
func NewLoaderWithGlobalDir(workDir, explicitPath, globalConfDir string) *Loader {
	return &Loader{
		workDir:       workDir,
		explicitPath:  explicitPath,
		globalConfDir: globalConfDir,
	}
}

// defaultGlobalConfigDir returns the default global config directory.
func defaultGlobalConfigDir() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return domain.GlobalConfigDir(configHome)
}

// paths returns the candidate config files in merge order.
func (l *Loader) paths() []string {
	var paths []string
	if l.globalConfDir != "" {
		paths = append(paths, filepath.Join(l.globalConfDir, domain.ConfigFileName))
	}
	if l.workDir != "" {
		paths = append(paths, domain.LocalConfigPath(l.workDir))
	}
	if l.explicitPath != "" {
		paths = append(paths, l.explicitPath)
	}
	return paths
}

// Sources returns the config files considered by Load, in merge order.
func (l *Loader) Sources() []domain.ConfigInfo {
	paths := l.paths()
	infos := make([]domain.ConfigInfo, 0, len(paths))
	for _, p := range paths {
		infos = append(infos, readConfigInfo(p))
	}
	return infos
}

// Load returns the merged configuration.
// Later sources take precedence: default <- global <- local <- explicit.
// A missing global or local file is skipped; a missing explicit file is an error.
func (l *Loader) Load() (*domain.Config, error) {
	base := domain.NewDefaultConfig()

	for _, path := range l.paths() {
		partial, err := l.loadFile(path)
		if err != nil {
			if errors.Is(err, os.ErrNotExist) && path != l.explicitPath {
				continue
			}
			return nil, fmt.Errorf("load config %s: %w", path, err)
		}
		base = mergeConfigs(base, partial)
	}

	return base, nil
}

// loadFile loads a partial configuration from a file.
func (l *Loader) loadFile(path string) (*partialConfig, error) {
	data, err := os.ReadFile(path) //nolint:gosec // config paths come from the user
	if err != nil {
		return nil, err
	}

	var raw map[string]any
	if err := toml.Unmarshal(data, &raw); err != nil {
		return nil, err
	}

	return convertRawToPartialConfig(raw), nil
}

// partialConfig holds only the values a single file sets.
// Pointer fields distinguish "not set" from zero values such as alt_screen = false.
type partialConfig struct {
	Placeholder *string
	CharLimit   *int
	AltScreen   *bool
	ShowHelp    *bool
	LogLevel    *string
	LogFile     *string
	LogFormat   *string
	Warnings    []string
}

// convertRawToPartialConfig converts the raw map and collects warnings for unknown keys.
func convertRawToPartialConfig(raw map[string]any) *partialConfig {
	res := &partialConfig{}
	var warnings []string

	for section, value := range raw {
		switch section {
		case "tui":
			m, ok := value.(map[string]any)
			if !ok {
				warnings = append(warnings, "[tui] must be a table")
				continue
			}
			for k, v := range m {
				switch k {
				case "placeholder":
					if s, ok := v.(string); ok {
						res.Placeholder = &s
					}
				case "char_limit":
					if n, ok := v.(int64); ok {
						limit := int(n)
						res.CharLimit = &limit
					} else {
						warnings = append(warnings, "[tui] char_limit must be an integer")
					}
				case "alt_screen":
					if b, ok := v.(bool); ok {
						res.AltScreen = &b
					}
				case "show_help":
					if b, ok := v.(bool); ok {
						res.ShowHelp = &b
					}
				default:
					warnings = append(warnings, fmt.Sprintf("unknown key in [tui]: %s", k))
				}
			}
		case "log":
			m, ok := value.(map[string]any)
			if !ok {
				warnings = append(warnings, "[log] must be a table")
				continue
			}
			for k, v := range m {
				switch k {
				case "level":
					if s, ok := v.(string); ok {
						res.LogLevel = &s
					}
				case "file":
					if s, ok := v.(string); ok {
						res.LogFile = &s
					}
				case "format":
					if s, ok := v.(string); ok {
						res.LogFormat = &s
					}
				default:
					warnings = append(warnings, fmt.Sprintf("unknown key in [log]: %s", k))
				}
			}
		default:
			warnings = append(warnings, fmt.Sprintf("unknown section: %s", section))
		}
	}

	sort.Strings(warnings)
	res.Warnings = warnings
	return res
}

// mergeConfigs merges a partial config into base, with override taking precedence.
func mergeConfigs(base *domain.Config, override *partialConfig) *domain.Config {
	result := &domain.Config{
		TUI: base.TUI,
		Log: base.Log,
	}
	result.Warnings = append(result.Warnings, base.Warnings...)
	result.Warnings = append(result.Warnings, override.Warnings...)

	if override.Placeholder != nil {
		result.TUI.Placeholder = *override.Placeholder
	}
	if override.CharLimit != nil && *override.CharLimit >= 0 {
		result.TUI.CharLimit = *override.CharLimit
	}
	if override.AltScreen != nil {
		result.TUI.AltScreen = *override.AltScreen
	}
	if override.ShowHelp != nil {
		result.TUI.ShowHelp = *override.ShowHelp
	}
	if override.LogLevel != nil {
		result.Log.Level = *override.LogLevel
	}
	if override.LogFile != nil {
		result.Log.File = *override.LogFile
	}
	if override.LogFormat != nil {
		result.Log.Format = *override.LogFormat
	}

	return result
}

// readConfigInfo reads a config file and returns its info.
func readConfigInfo(path string) domain.ConfigInfo {
	content, err := os.ReadFile(path) //nolint:gosec // config paths come from the user
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
