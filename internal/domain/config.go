package domain

import "path/filepath"

// Config file names and directories.
const (
	ConfigFileName      = "config.toml"
	LocalConfigFileName = ".todo.toml"
	appDirName          = "todo"
)

// Config represents the application configuration.
type Config struct {
	Warnings []string  `toml:"-"`
	TUI      TUIConfig `toml:"tui"`
	Log      LogConfig `toml:"log"`
}

// TUIConfig holds settings from the [tui] section.
type TUIConfig struct {
	Placeholder string `toml:"placeholder" comment:"Placeholder shown while the input is empty"`
	CharLimit   int    `toml:"char_limit" comment:"Maximum length of a task; 0 means no limit"`
	AltScreen   bool   `toml:"alt_screen" comment:"Run in the terminal's alternate screen"`
	ShowHelp    bool   `toml:"show_help" comment:"Show the key help line"`
}

// LogConfig holds settings from the [log] section.
type LogConfig struct {
	Level  string `toml:"level" comment:"debug | info | warn | error"`
	File   string `toml:"file" comment:"Empty disables logging"`
	Format string `toml:"format" comment:"text | logfmt | json"`
}

// Default configuration values.
const (
	DefaultPlaceholder = "Add a new task..."
	DefaultCharLimit   = 0 // No limit
	DefaultLogLevel    = "info"
	DefaultLogFormat   = "text"
)

// NewDefaultConfig returns a config populated with default values.
func NewDefaultConfig() *Config {
	return &Config{
		TUI: TUIConfig{
			Placeholder: DefaultPlaceholder,
			CharLimit:   DefaultCharLimit,
			AltScreen:   true,
			ShowHelp:    true,
		},
		Log: LogConfig{
			Level:  DefaultLogLevel,
			Format: DefaultLogFormat,
		},
	}
}

// GlobalConfigDir returns the global config directory under configHome.
func GlobalConfigDir(configHome string) string {
	return filepath.Join(configHome, appDirName)
}

// LocalConfigPath returns the path of the per-directory config file.
func LocalConfigPath(dir string) string {
	return filepath.Join(dir, LocalConfigFileName)
}
