package domain

// StateStore holds the single board state.
// Load returns a copy; callers hand a new State back through Save.
type StateStore interface {
	Load() (State, error)
	Save(state State) error
}

// IDGenerator produces fresh task identifiers.
type IDGenerator interface {
	NewID() TaskID
}

// ConfigLoader loads the effective configuration.
type ConfigLoader interface {
	// Load returns the merged configuration (default <- global <- local <- explicit).
	Load() (*Config, error)
	// Sources returns the files considered by Load, in merge order.
	Sources() []ConfigInfo
}

// ConfigManager manages configuration files.
type ConfigManager interface {
	// GetGlobalConfigInfo returns information about the global config file.
	GetGlobalConfigInfo() ConfigInfo
	// InitGlobalConfig writes the default template to the global config path.
	// Returns ErrConfigExists when the file exists and force is false.
	InitGlobalConfig(cfg *Config, force bool) error
}

// ConfigInfo describes one configuration file.
type ConfigInfo struct {
	Path    string // Path to the config file
	Content string // File content (empty if not exists)
	Exists  bool   // Whether the file exists
}

// Logger records what happens on the board, grouped by category.
type Logger interface {
	Debug(category, msg string)
	Info(category, msg string)
	Warn(category, msg string)
	Error(category, msg string)
}

// NopLogger discards everything.
type NopLogger struct{}

func (NopLogger) Debug(string, string) {}
func (NopLogger) Info(string, string)  {}
func (NopLogger) Warn(string, string)  {}
func (NopLogger) Error(string, string) {}
