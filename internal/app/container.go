// Package app provides the dependency injection container for the application.
package app

import (
	"fmt"
	"io"

	"github.com/runoshun/todo/internal/domain"
	"github.com/runoshun/todo/internal/infra/config"
	"github.com/runoshun/todo/internal/infra/idgen"
	"github.com/runoshun/todo/internal/infra/logging"
	"github.com/runoshun/todo/internal/infra/memstore"
	"github.com/runoshun/todo/internal/usecase"
)

// Options holds the command-line values that shape the container.
type Options struct {
	WorkDir    string // Directory searched for .todo.toml
	ConfigPath string // Extra config file (--config)
	LogLevel   string // Overrides [log] level when set
	LogFile    string // Overrides [log] file when set
	SeqIDs     bool   // Use sequential task IDs instead of UUIDs
}

// Container provides dependency injection for the application.
// It holds all port implementations and provides factory methods for use cases.
type Container struct {
	// Ports (interfaces bound to implementations)
	Store         domain.StateStore
	IDs           domain.IDGenerator
	ConfigLoader  domain.ConfigLoader
	ConfigManager domain.ConfigManager
	Logger        domain.Logger

	// Configuration
	Config *domain.Config

	closer io.Closer
}

// New creates a new Container with an empty in-memory board.
func New(opts Options) (*Container, error) {
	configLoader := config.NewLoader(opts.WorkDir, opts.ConfigPath)
	cfg, err := configLoader.Load()
	if err != nil {
		return nil, err
	}

	// Flags take precedence over config files
	if opts.LogLevel != "" {
		cfg.Log.Level = opts.LogLevel
	}
	if opts.LogFile != "" {
		cfg.Log.File = opts.LogFile
	}

	var ids domain.IDGenerator = idgen.UUID{}
	if opts.SeqIDs {
		ids = idgen.NewSequence(1)
	}

	logger := logging.NewFromConfig(cfg.Log)

	return &Container{
		Store:         memstore.New(),
		IDs:           ids,
		ConfigLoader:  configLoader,
		ConfigManager: config.NewManager(),
		Logger:        logger,
		Config:        cfg,
		closer:        logger,
	}, nil
}

// NewWithDeps creates a new Container with custom dependencies for testing.
func NewWithDeps(cfg *domain.Config, store domain.StateStore, ids domain.IDGenerator, logger domain.Logger) *Container {
	if cfg == nil {
		cfg = domain.NewDefaultConfig()
	}
	if logger == nil {
		logger = domain.NopLogger{}
	}
	return &Container{
		Store:  store,
		IDs:    ids,
		Logger: logger,
		Config: cfg,
	}
}

// Close releases resources held by the container, such as the log file.
func (c *Container) Close() error {
	if c.closer == nil {
		return nil
	}
	if err := c.closer.Close(); err != nil {
		return fmt.Errorf("close logger: %w", err)
	}
	return nil
}

// UseCase factory methods

// SubmitDraftUseCase returns a new SubmitDraft use case.
func (c *Container) SubmitDraftUseCase() *usecase.SubmitDraft {
	return usecase.NewSubmitDraft(c.Store, c.IDs, c.Logger)
}

// UpdateDraftUseCase returns a new UpdateDraft use case.
func (c *Container) UpdateDraftUseCase() *usecase.UpdateDraft {
	return usecase.NewUpdateDraft(c.Store, c.Logger)
}

// DeleteTaskUseCase returns a new DeleteTask use case.
func (c *Container) DeleteTaskUseCase() *usecase.DeleteTask {
	return usecase.NewDeleteTask(c.Store, c.Logger)
}

// EditTaskUseCase returns a new EditTask use case.
func (c *Container) EditTaskUseCase() *usecase.EditTask {
	return usecase.NewEditTask(c.Store, c.Logger)
}

// ClearAllUseCase returns a new ClearAll use case.
func (c *Container) ClearAllUseCase() *usecase.ClearAll {
	return usecase.NewClearAll(c.Store, c.Logger)
}

// ShowBoardUseCase returns a new ShowBoard use case.
func (c *Container) ShowBoardUseCase() *usecase.ShowBoard {
	return usecase.NewShowBoard(c.Store)
}

// ReplayScriptUseCase returns a new ReplayScript use case.
func (c *Container) ReplayScriptUseCase() *usecase.ReplayScript {
	return usecase.NewReplayScript(c.Store, c.IDs, c.Logger)
}

// ShowConfigUseCase returns a new ShowConfig use case.
func (c *Container) ShowConfigUseCase() *usecase.ShowConfig {
	return usecase.NewShowConfig(c.ConfigLoader)
}

// InitConfigUseCase returns a new InitConfig use case.
func (c *Container) InitConfigUseCase() *usecase.InitConfig {
	return usecase.NewInitConfig(c.ConfigManager)
}
