package usecase

import (
	"context"
	"fmt"

	"github.com/runoshun/todo/internal/domain"
)

// ShowConfigInput contains the input for the ShowConfig use case.
type ShowConfigInput struct{}

// ShowConfigOutput contains the output of the ShowConfig use case.
type ShowConfigOutput struct {
	Effective *domain.Config      // Merged configuration
	Sources   []domain.ConfigInfo // Files considered, in merge order
}

// ShowConfig displays the effective configuration and where it came from.
type ShowConfig struct {
	loader domain.ConfigLoader
}

// NewShowConfig creates a new ShowConfig use case.
func NewShowConfig(loader domain.ConfigLoader) *ShowConfig {
	return &ShowConfig{
		loader: loader,
	}
}

// Execute loads the merged configuration and lists its source files.
func (uc *ShowConfig) Execute(_ context.Context, _ ShowConfigInput) (*ShowConfigOutput, error) {
	cfg, err := uc.loader.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return &ShowConfigOutput{
		Effective: cfg,
		Sources:   uc.loader.Sources(),
	}, nil
}
