package config

import (
	"fmt"

	"github.com/pelletier/go-toml/v2"
	"github.com/runoshun/todo/internal/domain"
)

const templateHeader = "# todo configuration\n\n"

// RenderTemplate renders cfg as a commented TOML file.
// A nil cfg renders the defaults.
func RenderTemplate(cfg *domain.Config) (string, error) {
	if cfg == nil {
		cfg = domain.NewDefaultConfig()
	}
	data, err := toml.Marshal(cfg)
	if err != nil {
		return "", fmt.Errorf("encode config: %w", err)
	}
	return templateHeader + string(data), nil
}
