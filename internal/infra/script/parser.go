// Package script parses replay scripts.
//
// A script is a YAML list of single-key maps:
//
//	- add: Buy milk
//	- draft: Walk dog
//	- draft: ~        # null clears the draft
//	- submit: true
//	- delete: 1
//	- edit: 1
//	- clear: true
package script

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/runoshun/todo/internal/domain"
	"gopkg.in/yaml.v3"
)

// ParseFile reads and parses the script at path.
func ParseFile(path string) ([]domain.Step, error) {
	f, err := os.Open(path) //nolint:gosec // path comes from the command line
	if err != nil {
		return nil, fmt.Errorf("open script: %w", err)
	}
	defer func() { _ = f.Close() }()
	return Parse(f)
}

// Parse parses a script from r.
func Parse(r io.Reader) ([]domain.Step, error) {
	var doc yaml.Node
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("decode script: %w", err)
	}
	if len(doc.Content) == 0 {
		return nil, nil
	}

	root := doc.Content[0]
	if root.Kind != yaml.SequenceNode {
		return nil, fmt.Errorf("%w: line %d: script must be a list of steps", domain.ErrInvalidStep, root.Line)
	}

	steps := make([]domain.Step, 0, len(root.Content))
	for _, item := range root.Content {
		step, err := parseStep(item)
		if err != nil {
			return nil, err
		}
		if err := step.Validate(); err != nil {
			return nil, fmt.Errorf("line %d: %w", item.Line, err)
		}
		steps = append(steps, step)
	}
	return steps, nil
}

// parseStep converts one `- op: value` entry into a Step.
func parseStep(item *yaml.Node) (domain.Step, error) {
	if item.Kind != yaml.MappingNode || len(item.Content) != 2 {
		return domain.Step{}, fmt.Errorf("%w: line %d: each step must be a single `op: value` pair", domain.ErrInvalidStep, item.Line)
	}
	key, value := item.Content[0], item.Content[1]
	op := domain.StepOp(key.Value)

	switch op {
	case domain.StepAdd, domain.StepDraft:
		if value.Kind != yaml.ScalarNode {
			return domain.Step{}, fmt.Errorf("%w: line %d: %s expects text", domain.ErrInvalidStep, value.Line, op)
		}
		if value.ShortTag() == "!!null" {
			return domain.Step{Op: op}, nil
		}
		return domain.Step{Op: op, Text: value.Value}, nil

	case domain.StepDelete, domain.StepEdit:
		pos, err := strconv.Atoi(value.Value)
		if err != nil || value.Kind != yaml.ScalarNode {
			return domain.Step{}, fmt.Errorf("%w: line %d: %s expects a row number", domain.ErrInvalidStep, value.Line, op)
		}
		return domain.Step{Op: op, Position: pos}, nil

	case domain.StepSubmit, domain.StepClear:
		var on bool
		if err := value.Decode(&on); err != nil || !on {
			return domain.Step{}, fmt.Errorf("%w: line %d: %s expects true", domain.ErrInvalidStep, value.Line, op)
		}
		return domain.Step{Op: op}, nil
	}

	return domain.Step{}, fmt.Errorf("%w: line %d: unknown op %q", domain.ErrInvalidStep, key.Line, key.Value)
}
