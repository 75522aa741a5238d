package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/runoshun/todo/internal/domain"
	"github.com/runoshun/todo/internal/infra/script"
	"github.com/runoshun/todo/internal/usecase"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// Replay output formats.
const (
	formatText = "text"
	formatYAML = "yaml"
	formatTOML = "toml"
)

// newReplayCommand creates the replay command.
func newReplayCommand(r *rootState) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "replay FILE",
		Short: "Run a script of board steps and print the result",
		Long: `Run a YAML script of board steps without the TUI and print the final board.

The script is a list of single-key steps. Positions are 1-based and refer to
the list as it is when the step runs; a position past the end does nothing.

  - add: Buy milk     # add a task directly
  - draft: Walk dog   # type into the input
  - submit: true      # submit the input
  - delete: 1         # delete the first row
  - edit: 1           # move the first row back into the input
  - clear: true       # press clear all (has no effect)

Use "-" as FILE to read the script from stdin.`,
		Example: `  todo replay steps.yaml
  todo replay --format yaml --seq-ids steps.yaml
  cat steps.yaml | todo replay -`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			switch format {
			case formatText, formatYAML, formatTOML:
			default:
				return fmt.Errorf("unknown format %q (want text, yaml or toml)", format)
			}

			var steps []domain.Step
			var err error
			if args[0] == "-" {
				steps, err = script.Parse(cmd.InOrStdin())
			} else {
				steps, err = script.ParseFile(args[0])
			}
			if err != nil {
				return err
			}

			out, err := r.Container().ReplayScriptUseCase().Execute(cmd.Context(), usecase.ReplayScriptInput{
				Steps: steps,
			})
			if err != nil {
				return err
			}

			return writeReplay(cmd.OutOrStdout(), format, out)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", formatText, "Output format: text, yaml, toml")
	cmd.Flags().BoolVar(&r.opts.SeqIDs, "seq-ids", false, "Use sequential task IDs (1, 2, ...) instead of UUIDs")

	return cmd
}

// writeReplay prints the final board in the given format.
// Structured formats carry the board only; text also reports how many steps changed it.
func writeReplay(w io.Writer, format string, out *usecase.ReplayScriptOutput) error {
	board := out.Board
	switch format {
	case formatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(board); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return enc.Close()
	case formatTOML:
		if err := toml.NewEncoder(w).Encode(board); err != nil {
			return fmt.Errorf("encode toml: %w", err)
		}
		return nil
	}

	var b strings.Builder
	b.WriteString("Todo App\n\n")
	if len(board.Tasks) == 0 {
		b.WriteString("  (no tasks)\n")
	}
	for i, task := range board.Tasks {
		fmt.Fprintf(&b, "  %d. %s\n", i+1, task.Text)
	}
	b.WriteString("\n")
	if board.Draft != "" {
		fmt.Fprintf(&b, "Draft: %s\n", board.Draft)
	}
	fmt.Fprintf(&b, "You have %d pending tasks\n", board.Pending)
	if board.CanClearAll {
		b.WriteString("Clear all: enabled\n")
	} else {
		b.WriteString("Clear all: disabled\n")
	}
	fmt.Fprintf(&b, "\nSteps applied: %d\n", out.Applied)
	_, err := io.WriteString(w, b.String())
	return err
}
