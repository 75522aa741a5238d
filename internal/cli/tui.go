package cli

import (
	"github.com/spf13/cobra"
)

// newTUICommand creates the tui command for launching the interactive TUI.
// This is the same as running `todo` without arguments.
func newTUICommand(r *rootState) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Launch interactive TUI",
		Long:  `Launch the interactive terminal user interface for the board.`,
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return launchTUIFunc(r.Container())
		},
	}
}
