// Package cli provides the command-line interface for todo.
package cli

import (
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/runoshun/todo/internal/app"
	"github.com/runoshun/todo/internal/tui"
	"github.com/spf13/cobra"
)

// Command group IDs.
const (
	groupBoard = "board"
	groupSetup = "setup"
)

// ContainerFactory builds the container once flags are parsed.
type ContainerFactory func(opts app.Options) (*app.Container, error)

// launchTUIFunc is a function variable for launching the TUI, allowing it to be mocked in tests.
var launchTUIFunc = launchTUI

// rootState carries parsed flags and the container to subcommands.
type rootState struct {
	newContainer ContainerFactory
	container    *app.Container
	opts         app.Options
}

// Container returns the container built in PersistentPreRunE.
func (r *rootState) Container() *app.Container {
	return r.container
}

// NewRootCommand creates the root command for todo.
// newContainer is called after flag parsing; pass app.New in production.
func NewRootCommand(newContainer ContainerFactory, version string) *cobra.Command {
	r := &rootState{newContainer: newContainer}

	root := &cobra.Command{
		Use:   "todo",
		Short: "A single-board to-do list for the terminal",
		Long: `todo is a terminal to-do list: add tasks, edit them back into the
input, delete them, and keep an eye on the pending count.

Running todo without a subcommand launches the interactive TUI.
The board lives in memory and is gone when the program exits.`,
		Version: version,
		// SilenceUsage prevents usage from being printed on errors
		SilenceUsage: true,
		// SilenceErrors prevents Cobra from printing errors (we handle it in main)
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if r.newContainer == nil {
				return nil
			}
			if r.opts.WorkDir == "" {
				cwd, err := os.Getwd()
				if err != nil {
					return fmt.Errorf("get current directory: %w", err)
				}
				r.opts.WorkDir = cwd
			}

			c, err := r.newContainer(r.opts)
			if err != nil {
				return fmt.Errorf("initialize: %w", err)
			}
			r.container = c

			for _, w := range c.Config.Warnings {
				_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %s\n", w)
			}
			return nil
		},
		PersistentPostRunE: func(_ *cobra.Command, _ []string) error {
			if r.container == nil {
				return nil
			}
			return r.container.Close()
		},
		RunE: func(_ *cobra.Command, _ []string) error {
			return launchTUIFunc(r.Container())
		},
	}

	root.PersistentFlags().StringVar(&r.opts.ConfigPath, "config", "", "Extra config file (highest precedence)")
	root.PersistentFlags().StringVar(&r.opts.LogLevel, "log-level", "", "Log level: debug, info, warn, error")
	root.PersistentFlags().StringVar(&r.opts.LogFile, "log-file", "", "Write logs to this file")

	root.AddGroup(
		&cobra.Group{ID: groupBoard, Title: "Board Commands:"},
		&cobra.Group{ID: groupSetup, Title: "Setup Commands:"},
	)

	tuiCmd := newTUICommand(r)
	tuiCmd.GroupID = groupBoard

	replayCmd := newReplayCommand(r)
	replayCmd.GroupID = groupBoard

	configCmd := newConfigCommand(r)
	configCmd.GroupID = groupSetup

	root.AddCommand(
		tuiCmd,
		replayCmd,
		configCmd,
	)

	return root
}

// launchTUI runs the interactive TUI until the user quits.
func launchTUI(c *app.Container) error {
	if c == nil {
		return errors.New("launch tui: no container")
	}
	var opts []tea.ProgramOption
	if c.Config.TUI.AltScreen {
		opts = append(opts, tea.WithAltScreen())
	}
	p := tea.NewProgram(tui.New(c), opts...)
	_, err := p.Run()
	return err
}
