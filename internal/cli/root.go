// Package cli provides the command-line interface for taskdeck.
// All user-facing validation (non-empty titles, date parsing) happens
// here, before anything reaches the manager.
package cli

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/runoshun/taskdeck/internal/app"
	"github.com/runoshun/taskdeck/internal/tui"
	"github.com/spf13/cobra"
)

// Command group IDs.
const (
	groupTask  = "task"
	groupSetup = "setup"
)

// launchTUIFunc is a function variable for launching the TUI, allowing it to be mocked in tests.
var launchTUIFunc = launchTUI

// NewRootCommand creates the root command for taskdeck.
// It receives the container for dependency injection and version for display.
func NewRootCommand(c *app.Container, version string) *cobra.Command {
	root := &cobra.Command{
		Use:   "taskdeck",
		Short: "Local task tracker",
		Long: `taskdeck is a local, single-user task tracker.

Tasks are kept in a single JSON file between runs. Running taskdeck
without arguments opens the interactive task list.`,
		Version: version,
		// SilenceUsage prevents usage from being printed on errors
		SilenceUsage: true,
		// SilenceErrors prevents Cobra from printing errors (we handle it in main)
		SilenceErrors: true,
		RunE: func(_ *cobra.Command, _ []string) error {
			return launchTUIFunc(c)
		},
	}

	// Define command groups
	root.AddGroup(
		&cobra.Group{ID: groupTask, Title: "Task Management:"},
		&cobra.Group{ID: groupSetup, Title: "Setup Commands:"},
	)

	// Task management commands
	addCmd := newAddCommand(c)
	addCmd.GroupID = groupTask

	listCmd := newListCommand(c)
	listCmd.GroupID = groupTask

	showCmd := newShowCommand(c)
	showCmd.GroupID = groupTask

	editCmd := newEditCommand(c)
	editCmd.GroupID = groupTask

	doneCmd := newDoneCommand(c)
	doneCmd.GroupID = groupTask

	reopenCmd := newReopenCommand(c)
	reopenCmd.GroupID = groupTask

	rmCmd := newRmCommand(c)
	rmCmd.GroupID = groupTask

	importCmd := newImportCommand(c)
	importCmd.GroupID = groupTask

	tuiCmd := newTUICommand(c)
	tuiCmd.GroupID = groupTask

	// Setup commands
	configCmd := newConfigCommand(c)
	configCmd.GroupID = groupSetup

	// Add subcommands
	root.AddCommand(
		addCmd,
		listCmd,
		showCmd,
		editCmd,
		doneCmd,
		reopenCmd,
		rmCmd,
		importCmd,
		tuiCmd,
		configCmd,
	)

	return root
}

// launchTUI opens the interactive task list.
func launchTUI(c *app.Container) error {
	p := tea.NewProgram(tui.New(c.Tasks), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
