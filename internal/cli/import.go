package cli

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/runoshun/taskdeck/internal/app"
	"github.com/runoshun/taskdeck/internal/domain"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// taskFile is the YAML document accepted by the import command.
type taskFile struct {
	Tasks []taskEntry `yaml:"tasks"`
}

// taskEntry is one task in an import file.
type taskEntry struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	Due         string `yaml:"due"`
}

// pendingTask is a validated entry ready to be added.
type pendingTask struct {
	description *string
	due         *time.Time
	title       string
}

// newImportCommand creates the import command for bulk task creation.
func newImportCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Import tasks from a YAML file",
		Long: `Import tasks from a YAML file.

The whole file is validated before anything is added, so a bad entry
does not leave a partial import behind.

File format:
  tasks:
    - title: Buy milk
    - title: File taxes
      description: Use last year's forms
      due: 2026-04-15`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			content, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read file: %w", err)
			}

			var file taskFile
			if err := yaml.Unmarshal(content, &file); err != nil {
				return fmt.Errorf("parse file: %w", err)
			}

			// Validate everything up front
			pending := make([]pendingTask, 0, len(file.Tasks))
			for i, entry := range file.Tasks {
				if strings.TrimSpace(entry.Title) == "" {
					return fmt.Errorf("task %d: %w", i+1, domain.ErrEmptyTitle)
				}
				p := pendingTask{title: entry.Title}
				if entry.Description != "" {
					desc := entry.Description
					p.description = &desc
				}
				if entry.Due != "" {
					d, err := parseUserDate(entry.Due)
					if err != nil {
						return fmt.Errorf("task %d: %w", i+1, err)
					}
					p.due = &d
				}
				pending = append(pending, p)
			}

			for _, p := range pending {
				task := c.Tasks.AddTask(p.title, p.description, p.due)
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Added task #%s: %s\n", task.ID, task.Title)
			}
			return nil
		},
	}
}
