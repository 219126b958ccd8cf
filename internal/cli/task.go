package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/runoshun/taskdeck/internal/app"
	"github.com/runoshun/taskdeck/internal/domain"
	"github.com/spf13/cobra"
)

// userDateLayout is the date format accepted from the command line.
const userDateLayout = "2006-01-02"

// parseUserDate parses a user-entered due date.
func parseUserDate(s string) (time.Time, error) {
	t, err := time.Parse(userDateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", domain.ErrInvalidDate, s)
	}
	return t, nil
}

// newAddCommand creates the add command for creating tasks.
func newAddCommand(c *app.Container) *cobra.Command {
	var opts struct {
		Title string
		Body  string
		Due   string
	}

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a new task",
		Long: `Add a new task to the tracker.

Examples:
  # Add a simple task
  taskdeck add --title "Buy milk"

  # Add a task with a description and a due date
  taskdeck add --title "File taxes" --body "Use last year's forms" --due 2026-04-15`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if strings.TrimSpace(opts.Title) == "" {
				return domain.ErrEmptyTitle
			}

			// --body given as an empty string is still a description;
			// absent means no description at all.
			var description *string
			if cmd.Flags().Changed("body") {
				description = &opts.Body
			}

			var due *time.Time
			if opts.Due != "" {
				d, err := parseUserDate(opts.Due)
				if err != nil {
					return err
				}
				due = &d
			}

			task := c.Tasks.AddTask(opts.Title, description, due)
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Added task #%s\n", task.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.Title, "title", "", "Task title (required)")
	cmd.Flags().StringVar(&opts.Body, "body", "", "Task description")
	cmd.Flags().StringVar(&opts.Due, "due", "", "Due date (YYYY-MM-DD)")

	return cmd
}

// newListCommand creates the list command.
func newListCommand(c *app.Container) *cobra.Command {
	var opts struct {
		Completed bool
		Pending   bool
		JSON      bool
	}

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List tasks",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if opts.Completed && opts.Pending {
				return errors.New("cannot use --completed and --pending together")
			}

			var tasks []*domain.Task
			switch {
			case opts.Completed:
				tasks = c.Tasks.GetTasksByCompletion(true)
			case opts.Pending:
				tasks = c.Tasks.GetTasksByCompletion(false)
			default:
				tasks = c.Tasks.GetAllTasks()
			}

			if opts.JSON {
				return printTasksJSON(cmd.OutOrStdout(), tasks)
			}
			printTaskTable(cmd.OutOrStdout(), tasks)
			return nil
		},
	}

	cmd.Flags().BoolVar(&opts.Completed, "completed", false, "Show only completed tasks")
	cmd.Flags().BoolVar(&opts.Pending, "pending", false, "Show only pending tasks")
	cmd.Flags().BoolVar(&opts.JSON, "json", false, "Output as JSON")

	return cmd
}

// printTaskTable renders tasks as an aligned table.
func printTaskTable(w io.Writer, tasks []*domain.Task) {
	if len(tasks) == 0 {
		_, _ = fmt.Fprintln(w, "No tasks.")
		return
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	_, _ = fmt.Fprintln(tw, "ID\tSTATUS\tTITLE\tDUE")
	for _, t := range tasks {
		status := "todo"
		if t.Completed {
			status = "done"
		}
		due := "-"
		if t.DueDate != nil {
			due = t.DueDate.Format(userDateLayout)
		}
		_, _ = fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", t.ID, status, t.Title, due)
	}
	_ = tw.Flush()
}

// printTasksJSON writes tasks as pretty-printed JSON for scripting.
func printTasksJSON(w io.Writer, tasks []*domain.Task) error {
	type jsonTask struct {
		Description *string `json:"description,omitempty"`
		ID          string  `json:"id"`
		Title       string  `json:"title"`
		DueDate     string  `json:"dueDate,omitempty"`
		Completed   bool    `json:"completed"`
	}

	out := make([]jsonTask, 0, len(tasks))
	for _, t := range tasks {
		jt := jsonTask{
			ID:          t.ID,
			Title:       t.Title,
			Description: t.Description,
			Completed:   t.Completed,
		}
		if t.DueDate != nil {
			jt.DueDate = t.DueDate.Format(time.RFC3339)
		}
		out = append(out, jt)
	}

	content, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal tasks: %w", err)
	}
	_, _ = fmt.Fprintln(w, string(content))
	return nil
}

// newShowCommand creates the show command.
func newShowCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show task details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			task, err := c.Tasks.GetTaskByID(args[0])
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			status := "todo"
			if task.Completed {
				status = "done"
			}
			_, _ = fmt.Fprintf(w, "Task #%s\n", task.ID)
			_, _ = fmt.Fprintf(w, "  Title:  %s\n", task.Title)
			_, _ = fmt.Fprintf(w, "  Status: %s\n", status)
			if task.Description != nil {
				_, _ = fmt.Fprintf(w, "  Body:   %s\n", *task.Description)
			}
			if task.DueDate != nil {
				_, _ = fmt.Fprintf(w, "  Due:    %s\n", task.DueDate.Format(userDateLayout))
			}
			return nil
		},
	}
}

// newEditCommand creates the edit command. Flag presence drives the
// update: flags left out leave the field untouched, while --clear-body
// and --clear-due explicitly clear a field.
func newEditCommand(c *app.Container) *cobra.Command {
	var opts struct {
		Title     string
		Body      string
		Due       string
		ClearBody bool
		ClearDue  bool
	}

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Edit a task",
		Long: `Edit a task's title, description or due date.

Only fields named by a flag are changed. Use --clear-body or --clear-due
to remove a field entirely.

Examples:
  taskdeck edit 3 --title "New title"
  taskdeck edit 3 --due 2026-09-01
  taskdeck edit 3 --clear-due`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var patch domain.Patch

			if cmd.Flags().Changed("title") {
				if strings.TrimSpace(opts.Title) == "" {
					return domain.ErrEmptyTitle
				}
				patch.Title = domain.Set(opts.Title)
			}

			switch {
			case opts.ClearBody:
				patch.Description = domain.Clear[string]()
			case cmd.Flags().Changed("body"):
				patch.Description = domain.Set(opts.Body)
			}

			switch {
			case opts.ClearDue:
				patch.DueDate = domain.Clear[time.Time]()
			case cmd.Flags().Changed("due"):
				d, err := parseUserDate(opts.Due)
				if err != nil {
					return err
				}
				patch.DueDate = domain.Set(d)
			}

			if patch.IsZero() {
				return domain.ErrNoFieldsToUpdate
			}

			task, err := c.Tasks.UpdateTask(args[0], patch)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Updated task #%s\n", task.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.Title, "title", "", "New title")
	cmd.Flags().StringVar(&opts.Body, "body", "", "New description")
	cmd.Flags().StringVar(&opts.Due, "due", "", "New due date (YYYY-MM-DD)")
	cmd.Flags().BoolVar(&opts.ClearBody, "clear-body", false, "Remove the description")
	cmd.Flags().BoolVar(&opts.ClearDue, "clear-due", false, "Remove the due date")

	return cmd
}

// newDoneCommand marks a task as completed.
func newDoneCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "done <id>",
		Short: "Mark a task as completed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return setCompletion(cmd, c, args[0], true)
		},
	}
}

// newReopenCommand marks a completed task as pending again.
func newReopenCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "reopen <id>",
		Short: "Mark a completed task as pending again",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return setCompletion(cmd, c, args[0], false)
		},
	}
}

func setCompletion(cmd *cobra.Command, c *app.Container, id string, completed bool) error {
	task, err := c.Tasks.UpdateTask(id, domain.Patch{Completed: domain.Set(completed)})
	if err != nil {
		return err
	}
	state := "pending"
	if task.Completed {
		state = "completed"
	}
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Task #%s is now %s\n", task.ID, state)
	return nil
}

// newRmCommand creates the rm command.
func newRmCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:     "rm <id>",
		Aliases: []string{"delete"},
		Short:   "Delete a task",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !c.Tasks.DeleteTask(args[0]) {
				return domain.ErrTaskNotFound
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Deleted task #%s\n", args[0])
			return nil
		},
	}
}

// newTUICommand opens the interactive task list.
func newTUICommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Open the interactive task list",
		RunE: func(_ *cobra.Command, _ []string) error {
			return launchTUIFunc(c)
		},
	}
}
