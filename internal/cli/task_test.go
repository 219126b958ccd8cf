package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/runoshun/taskdeck/internal/app"
	"github.com/runoshun/taskdeck/internal/domain"
	"github.com/runoshun/taskdeck/internal/infra/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestContainer creates a container over temporary directories.
func newTestContainer(t *testing.T) *app.Container {
	t.Helper()
	loader := config.NewLoaderWithDirs(t.TempDir(), t.TempDir())
	c, err := app.NewWithLoader(loader)
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close() })
	return c
}

// runCommand executes the CLI with the given args and returns stdout.
func runCommand(t *testing.T, c *app.Container, args ...string) (string, error) {
	t.Helper()
	root := NewRootCommand(c, "test")
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestAddCommand(t *testing.T) {
	c := newTestContainer(t)

	out, err := runCommand(t, c, "add", "--title", "Buy milk")
	require.NoError(t, err)
	assert.Contains(t, out, "Added task #1")

	out, err = runCommand(t, c, "add", "--title", "File taxes", "--body", "forms", "--due", "2026-04-15")
	require.NoError(t, err)
	assert.Contains(t, out, "Added task #2")
}

func TestAddCommand_RequiresTitle(t *testing.T) {
	c := newTestContainer(t)

	_, err := runCommand(t, c, "add", "--title", "   ")
	assert.ErrorIs(t, err, domain.ErrEmptyTitle)
}

func TestAddCommand_RejectsBadDate(t *testing.T) {
	c := newTestContainer(t)

	_, err := runCommand(t, c, "add", "--title", "T", "--due", "15/04/2026")
	assert.ErrorIs(t, err, domain.ErrInvalidDate)
}

func TestListCommand(t *testing.T) {
	c := newTestContainer(t)

	_, err := runCommand(t, c, "add", "--title", "First")
	require.NoError(t, err)
	_, err = runCommand(t, c, "add", "--title", "Second")
	require.NoError(t, err)
	_, err = runCommand(t, c, "done", "1")
	require.NoError(t, err)

	out, err := runCommand(t, c, "list")
	require.NoError(t, err)
	assert.Contains(t, out, "First")
	assert.Contains(t, out, "Second")

	out, err = runCommand(t, c, "list", "--completed")
	require.NoError(t, err)
	assert.Contains(t, out, "First")
	assert.NotContains(t, out, "Second")

	out, err = runCommand(t, c, "list", "--pending")
	require.NoError(t, err)
	assert.NotContains(t, out, "First")
	assert.Contains(t, out, "Second")
}

func TestListCommand_ConflictingFilters(t *testing.T) {
	c := newTestContainer(t)

	_, err := runCommand(t, c, "list", "--completed", "--pending")
	assert.Error(t, err)
}

func TestListCommand_JSON(t *testing.T) {
	c := newTestContainer(t)

	_, err := runCommand(t, c, "add", "--title", "Machine readable", "--due", "2026-04-15")
	require.NoError(t, err)

	out, err := runCommand(t, c, "list", "--json")
	require.NoError(t, err)

	var tasks []struct {
		ID        string `json:"id"`
		Title     string `json:"title"`
		DueDate   string `json:"dueDate"`
		Completed bool   `json:"completed"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &tasks))
	require.Len(t, tasks, 1)
	assert.Equal(t, "1", tasks[0].ID)
	assert.Equal(t, "Machine readable", tasks[0].Title)
	assert.NotEmpty(t, tasks[0].DueDate)
	assert.False(t, tasks[0].Completed)
}

func TestShowCommand(t *testing.T) {
	c := newTestContainer(t)

	_, err := runCommand(t, c, "add", "--title", "Detailed", "--body", "the body", "--due", "2026-04-15")
	require.NoError(t, err)

	out, err := runCommand(t, c, "show", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "Task #1")
	assert.Contains(t, out, "Detailed")
	assert.Contains(t, out, "the body")
	assert.Contains(t, out, "2026-04-15")
}

func TestShowCommand_NotFound(t *testing.T) {
	c := newTestContainer(t)

	_, err := runCommand(t, c, "show", "999")
	assert.ErrorIs(t, err, domain.ErrTaskNotFound)
}

func TestEditCommand(t *testing.T) {
	c := newTestContainer(t)

	_, err := runCommand(t, c, "add", "--title", "Old", "--body", "body", "--due", "2026-04-15")
	require.NoError(t, err)

	out, err := runCommand(t, c, "edit", "1", "--title", "New")
	require.NoError(t, err)
	assert.Contains(t, out, "Updated task #1")

	out, err = runCommand(t, c, "show", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "New")
	assert.Contains(t, out, "body")
	assert.Contains(t, out, "2026-04-15")
}

func TestEditCommand_ClearFields(t *testing.T) {
	c := newTestContainer(t)

	_, err := runCommand(t, c, "add", "--title", "T", "--body", "body", "--due", "2026-04-15")
	require.NoError(t, err)

	_, err = runCommand(t, c, "edit", "1", "--clear-body", "--clear-due")
	require.NoError(t, err)

	out, err := runCommand(t, c, "show", "1")
	require.NoError(t, err)
	assert.NotContains(t, out, "body")
	assert.NotContains(t, out, "2026-04-15")
}

func TestEditCommand_NoFlags(t *testing.T) {
	c := newTestContainer(t)

	_, err := runCommand(t, c, "add", "--title", "T")
	require.NoError(t, err)

	_, err = runCommand(t, c, "edit", "1")
	assert.ErrorIs(t, err, domain.ErrNoFieldsToUpdate)
}

func TestDoneAndReopenCommands(t *testing.T) {
	c := newTestContainer(t)

	_, err := runCommand(t, c, "add", "--title", "T")
	require.NoError(t, err)

	out, err := runCommand(t, c, "done", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "completed")

	out, err = runCommand(t, c, "reopen", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "pending")
}

func TestRmCommand(t *testing.T) {
	c := newTestContainer(t)

	_, err := runCommand(t, c, "add", "--title", "Doomed")
	require.NoError(t, err)

	out, err := runCommand(t, c, "rm", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "Deleted task #1")

	_, err = runCommand(t, c, "rm", "1")
	assert.ErrorIs(t, err, domain.ErrTaskNotFound)
}

func TestImportCommand(t *testing.T) {
	c := newTestContainer(t)

	file := filepath.Join(t.TempDir(), "tasks.yaml")
	content := `tasks:
  - title: Buy milk
  - title: File taxes
    description: Use last year's forms
    due: 2026-04-15
`
	require.NoError(t, os.WriteFile(file, []byte(content), 0o600))

	out, err := runCommand(t, c, "import", file)
	require.NoError(t, err)
	assert.Contains(t, out, "Added task #1: Buy milk")
	assert.Contains(t, out, "Added task #2: File taxes")

	task, err := c.Tasks.GetTaskByID("2")
	require.NoError(t, err)
	require.NotNil(t, task.Description)
	assert.Equal(t, "Use last year's forms", *task.Description)
	require.NotNil(t, task.DueDate)
}

func TestImportCommand_BadEntryAddsNothing(t *testing.T) {
	c := newTestContainer(t)

	file := filepath.Join(t.TempDir(), "tasks.yaml")
	content := `tasks:
  - title: Fine
  - title: Broken
    due: not-a-date
`
	require.NoError(t, os.WriteFile(file, []byte(content), 0o600))

	_, err := runCommand(t, c, "import", file)
	assert.ErrorIs(t, err, domain.ErrInvalidDate)
	assert.Empty(t, c.Tasks.GetAllTasks())
}

func TestConfigCommand(t *testing.T) {
	c := newTestContainer(t)

	out, err := runCommand(t, c, "config")
	require.NoError(t, err)
	assert.Contains(t, out, "[store]")
	assert.Contains(t, out, "[log]")
}
