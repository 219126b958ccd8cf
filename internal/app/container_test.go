package app

import (
	"path/filepath"
	"testing"

	"github.com/runoshun/taskdeck/internal/infra/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWithLoader(t *testing.T) {
	dataDir := t.TempDir()
	loader := config.NewLoaderWithDirs(t.TempDir(), dataDir)

	c, err := NewWithLoader(loader)
	require.NoError(t, err)
	defer func() { _ = c.Close() }()

	assert.Equal(t, filepath.Join(dataDir, config.StoreFileName), c.Config.Store.Path)

	// The wired manager is fully usable end to end.
	task := c.Tasks.AddTask("Wired", nil, nil)
	assert.Equal(t, "1", task.ID)

	got, err := c.Tasks.GetTaskByID("1")
	require.NoError(t, err)
	assert.Equal(t, "Wired", got.Title)
}
