package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoader_DefaultsWhenNoFile(t *testing.T) {
	confDir := t.TempDir()
	dataDir := t.TempDir()
	loader := NewLoaderWithDirs(confDir, dataDir)

	cfg, err := loader.Load()
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dataDir, StoreFileName), cfg.Store.Path)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoader_FileOverridesDefaults(t *testing.T) {
	confDir := t.TempDir()
	dataDir := t.TempDir()

	content := `
[store]
path = "/tmp/custom/tasks.json"

[log]
level = "debug"
`
	require.NoError(t, os.WriteFile(filepath.Join(confDir, ConfigFileName), []byte(content), 0o600))

	loader := NewLoaderWithDirs(confDir, dataDir)
	cfg, err := loader.Load()
	require.NoError(t, err)

	assert.Equal(t, "/tmp/custom/tasks.json", cfg.Store.Path)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoader_PartialFileKeepsDefaults(t *testing.T) {
	confDir := t.TempDir()
	dataDir := t.TempDir()

	content := `
[log]
level = "warn"
`
	require.NoError(t, os.WriteFile(filepath.Join(confDir, ConfigFileName), []byte(content), 0o600))

	loader := NewLoaderWithDirs(confDir, dataDir)
	cfg, err := loader.Load()
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dataDir, StoreFileName), cfg.Store.Path)
	assert.Equal(t, "warn", cfg.Log.Level)
}

func TestLoader_MalformedFile(t *testing.T) {
	confDir := t.TempDir()
	dataDir := t.TempDir()

	require.NoError(t, os.WriteFile(filepath.Join(confDir, ConfigFileName), []byte("[store\npath="), 0o600))

	loader := NewLoaderWithDirs(confDir, dataDir)
	_, err := loader.Load()
	assert.Error(t, err)
}
