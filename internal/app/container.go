// Package app provides the dependency injection container for the application.
package app

import (
	"github.com/runoshun/taskdeck/internal/infra/config"
	"github.com/runoshun/taskdeck/internal/infra/filestore"
	"github.com/runoshun/taskdeck/internal/infra/logging"
	"github.com/runoshun/taskdeck/internal/manager"
)

// Container wires configuration, the backing store, the logger and the
// task collection manager.
type Container struct {
	Tasks  *manager.Manager
	Logger *logging.Logger
	Config *config.Config
}

// New creates a Container using the default configuration directories.
func New() (*Container, error) {
	return NewWithLoader(config.NewLoader())
}

// NewWithLoader creates a Container from the given config loader.
// Tests use this with a loader pointed at temporary directories.
func NewWithLoader(loader *config.Loader) (*Container, error) {
	cfg, err := loader.Load()
	if err != nil {
		return nil, err
	}

	logger := logging.New(loader.LogDir(), logging.ParseLevel(cfg.Log.Level))
	store := filestore.New(cfg.Store.Path)
	tasks := manager.New(manager.Options{Store: store, Logger: logger})

	return &Container{
		Tasks:  tasks,
		Logger: logger,
		Config: cfg,
	}, nil
}

// Close releases resources held by the container.
func (c *Container) Close() error {
	return c.Logger.Close()
}
