// Package app provides the dependency injection container for the application.
package app

import (
	"os"

	"github.com/mtoledo/credtrack/internal/domain"
	"github.com/mtoledo/credtrack/internal/infra/config"
	"github.com/mtoledo/credtrack/internal/infra/ident"
	"github.com/mtoledo/credtrack/internal/infra/jsonstore"
	"github.com/mtoledo/credtrack/internal/infra/logging"
	"github.com/mtoledo/credtrack/internal/store"
)

// Container wires ports to implementations and owns the state store.
type Container struct {
	Store  *store.Store
	Logger domain.Logger
	Config *config.Config
}

// New creates a Container for the given working directory: loads
// configuration, opens the snapshot store, and hydrates the canonical
// project state.
func New(dir string) (*Container, error) {
	cfg, err := config.NewLoader(dir).Load()
	if err != nil {
		return nil, err
	}

	logger := logging.New(os.Stderr, logging.ParseLevel(cfg.Log.Level))
	snapshots := jsonstore.New(cfg.DataFile)
	st := store.New(snapshots, ident.UUIDGenerator{}, logger, cfg.Seed())

	return &Container{
		Store:  st,
		Logger: logger,
		Config: cfg,
	}, nil
}

// NewWithDeps creates a Container with custom dependencies for testing.
func NewWithDeps(st *store.Store, logger domain.Logger, cfg *config.Config) *Container {
	return &Container{
		Store:  st,
		Logger: logger,
		Config: cfg,
	}
}

// Close flushes pending snapshot writes.
func (c *Container) Close() {
	if c.Store != nil {
		c.Store.Close()
	}
}
