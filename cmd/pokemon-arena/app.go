package main

import (
	"os"
	"path/filepath"

	"github.com/ericogr/pokemon-arena/internal/ai"
	"github.com/ericogr/pokemon-arena/internal/catalog"
	"github.com/ericogr/pokemon-arena/internal/config"
	"github.com/ericogr/pokemon-arena/internal/constants"
	"github.com/ericogr/pokemon-arena/internal/engine"
	"github.com/ericogr/pokemon-arena/internal/logging"
	"github.com/ericogr/pokemon-arena/internal/mechanics"
	"github.com/ericogr/pokemon-arena/internal/service"
	"github.com/ericogr/pokemon-arena/internal/storage"
)

func loadSettingsOrExit() *config.Settings {
	s, err := config.LoadSettings()
	if err != nil {
		logging.Fatal("Missing or invalid configuration", err, nil)
	}
	if err := logging.SetLevel(s.LogLevel); err != nil {
		logging.Fatal("Invalid log level", err, logging.Fields{"var": constants.EnvLogLevel})
	}
	return s
}

func loadCatalogOrExit(path string) *catalog.Catalog {
	c, err := config.LoadConfig(path)
	if err != nil {
		logging.Fatal("Missing or invalid catalog", err, logging.Fields{constants.LogFieldSource: path})
	}
	return c
}

func createStoreOrExit(dbPath string) storage.Store {
	if dbPath == ":memory:" {
		logging.Warn("Using in-memory store; battles are lost on restart", nil)
		return storage.NewMemoryStore()
	}
	if dir := filepath.Dir(dbPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			logging.Fatal("Failed to create database directory", err, logging.Fields{constants.LogFieldPath: dir})
		}
	}
	db, err := storage.OpenAndMigrate(dbPath)
	if err != nil {
		logging.Fatal("Failed to initialize database", err, nil)
	}
	return storage.NewSQLiteStore(db)
}

// newManager wires the resolver, the NPC policy and the store.
func newManager(s *config.Settings, cat *catalog.Catalog, store storage.Store) *service.Manager {
	opts, err := s.EngineOptions()
	if err != nil {
		logging.Fatal("Invalid engine settings", err, nil)
	}
	resolver := engine.NewResolver(cat, mechanics.NewGen1(cat), ai.NewSelector(cat), opts)
	return service.NewManager(store, cat, resolver, s.MaxRetries)
}
