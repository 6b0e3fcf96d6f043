package config

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"task-scheduler/internal/repository/sqlite"
)

// developmentDBPath keeps development data next to the working directory.
const developmentDBPath = "tt.db"

// RepositoryFactory creates repository instances based on environment
type RepositoryFactory struct {
	config *Config
}

// NewRepositoryFactory creates a new repository factory for the given configuration
func NewRepositoryFactory(cfg *Config) *RepositoryFactory {
	return &RepositoryFactory{config: cfg}
}

// DatabasePath returns where the store for the configured environment lives.
func (rf *RepositoryFactory) DatabasePath() string {
	switch rf.config.Application.Environment {
	case Testing:
		return sqlite.MemoryPath
	case Development:
		return developmentDBPath
	default:
		return rf.config.GetDatabasePath()
	}
}

// CreateRepository opens the task store for the configured environment.
// The caller owns the returned repository and must close it.
func (rf *RepositoryFactory) CreateRepository(logger zerolog.Logger) (*sqlite.SQLiteRepository, error) {
	dbPath := rf.DatabasePath()

	if rf.config.Application.Environment == Production {
		if err := os.MkdirAll(rf.config.Database.Dir, os.FileMode(rf.config.Database.DirPermissions)); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	repo, err := sqlite.NewWithOptions(dbPath, sqlite.Options{
		QueryTimeout: rf.config.Database.QueryTimeout,
		WriteTimeout: rf.config.Database.WriteTimeout,
		Logger:       &logger,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize %s database: %w", rf.config.Application.Environment, err)
	}

	return repo, nil
}
