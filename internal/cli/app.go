package cli

import (
	"fmt"
	"io"

	"github.com/rs/zerolog"

	"task-scheduler/internal/api"
	"task-scheduler/internal/config"
	"task-scheduler/internal/services"
)

// Backend opens the API the commands talk to. The closer releases whatever
// the API holds, typically the task store.
type Backend func(cfg *config.Config, logger zerolog.Logger) (api.API, io.Closer, error)

// App carries what every command needs once configuration is loaded
type App struct {
	api          api.API
	config       *config.Config
	logger       zerolog.Logger
	printer      *Printer
	errorHandler *ErrorHandler
	closer       io.Closer
}

// DefaultBackend opens the SQLite store selected by the configured
// environment and wires the services around it using the system clock.
func DefaultBackend(cfg *config.Config, logger zerolog.Logger) (api.API, io.Closer, error) {
	factory := config.NewRepositoryFactory(cfg)

	repo, err := factory.CreateRepository(logger)
	if err != nil {
		return nil, nil, fmt.Errorf("error creating repository: %w", err)
	}
	logger.Debug().
		Str("path", factory.DatabasePath()).
		Str("env", string(cfg.Application.Environment)).
		Msg("opened task store")

	container := services.NewServiceContainer(repo, cfg, services.SystemClock)
	return api.New(container, cfg), repo, nil
}

// StaticBackend always hands out the same API, for callers that already own one.
func StaticBackend(a api.API) Backend {
	return func(*config.Config, zerolog.Logger) (api.API, io.Closer, error) {
		return a, nopCloser{}, nil
	}
}

// Close releases the backend. It is safe to call on an App that never opened one.
func (a *App) Close() error {
	if a.closer == nil {
		return nil
	}
	err := a.closer.Close()
	a.closer = nil
	return err
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
