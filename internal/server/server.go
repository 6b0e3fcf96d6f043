package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"task-scheduler/internal/api"
)

// Server exposes the API over HTTP until its context is canceled.
type Server struct {
	httpServer      *http.Server
	listener        net.Listener
	addr            string
	shutdownTimeout time.Duration
	logger          zerolog.Logger
}

// New creates a server for the given API. It does not start listening.
func New(a api.API, addr string, shutdownTimeout time.Duration, logger zerolog.Logger) *Server {
	return &Server{
		httpServer: &http.Server{
			Handler:           NewRouter(a, logger),
			ReadHeaderTimeout: 10 * time.Second,
		},
		addr:            addr,
		shutdownTimeout: shutdownTimeout,
		logger:          logger,
	}
}

// Listen binds the configured address. Run calls it when needed.
func (s *Server) Listen() error {
	if s.listener != nil {
		return nil
	}
	listener, err := net.Listen("tcp", s.addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.addr, err)
	}
	s.listener = listener
	return nil
}

// Addr returns the bound address, or "" before Listen.
func (s *Server) Addr() string {
	if s.listener == nil {
		return ""
	}
	return s.listener.Addr().String()
}

// Run serves requests until ctx is canceled, then shuts down gracefully
// within the shutdown timeout.
func (s *Server) Run(ctx context.Context) error {
	if err := s.Listen(); err != nil {
		return err
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		s.logger.Info().Str("addr", s.Addr()).Msg("starting server")
		if err := s.httpServer.Serve(s.listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		s.logger.Info().Msg("shutting down server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
		defer cancel()
		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server shutdown failed: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}
	s.logger.Info().Msg("server shutdown completed")
	return nil
}
