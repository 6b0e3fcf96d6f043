package server

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/hlog"

	"task-scheduler/internal/api"
)

// NewRouter creates the application router with all routes and middleware.
func NewRouter(a api.API, logger zerolog.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(hlog.NewHandler(logger))
	r.Use(requestIDLogger)
	r.Use(hlog.AccessHandler(logRequest))
	r.Use(middleware.Recoverer)

	tasks := NewTaskHandler(a)

	r.Route("/api", func(r chi.Router) {
		r.Post("/tasks", tasks.AddTask)
		r.Get("/tasks", tasks.ListTasks)
		r.Post("/tasks/{id}/complete", tasks.CompleteTask)
		r.Get("/recommendations", tasks.Recommend)
	})

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			hlog.FromRequest(r).Error().Err(err).Msg("failed to write health check response")
		}
	})

	return r
}

// requestIDLogger tags the request logger with chi's request ID.
func requestIDLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if id := middleware.GetReqID(r.Context()); id != "" {
			logger := hlog.FromRequest(r).With().Str("request_id", id).Logger()
			r = r.WithContext(logger.WithContext(r.Context()))
		}
		next.ServeHTTP(w, r)
	})
}

func logRequest(r *http.Request, status, size int, duration time.Duration) {
	hlog.FromRequest(r).Info().
		Str("method", r.Method).
		Str("path", r.URL.Path).
		Int("status", status).
		Int("size", size).
		Dur("duration", duration).
		Msg("request")
}
