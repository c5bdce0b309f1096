// Package nodeapi serves a configuration backend over the node config HTTP
// API so the API backend can run against a local file.
package nodeapi

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/nodeconf/nodeconf-cli/pkg/settings"
	"github.com/nodeconf/nodeconf-cli/pkg/store"
)

const (
	maxConfigBytes = 4 << 20
	// room for multipart boundaries and part headers
	maxFormOverhead = 64 << 10
)

// Server exposes config/show and config/replace for one backend.
type Server struct {
	backend store.Backend
	logger  *slog.Logger
	blocked bool
	router  *chi.Mux
}

// Option configures a Server.
type Option func(*Server)

// WithBlockedConfig makes every config call answer 403, the way a node
// does when its config API is locked down.
func WithBlockedConfig(blocked bool) Option {
	return func(s *Server) {
		s.blocked = blocked
	}
}

// New builds the router for backend.
func New(backend store.Backend, logger *slog.Logger, opts ...Option) *Server {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	s := &Server{
		backend: backend,
		logger:  logger,
	}
	for _, opt := range opts {
		opt(s)
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(s.requestLogger)

	r.Route("/api/v0/config", func(r chi.Router) {
		r.Use(s.guard)
		r.Post("/show", s.handleShow)
		r.Post("/replace", s.handleReplace)
	})

	s.router = r
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// ListenAndServe runs the API on addr until ctx is cancelled.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("node config API listening", "addr", addr, "backend", s.backend.Name())
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

func (s *Server) guard(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if s.blocked {
			writeError(w, http.StatusForbidden, "config API is blocked")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		s.logger.Debug("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"duration", time.Since(start),
			"request_id", middleware.GetReqID(r.Context()),
		)
	})
}

func (s *Server) handleShow(w http.ResponseWriter, r *http.Request) {
	data, err := s.backend.Read(r.Context())
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "no configuration")
			return
		}
		s.logger.Error("config show failed", "error", err)
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}

func (s *Server) handleReplace(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxConfigBytes+maxFormOverhead)
	if err := r.ParseMultipartForm(maxConfigBytes); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, http.StatusRequestEntityTooLarge, "config is too large")
			return
		}
		writeError(w, http.StatusBadRequest, "expected multipart form with a file field")
		return
	}
	file, _, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "missing file field")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxConfigBytes+1))
	if err != nil {
		writeError(w, http.StatusBadRequest, "failed to read config")
		return
	}
	if len(data) > maxConfigBytes {
		writeError(w, http.StatusRequestEntityTooLarge, "config is too large")
		return
	}
	if !settings.IsValid(string(data)) {
		writeError(w, http.StatusBadRequest, "config is not valid JSON")
		return
	}

	if err := s.backend.Write(r.Context(), data); err != nil {
		s.logger.Error("config replace failed", "error", err)
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.logger.Info("config replaced", "bytes", len(data))
	w.WriteHeader(http.StatusOK)
}

func writeError(w http.ResponseWriter, code int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]any{
		"Message": msg,
		"Code":    0,
		"Type":    "error",
	})
}
