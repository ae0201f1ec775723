// Package http exposes machine sessions as a JSON API.
package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/aretw0/turing"
	"github.com/aretw0/turing/pkg/catalog"
	"github.com/aretw0/turing/pkg/session"
	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const maxStepsPerRequest = session.MaxStepsPerRequest

// Sessions is the subset of session.Manager used by the server.
type Sessions interface {
	Create(program string) (session.View, error)
	Get(ctx context.Context, id string) (session.View, error)
	Step(ctx context.Context, id string, n int) (session.View, error)
	Run(ctx context.Context, id string, maxSteps int) (session.View, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]session.View, error)
}

// Server serves the machine API.
type Server struct {
	Sessions Sessions
	Streams  *StreamManager
	logger   *slog.Logger
}

// Option configures the handler.
type Option func(*handlerConfig)

type handlerConfig struct {
	logger   *slog.Logger
	gatherer prometheus.Gatherer
}

// WithLogger sets the request logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *handlerConfig) {
		c.logger = logger
	}
}

// WithMetrics serves g on GET /metrics.
func WithMetrics(g prometheus.Gatherer) Option {
	return func(c *handlerConfig) {
		c.gatherer = g
	}
}

type createRequest struct {
	Program string `json:"program"`
}

// NewHandler creates a new HTTP handler for the sessions.
func NewHandler(sessions Sessions, opts ...Option) http.Handler {
	cfg := &handlerConfig{logger: slog.Default()}
	for _, opt := range opts {
		opt(cfg)
	}

	s := &Server{
		Sessions: sessions,
		Streams:  NewStreamManager(cfg.logger),
		logger:   cfg.logger,
	}

	r := chi.NewRouter()
	r.Get("/health", s.GetHealth)
	r.Get("/info", s.GetInfo)
	r.Get("/programs", s.ListPrograms)
	r.Get("/programs/{name}", s.GetProgram)

	r.Route("/machines", func(r chi.Router) {
		r.Get("/", s.ListMachines)
		r.Post("/", s.CreateMachine)
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", s.GetMachine)
			r.Delete("/", s.DeleteMachine)
			r.Post("/step", s.StepMachine)
			r.Post("/run", s.RunMachine)
			r.Get("/events", s.SubscribeEvents)
		})
	})

	if cfg.gatherer != nil {
		r.Handle("/metrics", promhttp.HandlerFor(cfg.gatherer, promhttp.HandlerOpts{}))
	}

	return enableCORS(r)
}

func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// GetHealth handles the GET /health request.
func (s *Server) GetHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// GetInfo handles the GET /info request.
func (s *Server) GetInfo(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{
		"app":     "turing-http",
		"version": strings.TrimSpace(turing.Version),
	})
}

// ListPrograms handles the GET /programs request.
func (s *Server) ListPrograms(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, catalog.All())
}

// GetProgram handles the GET /programs/{name} request.
func (s *Server) GetProgram(w http.ResponseWriter, r *http.Request) {
	p, err := catalog.Lookup(chi.URLParam(r, "name"))
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, p)
}

// ListMachines handles the GET /machines request.
func (s *Server) ListMachines(w http.ResponseWriter, r *http.Request) {
	views, err := s.Sessions.List(r.Context())
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, views)
}

// CreateMachine handles the POST /machines request.
// An empty body starts the default program.
func (s *Server) CreateMachine(w http.ResponseWriter, r *http.Request) {
	var body createRequest
	if r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			http.Error(w, "Invalid request body", http.StatusBadRequest)
			s.logger.Warn("CreateMachine: Invalid request body", "error", err)
			return
		}
	}
	if body.Program == "" {
		body.Program = catalog.Default
	}

	v, err := s.Sessions.Create(body.Program)
	if err != nil {
		s.writeError(w, err)
		return
	}
	w.Header().Set("Location", "/machines/"+v.ID)
	s.writeJSON(w, http.StatusCreated, v)
}

// GetMachine handles the GET /machines/{id} request.
func (s *Server) GetMachine(w http.ResponseWriter, r *http.Request) {
	v, err := s.Sessions.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, v)
}

// DeleteMachine handles the DELETE /machines/{id} request.
func (s *Server) DeleteMachine(w http.ResponseWriter, r *http.Request) {
	if err := s.Sessions.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		s.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// StepMachine handles the POST /machines/{id}/step?count=n request.
func (s *Server) StepMachine(w http.ResponseWriter, r *http.Request) {
	count, err := queryInt(r, "count", 1)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	v, err := s.Sessions.Step(r.Context(), chi.URLParam(r, "id"), count)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.broadcast(v)
	s.writeJSON(w, http.StatusOK, v)
}

// RunMachine handles the POST /machines/{id}/run?max=n request.
func (s *Server) RunMachine(w http.ResponseWriter, r *http.Request) {
	limit, err := queryInt(r, "max", maxStepsPerRequest)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	v, err := s.Sessions.Run(r.Context(), chi.URLParam(r, "id"), limit)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.broadcast(v)
	s.writeJSON(w, http.StatusOK, v)
}

func (s *Server) broadcast(v session.View) {
	bytes, err := json.Marshal(v)
	if err != nil {
		s.logger.Error("Broadcast encode failed", "error", err)
		return
	}
	s.Streams.Broadcast(v.ID, string(bytes))
}

func queryInt(r *http.Request, key string, def int) (int, error) {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return def, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 || n > maxStepsPerRequest {
		return 0, fmt.Errorf("invalid %s: must be an integer between 1 and %d", key, maxStepsPerRequest)
	}
	return n, nil
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("response encode failed", "error", err)
	}
}

func (s *Server) writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, session.ErrSessionNotFound), errors.Is(err, catalog.ErrProgramNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		http.Error(w, err.Error(), http.StatusServiceUnavailable)
	default:
		http.Error(w, err.Error(), http.StatusInternalServerError)
		s.logger.Error("request failed", "error", err)
	}
}
