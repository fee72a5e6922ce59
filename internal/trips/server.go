package trips

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/mux"
)

// Catalog is the read side of the trip store used by the HTTP server.
type Catalog interface {
	List(ctx context.Context, category string) ([]Trip, error)
	Get(ctx context.Context, id string) (Trip, error)
}

// Server serves the trip catalog as JSON.
type Server struct {
	catalog Catalog
	logger  *slog.Logger
	router  *mux.Router
}

// errorResponse is the JSON body of every non-2xx response.
type errorResponse struct {
	Error string `json:"error"`
}

// NewServer creates a Server and registers its routes.
func NewServer(catalog Catalog, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Server{
		catalog: catalog,
		logger:  logger,
		router:  mux.NewRouter(),
	}

	s.router.HandleFunc("/api/trips", s.handleList).Methods(http.MethodGet)
	s.router.HandleFunc("/api/trips/{id}", s.handleGet).Methods(http.MethodGet)
	s.router.HandleFunc("/healthz", s.handleHealth).Methods(http.MethodGet)
	s.router.NotFoundHandler = http.HandlerFunc(handleNotFound)
	s.router.MethodNotAllowedHandler = http.HandlerFunc(handleMethodNotAllowed)
	s.router.Use(s.logRequests)

	return s
}

// Handler returns the root HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.router
}

// handleList serves GET /api/trips?category=...
func (s *Server) handleList(w http.ResponseWriter, r *http.Request) {
	list, err := s.catalog.List(r.Context(), r.URL.Query().Get("category"))
	if err != nil {
		s.logger.Error("list trips failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "failed to list trips"})
		return
	}
	writeJSON(w, http.StatusOK, list)
}

// handleGet serves GET /api/trips/{id}
func (s *Server) handleGet(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	trip, err := s.catalog.Get(r.Context(), id)
	if errors.Is(err, ErrNotFound) {
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "trip not found"})
		return
	}
	if err != nil {
		s.logger.Error("get trip failed", "id", id, "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "failed to get trip"})
		return
	}
	writeJSON(w, http.StatusOK, trip)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func handleNotFound(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusNotFound, errorResponse{Error: "not found"})
}

func handleMethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusMethodNotAllowed, errorResponse{Error: "method " + r.Method + " not allowed"})
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		s.logger.Debug("http request",
			"method", r.Method,
			"path", r.URL.Path,
			"duration", time.Since(start),
		)
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
