// Package server exposes workbook upload and table query endpoints.
package server

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/knakagawa/capscan-go/internal/store"
)

// Server answers upload and table query requests against an injected
// workbook store.
type Server struct {
	router         *chi.Mux
	store          store.Store
	maxUploadBytes int64
}

// New creates a Server backed by st. maxUploadBytes caps upload size.
func New(st store.Store, maxUploadBytes int64) *Server {
	s := &Server{
		router:         chi.NewRouter(),
		store:          st,
		maxUploadBytes: maxUploadBytes,
	}
	s.setupMiddleware()
	s.setupRoutes()
	return s
}

func (s *Server) setupMiddleware() {
	s.router.Use(middleware.Logger)
	s.router.Use(middleware.Recoverer)
}

func (s *Server) setupRoutes() {
	s.router.Post("/uploadfile", s.handleUpload)
	s.router.Get("/list_tables", s.handleListTables)
	s.router.Get("/get_table_details", s.handleTableDetails)
	s.router.Get("/row_value", s.handleRowValue)
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, map[string]string{"detail": detail})
}
