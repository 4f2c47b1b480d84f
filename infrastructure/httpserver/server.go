// Package httpserver serves the operator status endpoints and mounts the websocket transport.
package httpserver

import (
	"bot-lab/projection"
	"bot-lab/render"
	"context"
	"embed"
	"encoding/json"
	"errors"
	"html/template"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

//go:embed status.html
var templatesFS embed.FS

// Snapshotter provides the current status document.
type Snapshotter interface {
	Snapshot() projection.StatusSnapshot
}

type pageData struct {
	Status projection.StatusSnapshot
	Links  render.Links
}

type StatusServer struct {
	log        *slog.Logger
	status     Snapshotter
	links      render.Links
	tmpl       *template.Template
	router     chi.Router
	httpServer *http.Server
}

// NewStatusServer builds the router. transport is mounted on /ws when not nil.
func NewStatusServer(log *slog.Logger, status Snapshotter, links render.Links, transport http.Handler) *StatusServer {
	s := &StatusServer{
		log:    log,
		status: status,
		links:  links,
		tmpl:   template.Must(template.ParseFS(templatesFS, "status.html")),
	}
	s.router = s.buildRouter(transport)
	s.httpServer = &http.Server{
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       120 * time.Second,
	}
	return s
}

func (s *StatusServer) buildRouter(transport http.Handler) chi.Router {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.RequestLogger(&middleware.DefaultLogFormatter{
		Logger:  slog.NewLogLogger(s.log.Handler(), slog.LevelDebug),
		NoColor: true,
	}))
	r.Use(middleware.Recoverer)

	r.Group(func(r chi.Router) {
		r.Use(middleware.Timeout(10 * time.Second))
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: []string{"*"},
			AllowedMethods: []string{"GET", "OPTIONS"},
			AllowedHeaders: []string{"Accept", "Content-Type"},
			MaxAge:         300,
		}))
		r.Get("/health", s.handleHealth)
		r.Get("/", s.handlePage)
	})

	if transport != nil {
		r.Handle("/ws", transport)
	}
	return r
}

// Router returns the chi router for tests and additional routes.
func (s *StatusServer) Router() chi.Router { return s.router }

func (s *StatusServer) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(s.status.Snapshot()); err != nil {
		s.log.Warn("Unable to write health document", "err", err)
	}
}

func (s *StatusServer) handlePage(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	data := pageData{Status: s.status.Snapshot(), Links: s.links}
	if err := s.tmpl.Execute(w, data); err != nil {
		s.log.Warn("Unable to render status page", "err", err)
	}
}

// Serve blocks until the server is shut down. A clean shutdown returns nil.
func (s *StatusServer) Serve(listener net.Listener) error {
	if err := s.httpServer.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *StatusServer) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
