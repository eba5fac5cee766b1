package server

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/moeloubani/language-transfer-hub-sub000/internal/api"
	"github.com/moeloubani/language-transfer-hub-sub000/internal/comparison"
	"github.com/moeloubani/language-transfer-hub-sub000/internal/config"
	"github.com/moeloubani/language-transfer-hub-sub000/internal/web"
)

// Server hosts the comparison UI and JSON API.
type Server struct {
	cfg        *config.Config
	registry   atomic.Pointer[comparison.Registry]
	router     chi.Router
	httpServer *http.Server
	reload     *reloadHub
	watcher    *datasetWatcher
}

// New creates a server around the given registry. The registry is held
// behind an atomic pointer so the dev-mode dataset watcher can swap in a
// freshly loaded table without interrupting in-flight requests.
func New(cfg *config.Config, reg *comparison.Registry) (*Server, error) {
	s := &Server{cfg: cfg}
	s.registry.Store(reg)

	liveReload := cfg.LiveReload && cfg.DataDir != ""
	if liveReload {
		s.reload = newReloadHub()
	}

	webHandler, err := web.NewHandler(s.Registry, cfg, liveReload)
	if err != nil {
		return nil, fmt.Errorf("creating web handler: %w", err)
	}

	s.router = s.buildRouter(webHandler)

	if liveReload {
		w, err := watchDataset(cfg.DataDir, s.swapRegistry)
		if err != nil {
			return nil, fmt.Errorf("watching %s: %w", cfg.DataDir, err)
		}
		s.watcher = w
	}

	return s, nil
}

// Registry returns the currently active registry.
func (s *Server) Registry() *comparison.Registry {
	return s.registry.Load()
}

// Router returns the chi router, mainly for tests.
func (s *Server) Router() chi.Router { return s.router }

func (s *Server) buildRouter(webHandler *web.Handler) chi.Router {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))

	// CORS
	corsOpts := cors.Options{
		AllowedOrigins: []string{"http://localhost:*", "http://127.0.0.1:*"},
		AllowedMethods: []string{"GET", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}
	if s.cfg.AllowAllOrigins {
		corsOpts.AllowedOrigins = []string{"*"}
	}
	r.Use(cors.Handler(corsOpts))

	// Health check
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok"}`))
	})

	api.RegisterRoutes(r, s.Registry)
	webHandler.RegisterRoutes(r)

	if s.reload != nil {
		r.Get("/ws/reload", s.reload.handleWS)
	}

	return r
}

// swapRegistry reloads the dataset directory and, on success, makes the
// new table live and tells connected pages to refresh. A dataset that
// fails to load leaves the previous table in place.
func (s *Server) swapRegistry(reg *comparison.Registry, err error) {
	if err != nil {
		log.Printf("server: dataset reload failed, keeping previous dataset: %v", err)
		return
	}
	s.registry.Store(reg)
	log.Printf("server: dataset reloaded (%d pairs)", reg.Len())
	if s.reload != nil {
		s.reload.Broadcast()
	}
}

// Start begins listening on the configured port.
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.cfg.Port)
	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	log.Printf("langhub serving on http://localhost:%d", s.cfg.Port)
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully stops the server and the dataset watcher.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.watcher != nil {
		s.watcher.Close()
	}
	if s.httpServer != nil {
		return s.httpServer.Shutdown(ctx)
	}
	return nil
}
