// cmd/server/server.go
package main

import (
	"fmt"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/codr1/bizpulse/internal/api"
	"github.com/codr1/bizpulse/internal/api/dashboard"
	"github.com/codr1/bizpulse/internal/api/locations"
	"github.com/codr1/bizpulse/internal/api/nav"
	"github.com/codr1/bizpulse/internal/catalog"
	"github.com/codr1/bizpulse/internal/config"
	"github.com/codr1/bizpulse/internal/metrics"
	"github.com/codr1/bizpulse/internal/ratelimit"
	"github.com/codr1/bizpulse/internal/scheduler"
)

// newServer wires the handlers for cfg. The returned cleanup stops
// background work and is safe to call more than once.
func newServer(cfg *config.Config) (*http.Server, func(), error) {
	provider, err := newProvider(cfg.Catalog)
	if err != nil {
		return nil, nil, err
	}

	var stops []func()
	cleanup := func() {
		for _, stop := range stops {
			stop()
		}
	}

	if reloader, ok := provider.(*catalog.Reloading); ok {
		sched, err := scheduler.New()
		if err != nil {
			return nil, nil, fmt.Errorf("create scheduler: %w", err)
		}
		if err := scheduler.RegisterCatalogReload(sched, cfg.Catalog.ReloadCron, reloader); err != nil {
			_ = sched.Stop()
			return nil, nil, err
		}
		sched.Start()
		stops = append(stops, func() {
			if err := sched.Stop(); err != nil {
				log.Error().Err(err).Msg("Failed to stop scheduler")
			}
		})
	}

	palette := cfg.Palette()
	dashboard.InitHandlers(provider, palette)
	locations.InitHandlers(provider, palette)
	nav.InitHandlers(provider)

	router := http.NewServeMux()
	registerRoutes(router, cfg)

	middleware := []api.Middleware{
		api.WithMetrics,
		api.WithLogging,
		api.WithRecovery,
	}
	if cfg.RateLimit.Enabled {
		limiter := ratelimit.New(&ratelimit.Config{
			RequestsPerSecond: cfg.RateLimit.RequestsPerSecond,
			Burst:             cfg.RateLimit.Burst,
		})
		stops = append(stops, limiter.Close)
		middleware = append(middleware, api.WithRateLimit(limiter, cfg.RateLimit.TrustProxy))
	}
	middleware = append(middleware, api.WithRequestID, api.WithContentType)

	return &http.Server{
		Addr:         ":" + strconv.Itoa(cfg.App.Port),
		Handler:      api.ChainMiddleware(router, middleware...),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}, cleanup, nil
}

func newProvider(cfg config.CatalogConfig) (catalog.Provider, error) {
	switch cfg.Source {
	case config.CatalogSourceFile:
		if cfg.ReloadCron != "" {
			provider, err := catalog.NewReloading(cfg.Path)
			if err != nil {
				return nil, fmt.Errorf("load catalog: %w", err)
			}
			return provider, nil
		}
		provider, err := catalog.LoadFile(cfg.Path)
		if err != nil {
			return nil, fmt.Errorf("load catalog: %w", err)
		}
		return provider, nil
	case config.CatalogSourceStatic, "":
		return catalog.NewStatic(), nil
	default:
		return nil, fmt.Errorf("unsupported catalog source: %s", cfg.Source)
	}
}

func registerRoutes(mux *http.ServeMux, cfg *config.Config) {
	// Pages
	mux.HandleFunc("GET /{$}", dashboard.HandleDashboardPage)
	mux.HandleFunc("GET /location/{id}", locations.HandleLocationPage)
	mux.HandleFunc("GET /location/{id}/export.xlsx", locations.HandleLocationExport)

	// Health check
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Dashboard partials
	mux.HandleFunc("GET /api/v1/dashboard/locations", dashboard.HandleLocationPerformance)

	// Navigation routes
	mux.HandleFunc("GET /api/v1/nav/menu", nav.HandleMenu)
	mux.HandleFunc("GET /api/v1/nav/menu/close", nav.HandleMenuClose)
	mux.HandleFunc("GET /api/v1/nav/search", nav.HandleSearch)

	if cfg.Features.EnableMetrics {
		metrics.Register()
		mux.Handle("GET /metrics", metrics.Handler())
	}

	// Static file handling with logging and environment awareness
	staticDir := os.Getenv("STATIC_DIR")
	if staticDir == "" {
		// Default to the build directory if not specified
		staticDir = "build/bin/static"
	}
	fs := http.FileServer(http.Dir(staticDir))

	mux.Handle("/static/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log.Debug().
			Str("path", r.URL.Path).
			Str("method", r.Method).
			Str("static_dir", staticDir).
			Msg("Static file request")
		http.StripPrefix("/static/", fs).ServeHTTP(w, r)
	}))

	// Everything else
	mux.HandleFunc("/", dashboard.HandleNotFound)
}
