// Package server boots the HTTP application: configuration, database, cache,
// storage, middleware stack, routes.
package server

import (
	"context"
	"net/http"
	"time"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/shashiranjanraj/stocktracker/app/routes"
	"github.com/shashiranjanraj/stocktracker/app/services"
	"github.com/shashiranjanraj/stocktracker/app/views"
	"github.com/shashiranjanraj/stocktracker/config"
	"github.com/shashiranjanraj/stocktracker/pkg/cache"
	"github.com/shashiranjanraj/stocktracker/pkg/database"
	"github.com/shashiranjanraj/stocktracker/pkg/logger"
	"github.com/shashiranjanraj/stocktracker/pkg/metrics"
	"github.com/shashiranjanraj/stocktracker/pkg/middleware"
	"github.com/shashiranjanraj/stocktracker/pkg/reqid"
	"github.com/shashiranjanraj/stocktracker/pkg/router"
	"github.com/shashiranjanraj/stocktracker/pkg/schedule"
	"github.com/shashiranjanraj/stocktracker/pkg/session"
	"github.com/shashiranjanraj/stocktracker/pkg/storage"
)

// Server is the assembled application.
type Server struct {
	http     *http.Server
	router   *router.Router
	stopJobs context.CancelFunc
}

// New connects the backing services and builds the router. The Redis cache is
// optional: if it is unreachable the app still serves, just without caching
// or flash messages surviving a restart.
func New() (*Server, error) {
	if err := config.Load(); err != nil {
		return nil, err
	}

	if err := database.Connect(); err != nil {
		return nil, err
	}

	if err := cache.Connect(); err != nil {
		logger.Warn("redis unavailable, continuing without cache", "error", err)
	}

	storage.Connect()

	engine, err := views.Engine()
	if err != nil {
		return nil, err
	}

	r := router.New()
	r.Use(
		chimiddleware.StripSlashes,
		metrics.Middleware(),
		middleware.Recovery,
		reqid.Middleware(),
		middleware.Logger,
		session.Middleware(session.DefaultOptions()),
		middleware.CORS(middleware.DefaultCORSOptions()),
		middleware.RateLimit(300, time.Minute),
	)

	r.HandleFunc("/metrics", metrics.Handler())
	routes.Register(r, database.DB, engine)

	// Optional nightly CSV snapshot onto the default storage disk.
	if at := config.Get("EXPORT_SNAPSHOT_AT", ""); at != "" {
		exports := services.NewExportService(database.DB)
		disk := config.StorageDefault()
		schedule.DailyAt("export-snapshot", at, func() {
			for _, exportType := range []string{"products", "sales"} {
				if _, err := exports.Archive(exportType, disk); err != nil {
					logger.Error("export snapshot failed", "type", exportType, "error", err)
				}
			}
		})
	}

	srv := &http.Server{
		Addr:              ":" + config.AppPort(),
		Handler:           r.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	return &Server{http: srv, router: r}, nil
}

// Router exposes the route table for `stocktracker route:list`.
func (s *Server) Router() *router.Router { return s.router }

// Handler exposes the root handler for tests.
func (s *Server) Handler() http.Handler { return s.http.Handler }

// Start launches the background scheduler and serves until the listener
// fails or Shutdown is called.
func (s *Server) Start() error {
	jobCtx, cancel := context.WithCancel(context.Background())
	s.stopJobs = cancel
	schedule.Start(jobCtx)

	logger.Info("http server starting", "addr", s.http.Addr, "env", config.AppEnv())
	if err := s.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown stops the scheduler and drains in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	logger.Info("http server stopping")
	if s.stopJobs != nil {
		s.stopJobs()
	}
	return s.http.Shutdown(ctx)
}
