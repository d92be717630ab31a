// Package ui serves the JSON API over loaded dataset sessions.
package ui

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"time"

	"gocsvlab/adapters/export"
	"gocsvlab/internal"
	"gocsvlab/internal/metrics"
	"gocsvlab/internal/session"
	"gocsvlab/ports"
	"gocsvlab/ui/middleware"

	"github.com/gin-gonic/gin"
)

// DefaultMaxUploadBytes bounds multipart uploads when Options leaves it unset
const DefaultMaxUploadBytes = 32 << 20

// Options carries the server's collaborators
type Options struct {
	Store          session.Store
	Loader         ports.LoaderPort
	Profiler       ports.ProfilerPort
	Exporters      *export.Registry
	Metrics        *metrics.Metrics
	Logger         *internal.Logger
	MaxUploadBytes int64
}

// Server is the HTTP API
type Server struct {
	router    *gin.Engine
	store     session.Store
	loader    ports.LoaderPort
	profiler  ports.ProfilerPort
	exporters *export.Registry
	metrics   *metrics.Metrics
	logger    *internal.Logger
	maxUpload int64

	mu   sync.Mutex
	http *http.Server
}

// NewServer creates the server and registers its routes
func NewServer(opts Options) *Server {
	if opts.Logger == nil {
		opts.Logger = internal.DefaultLogger
	}
	if opts.MaxUploadBytes <= 0 {
		opts.MaxUploadBytes = DefaultMaxUploadBytes
	}
	if opts.Exporters == nil {
		opts.Exporters = export.NewRegistry(export.ReportOptions{})
	}

	s := &Server{
		router:    gin.New(),
		store:     opts.Store,
		loader:    opts.Loader,
		profiler:  opts.Profiler,
		exporters: opts.Exporters,
		metrics:   opts.Metrics,
		logger:    opts.Logger,
		maxUpload: opts.MaxUploadBytes,
	}
	s.router.MaxMultipartMemory = opts.MaxUploadBytes
	s.setupMiddleware()
	s.setupRoutes()
	return s
}

func (s *Server) setupMiddleware() {
	s.router.Use(gin.Recovery())
	s.router.Use(middleware.RequestLogger(s.logger))
}

func (s *Server) setupRoutes() {
	s.router.GET("/healthz", s.handleHealth)
	if s.metrics != nil {
		s.router.GET("/metrics", gin.WrapH(s.metrics.Handler()))
	}

	api := s.router.Group("/api")
	api.POST("/sessions", s.handleCreateSession)
	api.GET("/operators", s.handleListOperators)

	sessions := api.Group("/sessions/:id", middleware.LoadSession(s.store))
	sessions.GET("", s.handleGetSession)
	sessions.DELETE("", s.handleDeleteSession)
	sessions.GET("/rows", s.handleRows)
	sessions.POST("/transformations", s.handleApplyTransformation)
	sessions.POST("/undo", s.handleUndo)
	sessions.POST("/redo", s.handleRedo)
	sessions.GET("/history", s.handleHistory)
	sessions.GET("/export/:format", s.handleExport)
	sessions.GET("/charts", s.handleChart)
	sessions.GET("/charts/recommendations", s.handleRecommendations)
	sessions.GET("/correlations", s.handleCorrelations)
}

// Handler exposes the router, mainly for tests
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start listens on addr until Shutdown is called
func (s *Server) Start(addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	s.mu.Lock()
	s.http = srv
	s.mu.Unlock()

	s.logger.Info("[Server] listening on %s", addr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown stops accepting requests and waits for in-flight ones
func (s *Server) Shutdown(ctx context.Context) error {
	s.mu.Lock()
	srv := s.http
	s.mu.Unlock()
	if srv == nil {
		return nil
	}
	s.logger.Info("[Server] shutting down")
	return srv.Shutdown(ctx)
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":   "ok",
		"sessions": s.store.Len(),
	})
}
