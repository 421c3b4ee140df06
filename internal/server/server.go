package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"onebuttonprompt/internal/config"
	"onebuttonprompt/internal/core"
	"onebuttonprompt/internal/metrics"
	"onebuttonprompt/internal/registry"

	"github.com/gin-gonic/gin"
)

// Server application server
type Server struct {
	port    string
	ginMode string

	router *gin.Engine

	models         *registry.Registry
	legacy         *registry.Registry
	metricsService *metrics.MetricsService

	config config.ServerConfig

	rateLimiter *clientLimiter

	shutdownCtx    context.Context
	shutdownCancel context.CancelFunc
}

// NewServer creates a new server serving the models in reg.
func NewServer(cfg config.ServerConfig, reg *registry.Registry) (*Server, error) {
	if cfg.Logger == nil {
		return nil, fmt.Errorf("logger is required in ServerConfig")
	}
	if cfg.Storage == nil {
		return nil, fmt.Errorf("storage is required in ServerConfig")
	}
	if reg == nil {
		return nil, fmt.Errorf("model registry is required")
	}

	cfg.Logger.Info("Initializing server with models %v", reg.Keys())

	metricsService := metrics.NewMetricsService(metrics.MetricsConfig{
		SaveInterval: core.MinSaveInterval,
		HistorySize:  core.HistoryBufferSize,
		Storage:      cfg.Storage,
		Logger:       cfg.Logger,
	})

	if err := metricsService.LoadStats(); err != nil {
		cfg.Logger.Warn("Failed to load historical stats: %v", err)
	}

	shutdownCtx, shutdownCancel := context.WithCancel(context.Background())

	server := &Server{
		port:           cfg.Port,
		ginMode:        cfg.GinMode,
		models:         reg,
		legacy:         registry.NewLegacy(registry.WithLogger(cfg.Logger)),
		metricsService: metricsService,
		config:         cfg,
		shutdownCtx:    shutdownCtx,
		shutdownCancel: shutdownCancel,
	}

	if cfg.RateLimit > 0 {
		server.rateLimiter = newClientLimiter(shutdownCtx, cfg.RateLimit, cfg.RateBurst)
	}

	server.setupRoutes()

	return server, nil
}

// Handler exposes the router, mainly for tests and embedding.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Run serves until SIGINT/SIGTERM or Close.
func (s *Server) Run() error {
	s.setupGracefulShutdown()

	srv := &http.Server{
		Addr:              ":" + s.port,
		Handler:           s.router,
		ReadHeaderTimeout: core.ServerReadHeaderTimeout,
		ReadTimeout:       core.ServerReadTimeout,
		WriteTimeout:      core.ServerWriteTimeout,
	}

	go func() {
		<-s.shutdownCtx.Done()
		ctx, cancel := context.WithTimeout(context.Background(), core.ServerShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			s.config.Logger.Error("Server shutdown error: %v", err)
		}
	}()

	s.config.Logger.Info("Server starting on port %s", s.port)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}

func (s *Server) setupGracefulShutdown() {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		select {
		case <-quit:
			s.config.Logger.Info("Shutdown signal received, shutting down gracefully...")
			s.shutdownCancel()
		case <-s.shutdownCtx.Done():
		}
		signal.Stop(quit)
	}()
}

// Close stops background work and flushes metrics.
func (s *Server) Close() error {
	if s.shutdownCancel != nil {
		s.shutdownCancel()
	}

	var closeErr error

	if s.metricsService != nil {
		if err := s.metricsService.Close(); err != nil {
			closeErr = errors.Join(closeErr, fmt.Errorf("close metrics service: %w", err))
		}
	}

	return closeErr
}

// Shutdown implements do.Shutdownable.
func (s *Server) Shutdown() error {
	return s.Close()
}
