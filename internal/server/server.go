package server

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/harutok/practiceshare/internal/bootstrap"
	"github.com/harutok/practiceshare/internal/config"
)

// Server represents the API server
type Server struct {
	router *gin.Engine
	dbPool *pgxpool.Pool
	deps   *bootstrap.Dependencies
	config *config.Config
	logger zerolog.Logger
	http   *http.Server
}

// NewServer creates and configures a new server instance
func NewServer() (*Server, error) {
	cfg, lgr, err := bootstrap.LoadConfigAndSetupLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	dbPool, err := bootstrap.SetupDatabase(cfg, lgr)
	if err != nil {
		return nil, fmt.Errorf("failed to setup database: %w", err)
	}

	deps, err := bootstrap.BuildDependencies(cfg, dbPool, lgr)
	if err != nil {
		dbPool.Close()
		return nil, fmt.Errorf("failed to build dependencies: %w", err)
	}

	router := bootstrap.SetupRouter(cfg, deps, lgr)

	server := &Server{
		router: router,
		dbPool: dbPool,
		deps:   deps,
		config: cfg,
		logger: lgr,
	}
	server.setupStaticFileServing()

	return server, nil
}

// setupStaticFileServing exposes uploaded files over /uploads.
func (s *Server) setupStaticFileServing() {
	s.router.Static("/uploads", s.config.Server.StoragePath)
	s.logger.Info().Str("path", s.config.Server.StoragePath).Msg("Serving static files from storage path")
}

// Run starts the HTTP server and blocks until shutdown
func (s *Server) Run() error {
	s.http = &http.Server{
		Addr:    ":" + s.config.Server.Port,
		Handler: s.router,
	}

	serverErrors := make(chan error, 1)
	go func() {
		s.logger.Info().Str("port", s.config.Server.Port).Msg("Starting API server")
		serverErrors <- s.http.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("server error: %w", err)
		}
	case sig := <-shutdown:
		s.logger.Info().Str("signal", sig.String()).Msg("Shutdown signal received")
		if err := s.Shutdown(); err != nil {
			return err
		}
	}

	return nil
}

// Shutdown gracefully stops the server and releases resources
func (s *Server) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := s.http.Shutdown(ctx); err != nil {
		s.logger.Error().Err(err).Msg("Graceful shutdown failed, forcing close")
		if closeErr := s.http.Close(); closeErr != nil {
			return fmt.Errorf("could not stop server: %w", closeErr)
		}
	}

	if s.deps.Redis != nil {
		if err := s.deps.Redis.Close(); err != nil {
			s.logger.Warn().Err(err).Msg("Failed to close redis client")
		}
	}

	s.dbPool.Close()
	s.logger.Info().Msg("Server stopped")
	return nil
}
