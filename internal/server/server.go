package server

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/vanshika/costars/internal/config"
)

const readHeaderTimeout = 5 * time.Second

// Server owns the HTTP listener of the costars API.
type Server struct {
	httpServer *http.Server
	logger     *slog.Logger
	cfg        config.HTTPConfig
}

// New builds a Server for handler using the timeouts in cfg.
func New(logger *slog.Logger, cfg config.HTTPConfig, handler http.Handler) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:              net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.Port)),
			Handler:           handler,
			ReadTimeout:       cfg.ReadTimeout,
			WriteTimeout:      cfg.WriteTimeout,
			IdleTimeout:       cfg.IdleTimeout,
			ReadHeaderTimeout: readHeaderTimeout,
		},
		logger: logger,
		cfg:    cfg,
	}
}

// Addr is the host:port the server listens on.
func (s *Server) Addr() string {
	return s.httpServer.Addr
}

// Start serves until Shutdown is called. A clean shutdown returns nil.
func (s *Server) Start() error {
	s.logger.Info("serving costars api",
		"addr", s.Addr(),
		"metrics_enabled", s.cfg.MetricsEnabled,
		"allowed_origins", s.cfg.AllowedOriginsCSV,
	)
	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown stops accepting connections and waits for in-flight queries until ctx expires.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down costars api", "addr", s.Addr())
	return s.httpServer.Shutdown(ctx)
}
