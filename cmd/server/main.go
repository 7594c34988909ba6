package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/vanshika/costars/internal/config"
	"github.com/vanshika/costars/internal/dataset"
	"github.com/vanshika/costars/internal/graph"
	"github.com/vanshika/costars/internal/logging"
	"github.com/vanshika/costars/internal/metrics"
	"github.com/vanshika/costars/internal/reload"
	"github.com/vanshika/costars/internal/server"
	"github.com/vanshika/costars/internal/service"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}
	if err := cfg.RequireDataset(); err != nil {
		fmt.Fprintf(os.Stderr, "invalid config: %v\n", err)
		os.Exit(1)
	}

	logger := logging.New(cfg.Logging)

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	observer := metrics.New(registry)

	loader := dataset.NewFileLoader(cfg.Dataset.Paths...)
	connections := service.NewConnectionService(loader, observer, logger.With("component", "service"))
	if _, err := connections.Load(ctx); err != nil {
		logger.Error("initial dataset load failed", "error", err, "paths", cfg.Dataset.Paths)
		os.Exit(1)
	}

	if cfg.Dataset.Watch {
		watcher, err := reload.New(cfg.Dataset.Paths, cfg.Dataset.Debounce, func(ctx context.Context) error {
			_, err := connections.Load(ctx)
			return err
		}, logger.With("component", "reload"))
		if err != nil {
			logger.Error("failed to watch dataset", "error", err)
			os.Exit(1)
		}
		go func() {
			if err := watcher.Run(ctx); err != nil {
				logger.Error("dataset watcher stopped", "error", err)
			}
		}()
	}

	health := server.HealthChecks{server.DatasetHealthService{Service: connections}}
	graphClient := buildGraphClient(ctx, logger, cfg)
	if graphClient != nil {
		health = append(health, server.GraphHealthService{Client: graphClient})
		defer func() {
			if err := graphClient.Close(context.Background()); err != nil {
				logger.Warn("closing graph client failed", "error", err)
			}
		}()
	}

	deps := server.RouterDependencies{
		Health:           health,
		API:              server.NewAPIHandlers(logger, connections),
		Observer:         observer,
		AllowedOrigins:   parseAllowedOrigins(cfg.HTTP.AllowedOriginsCSV),
		AllowCredentials: true,
	}
	if cfg.HTTP.MetricsEnabled {
		deps.Metrics = promhttp.HandlerFor(registry, promhttp.HandlerOpts{Registry: registry})
	}
	srv := server.New(logger, cfg.HTTP, server.NewRouter(logger, deps))

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	select {
	case <-ctx.Done():
		logger.Info("received shutdown signal")
	case err := <-errCh:
		if err != nil && !errors.Is(err, context.Canceled) {
			logger.Error("server stopped unexpectedly", "error", err)
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", "error", err)
	}
}

// buildGraphClient connects to the optional graph database. The API serves from
// memory, so a missing or unreachable database only degrades the health probe.
func buildGraphClient(ctx context.Context, logger *slog.Logger, cfg config.Config) graph.Client {
	if cfg.Graph.URI == "" {
		return nil
	}

	opts := graph.Options{
		URI:            cfg.Graph.URI,
		Database:       cfg.Graph.Database,
		Username:       cfg.Graph.Username,
		Password:       cfg.Graph.Password,
		MaxConnections: cfg.Graph.MaxConnections,
	}
	client, err := graph.NewNeo4jClient(ctx, opts)
	if err != nil {
		logger.Warn("graph database unavailable", "error", err, "uri", cfg.Graph.URI)
		return nil
	}
	return client
}

func parseAllowedOrigins(csv string) []string {
	if csv == "" {
		return nil
	}
	parts := strings.Split(csv, ",")
	var origins []string
	for _, part := range parts {
		origin := strings.TrimSpace(part)
		if origin == "" {
			continue
		}
		origins = append(origins, origin)
	}
	return origins
}
