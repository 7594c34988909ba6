package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/vanshika/costars/internal/config"
	"github.com/vanshika/costars/internal/dataset"
	"github.com/vanshika/costars/internal/graph"
	"github.com/vanshika/costars/internal/logging"
	"github.com/vanshika/costars/internal/repository"
	"github.com/vanshika/costars/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	var (
		paths     = flag.String("dataset", strings.Join(cfg.Dataset.Paths, ","), "Comma separated dataset files (defaults to DATASET_PATHS)")
		workers   = flag.Int("workers", cfg.Export.Workers, "Number of concurrent export workers")
		batchSize = flag.Int("batch-size", cfg.Export.BatchSize, "Actors per write transaction")
	)
	flag.Parse()

	logger := logging.New(cfg.Logging).With("component", "export")

	files := splitPaths(*paths)
	if len(files) == 0 {
		logger.Error("no dataset files given", "error", config.ErrNoDataset)
		os.Exit(1)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	records, err := dataset.NewFileLoader(files...).LoadRecords(ctx)
	if err != nil {
		logger.Error("failed to load dataset", "error", err, "paths", files)
		os.Exit(1)
	}
	if len(records) == 0 {
		logger.Error("dataset empty", "paths", files)
		os.Exit(1)
	}

	graphClient, err := buildGraphClient(ctx, logger, cfg)
	if err != nil {
		logger.Error("failed to create graph client", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := graphClient.Close(context.Background()); err != nil {
			logger.Warn("closing graph client failed", "error", err)
		}
	}()

	repo := repository.New(graphClient)
	if err := repo.EnsureSchema(ctx); err != nil {
		logger.Error("failed to prepare schema", "error", err)
		os.Exit(1)
	}

	exporter := service.NewBulkExporter(repo, *workers, *batchSize)

	start := time.Now()
	logger.Info("exporting actors", "count", len(records), "workers", *workers, "batch_size", *batchSize)
	if err := exporter.Export(ctx, records); err != nil {
		logger.Error("export failed", "error", err)
		os.Exit(1)
	}

	stats, err := repo.CountGraph(ctx)
	if err != nil {
		logger.Warn("failed to count exported graph", "error", err)
	}
	logger.Info("export complete",
		"duration", time.Since(start).String(),
		"actors", stats.Actors,
		"movies", stats.Movies,
		"edges", stats.Edges,
	)
}

func splitPaths(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func buildGraphClient(ctx context.Context, logger *slog.Logger, cfg config.Config) (graph.Client, error) {
	if cfg.Graph.URI == "" {
		return nil, fmt.Errorf("GRAPH_URI is required for export")
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
		return nil, err
	}
	logger.Info("connected to graph", "uri", cfg.Graph.URI, "database", cfg.Graph.Database)
	return client, nil
}
