package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vanshika/costars/internal/config"
	"github.com/vanshika/costars/internal/dataset"
	"github.com/vanshika/costars/internal/domain"
	"github.com/vanshika/costars/internal/graph"
	"github.com/vanshika/costars/internal/logging"
	"github.com/vanshika/costars/internal/report"
	"github.com/vanshika/costars/internal/repository"
	"github.com/vanshika/costars/internal/service"
)

const (
	backendMemory = "memory"
	backendNeo4j  = "neo4j"
)

// app carries the state shared by every subcommand once the root pre-run has resolved it.
type app struct {
	dataPaths []string
	logLevel  string

	cfg    config.Config
	logger *slog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:           "costars",
		Short:         "Find how two actors are connected through the movies they appeared in",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init(cmd)
		},
	}
	rootCmd.PersistentFlags().StringSliceVar(&a.dataPaths, "data", nil, "dataset files to load (defaults to DATASET_PATHS)")
	rootCmd.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn or error")

	rootCmd.AddCommand(
		a.newPathCmd(),
		a.newMoviesCmd(),
		a.newCastCmd(),
		a.newCoStarsCmd(),
		a.newStatsCmd(),
	)
	return rootCmd
}

func (a *app) init(cmd *cobra.Command) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if len(a.dataPaths) > 0 {
		cfg.Dataset.Paths = a.dataPaths
	}
	if a.logLevel != "" {
		cfg.Logging.Level = strings.ToLower(a.logLevel)
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("invalid --log-level %q: %w", a.logLevel, err)
		}
	}
	a.cfg = cfg
	a.logger = logging.NewWithWriter(cfg.Logging, cmd.ErrOrStderr()).With("component", "cli")
	return nil
}

// connections loads the configured dataset into a fresh service.
func (a *app) connections(ctx context.Context) (*service.ConnectionService, error) {
	if err := a.cfg.RequireDataset(); err != nil {
		return nil, err
	}
	svc := service.NewConnectionService(dataset.NewFileLoader(a.cfg.Dataset.Paths...), nil, a.logger)
	if _, err := svc.Load(ctx); err != nil {
		return nil, err
	}
	return svc, nil
}

func (a *app) repository(ctx context.Context) (*repository.Repository, func(), error) {
	if a.cfg.Graph.URI == "" {
		return nil, nil, graph.ErrMissingURI
	}
	client, err := graph.NewNeo4jClient(ctx, graph.Options{
		URI:            a.cfg.Graph.URI,
		Database:       a.cfg.Graph.Database,
		Username:       a.cfg.Graph.Username,
		Password:       a.cfg.Graph.Password,
		MaxConnections: a.cfg.Graph.MaxConnections,
	})
	if err != nil {
		return nil, nil, err
	}
	closeFn := func() {
		if err := client.Close(context.Background()); err != nil {
			a.logger.Warn("closing graph client failed", "error", err)
		}
	}
	return repository.New(client).WithMaxDegrees(a.cfg.Graph.MaxDegrees), closeFn, nil
}

func (a *app) newPathCmd() *cobra.Command {
	var (
		asJSON  bool
		backend string
	)
	cmd := &cobra.Command{
		Use:   "path FROM TO",
		Short: "Print the shortest chain of movies linking two actors",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			var (
				res domain.PathResult
				err error
			)
			switch backend {
			case backendMemory:
				svc, loadErr := a.connections(ctx)
				if loadErr != nil {
					return loadErr
				}
				res, err = svc.FindConnection(ctx, args[0], args[1])
			case backendNeo4j:
				repo, closeFn, connErr := a.repository(ctx)
				if connErr != nil {
					return connErr
				}
				defer closeFn()
				res, err = repo.ShortestPathBetweenActors(ctx, args[0], args[1])
			default:
				return fmt.Errorf("unknown backend %q", backend)
			}
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if asJSON {
				err = writeJSON(out, report.View(res))
			} else {
				err = report.WriteText(out, res)
			}
			if err != nil {
				return err
			}
			if res.Status == domain.PathNotFound {
				return res.Err()
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the result as JSON")
	cmd.Flags().StringVar(&backend, "backend", backendMemory, "where to search: memory or neo4j")
	return cmd
}

func (a *app) newMoviesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "movies NAME",
		Short: "List the movies an actor appeared in",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := a.connections(cmd.Context())
			if err != nil {
				return err
			}
			movies, err := svc.MoviesOf(args[0])
			if err != nil {
				return err
			}
			return writeLines(cmd.OutOrStdout(), movies)
		},
	}
}

func (a *app) newCastCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "cast TITLE",
		Short: "List the actors who appeared in a movie",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := a.connections(cmd.Context())
			if err != nil {
				return err
			}
			actors, err := svc.ActorsOf(args[0])
			if err != nil {
				return err
			}
			return writeLines(cmd.OutOrStdout(), actors)
		},
	}
}

func (a *app) newCoStarsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "costars NAME",
		Short: "List everyone who shared a movie with an actor",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := a.connections(cmd.Context())
			if err != nil {
				return err
			}
			costars, err := svc.CoStars(args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, c := range costars {
				if _, err := fmt.Fprintf(out, "%s\t%s\n", c.Actor, strings.Join(c.Movies, "; ")); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

func (a *app) newStatsCmd() *cobra.Command {
	var backend string
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Print the size of the connection graph",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			var (
				stats domain.GraphStats
				err   error
			)
			switch backend {
			case backendMemory:
				svc, loadErr := a.connections(ctx)
				if loadErr != nil {
					return loadErr
				}
				stats, err = svc.Stats()
			case backendNeo4j:
				repo, closeFn, connErr := a.repository(ctx)
				if connErr != nil {
					return connErr
				}
				defer closeFn()
				stats, err = repo.CountGraph(ctx)
			default:
				return fmt.Errorf("unknown backend %q", backend)
			}
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "actors: %d\nmovies: %d\nedges: %d\n", stats.Actors, stats.Movies, stats.Edges)
			return err
		},
	}
	cmd.Flags().StringVar(&backend, "backend", backendMemory, "where to count: memory or neo4j")
	return cmd
}

func writeLines(w io.Writer, lines []string) error {
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
