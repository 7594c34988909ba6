package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/vanshika/costars/internal/dataset"
	"github.com/vanshika/costars/internal/generator"
)

func main() {
	cfg := generator.DefaultConfig()
	var (
		actors      = flag.Int("actors", cfg.NumActors, "number of actors to generate")
		movies      = flag.Int("movies", cfg.NumMovies, "number of movies to generate")
		minCast     = flag.Int("min-cast", cfg.MinCast, "smallest cast per movie")
		maxCast     = flag.Int("max-cast", cfg.MaxCast, "largest cast per movie")
		starChance  = flag.Float64("star-chance", cfg.StarChance, "probability that a cast slot goes to a prolific actor")
		seed        = flag.Int64("seed", cfg.Seed, "random seed for deterministic generation")
		output      = flag.String("output", "data/movies.txt", "file to write the dataset to")
		wrap        = flag.Int("wrap", 200, "split records longer than this many bytes onto continuation lines (0 disables)")
		writeStdout = flag.Bool("stdout", false, "write the dataset to stdout instead of a file")
	)
	flag.Parse()

	genCfg := generator.Config{
		NumActors:  *actors,
		NumMovies:  *movies,
		MinCast:    *minCast,
		MaxCast:    *maxCast,
		StarChance: clampProbability(*starChance),
		Seed:       *seed,
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	gen := generator.New(genCfg)
	records, err := gen.Generate(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "generation failed: %v\n", err)
		os.Exit(1)
	}

	if *writeStdout {
		if err := dataset.Write(os.Stdout, records, *wrap); err != nil {
			fmt.Fprintf(os.Stderr, "failed to write dataset to stdout: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := generator.WriteDataset(records, *output, *wrap); err != nil {
		fmt.Fprintf(os.Stderr, "failed to write dataset: %v\n", err)
		os.Exit(1)
	}

	fmt.Fprintf(os.Stdout, "Generated %d actors across %d movies into %s\n", len(records), gen.Config().NumMovies, *output)
}

func clampProbability(value float64) float64 {
	if value < 0 {
		return 0
	}
	if value > 1 {
		return 1
	}
	return value
}
