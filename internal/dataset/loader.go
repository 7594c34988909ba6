package dataset

import (
	"context"
	"errors"
	"fmt"
	"os"

	"golang.org/x/sync/errgroup"

	"github.com/vanshika/costars/internal/domain"
)

// ErrNoPaths is returned when a loader has nothing to read.
var ErrNoPaths = errors.New("no dataset paths configured")

// FileLoader parses one or more dataset files. Files are read in parallel and the
// records are concatenated in path order, so later files override earlier ones.
type FileLoader struct {
	Paths []string
}

// NewFileLoader returns a loader for the given paths.
func NewFileLoader(paths ...string) *FileLoader {
	return &FileLoader{Paths: append([]string(nil), paths...)}
}

// LoadRecords reads every configured file.
func (l *FileLoader) LoadRecords(ctx context.Context) ([]domain.ActorRecord, error) {
	if len(l.Paths) == 0 {
		return nil, ErrNoPaths
	}

	perFile := make([][]domain.ActorRecord, len(l.Paths))
	g, gCtx := errgroup.WithContext(ctx)
	for i, path := range l.Paths {
		i, path := i, path
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}
			records, err := ParseFile(path)
			if err != nil {
				return err
			}
			perFile[i] = records
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	total := 0
	for _, recs := range perFile {
		total += len(recs)
	}
	records := make([]domain.ActorRecord, 0, total)
	for _, recs := range perFile {
		records = append(records, recs...)
	}
	return records, nil
}

// ParseFile opens and parses a single dataset file.
func ParseFile(path string) ([]domain.ActorRecord, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer file.Close()

	records, err := Parse(file)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return records, nil
}
