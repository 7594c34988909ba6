package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/vanshika/costars/internal/domain"
)

// GraphStore is the persistence contract required by the bulk exporter.
type GraphStore interface {
	UpsertActors(ctx context.Context, records []domain.ActorRecord) error
}

// TaskError accumulates multiple errors produced during bulk export.
type TaskError struct {
	Errors []error
}

func (e *TaskError) Error() string {
	if len(e.Errors) == 0 {
		return "no errors"
	}
	if len(e.Errors) == 1 {
		return e.Errors[0].Error()
	}
	msg := "multiple errors:"
	for _, err := range e.Errors {
		msg += " " + err.Error() + ";"
	}
	return msg
}

// Unwrap exposes the collected errors to errors.Is and errors.As.
func (e *TaskError) Unwrap() []error {
	return e.Errors
}

func (e *TaskError) append(err error) {
	if err == nil {
		return
	}
	e.Errors = append(e.Errors, err)
}

func (e *TaskError) asError() error {
	if len(e.Errors) == 0 {
		return nil
	}
	return e
}

// BulkExporter writes actor records to a GraphStore in batches using a worker pool.
type BulkExporter struct {
	store     GraphStore
	workers   int
	batchSize int
}

// NewBulkExporter creates a new BulkExporter with the provided concurrency and batch size.
func NewBulkExporter(store GraphStore, workers, batchSize int) *BulkExporter {
	if workers <= 0 {
		workers = 4
	}
	if batchSize <= 0 {
		batchSize = 500
	}
	return &BulkExporter{
		store:     store,
		workers:   workers,
		batchSize: batchSize,
	}
}

// Export pushes one record per actor to the store, the last one when an actor
// is listed more than once. Batches run concurrently, so duplicates are resolved
// before batching. A failed batch does not stop the others, and all failures are
// reported in a TaskError.
func (be *BulkExporter) Export(ctx context.Context, records []domain.ActorRecord) error {
	batches := be.split(canonicalRecords(records))
	return be.run(ctx, len(batches), func(idx int) error {
		if err := be.store.UpsertActors(ctx, batches[idx]); err != nil {
			return fmt.Errorf("export batch %d: %w", idx, err)
		}
		return nil
	})
}

func (be *BulkExporter) split(records []domain.ActorRecord) [][]domain.ActorRecord {
	var batches [][]domain.ActorRecord
	for start := 0; start < len(records); start += be.batchSize {
		end := min(start+be.batchSize, len(records))
		batches = append(batches, records[start:end])
	}
	return batches
}

func (be *BulkExporter) run(ctx context.Context, total int, workerFn func(idx int) error) error {
	if total == 0 {
		return nil
	}
	indexCh := make(chan int)
	errCh := make(chan error, total)
	var wg sync.WaitGroup

	worker := func() {
		defer wg.Done()
		for idx := range indexCh {
			if err := workerFn(idx); err != nil {
				select {
				case errCh <- err:
				case <-ctx.Done():
					return
				}
			}
		}
	}

	for i := 0; i < be.workers; i++ {
		wg.Add(1)
		go worker()
	}

Loop:
	for i := 0; i < total; i++ {
		select {
		case indexCh <- i:
		case <-ctx.Done():
			break Loop
		}
	}
	close(indexCh)
	wg.Wait()
	close(errCh)

	if err := ctx.Err(); err != nil {
		return err
	}
	var taskErr TaskError
	for err := range errCh {
		if err == nil {
			continue
		}
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return err
		}
		taskErr.append(err)
	}
	return taskErr.asError()
}
