package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/vanshika/costars/internal/domain"
)

type stubStore struct {
	mu      sync.Mutex
	batches [][]domain.ActorRecord
	failOn  map[string]error
}

func (s *stubStore) UpsertActors(ctx context.Context, records []domain.ActorRecord) error {
	for _, rec := range records {
		if err, ok := s.failOn[rec.Name]; ok {
			return err
		}
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.batches = append(s.batches, records)
	return nil
}

func manyRecords(n int) []domain.ActorRecord {
	records := make([]domain.ActorRecord, 0, n)
	for i := 0; i < n; i++ {
		records = append(records, domain.ActorRecord{Name: fmt.Sprintf("Actor %d", i), Movies: []string{"Movie"}})
	}
	return records
}

func TestBulkExporter_BatchesEveryRecord(t *testing.T) {
	store := &stubStore{}
	exporter := NewBulkExporter(store, 3, 4)

	if err := exporter.Export(context.Background(), manyRecords(10)); err != nil {
		t.Fatalf("export: %v", err)
	}

	if len(store.batches) != 3 {
		t.Fatalf("expected 3 batches, got %d", len(store.batches))
	}
	seen := make(map[string]bool)
	for _, batch := range store.batches {
		if len(batch) > 4 {
			t.Fatalf("batch exceeds size limit: %d", len(batch))
		}
		for _, rec := range batch {
			seen[rec.Name] = true
		}
	}
	if len(seen) != 10 {
		t.Fatalf("expected all 10 records exported, got %d", len(seen))
	}
}

func TestBulkExporter_Empty(t *testing.T) {
	exporter := NewBulkExporter(&stubStore{}, 0, 0)
	if err := exporter.Export(context.Background(), nil); err != nil {
		t.Fatalf("expected nil error for empty export, got %v", err)
	}
}

func TestBulkExporter_AggregatesErrors(t *testing.T) {
	boom := errors.New("boom")
	store := &stubStore{failOn: map[string]error{
		"Actor 0": boom,
		"Actor 5": boom,
	}}
	exporter := NewBulkExporter(store, 2, 2)

	err := exporter.Export(context.Background(), manyRecords(6))
	var taskErr *TaskError
	if !errors.As(err, &taskErr) {
		t.Fatalf("expected TaskError, got %v", err)
	}
	if len(taskErr.Errors) != 2 {
		t.Fatalf("expected 2 failed batches, got %d", len(taskErr.Errors))
	}
	if !errors.Is(err, boom) {
		t.Fatalf("expected TaskError to wrap cause")
	}
	if len(store.batches) != 1 {
		t.Fatalf("expected the healthy batch to be stored, got %d", len(store.batches))
	}
}

func TestBulkExporter_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := NewBulkExporter(&stubStore{}, 2, 1).Export(ctx, manyRecords(5))
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

type slowFirstStore struct {
	mu     sync.Mutex
	calls  int
	movies map[string][]string
}

func (s *slowFirstStore) UpsertActors(ctx context.Context, records []domain.ActorRecord) error {
	s.mu.Lock()
	s.calls++
	first := s.calls == 1
	s.mu.Unlock()
	if first {
		time.Sleep(20 * time.Millisecond)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, rec := range records {
		s.movies[rec.Name] = rec.Movies
	}
	return nil
}

func TestBulkExporter_DuplicateActorKeepsLastRecord(t *testing.T) {
	store := &slowFirstStore{movies: make(map[string][]string)}
	records := []domain.ActorRecord{
		{Name: "Tom Hanks", Movies: []string{"Earlier"}},
		{Name: "Robin Wright", Movies: []string{"Forrest Gump"}},
		{Name: "Tom  Hanks ", Movies: []string{"Later"}},
	}

	if err := NewBulkExporter(store, 2, 1).Export(context.Background(), records); err != nil {
		t.Fatalf("export: %v", err)
	}

	if store.calls != 2 {
		t.Fatalf("expected one batch per distinct actor, got %d", store.calls)
	}
	got := store.movies["Tom Hanks"]
	if len(got) != 1 || got[0] != "Later" {
		t.Fatalf("expected the last record to win, got %v", got)
	}
	if _, ok := store.movies["Tom  Hanks "]; ok {
		t.Fatalf("expected names to be normalized before export")
	}
}

func TestCanonicalRecords_MatchesSnapshotIndex(t *testing.T) {
	records := []domain.ActorRecord{
		{Name: "A", Movies: []string{"One"}},
		{Name: "B", Movies: []string{"One"}},
		{Name: "A", Movies: []string{"Two", "Three"}},
		{Name: "  ", Movies: []string{"Ghost"}},
	}
	got := canonicalRecords(records)
	snap := BuildSnapshot(records, time.Time{})

	if len(got) != 2 || got[0].Name != "A" || got[1].Name != "B" {
		t.Fatalf("unexpected canonical records %+v", got)
	}
	for _, rec := range got {
		want := snap.Index.MoviesOf(rec.Name)
		if len(want) != len(rec.Movies) {
			t.Fatalf("%s: index has %v, export has %v", rec.Name, want, rec.Movies)
		}
		for i := range want {
			if want[i] != rec.Movies[i] {
				t.Fatalf("%s: index has %v, export has %v", rec.Name, want, rec.Movies)
			}
		}
	}
}
