package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/vanshika/costars/internal/domain"
)

var (
	// ErrNotLoaded is returned by queries issued before the first successful Load.
	ErrNotLoaded = errors.New("dataset not loaded")
	// ErrInvalidQuery is returned when a required query parameter is empty.
	ErrInvalidQuery = errors.New("invalid query")
)

// RecordLoader supplies the raw actor records a snapshot is built from.
type RecordLoader interface {
	LoadRecords(ctx context.Context) ([]domain.ActorRecord, error)
}

// Observer receives measurements from the service. Implementations must be safe
// for concurrent use.
type Observer interface {
	ObserveQuery(status domain.PathStatus, hops int, elapsed time.Duration)
	ObserveLoad(stats domain.GraphStats, elapsed time.Duration, err error)
}

type noopObserver struct{}

func (noopObserver) ObserveQuery(domain.PathStatus, int, time.Duration)  {}
func (noopObserver) ObserveLoad(domain.GraphStats, time.Duration, error) {}

// ConnectionService answers connection queries against the most recently loaded
// snapshot. Reloads build a new snapshot off to the side and swap it in, so
// queries in flight keep using the snapshot they started with.
type ConnectionService struct {
	loader   RecordLoader
	observer Observer
	logger   *slog.Logger
	nowFn    func() time.Time

	loadMu  sync.Mutex
	current atomic.Pointer[Snapshot]
}

// NewConnectionService constructs a ConnectionService. observer and logger may be nil.
func NewConnectionService(loader RecordLoader, observer Observer, logger *slog.Logger) *ConnectionService {
	if observer == nil {
		observer = noopObserver{}
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &ConnectionService{
		loader:   loader,
		observer: observer,
		logger:   logger,
		nowFn:    time.Now,
	}
}

// WithClock overrides the time provider (used primarily in tests).
func (s *ConnectionService) WithClock(nowFn func() time.Time) {
	if nowFn != nil {
		s.nowFn = nowFn
	}
}

// Load reads the dataset, builds a new snapshot and makes it current. On failure
// the previous snapshot stays in place.
func (s *ConnectionService) Load(ctx context.Context) (*Snapshot, error) {
	s.loadMu.Lock()
	defer s.loadMu.Unlock()

	start := s.nowFn()
	records, err := s.loader.LoadRecords(ctx)
	if err != nil {
		err = fmt.Errorf("load dataset: %w", err)
		s.observer.ObserveLoad(domain.GraphStats{}, s.nowFn().Sub(start), err)
		return nil, err
	}

	snap := BuildSnapshot(records, s.nowFn().UTC())
	s.current.Store(snap)

	stats := snap.Stats()
	elapsed := s.nowFn().Sub(start)
	s.observer.ObserveLoad(stats, elapsed, nil)
	s.logger.Info("dataset loaded",
		"records", snap.Records,
		"actors", stats.Actors,
		"movies", stats.Movies,
		"edges", stats.Edges,
		"duration", elapsed,
	)
	return snap, nil
}

// Snapshot returns the current snapshot.
func (s *ConnectionService) Snapshot() (*Snapshot, error) {
	snap := s.current.Load()
	if snap == nil {
		return nil, ErrNotLoaded
	}
	return snap, nil
}

// FindConnection returns the shortest chain of shared movies between two actors.
// Unknown and disconnected actors are reported through the result, not the error.
func (s *ConnectionService) FindConnection(ctx context.Context, from, to string) (domain.PathResult, error) {
	from = sanitizeString(from)
	to = sanitizeString(to)
	if from == "" || to == "" {
		return domain.PathResult{}, fmt.Errorf("%w: from and to actors are required", ErrInvalidQuery)
	}
	snap, err := s.Snapshot()
	if err != nil {
		return domain.PathResult{}, err
	}

	start := s.nowFn()
	result, err := snap.Finder.FindPath(ctx, from, to)
	if err != nil {
		return domain.PathResult{}, fmt.Errorf("find path: %w", err)
	}
	s.observer.ObserveQuery(result.Status, len(result.Hops), s.nowFn().Sub(start))
	return result, nil
}

// MoviesOf returns the movies of actor; empty for unknown actors.
func (s *ConnectionService) MoviesOf(actor string) ([]string, error) {
	snap, err := s.Snapshot()
	if err != nil {
		return nil, err
	}
	return snap.Index.MoviesOf(sanitizeString(actor)), nil
}

// ActorsOf returns the cast of movie; empty for unknown movies.
func (s *ConnectionService) ActorsOf(movie string) ([]string, error) {
	snap, err := s.Snapshot()
	if err != nil {
		return nil, err
	}
	return snap.Index.ActorsOf(sanitizeString(movie)), nil
}

// CoStars returns the direct neighbours of actor with the movies they share.
func (s *ConnectionService) CoStars(actor string) ([]domain.CoStar, error) {
	actor = sanitizeString(actor)
	if actor == "" {
		return nil, fmt.Errorf("%w: actor name is required", ErrInvalidQuery)
	}
	snap, err := s.Snapshot()
	if err != nil {
		return nil, err
	}
	costars, ok := snap.CoStars(actor)
	if !ok {
		return nil, &domain.UnknownActorError{Names: []string{actor}}
	}
	return costars, nil
}

// Stats summarises the current snapshot.
func (s *ConnectionService) Stats() (domain.GraphStats, error) {
	snap, err := s.Snapshot()
	if err != nil {
		return domain.GraphStats{}, err
	}
	return snap.Stats(), nil
}
