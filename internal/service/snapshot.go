package service

import (
	"time"

	"github.com/vanshika/costars/internal/costar"
	"github.com/vanshika/costars/internal/domain"
	"github.com/vanshika/costars/internal/filmography"
	"github.com/vanshika/costars/internal/pathfinder"
)

// Snapshot is one fully built dataset: the filmography index, the graph derived
// from it and a finder over that graph. A snapshot is never mutated after
// BuildSnapshot returns.
type Snapshot struct {
	Index    *filmography.Index
	Graph    *costar.Graph
	Finder   *pathfinder.Finder
	LoadedAt time.Time
	Records  int
}

// BuildSnapshot normalizes and indexes records, then derives the connection graph
// from the completed index.
func BuildSnapshot(records []domain.ActorRecord, loadedAt time.Time) *Snapshot {
	idx := filmography.Build(normalizeRecords(records))
	g := costar.Build(idx)
	return &Snapshot{
		Index:    idx,
		Graph:    g,
		Finder:   pathfinder.New(g),
		LoadedAt: loadedAt,
		Records:  len(records),
	}
}

// Stats summarises the snapshot.
func (s *Snapshot) Stats() domain.GraphStats {
	return domain.GraphStats{
		Actors:   s.Graph.NumNodes(),
		Movies:   s.Index.NumMovies(),
		Edges:    s.Graph.NumEdges(),
		LoadedAt: s.LoadedAt,
	}
}

// CoStars lists the direct neighbours of actor in first-discovered order, each
// with every movie the pair shares.
func (s *Snapshot) CoStars(actor string) ([]domain.CoStar, bool) {
	id, ok := s.Graph.Lookup(actor)
	if !ok {
		return nil, false
	}
	result := []domain.CoStar{}
	position := make(map[costar.NodeID]int)
	for _, e := range s.Graph.Edges(id) {
		title := s.Graph.MovieTitle(e.Movie)
		if i, seen := position[e.To]; seen {
			result[i].Movies = append(result[i].Movies, title)
			continue
		}
		position[e.To] = len(result)
		result = append(result, domain.CoStar{Actor: s.Graph.Name(e.To), Movies: []string{title}})
	}
	return result, true
}
