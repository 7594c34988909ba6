// Package pathfinder finds the shortest chain of shared movies between two actors.
//
// Searches run breadth-first over a costar.Graph. Visited flags, predecessors and
// the movie used to reach each node live in a per-query side table taken from a
// pool, so a Finder may serve any number of concurrent queries.
package pathfinder

import (
	"context"
	"sync"

	"github.com/vanshika/costars/internal/costar"
	"github.com/vanshika/costars/internal/domain"
)

// Finder answers shortest-connection queries against one immutable graph.
type Finder struct {
	graph  *costar.Graph
	states sync.Pool
}

// New returns a Finder over graph. The graph must not be modified afterwards.
func New(graph *costar.Graph) *Finder {
	f := &Finder{graph: graph}
	f.states.New = func() any {
		return newSearchState(graph.NumNodes())
	}
	return f
}

// Graph returns the graph the finder searches.
func (f *Finder) Graph() *costar.Graph {
	return f.graph
}

// FindPath returns the shortest path from one actor to another. Unknown names and
// disconnected actors are reported through the result; the only error is the
// cancellation of ctx.
func (f *Finder) FindPath(ctx context.Context, from, to string) (domain.PathResult, error) {
	src, srcOK := f.graph.Lookup(from)
	dst, dstOK := f.graph.Lookup(to)
	switch {
	case !srcOK && !dstOK:
		return domain.NotFound(from, to, domain.MissingBoth), nil
	case !srcOK:
		return domain.NotFound(from, to, domain.MissingFrom), nil
	case !dstOK:
		return domain.NotFound(from, to, domain.MissingTo), nil
	}
	if src == dst {
		return domain.Found(from, to, nil), nil
	}

	st := f.states.Get().(*searchState)
	defer func() {
		st.reset()
		f.states.Put(st)
	}()

	st.discover(src, noParent, noMovie)
	for st.head < len(st.queue) {
		if err := ctx.Err(); err != nil {
			return domain.PathResult{}, err
		}
		current := st.queue[st.head]
		st.head++
		if current == dst {
			return domain.Found(from, to, f.reconstruct(st, dst)), nil
		}
		for _, e := range f.graph.Edges(current) {
			if !st.visited[e.To] {
				st.discover(e.To, current, e.Movie)
			}
		}
	}
	return domain.NoConnection(from, to), nil
}

// reconstruct walks predecessor links back from dst and returns the hops in
// travel order.
func (f *Finder) reconstruct(st *searchState, dst costar.NodeID) []domain.Hop {
	depth := 0
	for n := dst; st.parent[n] != noParent; n = st.parent[n] {
		depth++
	}
	hops := make([]domain.Hop, depth)
	for n := dst; st.parent[n] != noParent; n = st.parent[n] {
		depth--
		hops[depth] = domain.Hop{
			Movie: f.graph.MovieTitle(st.via[n]),
			Actor: f.graph.Name(n),
		}
	}
	return hops
}
