package pathfinder

import "github.com/vanshika/costars/internal/costar"

const (
	noParent costar.NodeID  = -1
	noMovie  costar.MovieID = -1
)

// searchState is the per-query side table of a breadth-first search.
type searchState struct {
	visited []bool
	parent  []costar.NodeID
	via     []costar.MovieID
	queue   []costar.NodeID
	head    int
}

func newSearchState(n int) *searchState {
	st := &searchState{
		visited: make([]bool, n),
		parent:  make([]costar.NodeID, n),
		via:     make([]costar.MovieID, n),
	}
	for i := range st.parent {
		st.parent[i] = noParent
		st.via[i] = noMovie
	}
	return st
}

// discover marks id visited and records how it was reached. Marking happens on
// discovery so every node is enqueued at most once, along its shortest route.
func (st *searchState) discover(id, parent costar.NodeID, movie costar.MovieID) {
	st.visited[id] = true
	st.parent[id] = parent
	st.via[id] = movie
	st.queue = append(st.queue, id)
}

// reset clears everything touched by the last search. Every touched node went
// through the queue, so only those entries need clearing.
func (st *searchState) reset() {
	for _, id := range st.queue {
		st.visited[id] = false
		st.parent[id] = noParent
		st.via[id] = noMovie
	}
	st.queue = st.queue[:0]
	st.head = 0
}
