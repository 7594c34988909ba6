// Package costar builds the undirected co-appearance graph over actors.
//
// Nodes are stored in an arena and addressed by NodeID; movie titles are interned
// once and edges refer to them by MovieID. The topology is fixed after Build and
// the graph carries no per-query state, so it may be shared by concurrent readers.
package costar

// NodeID addresses an actor node inside a Graph.
type NodeID int32

// MovieID addresses an interned movie title inside a Graph.
type MovieID int32

// Edge is a directed, movie-labelled link to another actor.
type Edge struct {
	To    NodeID
	Movie MovieID
}

type node struct {
	name  string
	edges []Edge
}

// Graph is the actor co-appearance graph.
type Graph struct {
	nodes    []node
	byName   map[string]NodeID
	movies   []string
	movieIDs map[string]MovieID
	edges    int
}

// New returns an empty graph.
func New() *Graph {
	return &Graph{
		byName:   make(map[string]NodeID),
		movieIDs: make(map[string]MovieID),
	}
}

// EnsureNode returns the node for actor, creating it if absent.
func (g *Graph) EnsureNode(actor string) NodeID {
	if id, ok := g.byName[actor]; ok {
		return id
	}
	id := NodeID(len(g.nodes))
	g.nodes = append(g.nodes, node{name: actor})
	g.byName[actor] = id
	return id
}

// ContainsActor reports whether a node for actor exists.
func (g *Graph) ContainsActor(actor string) bool {
	_, ok := g.byName[actor]
	return ok
}

// Lookup resolves an actor name to its node.
func (g *Graph) Lookup(actor string) (NodeID, bool) {
	id, ok := g.byName[actor]
	return id, ok
}

// Connect adds the directed edge from → to labelled with movie.
// Callers wanting an undirected relationship call it once per direction.
func (g *Graph) Connect(from, to NodeID, movie string) {
	g.nodes[from].edges = append(g.nodes[from].edges, Edge{To: to, Movie: g.intern(movie)})
	g.edges++
}

func (g *Graph) intern(movie string) MovieID {
	if id, ok := g.movieIDs[movie]; ok {
		return id
	}
	id := MovieID(len(g.movies))
	g.movies = append(g.movies, movie)
	g.movieIDs[movie] = id
	return id
}

// Name returns the actor name of a node.
func (g *Graph) Name(id NodeID) string {
	return g.nodes[id].name
}

// Edges returns the outgoing edges of a node. The slice must not be modified.
func (g *Graph) Edges(id NodeID) []Edge {
	return g.nodes[id].edges
}

// MovieTitle returns the title behind an interned movie id.
func (g *Graph) MovieTitle(id MovieID) string {
	return g.movies[id]
}

// NumNodes returns the number of actor nodes.
func (g *Graph) NumNodes() int {
	return len(g.nodes)
}

// NumEdges returns the number of directed edges.
func (g *Graph) NumEdges() int {
	return g.edges
}
