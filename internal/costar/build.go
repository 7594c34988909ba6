package costar

// Source is the read side of a filmography index the graph is derived from.
type Source interface {
	Actors() []string
	Movies() []string
	ActorsOf(movie string) []string
}

// Build derives the co-appearance graph. For every movie, every pair of distinct
// cast members is connected in both directions, labelled with that movie; a cast
// of k actors contributes k·(k−1) directed edges. Actors with no shared movies
// still get an isolated node.
func Build(src Source) *Graph {
	g := New()
	for _, movie := range src.Movies() {
		cast := src.ActorsOf(movie)
		for i := range cast {
			first := g.EnsureNode(cast[i])
			for j := i + 1; j < len(cast); j++ {
				second := g.EnsureNode(cast[j])
				if first == second {
					continue
				}
				g.Connect(first, second, movie)
				g.Connect(second, first, movie)
			}
		}
	}
	for _, actor := range src.Actors() {
		g.EnsureNode(actor)
	}
	return g
}
