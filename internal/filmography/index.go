// Package filmography holds the bidirectional actor ↔ movie mapping built from dataset records.
package filmography

import (
	mapset "github.com/deckarep/golang-set/v2"

	"github.com/vanshika/costars/internal/domain"
)

// cast is the ordered, deduplicated set of actors who appeared in one movie.
type cast struct {
	members mapset.Set[string]
	order   []string
}

func newCast() *cast {
	return &cast{members: mapset.NewThreadUnsafeSet[string]()}
}

func (c *cast) add(actor string) {
	if c.members.Add(actor) {
		c.order = append(c.order, actor)
	}
}

func (c *cast) remove(actor string) {
	if !c.members.Contains(actor) {
		return
	}
	c.members.Remove(actor)
	for i, name := range c.order {
		if name == actor {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
}

// Index maps actors to their movies and movies to their casts.
// It is built once and read-only afterwards; reads are safe for concurrent use
// once building has finished.
type Index struct {
	actorMovies map[string][]string
	actorOrder  []string
	movieCasts  map[string]*cast
	movieOrder  []string
}

// New returns an empty index.
func New() *Index {
	return &Index{
		actorMovies: make(map[string][]string),
		movieCasts:  make(map[string]*cast),
	}
}

// Build records every record in order.
func Build(records []domain.ActorRecord) *Index {
	idx := New()
	for _, rec := range records {
		idx.RecordActor(rec.Name, rec.Movies)
	}
	return idx
}

// RecordActor stores the actor's movie list verbatim and adds the actor to each
// movie's cast. A later record for the same actor replaces the earlier one.
func (idx *Index) RecordActor(name string, movies []string) {
	previous, known := idx.actorMovies[name]
	if known {
		idx.detach(name, previous, movies)
	} else {
		idx.actorOrder = append(idx.actorOrder, name)
	}
	idx.actorMovies[name] = append([]string(nil), movies...)

	for _, title := range movies {
		c, ok := idx.movieCasts[title]
		if !ok {
			c = newCast()
			idx.movieCasts[title] = c
			idx.movieOrder = append(idx.movieOrder, title)
		}
		c.add(name)
	}
}

// detach removes actor from casts of movies present in previous but not in next.
func (idx *Index) detach(actor string, previous, next []string) {
	keep := mapset.NewThreadUnsafeSet(next...)
	for _, title := range previous {
		if keep.Contains(title) {
			continue
		}
		c, ok := idx.movieCasts[title]
		if !ok {
			continue
		}
		c.remove(actor)
		if c.members.Cardinality() == 0 {
			idx.dropMovie(title)
		}
	}
}

func (idx *Index) dropMovie(title string) {
	delete(idx.movieCasts, title)
	for i, t := range idx.movieOrder {
		if t == title {
			idx.movieOrder = append(idx.movieOrder[:i], idx.movieOrder[i+1:]...)
			return
		}
	}
}

// MoviesOf returns a copy of the actor's movie list, or an empty slice for unknown actors.
func (idx *Index) MoviesOf(actor string) []string {
	movies, ok := idx.actorMovies[actor]
	if !ok {
		return []string{}
	}
	return append([]string{}, movies...)
}

// ActorsOf returns the movie's cast in first-recorded order, or an empty slice for unknown movies.
func (idx *Index) ActorsOf(movie string) []string {
	c, ok := idx.movieCasts[movie]
	if !ok {
		return []string{}
	}
	return append([]string{}, c.order...)
}

// HasActor reports whether a record for actor was stored.
func (idx *Index) HasActor(actor string) bool {
	_, ok := idx.actorMovies[actor]
	return ok
}

// Actors returns every actor in first-recorded order.
func (idx *Index) Actors() []string {
	return append([]string{}, idx.actorOrder...)
}

// Movies returns every movie in first-seen order.
func (idx *Index) Movies() []string {
	return append([]string{}, idx.movieOrder...)
}

// NumActors returns the number of distinct actors.
func (idx *Index) NumActors() int {
	return len(idx.actorMovies)
}

// NumMovies returns the number of distinct movies.
func (idx *Index) NumMovies() int {
	return len(idx.movieCasts)
}
