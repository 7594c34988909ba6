package filmography

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vanshika/costars/internal/domain"
)

func sampleRecords() []domain.ActorRecord {
	return []domain.ActorRecord{
		{Name: "Tom Hanks", Movies: []string{"Forrest Gump", "Cast Away"}},
		{Name: "Robin Wright", Movies: []string{"Forrest Gump"}},
		{Name: "Matt Damon", Movies: []string{"Saving Private Ryan"}},
	}
}

func TestIndex_ForwardAndReverse(t *testing.T) {
	idx := Build(sampleRecords())

	assert.Equal(t, []string{"Forrest Gump", "Cast Away"}, idx.MoviesOf("Tom Hanks"))
	assert.Equal(t, []string{"Tom Hanks", "Robin Wright"}, idx.ActorsOf("Forrest Gump"))
	assert.Equal(t, []string{"Matt Damon"}, idx.ActorsOf("Saving Private Ryan"))
	assert.Equal(t, 3, idx.NumActors())
	assert.Equal(t, 3, idx.NumMovies())
	assert.Equal(t, []string{"Forrest Gump", "Cast Away", "Saving Private Ryan"}, idx.Movies())
	assert.Equal(t, []string{"Tom Hanks", "Robin Wright", "Matt Damon"}, idx.Actors())
}

func TestIndex_UnknownKeysReturnOwnedEmptySlices(t *testing.T) {
	idx := Build(sampleRecords())

	movies := idx.MoviesOf("Greta Garbo")
	require.NotNil(t, movies)
	assert.Empty(t, movies)

	actors := idx.ActorsOf("Metropolis")
	require.NotNil(t, actors)
	assert.Empty(t, actors)

	// Mutating a returned slice must not leak into later lookups.
	movies = append(movies, "Grand Hotel")
	assert.Empty(t, idx.MoviesOf("Greta Garbo"))
	got := idx.MoviesOf("Tom Hanks")
	got[0] = "changed"
	assert.Equal(t, "Forrest Gump", idx.MoviesOf("Tom Hanks")[0])
}

func TestIndex_DuplicateMoviesDeduplicatedInCast(t *testing.T) {
	idx := New()
	idx.RecordActor("Tom Hanks", []string{"Big", "Big"})

	assert.Equal(t, []string{"Big", "Big"}, idx.MoviesOf("Tom Hanks"))
	assert.Equal(t, []string{"Tom Hanks"}, idx.ActorsOf("Big"))
}

func TestIndex_LaterRecordReplacesEarlier(t *testing.T) {
	idx := New()
	idx.RecordActor("Tom Hanks", []string{"Big", "Splash"})
	idx.RecordActor("Daryl Hannah", []string{"Splash"})
	idx.RecordActor("Tom Hanks", []string{"Splash", "Cast Away"})

	assert.Equal(t, []string{"Splash", "Cast Away"}, idx.MoviesOf("Tom Hanks"))
	assert.Empty(t, idx.ActorsOf("Big"))
	assert.Equal(t, []string{"Tom Hanks", "Daryl Hannah"}, idx.ActorsOf("Splash"))
	assert.Equal(t, []string{"Splash", "Cast Away"}, idx.Movies())
	assert.Equal(t, 2, idx.NumActors())
}

func TestIndex_ReverseMapConsistency(t *testing.T) {
	records := append(sampleRecords(),
		domain.ActorRecord{Name: "Gary Sinise", Movies: []string{"Forrest Gump", "Apollo 13"}},
		domain.ActorRecord{Name: "Tom Hanks", Movies: []string{"Apollo 13", "Forrest Gump"}},
		domain.ActorRecord{Name: "Nobody", Movies: nil},
	)
	idx := Build(records)

	for _, actor := range idx.Actors() {
		for _, movie := range idx.MoviesOf(actor) {
			assert.Contains(t, idx.ActorsOf(movie), actor, "%s missing from cast of %s", actor, movie)
		}
	}
	for _, movie := range idx.Movies() {
		for _, actor := range idx.ActorsOf(movie) {
			assert.Contains(t, idx.MoviesOf(actor), movie, "%s missing from filmography of %s", movie, actor)
		}
	}
	assert.True(t, idx.HasActor("Nobody"))
	assert.Empty(t, idx.MoviesOf("Nobody"))
}
