package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/vanshika/costars/internal/domain"
	"github.com/vanshika/costars/internal/graph"
)

// DefaultMaxDegrees bounds the shortestPath search. Each degree is two ACTED_IN
// relationships (actor -> movie -> actor).
const DefaultMaxDegrees = 10

// Repository encapsulates graph persistence operations.
type Repository struct {
	client     graph.Client
	maxDegrees int
}

// New instantiates a Repository backed by the supplied graph client.
func New(client graph.Client) *Repository {
	return &Repository{client: client, maxDegrees: DefaultMaxDegrees}
}

// WithMaxDegrees overrides the search bound used by ShortestPathBetweenActors.
func (r *Repository) WithMaxDegrees(n int) *Repository {
	if n > 0 {
		r.maxDegrees = n
	}
	return r
}

// EnsureSchema creates the uniqueness constraints the upserts rely on.
func (r *Repository) EnsureSchema(ctx context.Context) error {
	for _, stmt := range schemaCypher {
		if _, err := r.client.ExecuteWrite(ctx, stmt, nil); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}

// UpsertActors writes a batch of actor records with names and titles normalized.
// An actor's ACTED_IN relationships are replaced by the movies in its record, so
// re-exporting a dataset converges on the same graph.
func (r *Repository) UpsertActors(ctx context.Context, records []domain.ActorRecord) error {
	if len(records) == 0 {
		return nil
	}
	actors := make([]map[string]any, 0, len(records))
	for _, rec := range records {
		rec = rec.Normalized()
		if rec.Name == "" {
			return errors.New("actor name is required")
		}
		actors = append(actors, map[string]any{
			"name":   rec.Name,
			"movies": rec.Movies,
		})
	}

	_, err := r.client.ExecuteWrite(ctx, upsertActorsCypher, map[string]any{"actors": actors})
	if err != nil {
		return fmt.Errorf("upsert %d actors: %w", len(records), err)
	}
	return nil
}

// ShortestPathBetweenActors asks the database for the shortest chain of shared
// movies between two actors and reports it in the same shape as the in-memory
// path finder. Names are normalized like the in-memory index normalizes them.
func (r *Repository) ShortestPathBetweenActors(ctx context.Context, from, to string) (domain.PathResult, error) {
	from, to = domain.NormalizeName(from), domain.NormalizeName(to)
	if from == "" || to == "" {
		return domain.PathResult{}, errors.New("from and to actor names are required")
	}

	params := map[string]any{"from": from, "to": to}
	res, err := r.client.ExecuteRead(ctx, actorsExistCypher, params)
	if err != nil {
		return domain.PathResult{}, fmt.Errorf("actor lookup query: %w", err)
	}
	var fromExists, toExists bool
	if len(res.Records) > 0 {
		fromExists = res.Records[0].Bool("fromExists")
		toExists = res.Records[0].Bool("toExists")
	}
	switch {
	case !fromExists && !toExists:
		return domain.NotFound(from, to, domain.MissingBoth), nil
	case !fromExists:
		return domain.NotFound(from, to, domain.MissingFrom), nil
	case !toExists:
		return domain.NotFound(from, to, domain.MissingTo), nil
	}
	if from == to {
		return domain.Found(from, to, nil), nil
	}

	res, err = r.client.ExecuteRead(ctx, r.shortestPathCypher(), params)
	if err != nil {
		return domain.PathResult{}, fmt.Errorf("shortest path query: %w", err)
	}
	if len(res.Records) == 0 {
		return domain.NoConnection(from, to), nil
	}

	hops, err := hopsFromPath(res.Records[0].Strings("names"))
	if err != nil {
		return domain.PathResult{}, err
	}
	return domain.Found(from, to, hops), nil
}

// CountGraph returns the number of actors, movies and directed co-star edges
// stored in the database.
func (r *Repository) CountGraph(ctx context.Context) (domain.GraphStats, error) {
	res, err := r.client.ExecuteRead(ctx, countGraphCypher, nil)
	if err != nil {
		return domain.GraphStats{}, fmt.Errorf("count graph query: %w", err)
	}
	if len(res.Records) == 0 {
		return domain.GraphStats{}, nil
	}
	rec := res.Records[0]
	return domain.GraphStats{
		Actors: rec.Int("actors"),
		Movies: rec.Int("movies"),
		Edges:  rec.Int("edges"),
	}, nil
}

func (r *Repository) shortestPathCypher() string {
	return fmt.Sprintf(shortestPathCypherTemplate, 2*r.maxDegrees)
}

// hopsFromPath converts the alternating actor, movie, actor... names of a path
// into hops.
func hopsFromPath(names []string) ([]domain.Hop, error) {
	if len(names) == 0 || len(names)%2 == 0 {
		return nil, fmt.Errorf("malformed path of %d nodes", len(names))
	}
	hops := make([]domain.Hop, 0, len(names)/2)
	for i := 1; i+1 < len(names); i += 2 {
		hops = append(hops, domain.Hop{Movie: names[i], Actor: names[i+1]})
	}
	return hops, nil
}

var schemaCypher = []string{
	`CREATE CONSTRAINT actor_name IF NOT EXISTS FOR (a:Actor) REQUIRE a.name IS UNIQUE`,
	`CREATE CONSTRAINT movie_title IF NOT EXISTS FOR (m:Movie) REQUIRE m.title IS UNIQUE`,
}

const upsertActorsCypher = `
UNWIND $actors AS actor
MERGE (a:Actor {name: actor.name})
WITH a, actor
OPTIONAL MATCH (a)-[old:ACTED_IN]->(:Movie)
DELETE old
WITH DISTINCT a, actor
FOREACH (title IN actor.movies |
	MERGE (m:Movie {title: title})
	MERGE (a)-[:ACTED_IN]->(m)
)
RETURN count(a) AS actors
`

const actorsExistCypher = `
OPTIONAL MATCH (source:Actor {name: $from})
OPTIONAL MATCH (target:Actor {name: $to})
RETURN source IS NOT NULL AS fromExists, target IS NOT NULL AS toExists
`

const shortestPathCypherTemplate = `
MATCH (source:Actor {name: $from}), (target:Actor {name: $to})
MATCH path = shortestPath((source)-[:ACTED_IN*..%d]-(target))
RETURN [n IN nodes(path) | coalesce(n.name, n.title)] AS names
`

const countGraphCypher = `
CALL { MATCH (a:Actor) RETURN count(a) AS actors }
CALL { MATCH (m:Movie) RETURN count(m) AS movies }
CALL {
  MATCH (a:Actor)-[:ACTED_IN]->(:Movie)<-[:ACTED_IN]-(b:Actor)
  WHERE a <> b
  RETURN count(*) AS edges
}
RETURN actors, movies, edges
`
