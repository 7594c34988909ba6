package generator

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/vanshika/costars/internal/domain"
)

// Generator produces synthetic actor records in dataset order.
type Generator struct {
	cfg       Config
	rand      *rand.Rand
	fragments nameFragments
}

// New returns a configured Generator instance.
func New(cfg Config) *Generator {
	def := DefaultConfig()
	if cfg.NumActors <= 0 {
		cfg.NumActors = def.NumActors
	}
	if cfg.NumMovies <= 0 {
		cfg.NumMovies = def.NumMovies
	}
	if cfg.MinCast <= 0 {
		cfg.MinCast = def.MinCast
	}
	if cfg.MaxCast < cfg.MinCast {
		cfg.MaxCast = cfg.MinCast
	}
	if cfg.MaxCast > cfg.NumActors {
		cfg.MaxCast = cfg.NumActors
	}
	if cfg.MinCast > cfg.MaxCast {
		cfg.MinCast = cfg.MaxCast
	}
	if cfg.StarChance < 0 || cfg.StarChance > 1 {
		cfg.StarChance = def.StarChance
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	return &Generator{
		cfg:       cfg,
		rand:      rand.New(rand.NewSource(cfg.Seed)),
		fragments: defaultNameFragments(),
	}
}

// Config returns the effective configuration after defaults were applied.
func (g *Generator) Config() Config {
	return g.cfg
}

// Generate synthesises actor records. Every movie gets a cast of MinCast..MaxCast
// distinct actors; actors that were never cast are kept with no movies. It
// respects context cancellation.
func (g *Generator) Generate(ctx context.Context) ([]domain.ActorRecord, error) {
	actors := g.actorNames()
	movies := g.movieTitles()
	stars := max(1, len(actors)/20)

	filmography := make([][]string, len(actors))
	for _, title := range movies {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		size := g.cfg.MinCast + g.rand.Intn(g.cfg.MaxCast-g.cfg.MinCast+1)
		cast := make(map[int]struct{}, size)
		for len(cast) < size {
			pick := g.rand.Intn(len(actors))
			if g.rand.Float64() < g.cfg.StarChance {
				if star := g.rand.Intn(stars); !contains(cast, star) {
					pick = star
				}
			}
			if contains(cast, pick) {
				continue
			}
			cast[pick] = struct{}{}
			filmography[pick] = append(filmography[pick], title)
		}
	}

	records := make([]domain.ActorRecord, len(actors))
	for i, name := range actors {
		records[i] = domain.ActorRecord{Name: name, Movies: filmography[i]}
	}
	return records, nil
}

func (g *Generator) actorNames() []string {
	names := make([]string, 0, g.cfg.NumActors)
	seen := make(map[string]int, g.cfg.NumActors)
	for len(names) < g.cfg.NumActors {
		name := fmt.Sprintf("%s %s", g.pick(g.fragments.first), g.pick(g.fragments.last))
		seen[name]++
		if n := seen[name]; n > 1 {
			name = fmt.Sprintf("%s (%s)", name, roman(n))
		}
		names = append(names, name)
	}
	return names
}

func (g *Generator) movieTitles() []string {
	titles := make([]string, 0, g.cfg.NumMovies)
	seen := make(map[string]struct{}, g.cfg.NumMovies)
	for len(titles) < g.cfg.NumMovies {
		title := fmt.Sprintf("%s %s (%d)", g.pick(g.fragments.adjectives), g.pick(g.fragments.nouns), 1930+g.rand.Intn(95))
		if _, dup := seen[title]; dup {
			title = fmt.Sprintf("%s %d", title, len(titles))
		}
		seen[title] = struct{}{}
		titles = append(titles, title)
	}
	return titles
}

func contains(set map[int]struct{}, key int) bool {
	_, ok := set[key]
	return ok
}

func (g *Generator) pick(options []string) string {
	return options[g.rand.Intn(len(options))]
}

// roman formats n as an uppercase Roman numeral; used to disambiguate repeated names.
func roman(n int) string {
	values := []int{1000, 900, 500, 400, 100, 90, 50, 40, 10, 9, 5, 4, 1}
	symbols := []string{"M", "CM", "D", "CD", "C", "XC", "L", "XL", "X", "IX", "V", "IV", "I"}
	out := ""
	for i, v := range values {
		for n >= v {
			out += symbols[i]
			n -= v
		}
	}
	return out
}

type nameFragments struct {
	first      []string
	last       []string
	adjectives []string
	nouns      []string
}

func defaultNameFragments() nameFragments {
	return nameFragments{
		first:      []string{"Jane", "John", "Alex", "Priya", "Liu", "Maria", "Omar", "Sofia", "Noah", "Emma", "Lucas", "Mia", "Ava", "Ethan", "Zara", "Grace", "Henry", "Ingrid", "Kenji", "Rosa"},
		last:       []string{"Doe", "Smith", "Chen", "Patel", "Garcia", "Khan", "Kim", "Ivanov", "Nguyen", "Silva", "Brown", "Lee", "Moreau", "Okafor", "Rossi", "Berg"},
		adjectives: []string{"Silent", "Crimson", "Last", "Hidden", "Midnight", "Golden", "Broken", "Distant", "Wild", "Frozen", "Electric", "Lonely", "Secret", "Endless"},
		nouns:      []string{"Harbor", "Empire", "Summer", "Witness", "Frontier", "Garden", "Signal", "River", "Station", "Voyage", "Kingdom", "Mirror", "Storm", "Promise"},
	}
}
