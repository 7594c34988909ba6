package generator

// Config drives the synthetic filmography generator.
type Config struct {
	NumActors int
	NumMovies int
	MinCast   int
	MaxCast   int
	// StarChance is the probability that a cast slot goes to one of the few
	// prolific "star" actors, which keeps the generated graph well connected.
	StarChance float64
	Seed       int64
}

// DefaultConfig returns baseline settings producing a mid-sized, mostly connected graph.
func DefaultConfig() Config {
	return Config{
		NumActors:  5000,
		NumMovies:  2000,
		MinCast:    2,
		MaxCast:    12,
		StarChance: 0.15,
		Seed:       42,
	}
}
