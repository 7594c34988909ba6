package domain

import "time"

// ActorRecord is one logical dataset record: an actor and the movies they appeared in.
type ActorRecord struct {
	Name   string
	Movies []string
}

// CoStar is a direct neighbour of an actor in the connection graph together with
// every movie the two of them share.
type CoStar struct {
	Actor  string
	Movies []string
}

// GraphStats summarises a loaded snapshot.
type GraphStats struct {
	Actors   int
	Movies   int
	Edges    int
	LoadedAt time.Time
}
