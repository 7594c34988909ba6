package domain

import (
	"errors"
	"strings"
)

var (
	// ErrUnknownActor indicates a queried actor has no node in the connection graph.
	ErrUnknownActor = errors.New("unknown actor")
	// ErrNoConnection indicates both actors exist but share no chain of movies.
	ErrNoConnection = errors.New("no connection")
)

// UnknownActorError carries the names that failed to resolve. It matches ErrUnknownActor.
type UnknownActorError struct {
	Names []string
}

func (e *UnknownActorError) Error() string {
	return ErrUnknownActor.Error() + ": " + strings.Join(e.Names, ", ")
}

func (e *UnknownActorError) Is(target error) bool {
	return target == ErrUnknownActor
}
