package domain

// Hop is one step of a connection: via Movie to Actor.
type Hop struct {
	Movie string
	Actor string
}

// PathStatus classifies the outcome of a connection query.
type PathStatus int

const (
	// PathFound means a path exists; Hops holds it.
	PathFound PathStatus = iota
	// PathNotFound means one or both actors are absent from the dataset.
	PathNotFound
	// PathNoConnection means both actors exist but no chain of movies links them.
	PathNoConnection
)

func (s PathStatus) String() string {
	switch s {
	case PathFound:
		return "found"
	case PathNotFound:
		return "not_found"
	case PathNoConnection:
		return "no_connection"
	default:
		return "unknown"
	}
}

// Missing identifies which endpoint of a query could not be resolved.
type Missing int

const (
	MissingNone Missing = iota
	MissingFrom
	MissingTo
	MissingBoth
)

func (m Missing) String() string {
	switch m {
	case MissingFrom:
		return "from"
	case MissingTo:
		return "to"
	case MissingBoth:
		return "both"
	default:
		return "none"
	}
}

// PathResult is the outcome of a shortest-connection query between two actors.
type PathResult struct {
	From    string
	To      string
	Status  PathStatus
	Missing Missing
	Hops    []Hop
}

// Found builds a successful result. hops is empty when from == to.
func Found(from, to string, hops []Hop) PathResult {
	if hops == nil {
		hops = []Hop{}
	}
	return PathResult{From: from, To: to, Status: PathFound, Hops: hops}
}

// NotFound builds a result for unresolved actor names.
func NotFound(from, to string, which Missing) PathResult {
	return PathResult{From: from, To: to, Status: PathNotFound, Missing: which}
}

// NoConnection builds a result for actors in disjoint components.
func NoConnection(from, to string) PathResult {
	return PathResult{From: from, To: to, Status: PathNoConnection}
}

// Degrees returns the number of hops, or -1 when no path was found.
func (r PathResult) Degrees() int {
	if r.Status != PathFound {
		return -1
	}
	return len(r.Hops)
}

// MissingNames lists the actor names that could not be resolved.
func (r PathResult) MissingNames() []string {
	switch r.Missing {
	case MissingFrom:
		return []string{r.From}
	case MissingTo:
		return []string{r.To}
	case MissingBoth:
		return []string{r.From, r.To}
	default:
		return nil
	}
}

// Err maps the result onto the package sentinels; nil when a path was found.
func (r PathResult) Err() error {
	switch r.Status {
	case PathNotFound:
		return &UnknownActorError{Names: r.MissingNames()}
	case PathNoConnection:
		return ErrNoConnection
	default:
		return nil
	}
}
