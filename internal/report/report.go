// Package report renders connection results for people and for JSON clients.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/vanshika/costars/internal/domain"
)

// Text renders res as the multi-line narrative printed by the CLI:
//
//	Found a path!
//	Robin Wright was in...
//	Forrest Gump with Tom Hanks who was in...
//	Apollo 13 with Kevin Bacon
func Text(res domain.PathResult) string {
	var b strings.Builder
	switch res.Status {
	case domain.PathFound:
		b.WriteString("Found a path!\n")
		if len(res.Hops) == 0 {
			fmt.Fprintf(&b, "%s is %s.\n", res.From, res.To)
			break
		}
		fmt.Fprintf(&b, "%s was in...\n", res.From)
		for i, hop := range res.Hops {
			fmt.Fprintf(&b, "%s with %s", hop.Movie, hop.Actor)
			if i < len(res.Hops)-1 {
				b.WriteString(" who was in...")
			}
			b.WriteByte('\n')
		}
	case domain.PathNotFound:
		switch res.Missing {
		case domain.MissingBoth:
			fmt.Fprintf(&b, "%s and %s not found!\n", res.From, res.To)
		case domain.MissingTo:
			fmt.Fprintf(&b, "%s not found!\n", res.To)
		default:
			fmt.Fprintf(&b, "%s not found!\n", res.From)
		}
	case domain.PathNoConnection:
		fmt.Fprintf(&b, "No connection between %s and %s.\n", res.From, res.To)
	}
	return b.String()
}

// WriteText writes Text(res) to w.
func WriteText(w io.Writer, res domain.PathResult) error {
	_, err := io.WriteString(w, Text(res))
	return err
}

// HopView is the JSON form of a hop.
type HopView struct {
	Movie string `json:"movie"`
	Actor string `json:"actor"`
}

// PathView is the JSON form of a connection result.
type PathView struct {
	From    string    `json:"from"`
	To      string    `json:"to"`
	Status  string    `json:"status"`
	Degrees int       `json:"degrees"`
	Hops    []HopView `json:"hops"`
	Missing []string  `json:"missing,omitempty"`
}

// View converts res for JSON encoding. Hops is always non-nil so clients see [].
func View(res domain.PathResult) PathView {
	hops := make([]HopView, 0, len(res.Hops))
	for _, h := range res.Hops {
		hops = append(hops, HopView{Movie: h.Movie, Actor: h.Actor})
	}
	return PathView{
		From:    res.From,
		To:      res.To,
		Status:  res.Status.String(),
		Degrees: res.Degrees(),
		Hops:    hops,
		Missing: res.MissingNames(),
	}
}
