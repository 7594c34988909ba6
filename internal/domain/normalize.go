package domain

import (
	"regexp"
	"strings"
)

var whitespaceRun = regexp.MustCompile(`\s+`)

// NormalizeName collapses runs of whitespace into one space and trims the ends.
// Actor names and movie titles are stored and looked up in this form.
func NormalizeName(value string) string {
	return strings.TrimSpace(whitespaceRun.ReplaceAllString(value, " "))
}

// Normalized returns a copy of r with its name and titles normalized. Titles that
// normalize to the empty string are dropped; the movie list is never nil.
func (r ActorRecord) Normalized() ActorRecord {
	movies := make([]string, 0, len(r.Movies))
	for _, title := range r.Movies {
		if title = NormalizeName(title); title != "" {
			movies = append(movies, title)
		}
	}
	return ActorRecord{Name: NormalizeName(r.Name), Movies: movies}
}
