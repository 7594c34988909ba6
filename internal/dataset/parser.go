// Package dataset reads and writes the pipe-delimited filmography format:
//
//	Actor Name|Movie One|Movie Two
//	|Movie Three
//
// A physical line starting with '|' continues the previous logical record.
package dataset

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/vanshika/costars/internal/domain"
)

const (
	separator      = "|"
	maxLineBytes   = 1 << 20
	initialBufSize = 64 * 1024
)

// Parse reads every logical record from r.
func Parse(r io.Reader) ([]domain.ActorRecord, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, initialBufSize), maxLineBytes)

	var (
		records []domain.ActorRecord
		current strings.Builder
		started bool
	)
	flush := func() {
		if !started {
			return
		}
		if rec, ok := parseRecord(current.String()); ok {
			records = append(records, rec)
		}
		current.Reset()
		started = false
	}

	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if strings.HasPrefix(line, separator) && started {
			current.WriteString(line)
			continue
		}
		flush()
		current.WriteString(line)
		started = true
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan dataset: %w", err)
	}
	flush()
	return records, nil
}

// parseRecord splits a reconstructed logical line into the actor and their movies.
// Names and titles are whitespace-normalized; empty movie tokens (e.g. from "A||B"
// or a trailing pipe) are dropped.
func parseRecord(line string) (domain.ActorRecord, bool) {
	parts := strings.Split(line, separator)
	rec := domain.ActorRecord{Name: parts[0], Movies: parts[1:]}.Normalized()
	if rec.Name == "" {
		return domain.ActorRecord{}, false
	}
	return rec, true
}
