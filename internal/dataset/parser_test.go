package dataset

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vanshika/costars/internal/domain"
)

func TestParse_ContinuationLines(t *testing.T) {
	input := strings.Join([]string{
		"Tom Hanks|Forrest Gump|Cast Away",
		"|Big",
		"|Apollo 13",
		"Robin Wright|Forrest Gump",
		"Matt Damon|Saving Private Ryan",
	}, "\n")

	records, err := Parse(strings.NewReader(input))
	require.NoError(t, err)

	want := []domain.ActorRecord{
		{Name: "Tom Hanks", Movies: []string{"Forrest Gump", "Cast Away", "Big", "Apollo 13"}},
		{Name: "Robin Wright", Movies: []string{"Forrest Gump"}},
		{Name: "Matt Damon", Movies: []string{"Saving Private Ryan"}},
	}
	assert.Equal(t, want, records)
}

func TestParse_EdgeCases(t *testing.T) {
	input := "Alpha|One||Two|\r\n" +
		"\r\n" +
		"Loner\n" +
		"|Orphan continuation\n" +
		"Beta|One|One\n"

	records, err := Parse(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, domain.ActorRecord{Name: "Alpha", Movies: []string{"One", "Two"}}, records[0])
	// A continuation after a bare name still belongs to that record.
	assert.Equal(t, "Loner", records[1].Name)
	assert.Equal(t, []string{"Orphan continuation"}, records[1].Movies)
	// Duplicates inside one actor's list are kept verbatim.
	assert.Equal(t, []string{"One", "One"}, records[2].Movies)
}

func TestParse_NormalizesWhitespace(t *testing.T) {
	input := "Tom  Hanks |Forrest   Gump| \n" +
		"|\tCast Away\n" +
		"   |Nameless\n"

	records, err := Parse(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, []domain.ActorRecord{
		{Name: "Tom Hanks", Movies: []string{"Forrest Gump", "Cast Away"}},
	}, records)
}

func TestParse_ZeroMovieActor(t *testing.T) {
	records, err := Parse(strings.NewReader("Nobody Famous\n"))
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "Nobody Famous", records[0].Name)
	assert.Empty(t, records[0].Movies)
}

func TestParse_LeadingContinuationIsDropped(t *testing.T) {
	records, err := Parse(strings.NewReader("|Stray\nActor|Film\n"))
	require.NoError(t, err)
	assert.Equal(t, []domain.ActorRecord{{Name: "Actor", Movies: []string{"Film"}}}, records)
}

func TestWrite_WrapsWithContinuations(t *testing.T) {
	records := []domain.ActorRecord{
		{Name: "Kevin Bacon", Movies: []string{"Footloose", "Apollo 13", "Mystic River", "Tremors"}},
		{Name: "Solo", Movies: nil},
	}

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, records, 30))

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	require.Greater(t, len(lines), len(records))
	for _, line := range lines {
		assert.LessOrEqual(t, len(line), 30, "line %q exceeds wrap width", line)
	}

	parsed, err := Parse(&buf)
	require.NoError(t, err)
	require.Len(t, parsed, 2)
	assert.Equal(t, records[0], parsed[0])
	assert.Equal(t, "Solo", parsed[1].Name)
	assert.Empty(t, parsed[1].Movies)
}

func TestFileLoader_PreservesPathOrder(t *testing.T) {
	dir := t.TempDir()
	first := filepath.Join(dir, "a.txt")
	second := filepath.Join(dir, "b.txt")
	require.NoError(t, os.WriteFile(first, []byte("A|M1\nB|M1\n"), 0o644))
	require.NoError(t, os.WriteFile(second, []byte("C|M2\n"), 0o644))

	records, err := NewFileLoader(first, second).LoadRecords(context.Background())
	require.NoError(t, err)

	names := make([]string, 0, len(records))
	for _, rec := range records {
		names = append(names, rec.Name)
	}
	assert.Equal(t, []string{"A", "B", "C"}, names)
}

func TestFileLoader_Errors(t *testing.T) {
	_, err := NewFileLoader().LoadRecords(context.Background())
	assert.ErrorIs(t, err, ErrNoPaths)

	_, err = NewFileLoader(filepath.Join(t.TempDir(), "missing.txt")).LoadRecords(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}
