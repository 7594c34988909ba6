package service

import (
	"github.com/vanshika/costars/internal/domain"
	"github.com/vanshika/costars/internal/filmography"
)

// sanitizeString normalizes a query term the same way stored names are normalized.
func sanitizeString(value string) string {
	return domain.NormalizeName(value)
}

// normalizeRecords normalizes every record and drops the ones left without a name.
func normalizeRecords(records []domain.ActorRecord) []domain.ActorRecord {
	out := make([]domain.ActorRecord, 0, len(records))
	for _, rec := range records {
		if rec = rec.Normalized(); rec.Name != "" {
			out = append(out, rec)
		}
	}
	return out
}

// canonicalRecords reduces records to one per actor, resolved the way the
// filmography index resolves them: the last record wins and actors keep the
// position of their first appearance.
func canonicalRecords(records []domain.ActorRecord) []domain.ActorRecord {
	idx := filmography.Build(normalizeRecords(records))
	actors := idx.Actors()
	out := make([]domain.ActorRecord, 0, len(actors))
	for _, actor := range actors {
		out = append(out, domain.ActorRecord{Name: actor, Movies: idx.MoviesOf(actor)})
	}
	return out
}
