package dataset

import (
	"bufio"
	"fmt"
	"io"

	"github.com/vanshika/costars/internal/domain"
)

// Write serialises records in the dataset format. When wrapAt > 0, a record whose
// line would exceed wrapAt bytes continues on lines starting with '|'.
func Write(w io.Writer, records []domain.ActorRecord, wrapAt int) error {
	bw := bufio.NewWriter(w)
	for _, rec := range records {
		lineLen := len(rec.Name)
		if _, err := bw.WriteString(rec.Name); err != nil {
			return fmt.Errorf("write record %q: %w", rec.Name, err)
		}
		for _, title := range rec.Movies {
			token := separator + title
			if wrapAt > 0 && lineLen > 0 && lineLen+len(token) > wrapAt {
				if err := bw.WriteByte('\n'); err != nil {
					return fmt.Errorf("write record %q: %w", rec.Name, err)
				}
				lineLen = 0
			}
			if _, err := bw.WriteString(token); err != nil {
				return fmt.Errorf("write record %q: %w", rec.Name, err)
			}
			lineLen += len(token)
		}
		if err := bw.WriteByte('\n'); err != nil {
			return fmt.Errorf("write record %q: %w", rec.Name, err)
		}
	}
	return bw.Flush()
}
