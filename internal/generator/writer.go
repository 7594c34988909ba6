package generator

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"

	"github.com/vanshika/costars/internal/dataset"
	"github.com/vanshika/costars/internal/domain"
)

// WriteDataset serializes records in the pipe-delimited dataset format to path,
// creating parent directories as needed. Records longer than wrapAt characters
// are split across continuation lines; wrapAt <= 0 disables wrapping.
func WriteDataset(records []domain.ActorRecord, path string, wrapAt int) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	defer file.Close()

	w := bufio.NewWriter(file)
	if err := dataset.Write(w, records, wrapAt); err != nil {
		return fmt.Errorf("write dataset %s: %w", path, err)
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("flush %s: %w", path, err)
	}
	return file.Close()
}
