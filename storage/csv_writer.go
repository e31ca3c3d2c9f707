package storage

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/encrypter15/Armitage-Market-Mirror/models"
)

var csvHeader = []string{
	"id", "site", "title", "price", "seller", "link", "match_score", "search_term", "timestamp",
}

// CSVExporter dumps the full listing history to a CSV file, replacing any
// previous export at the same path.
type CSVExporter struct {
	path string
}

// NewCSVExporter creates an exporter targeting path. Intermediate
// directories are created on export.
func NewCSVExporter(path string) *CSVExporter {
	return &CSVExporter{path: path}
}

// Export writes one header row plus one row per listing. The rows go to a
// temp file in the destination directory which is renamed into place, so a
// failed export never leaves a half-written file behind.
func (e *CSVExporter) Export(listings []*models.Listing) error {
	dir := filepath.Dir(e.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("csv: create output dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(e.path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("csv: create temp file: %w", err)
	}
	defer func() {
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())
	}()

	w := csv.NewWriter(tmp)
	if err := w.Write(csvHeader); err != nil {
		return fmt.Errorf("csv: write header: %w", err)
	}
	for _, l := range listings {
		row := []string{
			strconv.FormatInt(l.ID, 10),
			l.Site,
			l.Title,
			strconv.FormatFloat(l.Price, 'f', -1, 64),
			l.Seller,
			l.Link,
			strconv.Itoa(l.MatchScore),
			l.SearchTerm,
			l.ScrapedAt.Format(time.RFC3339Nano),
		}
		if err := w.Write(row); err != nil {
			return fmt.Errorf("csv: write row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("csv: flush: %w", err)
	}

	if err := tmp.Close(); err != nil {
		return fmt.Errorf("csv: close temp file: %w", err)
	}
	if err := os.Rename(tmp.Name(), e.path); err != nil {
		return fmt.Errorf("csv: rename into place: %w", err)
	}
	return nil
}
