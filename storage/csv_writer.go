package storage

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"sync"
	"time"

	"listing-view/models"
)

var csvHeader = []string{
	"id", "name", "entry_type", "row_type", "is_ad", "street", "city", "categories",
	"phone", "distance", "offers", "latitude", "longitude", "rendered_at",
}

// CSVWriter writes summary rows to a CSV file.
// It is safe for concurrent use.
type CSVWriter struct {
	mu     sync.Mutex
	file   *os.File
	writer *csv.Writer
}

// NewCSVWriter creates (or truncates) the CSV file at the given path and
// writes the header row. Intermediate directories are created automatically.
func NewCSVWriter(path string) (*CSVWriter, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("csv: create output dir: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("csv: create file %q: %w", path, err)
	}

	w := csv.NewWriter(f)
	if err := w.Write(csvHeader); err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("csv: write header: %w", err)
	}
	w.Flush()

	return &CSVWriter{file: f, writer: w}, nil
}

// Write appends one row per summary.
func (c *CSVWriter) Write(summaries []*models.Summary) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, s := range summaries {
		row := []string{
			s.ID,
			s.Name,
			s.EntryType,
			s.RowType,
			strconv.FormatBool(s.IsAd),
			s.Street,
			s.City,
			s.Categories,
			s.Phone,
			s.Distance,
			strconv.Itoa(s.OfferCount),
			formatCoordinate(s.Latitude),
			formatCoordinate(s.Longitude),
			s.CreatedAt.Format(time.RFC3339),
		}
		if err := c.writer.Write(row); err != nil {
			return fmt.Errorf("csv: write row: %w", err)
		}
	}

	c.writer.Flush()
	return c.writer.Error()
}

// Close flushes and closes the underlying file.
func (c *CSVWriter) Close() error {
	c.writer.Flush()
	return c.file.Close()
}

func formatCoordinate(f float64) string {
	if f == 0 {
		return ""
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}
