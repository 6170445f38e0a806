package report

import (
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"hostscan/models"
)

// ErrFieldMismatch is returned when a record does not render one value per
// header field.
var ErrFieldMismatch = errors.New("record does not match field list")

// Writer serializes records into CSV files under a directory
type Writer struct {
	dir string
	now func() time.Time
}

func NewWriter(dir string) *Writer {
	if dir == "" {
		dir = "."
	}
	return &Writer{dir: dir, now: time.Now}
}

// WithClock replaces the clock used for file names
func (w *Writer) WithClock(now func() time.Time) *Writer {
	w2 := *w
	w2.now = now
	return &w2
}

// Path returns the file path for prefix and node at the current time
func (w *Writer) Path(prefix, node string) string {
	return filepath.Join(w.dir, FileName(prefix, node, w.now()))
}

// WriteOne writes a header row and a single record
func (w *Writer) WriteOne(path string, fields []string, rec models.Record) error {
	return writeRows(path, fields, []models.Record{rec})
}

// WriteAll writes a header row followed by one row per record. An empty list
// still produces the header.
func (w *Writer) WriteAll(path string, fields []string, recs []models.Record) error {
	return writeRows(path, fields, recs)
}

// writeRows truncates path and writes to it in place. A failure part way
// leaves a partial file behind.
func writeRows(path string, fields []string, recs []models.Record) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil {
			err = errors.Join(err, fmt.Errorf("failed to close %s: %w", path, cerr))
		}
	}()

	cw := csv.NewWriter(f)
	if err := cw.Write(fields); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	for i, rec := range recs {
		row := rec.Row()
		if len(row) != len(fields) {
			return fmt.Errorf("row %d: %w: got %d values for %d fields", i, ErrFieldMismatch, len(row), len(fields))
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write row %d: %w", i, err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("failed to flush %s: %w", path, err)
	}
	return nil
}
