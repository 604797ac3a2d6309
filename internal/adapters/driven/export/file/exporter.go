// Package file writes results to JSON and CSV files on local disk.
package file

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/custodia-labs/ecourts-cli/internal/core/domain"
	"github.com/custodia-labs/ecourts-cli/internal/core/ports/driven"
	"github.com/custodia-labs/ecourts-cli/internal/logger"
)

const (
	dirPerm  = 0o755
	filePerm = 0o644
)

var _ driven.Exporter = (*Exporter)(nil)

// Exporter writes base.json for every result and base.csv for tabular
// results with at least one row.
type Exporter struct{}

// NewExporter creates a file exporter.
func NewExporter() *Exporter {
	return &Exporter{}
}

// Export writes result under base. Failures are logged and reported as false.
func (e *Exporter) Export(result any, base string) bool {
	if err := e.export(result, base); err != nil {
		logger.Error("%v", err)
		return false
	}
	return true
}

func (e *Exporter) export(result any, base string) error {
	if err := os.MkdirAll(filepath.Dir(base), dirPerm); err != nil {
		return fmt.Errorf("%w: create directory: %w", domain.ErrExport, err)
	}

	if err := writeJSON(result, base+".json"); err != nil {
		return err
	}

	tab, ok := result.(domain.Tabular)
	if !ok {
		return nil
	}
	rows := tab.Rows()
	if len(rows) == 0 {
		return nil
	}
	return writeCSV(rows, base+".csv")
}

func writeJSON(result any, path string) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(result); err != nil {
		return fmt.Errorf("%w: encode %s: %w", domain.ErrExport, filepath.Base(path), err)
	}
	if err := os.WriteFile(path, buf.Bytes(), filePerm); err != nil {
		return fmt.Errorf("%w: write %s: %w", domain.ErrExport, path, err)
	}
	logger.Debug("wrote %s", path)
	return nil
}

// writeCSV uses the first row's columns as the header. Later rows leave
// missing columns empty and drop keys the header does not name.
func writeCSV(rows []domain.CauseListEntry, path string) error {
	header := rows[0].Columns()
	known := make(map[string]bool, len(header))
	for _, c := range header {
		known[c] = true
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(header); err != nil {
		return fmt.Errorf("%w: encode %s: %w", domain.ErrExport, filepath.Base(path), err)
	}

	record := make([]string, len(header))
	for i, row := range rows {
		for k := range row {
			if !known[k] {
				logger.Warn("row %d: dropping column %q not in header", i+1, k)
			}
		}
		for j, c := range header {
			record[j] = row[c]
		}
		if err := w.Write(record); err != nil {
			return fmt.Errorf("%w: encode %s: %w", domain.ErrExport, filepath.Base(path), err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("%w: encode %s: %w", domain.ErrExport, filepath.Base(path), err)
	}

	if err := os.WriteFile(path, buf.Bytes(), filePerm); err != nil {
		return fmt.Errorf("%w: write %s: %w", domain.ErrExport, path, err)
	}
	logger.Debug("wrote %s", path)
	return nil
}
