package exporter

import (
	"encoding/csv"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"cnjsaude/internal/errors"
	"cnjsaude/pkg/contracts/domain"
)

// CSVWriter writes semicolon-separated UTF-8 CSV files the way the CNJ
// exports are shaped, with a BOM so spreadsheet tools pick up the
// encoding. Every write goes to a temporary file in the target
// directory and is renamed into place, so a crash mid-write never
// leaves a half-written file at the final path.
type CSVWriter struct {
	logger *slog.Logger
}

// NewCSVWriter creates a new CSV writer instance.
func NewCSVWriter(logger *slog.Logger) *CSVWriter {
	if logger == nil {
		logger = slog.Default()
	}
	return &CSVWriter{logger: logger}
}

// WriteTable writes header and rows to the given path, replacing any
// existing file.
func (w *CSVWriter) WriteTable(path string, table *domain.Table) error {
	return w.WriteRecords(path, table.Header, table.Rows)
}

// WriteRecords writes a header row (if non-empty) followed by records.
func (w *CSVWriter) WriteRecords(path string, header []string, records [][]string) error {
	w.logger.Debug("writing CSV file",
		slog.String("path", path),
		slog.Int("record_count", len(records)))

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return errors.NewStorageError("failed to create directory "+dir, err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp*")
	if err != nil {
		return errors.NewStorageError("failed to create temporary file in "+dir, err)
	}
	tmpPath := tmp.Name()

	if err := writeCSVContent(tmp, header, records); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return errors.NewStorageError("failed to close temporary file "+tmpPath, err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return errors.NewStorageError("failed to move output into place at "+path, err)
	}

	return nil
}

// writeCSVContent writes BOM, header and records to an open file.
func writeCSVContent(file *os.File, header []string, records [][]string) error {
	if _, err := file.Write([]byte{0xEF, 0xBB, 0xBF}); err != nil {
		return errors.NewStorageError("failed to write BOM", err)
	}

	writer := csv.NewWriter(file)
	writer.Comma = ';'

	if len(header) > 0 {
		if err := writer.Write(header); err != nil {
			return errors.NewStorageError("failed to write header row", err)
		}
	}

	for i, record := range records {
		if err := writer.Write(record); err != nil {
			return errors.NewStorageError(fmt.Sprintf("failed to write record %d", i), err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return errors.NewStorageError("failed to flush CSV output", err)
	}
	return nil
}
