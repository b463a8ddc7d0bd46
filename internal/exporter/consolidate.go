package exporter

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"

	"cnjsaude/internal/dataprocessing"
	"cnjsaude/internal/errors"
	"cnjsaude/pkg/contracts/domain"
)

// Consolidator merges the regional filtered extracts into a single
// national CSV. Column order in the merged file follows the order in
// which columns are first encountered across the inputs; rows from
// files missing a column carry the neutral marker in that position.
type Consolidator struct {
	logger *slog.Logger
	writer *CSVWriter
}

// NewConsolidator creates a consolidator writing through the given
// CSV writer.
func NewConsolidator(logger *slog.Logger, writer *CSVWriter) *Consolidator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Consolidator{logger: logger, writer: writer}
}

// Consolidate reads the given extract files, merges them and writes
// the result to outputPath. It fails when no input can be read; a
// pipeline that filtered nothing has nothing to analyze downstream.
func (c *Consolidator) Consolidate(ctx context.Context, inputPaths []string, outputPath string) (*domain.Table, error) {
	merged := &domain.Table{}
	inputsRead := 0

	for _, path := range inputPaths {
		table, err := c.readExtract(path)
		if err != nil {
			c.logger.WarnContext(ctx, "skipping unreadable extract",
				slog.String("path", path),
				slog.String("error", err.Error()))
			continue
		}
		inputsRead++
		appendColumns(merged, table.Header)
		for _, row := range table.Rows {
			merged.AppendRow(projectRow(table, row, merged.Header))
		}
	}

	if inputsRead == 0 {
		return nil, errors.NewConsolidationError("no filtered extracts could be read")
	}

	padRows(merged)

	if err := c.writer.WriteTable(outputPath, merged); err != nil {
		return nil, err
	}

	c.logger.InfoContext(ctx, "wrote consolidated extract",
		slog.String("path", outputPath),
		slog.Int("inputs", inputsRead),
		slog.Int("rows", merged.Len()),
		slog.Int("columns", len(merged.Header)))

	return merged, nil
}

func (c *Consolidator) readExtract(path string) (*domain.Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.NewStorageError("failed to read "+filepath.Base(path), err)
	}
	return dataprocessing.ParseCSV(data)
}

// appendColumns adds any columns of header not yet present in the
// merged table, preserving first-encountered order. Rows stored before
// the header grew stay short until padRows runs.
func appendColumns(merged *domain.Table, header []string) {
	for _, col := range header {
		if !merged.HasColumn(col) {
			merged.Header = append(merged.Header, col)
		}
	}
}

// padRows extends every row to the final header width with the
// neutral marker so the written CSV is rectangular.
func padRows(merged *domain.Table) {
	width := len(merged.Header)
	for i, row := range merged.Rows {
		for len(row) < width {
			row = append(row, domain.NeutralMarker)
		}
		merged.Rows[i] = row
	}
}

// projectRow reorders a source row into the target column order,
// filling columns the source table lacks with the neutral marker.
func projectRow(table *domain.Table, row []string, columns []string) []string {
	out := make([]string, len(columns))
	for j, col := range columns {
		out[j] = table.Value(row, col)
	}
	return out
}
