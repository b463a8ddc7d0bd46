package exporter

import (
	"context"
	"log/slog"

	"cnjsaude/internal/config"
	"cnjsaude/pkg/contracts/domain"
)

// RegionalExporter persists per-source filtered extracts into the
// filtered output directory. Datasets with no retained rows are not
// written; empty extract files carry no information and clutter the
// consolidation input.
type RegionalExporter struct {
	logger *slog.Logger
	writer *CSVWriter
	paths  *config.Paths
}

// NewRegionalExporter creates a regional exporter writing through the
// given CSV writer into paths.FilteredDir.
func NewRegionalExporter(logger *slog.Logger, writer *CSVWriter, paths *config.Paths) *RegionalExporter {
	if logger == nil {
		logger = slog.Default()
	}
	return &RegionalExporter{logger: logger, writer: writer, paths: paths}
}

// Export writes each non-empty dataset to its deterministic output
// path. It returns the paths written, in input order.
func (e *RegionalExporter) Export(ctx context.Context, datasets []domain.FilteredDataset) ([]string, error) {
	written := make([]string, 0, len(datasets))
	for _, ds := range datasets {
		if ds.Table == nil || ds.Table.Len() == 0 {
			e.logger.InfoContext(ctx, "skipping empty filtered dataset",
				slog.String("group", ds.Group),
				slog.String("source", ds.Source))
			continue
		}

		path := e.paths.GetFilteredPath(ds.OutputName())
		if err := e.writer.WriteTable(path, ds.Table); err != nil {
			return written, err
		}

		e.logger.InfoContext(ctx, "wrote filtered extract",
			slog.String("group", ds.Group),
			slog.String("source", ds.Source),
			slog.String("path", path),
			slog.Int("rows", ds.Table.Len()))
		written = append(written, path)
	}

	return written, nil
}
