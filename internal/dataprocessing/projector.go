package dataprocessing

import (
	"context"
	"log/slog"

	"cnjsaude/pkg/contracts/domain"
)

// ColumnProjector reduces retained rows to the fixed analysis-relevant
// column subset, in a fixed order. A required column absent from the
// source schema is filled with the neutral marker in every row; schema
// drift across independently exported court files is expected, never an
// error.
type ColumnProjector struct {
	logger  *slog.Logger
	columns []string
}

// NewColumnProjector creates a projector onto the given ordered columns.
func NewColumnProjector(logger *slog.Logger, columns []string) *ColumnProjector {
	if logger == nil {
		logger = slog.Default()
	}
	return &ColumnProjector{logger: logger, columns: columns}
}

// Project returns a new table whose header is exactly the configured
// column list. Missing source columns are reported once per table, not
// per row.
func (p *ColumnProjector) Project(ctx context.Context, table *domain.Table) *domain.Table {
	var missing []string
	for _, column := range p.columns {
		if !table.HasColumn(column) {
			missing = append(missing, column)
		}
	}
	if len(missing) > 0 {
		p.logger.WarnContext(ctx, "source schema missing projected columns, substituting neutral marker",
			slog.Any("columns", missing))
	}

	projected := domain.NewTable(p.columns)
	for _, row := range table.Rows {
		out := make([]string, len(p.columns))
		for i, column := range p.columns {
			out[i] = table.Value(row, column)
		}
		projected.AppendRow(out)
	}

	return projected
}
