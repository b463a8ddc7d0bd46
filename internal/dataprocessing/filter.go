package dataprocessing

import (
	"context"
	"log/slog"

	"cnjsaude/pkg/contracts/domain"
)

// SubjectFilter retains case rows whose subject-code cell mentions at
// least one allow-listed code. Pure transform: input tables are never
// mutated and original row order is preserved.
type SubjectFilter struct {
	logger        *slog.Logger
	subjectColumn string
	allowList     map[int]bool
}

// FilterStats reports what one filter pass did.
type FilterStats struct {
	RowsRead     int
	RowsRetained int
	// RowsSkipped counts rows dropped because the subject cell was
	// missing or held no parsable code. Logged, never an error.
	RowsSkipped int
}

// NewSubjectFilter creates a filter over the given subject-code column
// and allow-list.
func NewSubjectFilter(logger *slog.Logger, subjectColumn string, allowList map[int]bool) *SubjectFilter {
	if logger == nil {
		logger = slog.Default()
	}
	return &SubjectFilter{
		logger:        logger,
		subjectColumn: subjectColumn,
		allowList:     allowList,
	}
}

// Filter returns the subsequence of rows whose subject-code cell
// contains an allow-listed code. Rows with no parsable subject code are
// dropped and counted as skipped.
func (f *SubjectFilter) Filter(ctx context.Context, table *domain.Table) (*domain.Table, FilterStats) {
	stats := FilterStats{RowsRead: table.Len()}

	filtered := domain.NewTable(table.Header)
	for _, row := range table.Rows {
		codes := ExtractSubjectCodes(table.Value(row, f.subjectColumn))
		if len(codes) == 0 {
			stats.RowsSkipped++
			continue
		}

		if f.matchesAllowList(codes) {
			filtered.AppendRow(row)
			stats.RowsRetained++
		}
	}

	f.logger.DebugContext(ctx, "subject filter pass complete",
		slog.Int("rows_read", stats.RowsRead),
		slog.Int("rows_retained", stats.RowsRetained),
		slog.Int("rows_skipped", stats.RowsSkipped))

	return filtered, stats
}

func (f *SubjectFilter) matchesAllowList(codes []int) bool {
	for _, code := range codes {
		if f.allowList[code] {
			return true
		}
	}
	return false
}
