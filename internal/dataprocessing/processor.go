package dataprocessing

import (
	"context"
	"log/slog"

	"cnjsaude/internal/archive"
	"cnjsaude/pkg/contracts/domain"
)

// Processor runs the per-source-group stages of the extraction
// pipeline: archive extraction, CSV parsing, subject filtering and
// column projection. Output datasets are handed to the exporter; the
// processor holds no state between groups.
type Processor struct {
	logger    *slog.Logger
	filter    *SubjectFilter
	projector *ColumnProjector
}

// ProcessStats accumulates what a batch pass did, for the end-of-run
// report. Skipped archives do not change the exit status.
type ProcessStats struct {
	ArchivesRead    int
	ArchivesSkipped int
	TablesRead      int
	RowsRead        int
	RowsRetained    int
	RowsSkipped     int
}

// Add merges per-table filter stats into the batch totals.
func (s *ProcessStats) Add(fs FilterStats) {
	s.RowsRead += fs.RowsRead
	s.RowsRetained += fs.RowsRetained
	s.RowsSkipped += fs.RowsSkipped
}

// NewProcessor creates a processor from its stage components.
func NewProcessor(logger *slog.Logger, filter *SubjectFilter, projector *ColumnProjector) *Processor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Processor{
		logger:    logger,
		filter:    filter,
		projector: projector,
	}
}

// ProcessGroup runs every archive of one source group through the
// pipeline and returns the filtered, projected datasets in archive
// order. A corrupt archive is reported and skipped; a single bad
// archive never aborts the batch.
func (p *Processor) ProcessGroup(ctx context.Context, group domain.SourceGroup, stats *ProcessStats) []domain.FilteredDataset {
	p.logger.InfoContext(ctx, "processing source group",
		slog.String("group", group.Name),
		slog.Int("archive_count", len(group.Archives)))

	var datasets []domain.FilteredDataset
	for _, archivePath := range group.Archives {
		members, err := archive.ExtractTables(archivePath)
		if err != nil {
			stats.ArchivesSkipped++
			p.logger.ErrorContext(ctx, "skipping unreadable archive",
				slog.String("group", group.Name),
				slog.String("archive", archivePath),
				slog.String("error", err.Error()))
			continue
		}
		stats.ArchivesRead++

		for _, member := range members {
			dataset, ok := p.processMember(ctx, group.Name, member, stats)
			if ok {
				datasets = append(datasets, dataset)
			}
		}
	}

	return datasets
}

// processMember filters and projects one extracted CSV member.
func (p *Processor) processMember(ctx context.Context, groupName string, member archive.Member, stats *ProcessStats) (domain.FilteredDataset, bool) {
	table, err := ParseCSV(member.Data)
	if err != nil {
		p.logger.ErrorContext(ctx, "skipping unparsable CSV member",
			slog.String("group", groupName),
			slog.String("member", member.Name),
			slog.String("error", err.Error()))
		return domain.FilteredDataset{}, false
	}
	stats.TablesRead++

	filtered, filterStats := p.filter.Filter(ctx, table)
	stats.Add(filterStats)

	p.logger.InfoContext(ctx, "filtered CSV member",
		slog.String("group", groupName),
		slog.String("member", member.Name),
		slog.Int("rows_read", filterStats.RowsRead),
		slog.Int("rows_retained", filterStats.RowsRetained))

	return domain.FilteredDataset{
		Group:  groupName,
		Source: member.Stem(),
		Table:  p.projector.Project(ctx, filtered),
	}, true
}
