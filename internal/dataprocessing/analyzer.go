package dataprocessing

import (
	"context"
	"log/slog"
	"math"
	"sort"
	"strings"

	"cnjsaude/pkg/contracts/domain"
)

// Analyzer computes count and percentage distributions over the
// configured categorical columns, for two record subsets: every filtered
// case, and the cases whose passive party is a public health-system
// entity. Pure aggregation, no state between calls.
type Analyzer struct {
	logger       *slog.Logger
	columns      []string
	entityColumn string
	keywords     []string
	confidential string
}

// AnalyzerConfig holds the analyzer's fixed dimensions.
type AnalyzerConfig struct {
	// Columns are the categorical columns to distribute, in
	// presentation order.
	Columns []string
	// EntityColumn is the passive-party legal-nature column the
	// public-entity subset is derived from.
	EntityColumn string
	// EntityKeywords mark a legal nature as a public entity.
	EntityKeywords []string
	// ConfidentialValue is tallied separately from real categories.
	ConfidentialValue string
}

// NewAnalyzer creates an analyzer with the given configuration.
func NewAnalyzer(logger *slog.Logger, cfg AnalyzerConfig) *Analyzer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Analyzer{
		logger:       logger,
		columns:      cfg.Columns,
		entityColumn: cfg.EntityColumn,
		keywords:     cfg.EntityKeywords,
		confidential: strings.ToUpper(cfg.ConfidentialValue),
	}
}

// IsPublicEntityDefendant reports whether a row's passive-party legal
// nature matches a public-entity pattern. This is the derived
// qualifying flag behind the second analysis tier.
func (a *Analyzer) IsPublicEntityDefendant(table *domain.Table, row []string) bool {
	return ContainsAnyKeyword(table.Value(row, a.entityColumn), a.keywords)
}

// Analyze computes one FrequencyTable per configured column over the
// requested subset of the table. Multi-valued cells are exploded into
// individual occurrences before counting. An empty subset produces
// empty tables with no percentages. Entries are sorted by descending
// count, ties broken by ascending value.
func (a *Analyzer) Analyze(ctx context.Context, table *domain.Table, contextLabel string, subset domain.Subset) []*domain.FrequencyTable {
	rows := table.Rows
	if subset == domain.SubsetPublicEntity {
		rows = a.selectPublicEntityRows(table)
	}

	a.logger.InfoContext(ctx, "analyzing frequencies",
		slog.String("context", contextLabel),
		slog.String("subset", string(subset)),
		slog.Int("row_count", len(rows)))

	tables := make([]*domain.FrequencyTable, 0, len(a.columns))
	for _, column := range a.columns {
		tables = append(tables, a.analyzeColumn(table, rows, contextLabel, column, subset))
	}
	return tables
}

// selectPublicEntityRows returns the rows with the qualifying flag set,
// preserving order so the subset stays a row-level subset of the whole.
func (a *Analyzer) selectPublicEntityRows(table *domain.Table) [][]string {
	var selected [][]string
	for _, row := range table.Rows {
		if a.IsPublicEntityDefendant(table, row) {
			selected = append(selected, row)
		}
	}
	return selected
}

// analyzeColumn counts exploded occurrences of one column over the
// given rows.
func (a *Analyzer) analyzeColumn(table *domain.Table, rows [][]string, contextLabel, column string, subset domain.Subset) *domain.FrequencyTable {
	counts := make(map[string]int)
	confidential := 0

	for _, row := range rows {
		for _, value := range SplitMultiValue(table.Value(row, column)) {
			if strings.ToUpper(value) == a.confidential {
				confidential++
			} else {
				counts[value]++
			}
		}
	}

	total := confidential
	for _, count := range counts {
		total += count
	}

	result := &domain.FrequencyTable{
		Context:      contextLabel,
		Column:       column,
		Subset:       subset,
		Confidential: confidential,
		Total:        total,
	}
	if total == 0 {
		return result
	}

	result.Entries = make([]domain.FrequencyEntry, 0, len(counts))
	for value, count := range counts {
		result.Entries = append(result.Entries, domain.FrequencyEntry{
			Value:   value,
			Count:   count,
			Percent: roundPercent(count, total),
		})
	}

	sort.Slice(result.Entries, func(i, j int) bool {
		if result.Entries[i].Count != result.Entries[j].Count {
			return result.Entries[i].Count > result.Entries[j].Count
		}
		return result.Entries[i].Value < result.Entries[j].Value
	})

	return result
}

// roundPercent computes 100*count/total rounded to two decimal places,
// matching the export convention.
func roundPercent(count, total int) float64 {
	return math.Round(float64(count)/float64(total)*10000) / 100
}
