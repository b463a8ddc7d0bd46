package dataprocessing

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cnjsaude/internal/config"
	"cnjsaude/pkg/contracts/domain"
)

func newTestAnalyzer(columns []string) *Analyzer {
	return NewAnalyzer(nil, AnalyzerConfig{
		Columns:           columns,
		EntityColumn:      config.ColumnPassiveNature,
		EntityKeywords:    config.PublicEntityKeywords,
		ConfidentialValue: config.ConfidentialValue,
	})
}

func analysisTable(rows ...[]string) *domain.Table {
	table := domain.NewTable([]string{config.ColumnCourt, config.ColumnPassiveNature})
	for _, row := range rows {
		table.AppendRow(row)
	}
	return table
}

func TestAnalyzer_CountsAndPercentages(t *testing.T) {
	table := analysisTable(
		[]string{"TJSP", "Pessoa fisica"},
		[]string{"TJSP", "Pessoa fisica"},
		[]string{"TJRJ", "Pessoa fisica"},
		[]string{"TJMG", "Pessoa fisica"},
	)

	tables := newTestAnalyzer([]string{config.ColumnCourt}).
		Analyze(context.Background(), table, "Consolidado", domain.SubsetAll)
	require.Len(t, tables, 1)

	ft := tables[0]
	assert.Equal(t, 4, ft.Total)
	require.Len(t, ft.Entries, 3)

	assert.Equal(t, "TJSP", ft.Entries[0].Value)
	assert.Equal(t, 2, ft.Entries[0].Count)
	assert.InDelta(t, 50.0, ft.Entries[0].Percent, 0.001)

	// Counts sum to the total.
	sum := 0
	for _, entry := range ft.Entries {
		sum += entry.Count
	}
	assert.Equal(t, ft.Total, sum)
}

func TestAnalyzer_TieBreakIsLexicographic(t *testing.T) {
	table := analysisTable(
		[]string{"TJRJ", ""},
		[]string{"TJMG", ""},
		[]string{"TJSP", ""},
		[]string{"TJSP", ""},
	)

	tables := newTestAnalyzer([]string{config.ColumnCourt}).
		Analyze(context.Background(), table, "Consolidado", domain.SubsetAll)

	entries := tables[0].Entries
	require.Len(t, entries, 3)
	assert.Equal(t, "TJSP", entries[0].Value)
	assert.Equal(t, "TJMG", entries[1].Value)
	assert.Equal(t, "TJRJ", entries[2].Value)
}

func TestAnalyzer_ExplodesMultiValueCells(t *testing.T) {
	table := analysisTable(
		[]string{"{TJSP, TJRJ}", ""},
		[]string{"TJSP", ""},
	)

	tables := newTestAnalyzer([]string{config.ColumnCourt}).
		Analyze(context.Background(), table, "Consolidado", domain.SubsetAll)

	ft := tables[0]
	assert.Equal(t, 3, ft.Total)
	require.Len(t, ft.Entries, 2)
	assert.Equal(t, "TJSP", ft.Entries[0].Value)
	assert.Equal(t, 2, ft.Entries[0].Count)
}

func TestAnalyzer_ConfidentialCountedSeparately(t *testing.T) {
	table := analysisTable(
		[]string{"SIGILOSO", ""},
		[]string{"sigiloso", ""},
		[]string{"TJSP", ""},
	)

	tables := newTestAnalyzer([]string{config.ColumnCourt}).
		Analyze(context.Background(), table, "Consolidado", domain.SubsetAll)

	ft := tables[0]
	assert.Equal(t, 2, ft.Confidential)
	assert.Equal(t, 3, ft.Total)
	require.Len(t, ft.Entries, 1)
	assert.Equal(t, "TJSP", ft.Entries[0].Value)
}

func TestAnalyzer_PublicEntitySubset(t *testing.T) {
	table := analysisTable(
		[]string{"TJSP", "Municipio de Sao Paulo"},
		[]string{"TJSP", "Pessoa fisica"},
		[]string{"TJRJ", "{Pessoa fisica, Autarquia Estadual}"},
		[]string{"TJMG", "Pessoa juridica de direito privado"},
	)

	analyzer := newTestAnalyzer([]string{config.ColumnCourt})

	all := analyzer.Analyze(context.Background(), table, "Consolidado", domain.SubsetAll)[0]
	subset := analyzer.Analyze(context.Background(), table, "Consolidado", domain.SubsetPublicEntity)[0]

	assert.Equal(t, 4, all.Total)
	assert.Equal(t, 2, subset.Total)

	// The subset never counts a value more often than the full set.
	allCounts := make(map[string]int)
	for _, entry := range all.Entries {
		allCounts[entry.Value] = entry.Count
	}
	for _, entry := range subset.Entries {
		assert.LessOrEqual(t, entry.Count, allCounts[entry.Value])
	}
}

func TestAnalyzer_EmptySubsetYieldsEmptyTable(t *testing.T) {
	table := analysisTable(
		[]string{"TJSP", "Pessoa fisica"},
	)

	tables := newTestAnalyzer([]string{config.ColumnCourt}).
		Analyze(context.Background(), table, "Consolidado", domain.SubsetPublicEntity)

	ft := tables[0]
	assert.True(t, ft.Empty())
	assert.Equal(t, 0, ft.Total)
	assert.Empty(t, ft.Entries)
}

func TestAnalyzer_OneTablePerColumn(t *testing.T) {
	table := analysisTable(
		[]string{"TJSP", "Pessoa fisica"},
	)

	columns := []string{config.ColumnCourt, config.ColumnPassiveNature}
	tables := newTestAnalyzer(columns).
		Analyze(context.Background(), table, "Consolidado", domain.SubsetAll)

	require.Len(t, tables, 2)
	assert.Equal(t, config.ColumnCourt, tables[0].Column)
	assert.Equal(t, config.ColumnPassiveNature, tables[1].Column)
	for _, ft := range tables {
		assert.Equal(t, "Consolidado", ft.Context)
		assert.Equal(t, domain.SubsetAll, ft.Subset)
	}
}

func TestAnalyzer_IsPublicEntityDefendant(t *testing.T) {
	table := analysisTable()

	analyzer := newTestAnalyzer([]string{config.ColumnCourt})

	assert.True(t, analyzer.IsPublicEntityDefendant(table, []string{"TJSP", "Uniao Federal"}))
	assert.False(t, analyzer.IsPublicEntityDefendant(table, []string{"TJSP", "Pessoa fisica"}))
	assert.False(t, analyzer.IsPublicEntityDefendant(table, []string{"TJSP", ""}))
}
