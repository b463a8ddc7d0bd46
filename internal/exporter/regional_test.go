package exporter

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cnjsaude/internal/config"
	"cnjsaude/pkg/contracts/domain"
)

func testPaths(t *testing.T) *config.Paths {
	t.Helper()

	base := t.TempDir()
	paths := &config.Paths{
		DataDir:         filepath.Join(base, "AnaliseBR"),
		FilteredDir:     filepath.Join(base, "Output_AnaliseBR_Saude"),
		ReportsDir:      filepath.Join(base, "Output_reports"),
		LogsDir:         filepath.Join(base, "logs"),
		ConsolidatedCSV: filepath.Join(base, config.ConsolidatedFileName),
	}
	require.NoError(t, paths.EnsureOutputDirectories())
	return paths
}

func filteredDataset(group, source string, rows ...[]string) domain.FilteredDataset {
	table := domain.NewTable([]string{"Tribunal", "Ano"})
	for _, row := range rows {
		table.AppendRow(row)
	}
	return domain.FilteredDataset{Group: group, Source: source, Table: table}
}

func TestRegionalExporter_Export(t *testing.T) {
	paths := testPaths(t)
	regional := NewRegionalExporter(nil, NewCSVWriter(nil), paths)

	datasets := []domain.FilteredDataset{
		filteredDataset("NE", "TJBA", []string{"TJBA", "2023"}),
		filteredDataset("SE", "TJSP", []string{"TJSP", "2024"}),
	}

	written, err := regional.Export(context.Background(), datasets)
	require.NoError(t, err)
	require.Len(t, written, 2)

	assert.Equal(t, filepath.Join(paths.FilteredDir, "dados_saude_NE_TJBA.csv"), written[0])
	assert.Equal(t, filepath.Join(paths.FilteredDir, "dados_saude_SE_TJSP.csv"), written[1])

	for _, path := range written {
		_, err := os.Stat(path)
		assert.NoError(t, err)
	}
}

func TestRegionalExporter_SkipsEmptyDatasets(t *testing.T) {
	paths := testPaths(t)
	regional := NewRegionalExporter(nil, NewCSVWriter(nil), paths)

	datasets := []domain.FilteredDataset{
		filteredDataset("NE", "TJBA"),
		filteredDataset("NE", "TJCE", []string{"TJCE", "2023"}),
	}

	written, err := regional.Export(context.Background(), datasets)
	require.NoError(t, err)
	require.Len(t, written, 1)
	assert.Equal(t, filepath.Join(paths.FilteredDir, "dados_saude_NE_TJCE.csv"), written[0])

	_, err = os.Stat(filepath.Join(paths.FilteredDir, "dados_saude_NE_TJBA.csv"))
	assert.True(t, os.IsNotExist(err))
}
