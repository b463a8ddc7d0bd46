package dataprocessing

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cnjsaude/internal/config"
	"cnjsaude/pkg/contracts/domain"
)

func newHealthFilter() *SubjectFilter {
	return NewSubjectFilter(nil, config.ColumnSubjectCodes, config.HealthSubjectCodes)
}

func subjectTable(cells ...string) *domain.Table {
	table := domain.NewTable([]string{config.ColumnProcess, config.ColumnSubjectCodes})
	for i, cell := range cells {
		table.AppendRow([]string{string(rune('a' + i)), cell})
	}
	return table
}

func TestSubjectFilter_RetainsAllowListedCodes(t *testing.T) {
	table := subjectTable("{12480}", "{99999}", "{12491, 99999}")

	filtered, stats := newHealthFilter().Filter(context.Background(), table)

	assert.Equal(t, 3, stats.RowsRead)
	assert.Equal(t, 2, stats.RowsRetained)
	assert.Equal(t, 0, stats.RowsSkipped)
	require.Equal(t, 2, filtered.Len())

	// Every retained row mentions at least one allow-listed code.
	for _, row := range filtered.Rows {
		codes := ExtractSubjectCodes(filtered.Value(row, config.ColumnSubjectCodes))
		matched := false
		for _, code := range codes {
			if config.HealthSubjectCodes[code] {
				matched = true
			}
		}
		assert.True(t, matched)
	}
}

func TestSubjectFilter_AnyCodeMatchSuffices(t *testing.T) {
	table := subjectTable("{99999, 12480}")

	filtered, stats := newHealthFilter().Filter(context.Background(), table)

	assert.Equal(t, 1, stats.RowsRetained)
	assert.Equal(t, 1, filtered.Len())
}

func TestSubjectFilter_SkipsRowsWithoutCodes(t *testing.T) {
	table := subjectTable("", "sem codigo", "{12480}")

	filtered, stats := newHealthFilter().Filter(context.Background(), table)

	assert.Equal(t, 2, stats.RowsSkipped)
	assert.Equal(t, 1, stats.RowsRetained)
	assert.Equal(t, 1, filtered.Len())
}

func TestSubjectFilter_MissingColumnSkipsEverything(t *testing.T) {
	table := domain.NewTable([]string{config.ColumnProcess})
	table.AppendRow([]string{"0001"})

	filtered, stats := newHealthFilter().Filter(context.Background(), table)

	assert.Equal(t, 1, stats.RowsSkipped)
	assert.Equal(t, 0, filtered.Len())
}

func TestSubjectFilter_PreservesRowOrder(t *testing.T) {
	table := subjectTable("{12480}", "{12481}", "{12482}")

	filtered, _ := newHealthFilter().Filter(context.Background(), table)

	require.Equal(t, 3, filtered.Len())
	assert.Equal(t, "a", filtered.Rows[0][0])
	assert.Equal(t, "b", filtered.Rows[1][0])
	assert.Equal(t, "c", filtered.Rows[2][0])
}

func TestSubjectFilter_InputTableUnchanged(t *testing.T) {
	table := subjectTable("{12480}", "{99999}")

	newHealthFilter().Filter(context.Background(), table)

	assert.Equal(t, 2, table.Len())
}
