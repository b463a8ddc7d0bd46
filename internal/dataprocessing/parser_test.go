package dataprocessing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "cnjsaude/internal/errors"
)

func TestParseCSV(t *testing.T) {
	data := []byte("Tribunal;Processo;Ano\nTJSP;0001;2023\nTJRJ;0002;2024\n")

	table, err := ParseCSV(data)
	require.NoError(t, err)

	assert.Equal(t, []string{"Tribunal", "Processo", "Ano"}, table.Header)
	require.Equal(t, 2, table.Len())
	assert.Equal(t, []string{"TJSP", "0001", "2023"}, table.Rows[0])
	assert.Equal(t, []string{"TJRJ", "0002", "2024"}, table.Rows[1])
}

func TestParseCSV_StripsBOM(t *testing.T) {
	data := append([]byte{0xEF, 0xBB, 0xBF}, []byte("Tribunal;Ano\nTJSP;2023\n")...)

	table, err := ParseCSV(data)
	require.NoError(t, err)

	assert.Equal(t, "Tribunal", table.Header[0])
}

func TestParseCSV_RaggedRows(t *testing.T) {
	data := []byte("Tribunal;Processo;Ano\nTJSP;0001\nTJRJ;0002;2024;extra\n")

	table, err := ParseCSV(data)
	require.NoError(t, err)
	require.Equal(t, 2, table.Len())

	// Short rows come back through Value as the neutral marker.
	assert.Equal(t, "", table.Value(table.Rows[0], "Ano"))
	assert.Equal(t, "2024", table.Value(table.Rows[1], "Ano"))
}

func TestParseCSV_TrimsHeaderWhitespace(t *testing.T) {
	data := []byte(" Tribunal ; Ano \nTJSP;2023\n")

	table, err := ParseCSV(data)
	require.NoError(t, err)

	assert.Equal(t, []string{"Tribunal", "Ano"}, table.Header)
}

func TestParseCSV_QuotedSemicolons(t *testing.T) {
	data := []byte("Tribunal;Polo passivo\nTJSP;\"Municipio; Estado\"\n")

	table, err := ParseCSV(data)
	require.NoError(t, err)
	require.Equal(t, 1, table.Len())

	assert.Equal(t, "Municipio; Estado", table.Value(table.Rows[0], "Polo passivo"))
}

func TestParseCSV_Empty(t *testing.T) {
	_, err := ParseCSV(nil)
	require.Error(t, err)
	assert.True(t, apperrors.IsType(err, apperrors.ErrTypeParsing))
}
