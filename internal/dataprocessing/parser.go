package dataprocessing

import (
	"bytes"
	"encoding/csv"
	"strings"

	"cnjsaude/internal/errors"
	"cnjsaude/pkg/contracts/domain"
)

// utf8BOM is stripped before parsing; some court exports carry it, some
// don't.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// ParseCSV reads a semicolon-separated CNJ export into a Table. The
// first record is the header; header cells are whitespace-trimmed
// because the exports are inconsistent about padding. Ragged data rows
// are tolerated: short rows are padded with the neutral marker, long
// rows are kept as-is and the extra cells ignored at projection time.
func ParseCSV(data []byte) (*domain.Table, error) {
	data = bytes.TrimPrefix(data, utf8BOM)

	reader := csv.NewReader(bytes.NewReader(data))
	reader.Comma = ';'
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, errors.NewParsingError("failed to parse CSV data", err)
	}
	if len(records) == 0 {
		return nil, errors.NewParsingError("CSV data has no header row", nil)
	}

	header := make([]string, len(records[0]))
	for i, cell := range records[0] {
		header[i] = strings.TrimSpace(cell)
	}

	table := domain.NewTable(header)
	for _, row := range records[1:] {
		table.AppendRow(row)
	}

	return table, nil
}
