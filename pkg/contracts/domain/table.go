package domain

// Table is a dynamic tabular dataset: an ordered header plus string rows.
// Court exports drift in schema across tribunals, so columns are resolved
// by name at access time instead of a rigid struct mapping.
type Table struct {
	Header []string   `json:"header"`
	Rows   [][]string `json:"rows"`
}

// NeutralMarker is the value substituted for any cell whose column is
// absent from a source schema.
const NeutralMarker = ""

// NewTable creates a table with the given header and no rows.
func NewTable(header []string) *Table {
	return &Table{Header: header}
}

// ColumnIndex returns the position of the named column, or -1 if the
// header does not contain it. Header cells are compared as-is; callers
// normalize at parse time.
func (t *Table) ColumnIndex(name string) int {
	for i, h := range t.Header {
		if h == name {
			return i
		}
	}
	return -1
}

// HasColumn reports whether the named column exists in the header.
func (t *Table) HasColumn(name string) bool {
	return t.ColumnIndex(name) >= 0
}

// Value returns the cell at (row, column name). A missing column or a
// short row yields the neutral marker, never an error.
func (t *Table) Value(row []string, name string) string {
	idx := t.ColumnIndex(name)
	if idx < 0 || idx >= len(row) {
		return NeutralMarker
	}
	return row[idx]
}

// Len returns the number of data rows.
func (t *Table) Len() int {
	return len(t.Rows)
}

// AppendRow adds a row, padding short rows to the header width with the
// neutral marker.
func (t *Table) AppendRow(row []string) {
	for len(row) < len(t.Header) {
		row = append(row, NeutralMarker)
	}
	t.Rows = append(t.Rows, row)
}
