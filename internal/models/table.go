package models

import "fmt"

// RecordTable is an ordered tabular dataset: a shared column list and one
// cell slice per row. Cells are kept as strings exactly as parsed from the
// source file; numeric interpretation is deferred to the conversion pipeline.
// Column order is significant and is preserved through conversion and export.
type RecordTable struct {
	Columns []string   `json:"columns"`
	Rows    [][]string `json:"rows"`
}

// ColumnIndex returns the position of the named column, or -1 if absent.
func (t *RecordTable) ColumnIndex(name string) int {
	for i, col := range t.Columns {
		if col == name {
			return i
		}
	}
	return -1
}

// HasColumn reports whether the named column exists.
func (t *RecordTable) HasColumn(name string) bool {
	return t.ColumnIndex(name) >= 0
}

// Clone returns a deep copy of the table. Conversion operates on a clone so
// that the caller's table is untouched when a conversion fails partway.
func (t *RecordTable) Clone() *RecordTable {
	out := &RecordTable{
		Columns: make([]string, len(t.Columns)),
		Rows:    make([][]string, len(t.Rows)),
	}
	copy(out.Columns, t.Columns)
	for i, row := range t.Rows {
		out.Rows[i] = make([]string, len(row))
		copy(out.Rows[i], row)
	}
	return out
}

// NormalizeWidth makes the table rectangular: rows shorter than the column
// list gain empty cells and longer rows lose the excess, the same treatment
// the file codecs give ragged input.
func (t *RecordTable) NormalizeWidth() {
	for i, row := range t.Rows {
		if len(row) != len(t.Columns) {
			normalized := make([]string, len(t.Columns))
			copy(normalized, row)
			t.Rows[i] = normalized
		}
	}
}

// AppendColumn adds a column with one value per row. If a column with the
// same name already exists its values are overwritten in place. The number
// of values must equal the number of rows.
func (t *RecordTable) AppendColumn(name string, values []string) error {
	if len(values) != len(t.Rows) {
		return fmt.Errorf("models: column %s has %d values for %d rows", name, len(values), len(t.Rows))
	}
	if idx := t.ColumnIndex(name); idx >= 0 {
		for i := range t.Rows {
			t.Rows[i][idx] = values[i]
		}
		return nil
	}
	t.Columns = append(t.Columns, name)
	for i := range t.Rows {
		t.Rows[i] = append(t.Rows[i], values[i])
	}
	return nil
}
