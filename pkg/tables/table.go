package tables

import (
	"fmt"

	"github.com/sheetsmith/sheetsmith/pkg/errors"
)

// Table is an ordered sequence of named columns and an ordered sequence of
// rows. Every row holds exactly one Value (possibly missing) per column.
// Column names are unique within a table.
type Table struct {
	name    string
	columns []string
	index   map[string]int
	rows    [][]Value
}

// New creates an empty table with the given column names.
// Duplicate column names are rejected.
func New(columns []string) (*Table, error) {
	index := make(map[string]int, len(columns))
	for i, col := range columns {
		if _, dup := index[col]; dup {
			return nil, errors.NewValidationError("columns", col, fmt.Sprintf("duplicate column name %q", col))
		}
		index[col] = i
	}
	return &Table{
		columns: append([]string(nil), columns...),
		index:   index,
	}, nil
}

// MustNew is like New but panics on duplicate columns. Intended for tests
// and literals with known-good column lists.
func MustNew(columns ...string) *Table {
	t, err := New(columns)
	if err != nil {
		panic(err)
	}
	return t
}

// Name returns the source name of the table (file path or sheet name).
func (t *Table) Name() string {
	return t.name
}

// SetName sets the source name used in log and error context.
func (t *Table) SetName(name string) {
	t.name = name
}

// Columns returns a copy of the column names in order.
func (t *Table) Columns() []string {
	return append([]string(nil), t.columns...)
}

// NumCols returns the number of columns.
func (t *Table) NumCols() int {
	return len(t.columns)
}

// NumRows returns the number of rows.
func (t *Table) NumRows() int {
	return len(t.rows)
}

// HasColumn reports whether the named column exists.
func (t *Table) HasColumn(name string) bool {
	_, ok := t.index[name]
	return ok
}

// ColumnIndex returns the position of the named column.
func (t *Table) ColumnIndex(name string) (int, bool) {
	i, ok := t.index[name]
	return i, ok
}

// AppendRow appends a row. The row must have exactly one value per column.
func (t *Table) AppendRow(vals []Value) error {
	if len(vals) != len(t.columns) {
		return errors.NewValidationError("row", len(vals),
			fmt.Sprintf("row has %d values, table has %d columns", len(vals), len(t.columns)))
	}
	t.rows = append(t.rows, append([]Value(nil), vals...))
	return nil
}

// Row returns the i-th row. The returned slice is the table's backing
// storage; callers must not modify it.
func (t *Table) Row(i int) []Value {
	return t.rows[i]
}

// Value returns the cell at the given row and column.
func (t *Table) Value(row int, column string) (Value, bool) {
	i, ok := t.index[column]
	if !ok || row < 0 || row >= len(t.rows) {
		return Missing, false
	}
	return t.rows[row][i], true
}

// Reindex returns a new table with the given column order. Columns the
// table lacks are padded with missing values; columns not listed are
// dropped. Row order is preserved.
func (t *Table) Reindex(columns []string) *Table {
	out := MustNew(columns...)
	out.name = t.name
	src := make([]int, len(columns))
	for i, col := range columns {
		if j, ok := t.index[col]; ok {
			src[i] = j
		} else {
			src[i] = -1
		}
	}
	for _, row := range t.rows {
		vals := make([]Value, len(columns))
		for i, j := range src {
			if j >= 0 {
				vals[i] = row[j]
			} else {
				vals[i] = Missing
			}
		}
		out.rows = append(out.rows, vals)
	}
	return out
}

// Select returns a new table restricted to the given columns, which must
// all exist.
func (t *Table) Select(columns []string) (*Table, error) {
	for _, col := range columns {
		if !t.HasColumn(col) {
			return nil, errors.NewValidationError("columns", col, fmt.Sprintf("column %q not found", col))
		}
	}
	return t.Reindex(columns), nil
}

// Head returns a new table containing at most n rows from the top.
func (t *Table) Head(n int) *Table {
	if n < 0 || n >= len(t.rows) {
		return t.Clone()
	}
	out := MustNew(t.columns...)
	out.name = t.name
	for _, row := range t.rows[:n] {
		out.rows = append(out.rows, append([]Value(nil), row...))
	}
	return out
}

// Clone returns a deep copy of the table.
func (t *Table) Clone() *Table {
	out := MustNew(t.columns...)
	out.name = t.name
	out.rows = make([][]Value, 0, len(t.rows))
	for _, row := range t.rows {
		out.rows = append(out.rows, append([]Value(nil), row...))
	}
	return out
}

// RowValues returns the values for the named columns in the i-th row.
// Absent columns yield missing values.
func (t *Table) RowValues(i int, columns []string) []Value {
	vals := make([]Value, len(columns))
	for k, col := range columns {
		if j, ok := t.index[col]; ok {
			vals[k] = t.rows[i][j]
		} else {
			vals[k] = Missing
		}
	}
	return vals
}
