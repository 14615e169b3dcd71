// Package union concatenates tables row-wise, reconciling differing
// column sets and optionally removing duplicate rows.
package union

import (
	"fmt"

	"github.com/sheetsmith/sheetsmith/pkg/errors"
	"github.com/sheetsmith/sheetsmith/pkg/logging"
	"github.com/sheetsmith/sheetsmith/pkg/tables"
)

// union holds the resolved options for one union call.
type union struct {
	dedupe        bool
	dedupeColumns []string
	strictColumns bool
	chunkSize     int
	progress      bool
}

func newUnion(opts []Option) *union {
	u := &union{}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

// Columns computes the reconciled column set of a union: the first
// table's columns, then any new names from later tables in encounter
// order.
func Columns(tbls []*tables.Table) []string {
	var out []string
	seen := make(map[string]bool)
	for _, t := range tbls {
		for _, col := range t.Columns() {
			if !seen[col] {
				seen[col] = true
				out = append(out, col)
			}
		}
	}
	return out
}

// Tables concatenates the rows of every input table, in input order.
// Inputs with differing column sets are padded with missing values for
// the columns they lack; this is a warning-level condition, never an
// error, unless WithStrictColumns is set.
func Tables(tbls []*tables.Table, opts ...Option) (*tables.Table, error) {
	u := newUnion(opts)

	if len(tbls) == 0 {
		return nil, errors.NewEmptyInputError("union")
	}

	if u.strictColumns {
		if err := validateStrictColumns(tbls); err != nil {
			return nil, err
		}
	}

	cols := Columns(tbls)
	if mismatched(tbls, cols) {
		logging.Warn().
			Strs("columns", cols).
			Msg("Column mismatch between inputs, padding missing columns")
	}

	out := tables.MustNew(cols...)
	for _, t := range tbls {
		aligned := t.Reindex(cols)
		for i := 0; i < aligned.NumRows(); i++ {
			if err := out.AppendRow(aligned.Row(i)); err != nil {
				return nil, err
			}
		}
	}
	logging.Debug().Int("inputs", len(tbls)).Int("rows", out.NumRows()).Msg("Concatenated tables")

	if u.dedupe {
		deduped, removed, err := Deduplicate(out, u.dedupeColumns)
		if err != nil {
			return nil, err
		}
		logging.Info().Int("removed", removed).Msg("Removed duplicate rows (keeping first occurrence)")
		return deduped, nil
	}
	return out, nil
}

// Deduplicate removes duplicate rows from a table, keeping the first
// occurrence. When columns is non-empty, only those columns participate
// in duplicate detection; they must exist in the table. Returns the
// deduplicated table and the number of rows removed.
func Deduplicate(t *tables.Table, columns []string) (*tables.Table, int, error) {
	if len(columns) == 0 {
		columns = t.Columns()
	} else {
		for _, col := range columns {
			if !t.HasColumn(col) {
				return nil, 0, errors.NewValidationError("dedupe-columns", col,
					fmt.Sprintf("column %q not found", col))
			}
		}
	}

	out := tables.MustNew(t.Columns()...)
	out.SetName(t.Name())
	seen := make(map[string]bool, t.NumRows())
	removed := 0
	for i := 0; i < t.NumRows(); i++ {
		key := tables.RowKey(t.RowValues(i, columns))
		if seen[key] {
			removed++
			continue
		}
		seen[key] = true
		if err := out.AppendRow(t.Row(i)); err != nil {
			return nil, 0, err
		}
	}
	return out, removed, nil
}

// validateStrictColumns requires every table to carry the first table's
// columns, identical in name and order.
func validateStrictColumns(tbls []*tables.Table) error {
	reference := tbls[0].Columns()
	for _, t := range tbls[1:] {
		cols := t.Columns()
		if !equalColumns(reference, cols) {
			return errors.NewColumnMismatchError("", tbls[0].Name(), reference, t.Name(), cols)
		}
	}
	return nil
}

// mismatched reports whether any input lacks part of the reconciled
// column set.
func mismatched(tbls []*tables.Table, cols []string) bool {
	for _, t := range tbls {
		if t.NumCols() != len(cols) {
			return true
		}
	}
	return false
}

func equalColumns(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
