// Package join relates two tables on key columns with the usual
// relational kinds, plus a sequential N-way chain.
//
// Collision policy: when both sides carry a non-key column of the same
// name, the output disambiguates with the suffixes "_left" and
// "_right". Key columns with identical names on both sides appear once,
// unsuffixed. This convention is part of the public contract since it
// is observable in output column names.
package join

import (
	"github.com/sheetsmith/sheetsmith/pkg/errors"
	"github.com/sheetsmith/sheetsmith/pkg/logging"
	"github.com/sheetsmith/sheetsmith/pkg/tables"
)

// Spec describes one join: the key columns on each side and the kind.
// LeftKeys and RightKeys must have the same length; position i of one
// list pairs with position i of the other. Cross joins ignore keys.
type Spec struct {
	LeftKeys  []string
	RightKeys []string
	Kind      Kind
}

// On builds a Spec joining on identically named key columns.
func On(kind Kind, keys ...string) Spec {
	return Spec{LeftKeys: keys, RightKeys: keys, Kind: kind}
}

// validate checks the spec against both tables before any row matching.
func (s Spec) validate(left, right *tables.Table) error {
	if s.Kind == Cross {
		return nil
	}
	if len(s.LeftKeys) == 0 {
		return errors.NewValidationError("keys", "", "at least one join key is required")
	}
	if len(s.LeftKeys) != len(s.RightKeys) {
		return errors.NewValidationError("keys", "",
			"left and right key lists must have the same length")
	}
	for _, key := range s.LeftKeys {
		if !left.HasColumn(key) {
			return errors.NewJoinKeyNotFoundError(key, tableName(left, "left"), left.Columns())
		}
	}
	for _, key := range s.RightKeys {
		if !right.HasColumn(key) {
			return errors.NewJoinKeyNotFoundError(key, tableName(right, "right"), right.Columns())
		}
	}
	return nil
}

func tableName(t *tables.Table, fallback string) string {
	if t.Name() != "" {
		return t.Name()
	}
	return fallback
}

// plan is the resolved column layout of a join result.
type plan struct {
	columns []string
	// merged maps a key column name shared by both sides to true; those
	// columns appear once in the output and are dropped from the right
	// projection.
	merged map[string]bool
	// leftCols and rightCols are the source column names backing each
	// output column, in output order.
	leftCols  []string
	rightCols []string
}

// newPlan computes the output columns: left columns in order, then
// right columns in order minus merged keys, with collision suffixes.
func newPlan(left, right *tables.Table, s Spec) *plan {
	p := &plan{merged: make(map[string]bool)}
	if s.Kind != Cross {
		for i, lk := range s.LeftKeys {
			if lk == s.RightKeys[i] {
				p.merged[lk] = true
			}
		}
	}

	for _, col := range left.Columns() {
		name := col
		if !p.merged[col] && right.HasColumn(col) {
			name = col + "_left"
		}
		p.columns = append(p.columns, name)
		p.leftCols = append(p.leftCols, col)
	}
	for _, col := range right.Columns() {
		if p.merged[col] {
			continue
		}
		name := col
		if left.HasColumn(col) {
			name = col + "_right"
		}
		p.columns = append(p.columns, name)
		p.rightCols = append(p.rightCols, col)
	}
	return p
}

// pair emits one output row from a left row and a right row; either may
// be nil for the unmatched side. Merged key columns take their value
// from whichever side is present.
func (p *plan) pair(left, right *tables.Table, li, ri int) []tables.Value {
	row := make([]tables.Value, 0, len(p.columns))
	for _, col := range p.leftCols {
		if li >= 0 {
			v, _ := left.Value(li, col)
			row = append(row, v)
			continue
		}
		if p.merged[col] && ri >= 0 {
			v, _ := right.Value(ri, col)
			row = append(row, v)
			continue
		}
		row = append(row, tables.Missing)
	}
	for _, col := range p.rightCols {
		if ri >= 0 {
			v, _ := right.Value(ri, col)
			row = append(row, v)
			continue
		}
		row = append(row, tables.Missing)
	}
	return row
}

// Tables joins two tables per the spec. Matched left rows keep left
// order, each paired with its right matches in right order; unmatched
// right rows (right and outer kinds) append afterwards in right order.
func Tables(left, right *tables.Table, s Spec) (*tables.Table, error) {
	if err := s.validate(left, right); err != nil {
		return nil, err
	}

	p := newPlan(left, right, s)
	out, err := tables.New(p.columns)
	if err != nil {
		return nil, err
	}

	if s.Kind == Cross {
		for li := 0; li < left.NumRows(); li++ {
			for ri := 0; ri < right.NumRows(); ri++ {
				if err := out.AppendRow(p.pair(left, right, li, ri)); err != nil {
					return nil, err
				}
			}
		}
		logging.Debug().Int("rows", out.NumRows()).Msg("Cross join complete")
		return out, nil
	}

	// Index right rows by composite key. Missing key values participate
	// like any other value, so missing matches missing.
	index := make(map[string][]int, right.NumRows())
	for ri := 0; ri < right.NumRows(); ri++ {
		key := tables.RowKey(right.RowValues(ri, s.RightKeys))
		index[key] = append(index[key], ri)
	}

	matchedRight := make(map[int]bool)
	for li := 0; li < left.NumRows(); li++ {
		key := tables.RowKey(left.RowValues(li, s.LeftKeys))
		matches := index[key]
		if len(matches) == 0 {
			if s.Kind == Left || s.Kind == Outer {
				if err := out.AppendRow(p.pair(left, right, li, -1)); err != nil {
					return nil, err
				}
			}
			continue
		}
		for _, ri := range matches {
			matchedRight[ri] = true
			if err := out.AppendRow(p.pair(left, right, li, ri)); err != nil {
				return nil, err
			}
		}
	}

	if s.Kind == Right || s.Kind == Outer {
		for ri := 0; ri < right.NumRows(); ri++ {
			if matchedRight[ri] {
				continue
			}
			if err := out.AppendRow(p.pair(left, right, -1, ri)); err != nil {
				return nil, err
			}
		}
	}

	logging.Debug().
		Str("kind", string(s.Kind)).
		Int("left", left.NumRows()).
		Int("right", right.NumRows()).
		Int("rows", out.NumRows()).
		Msg("Join complete")
	return out, nil
}

// Sequential chains pairwise joins left-to-right over at least 2 tables
// using one fixed key list and one fixed kind for every step. The keys
// must exist in every table.
func Sequential(tbls []*tables.Table, keys []string, kind Kind) (*tables.Table, error) {
	if len(tbls) < 2 {
		return nil, errors.NewInsufficientInputsError("sequential join", 2, len(tbls))
	}

	logging.Info().Int("tables", len(tbls)).Str("kind", string(kind)).Msg("Sequential join")

	result := tbls[0]
	for i, next := range tbls[1:] {
		joined, err := Tables(result, next, On(kind, keys...))
		if err != nil {
			return nil, err
		}
		logging.Debug().Int("step", i+1).Int("rows", joined.NumRows()).Msg("Joined table")
		result = joined
	}
	return result, nil
}
