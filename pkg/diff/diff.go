// Package diff aligns two tables, by row position or by key columns,
// classifies every aligned row pair, and aggregates statistics.
package diff

import (
	"sort"
	"strings"

	"golang.org/x/text/cases"

	"github.com/sheetsmith/sheetsmith/pkg/errors"
	"github.com/sheetsmith/sheetsmith/pkg/join"
	"github.com/sheetsmith/sheetsmith/pkg/logging"
	"github.com/sheetsmith/sheetsmith/pkg/tableio"
	"github.com/sheetsmith/sheetsmith/pkg/tables"
)

// Status classifies one aligned row pair.
type Status string

const (
	// StatusMatch means every compared column is equal.
	StatusMatch Status = "MATCH"
	// StatusDiff means at least one compared column differs.
	StatusDiff Status = "DIFF"
	// StatusOnlyA means the row exists only in the first table.
	StatusOnlyA Status = "ONLY_A"
	// StatusOnlyB means the row exists only in the second table.
	StatusOnlyB Status = "ONLY_B"
)

// Stats aggregates the classification counts of one comparison.
type Stats struct {
	Total     int `json:"total" yaml:"total"`
	Matching  int `json:"matching" yaml:"matching"`
	Different int `json:"different" yaml:"different"`
	OnlyA     int `json:"only_a" yaml:"only_a"`
	OnlyB     int `json:"only_b" yaml:"only_b"`
}

// Result is the outcome of a comparison: one table row per aligned
// pair, plus the aggregate counts. The table carries Row_Index, Status,
// and every compared column duplicated with _A and _B suffixes.
type Result struct {
	Table *tables.Table
	Stats Stats
}

// differ holds the resolved options for one comparison.
type differ struct {
	keys              []string
	ignoreWhitespace  bool
	ignoreCase        bool
	ignoreColumnOrder bool
	onlyDiffs         bool
	maxRows           int
}

// pair aligns row ai of A with row bi of B; -1 means no row on that side.
type pair struct {
	ai, bi int
}

// Compare diffs two tables. Without ByKey rows pair by position; with
// it, correspondence comes from a full outer join on the key columns.
// Normalization options affect alignment and comparison only; the
// result table carries the original values.
func Compare(a, b *tables.Table, opts ...Option) (*Result, error) {
	d := &differ{}
	for _, opt := range opts {
		opt(d)
	}

	if d.maxRows > 0 {
		if a.NumRows() > d.maxRows {
			logging.Warn().Int("rows", a.NumRows()).Int("max", d.maxRows).Msg("Truncating table A")
			a = a.Head(d.maxRows)
		}
		if b.NumRows() > d.maxRows {
			logging.Warn().Int("rows", b.NumRows()).Int("max", d.maxRows).Msg("Truncating table B")
			b = b.Head(d.maxRows)
		}
	}

	normA := d.normalize(a)
	normB := d.normalize(b)

	cols := d.comparedColumns(a, b)

	var pairs []pair
	var err error
	if len(d.keys) > 0 {
		pairs, err = alignByKey(normA, normB, d.keys)
		if err != nil {
			return nil, err
		}
	} else {
		pairs = alignByIndex(a.NumRows(), b.NumRows())
	}

	return d.classify(a, b, normA, normB, cols, pairs)
}

// Files diffs two files, loading CSVs whole and workbooks by their
// first sheet.
func Files(pathA, pathB string, opts ...Option) (*Result, error) {
	a, err := tableio.LoadTable(pathA)
	if err != nil {
		return nil, err
	}
	b, err := tableio.LoadTable(pathB)
	if err != nil {
		return nil, err
	}
	logging.Info().Str("a", pathA).Str("b", pathB).Msg("Comparing files")
	return Compare(a, b, opts...)
}

// comparedColumns resolves the column set a comparison covers.
func (d *differ) comparedColumns(a, b *tables.Table) []string {
	if d.ignoreColumnOrder {
		var common []string
		for _, col := range a.Columns() {
			if b.HasColumn(col) {
				common = append(common, col)
			}
		}
		sort.Strings(common)
		return common
	}
	cols := append([]string(nil), a.Columns()...)
	for _, col := range b.Columns() {
		if !a.HasColumn(col) {
			cols = append(cols, col)
		}
	}
	return cols
}

// normalize returns a copy with string values trimmed and case-folded
// per the options, or the table itself when no normalization applies.
func (d *differ) normalize(t *tables.Table) *tables.Table {
	if !d.ignoreWhitespace && !d.ignoreCase {
		return t
	}

	folder := cases.Fold()
	out := t.Clone()
	for i := 0; i < out.NumRows(); i++ {
		row := out.Row(i)
		for j, v := range row {
			s, ok := v.AsString()
			if !ok {
				continue
			}
			if d.ignoreWhitespace {
				s = strings.TrimSpace(s)
			}
			if d.ignoreCase {
				s = folder.String(s)
			}
			row[j] = tables.String(s)
		}
	}
	return out
}

// alignByIndex pairs rows positionally; the shorter side pairs with no
// row past its end.
func alignByIndex(na, nb int) []pair {
	n := na
	if nb > n {
		n = nb
	}
	pairs := make([]pair, n)
	for i := 0; i < n; i++ {
		p := pair{ai: -1, bi: -1}
		if i < na {
			p.ai = i
		}
		if i < nb {
			p.bi = i
		}
		pairs[i] = p
	}
	return pairs
}

// trackingName extends base with underscores until it collides with no
// column of either table. The two bases differ in their suffix, so the
// extended names can never collide with each other either.
func trackingName(base string, a, b *tables.Table) string {
	name := base
	for a.HasColumn(name) || b.HasColumn(name) {
		name = "_" + name
	}
	return name
}

// alignByKey pairs rows via a full outer join on the key columns.
// Tracking columns carry each side's original row number through the
// outer join so presence on a side is judged by the join itself, not by
// whether the key columns happen to be populated.
func alignByKey(a, b *tables.Table, keys []string) ([]pair, error) {
	for _, key := range keys {
		if !a.HasColumn(key) {
			return nil, errors.NewKeyColumnNotFoundError(key, "A")
		}
		if !b.HasColumn(key) {
			return nil, errors.NewKeyColumnNotFoundError(key, "B")
		}
	}

	trackA := trackingName("_row_a", a, b)
	trackB := trackingName("_row_b", a, b)
	joined, err := join.Tables(withTracking(a, trackA), withTracking(b, trackB), join.On(join.Outer, keys...))
	if err != nil {
		return nil, err
	}

	pairs := make([]pair, 0, joined.NumRows())
	for i := 0; i < joined.NumRows(); i++ {
		p := pair{ai: -1, bi: -1}
		if v, _ := joined.Value(i, trackA); !v.IsMissing() {
			n, _ := v.AsNumber()
			p.ai = int(n)
		}
		if v, _ := joined.Value(i, trackB); !v.IsMissing() {
			n, _ := v.AsNumber()
			p.bi = int(n)
		}
		pairs = append(pairs, p)
	}
	return pairs, nil
}

// withTracking copies a table with an extra column holding each row's
// original position.
func withTracking(t *tables.Table, col string) *tables.Table {
	out := tables.MustNew(append(append([]string(nil), t.Columns()...), col)...)
	for i := 0; i < t.NumRows(); i++ {
		row := append(append([]tables.Value(nil), t.Row(i)...), tables.Number(float64(i)))
		if err := out.AppendRow(row); err != nil {
			panic(err) // row width is ours by construction
		}
	}
	return out
}

// classify walks the aligned pairs, counting statuses and building the
// result table from the original (unnormalized) values.
func (d *differ) classify(a, b, normA, normB *tables.Table, cols []string, pairs []pair) (*Result, error) {
	outCols := make([]string, 0, 2+2*len(cols))
	outCols = append(outCols, "Row_Index", "Status")
	for _, col := range cols {
		outCols = append(outCols, col+"_A", col+"_B")
	}
	out, err := tables.New(outCols)
	if err != nil {
		return nil, err
	}

	var stats Stats
	for i, p := range pairs {
		na := sideValues(normA, p.ai, cols)
		nb := sideValues(normB, p.bi, cols)

		status := classifyPair(na, nb)
		switch status {
		case StatusMatch:
			stats.Matching++
		case StatusDiff:
			stats.Different++
		case StatusOnlyA:
			stats.OnlyA++
		case StatusOnlyB:
			stats.OnlyB++
		}
		stats.Total++

		if d.onlyDiffs && status == StatusMatch {
			continue
		}

		va := sideValues(a, p.ai, cols)
		vb := sideValues(b, p.bi, cols)
		row := make([]tables.Value, 0, len(outCols))
		row = append(row, tables.Number(float64(i)), tables.String(string(status)))
		for j := range cols {
			row = append(row, va[j], vb[j])
		}
		if err := out.AppendRow(row); err != nil {
			return nil, err
		}
	}

	logging.Info().
		Int("total", stats.Total).
		Int("matching", stats.Matching).
		Int("different", stats.Different).
		Int("only_a", stats.OnlyA).
		Int("only_b", stats.OnlyB).
		Msg("Comparison complete")

	return &Result{Table: out, Stats: stats}, nil
}

// sideValues projects one side of an aligned pair onto the compared
// columns; a missing side is entirely missing.
func sideValues(t *tables.Table, row int, cols []string) []tables.Value {
	if row < 0 {
		return make([]tables.Value, len(cols))
	}
	return t.RowValues(row, cols)
}

// classifyPair applies the status priority: ONLY_A, ONLY_B, then a
// per-column comparison with missing equal to missing.
func classifyPair(a, b []tables.Value) Status {
	if anyPresent(a) && allMissing(b) {
		return StatusOnlyA
	}
	if allMissing(a) && anyPresent(b) {
		return StatusOnlyB
	}
	for i := range a {
		if !a[i].Equal(b[i]) {
			return StatusDiff
		}
	}
	return StatusMatch
}

func allMissing(vals []tables.Value) bool {
	for _, v := range vals {
		if !v.IsMissing() {
			return false
		}
	}
	return true
}

func anyPresent(vals []tables.Value) bool {
	return !allMissing(vals)
}
