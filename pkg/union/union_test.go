package union

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sheetsmith/sheetsmith/pkg/errors"
	"github.com/sheetsmith/sheetsmith/pkg/logging"
	"github.com/sheetsmith/sheetsmith/pkg/tables"
)

func table(t *testing.T, cols []string, rows ...[]tables.Value) *tables.Table {
	t.Helper()
	tbl := tables.MustNew(cols...)
	for _, row := range rows {
		require.NoError(t, tbl.AppendRow(row))
	}
	return tbl
}

func TestTablesDisjointRows(t *testing.T) {
	logging.DisableLoggingForTest(t)

	a := table(t, []string{"id", "name"},
		[]tables.Value{tables.String("1"), tables.String("Alice")},
		[]tables.Value{tables.String("2"), tables.String("Bob")})
	b := table(t, []string{"id", "name"},
		[]tables.Value{tables.String("3"), tables.String("Cara")})

	out, err := Tables([]*tables.Table{a, b})
	require.NoError(t, err)

	assert.Equal(t, 3, out.NumRows(), "|A|+|B| rows for disjoint inputs")
	assert.Equal(t, []string{"id", "name"}, out.Columns())

	// Input order preserved
	v, _ := out.Value(2, "name")
	assert.True(t, v.Equal(tables.String("Cara")))
}

func TestTablesColumnReconciliation(t *testing.T) {
	logging.DisableLoggingForTest(t)

	csv1 := table(t, []string{"id", "name"},
		[]tables.Value{tables.String("1"), tables.String("Alice")})
	csv2 := table(t, []string{"id", "dept"},
		[]tables.Value{tables.String("2"), tables.String("Eng")})

	out, err := Tables([]*tables.Table{csv1, csv2})
	require.NoError(t, err)

	assert.Equal(t, []string{"id", "name", "dept"}, out.Columns())

	// Every csv1 row has dept missing; every csv2 row has name missing
	v, _ := out.Value(0, "dept")
	assert.True(t, v.IsMissing())
	v, _ = out.Value(1, "name")
	assert.True(t, v.IsMissing())
	v, _ = out.Value(1, "dept")
	assert.True(t, v.Equal(tables.String("Eng")))
}

func TestTablesEmptyInput(t *testing.T) {
	_, err := Tables(nil)
	require.Error(t, err)
	assert.True(t, errors.IsEmptyInput(err))
}

func TestTablesStrictColumns(t *testing.T) {
	logging.DisableLoggingForTest(t)

	a := table(t, []string{"id", "name"})
	a.SetName("a.csv")
	b := table(t, []string{"name", "id"}) // same set, different order
	b.SetName("b.csv")

	_, err := Tables([]*tables.Table{a, b}, WithStrictColumns())
	require.Error(t, err)

	var mismatch *errors.ColumnMismatchError
	require.ErrorAs(t, err, &mismatch)
	assert.Equal(t, "a.csv", mismatch.Reference)
	assert.Equal(t, "b.csv", mismatch.Source)

	// Identical order passes
	c := table(t, []string{"id", "name"})
	_, err = Tables([]*tables.Table{a, c}, WithStrictColumns())
	assert.NoError(t, err)
}

func TestDedupeFullRow(t *testing.T) {
	logging.DisableLoggingForTest(t)

	a := table(t, []string{"id", "name"},
		[]tables.Value{tables.String("1"), tables.String("Alice")},
		[]tables.Value{tables.String("2"), tables.String("Bob")})
	b := table(t, []string{"id", "name"},
		[]tables.Value{tables.String("1"), tables.String("Alice")},
		[]tables.Value{tables.String("3"), tables.String("Cara")})

	plain, err := Tables([]*tables.Table{a, b})
	require.NoError(t, err)
	deduped, err := Tables([]*tables.Table{a, b}, WithDedupe())
	require.NoError(t, err)

	assert.LessOrEqual(t, deduped.NumRows(), plain.NumRows())
	assert.Equal(t, 3, deduped.NumRows())

	// Every row unique under full-row equality
	seen := map[string]bool{}
	for i := 0; i < deduped.NumRows(); i++ {
		key := tables.RowKey(deduped.Row(i))
		assert.False(t, seen[key], "row %d duplicated", i)
		seen[key] = true
	}
}

func TestDedupeKeepsFirstOccurrence(t *testing.T) {
	logging.DisableLoggingForTest(t)

	a := table(t, []string{"id", "name"},
		[]tables.Value{tables.String("1"), tables.String("first")},
		[]tables.Value{tables.String("1"), tables.String("second")})

	out, err := Tables([]*tables.Table{a, a}, WithDedupeColumns("id"))
	require.NoError(t, err)

	require.Equal(t, 1, out.NumRows())
	v, _ := out.Value(0, "name")
	assert.True(t, v.Equal(tables.String("first")))
}

func TestDedupeMissingEqualsMissing(t *testing.T) {
	logging.DisableLoggingForTest(t)

	a := table(t, []string{"id", "name"},
		[]tables.Value{tables.String("1"), tables.Missing},
		[]tables.Value{tables.String("1"), tables.Missing})

	out, err := Tables([]*tables.Table{a}, WithDedupe())
	require.NoError(t, err)
	assert.Equal(t, 1, out.NumRows())
}

func TestDedupeUnknownColumn(t *testing.T) {
	a := table(t, []string{"id"})
	_, _, err := Deduplicate(a, []string{"bogus"})
	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
}
