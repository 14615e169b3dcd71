package merge

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sheetsmith/sheetsmith/pkg/errors"
	"github.com/sheetsmith/sheetsmith/pkg/logging"
	"github.com/sheetsmith/sheetsmith/pkg/tables"
)

func sheet(t *testing.T, cols []string, rows ...[]string) *tables.Table {
	t.Helper()
	tbl := tables.MustNew(cols...)
	for _, row := range rows {
		vals := make([]tables.Value, len(row))
		for i, s := range row {
			vals[i] = tables.String(s)
		}
		require.NoError(t, tbl.AppendRow(vals))
	}
	return tbl
}

func book(name string, sheets map[string]*tables.Table, order ...string) *tables.Workbook {
	wb := tables.NewWorkbook(name)
	for _, n := range order {
		wb.SetSheet(n, sheets[n])
	}
	return wb
}

func TestParsePolicy(t *testing.T) {
	p, err := ParsePolicy(" Strict ")
	require.NoError(t, err)
	assert.Equal(t, Strict, p)

	_, err = ParsePolicy("loose")
	require.Error(t, err)
	var invalid *errors.InvalidPolicyError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, "loose", invalid.Policy)
}

func TestWorkbooksStrict(t *testing.T) {
	logging.DisableLoggingForTest(t)

	a := book("a.xlsx", map[string]*tables.Table{
		"S": sheet(t, []string{"id", "name"}, []string{"1", "Alice"}),
	}, "S")
	b := book("b.xlsx", map[string]*tables.Table{
		"S": sheet(t, []string{"id", "name"}, []string{"2", "Bob"}, []string{"3", "Cara"}),
	}, "S")

	out, err := Workbooks([]*tables.Workbook{a, b}, Strict)
	require.NoError(t, err)

	merged, ok := out.Sheet("S")
	require.True(t, ok)
	assert.Equal(t, 3, merged.NumRows(), "sum of per-workbook row counts")
	assert.Equal(t, []string{"id", "name"}, merged.Columns())
}

func TestWorkbooksStrictColumnOrderMismatch(t *testing.T) {
	logging.DisableLoggingForTest(t)

	a := book("a.xlsx", map[string]*tables.Table{
		"S": sheet(t, []string{"id", "name"}),
	}, "S")
	b := book("b.xlsx", map[string]*tables.Table{
		"S": sheet(t, []string{"name", "id"}),
	}, "S")

	_, err := Workbooks([]*tables.Workbook{a, b}, Strict)
	require.Error(t, err)

	var mismatch *errors.ColumnMismatchError
	require.ErrorAs(t, err, &mismatch)
	assert.Equal(t, "S", mismatch.Sheet)
	assert.Equal(t, "a.xlsx", mismatch.Reference)
	assert.Equal(t, "b.xlsx", mismatch.Source)
}

func TestWorkbooksLenient(t *testing.T) {
	logging.DisableLoggingForTest(t)

	a := book("a.xlsx", map[string]*tables.Table{
		"S": sheet(t, []string{"id", "name"}, []string{"1", "Alice"}),
	}, "S")
	b := book("b.xlsx", map[string]*tables.Table{
		"S": sheet(t, []string{"id", "dept"}, []string{"2", "Eng"}),
	}, "S")

	out, err := Workbooks([]*tables.Workbook{a, b}, Lenient)
	require.NoError(t, err)

	merged, _ := out.Sheet("S")
	assert.Equal(t, []string{"id", "name", "dept"}, merged.Columns())
	require.Equal(t, 2, merged.NumRows())

	v, _ := merged.Value(0, "dept")
	assert.True(t, v.IsMissing())
}

func TestWorkbooksSortedSheetOrder(t *testing.T) {
	logging.DisableLoggingForTest(t)

	a := book("a.xlsx", map[string]*tables.Table{
		"Zebra": sheet(t, []string{"x"}),
		"Alpha": sheet(t, []string{"x"}),
	}, "Zebra", "Alpha")

	out, err := Workbooks([]*tables.Workbook{a}, Lenient)
	require.NoError(t, err)
	assert.Equal(t, []string{"Alpha", "Zebra"}, out.SheetNames())
}

func TestWorkbooksEmptyInput(t *testing.T) {
	_, err := Workbooks(nil, Lenient)
	require.Error(t, err)
	assert.True(t, errors.IsEmptyInput(err))
}

func TestSheetSkipsMissingWorkbooks(t *testing.T) {
	logging.DisableLoggingForTest(t)

	a := book("a.xlsx", map[string]*tables.Table{
		"S": sheet(t, []string{"id"}, []string{"1"}),
	}, "S")
	b := book("b.xlsx", map[string]*tables.Table{
		"Other": sheet(t, []string{"id"}, []string{"2"}),
	}, "Other")

	merged, err := Sheet([]*tables.Workbook{a, b}, "S", Strict)
	require.NoError(t, err)
	assert.Equal(t, 1, merged.NumRows(), "workbook without the sheet is skipped")
}

func TestSheetNotFound(t *testing.T) {
	logging.DisableLoggingForTest(t)

	a := book("a.xlsx", map[string]*tables.Table{
		"Other": sheet(t, []string{"id"}),
	}, "Other")

	_, err := Sheet([]*tables.Workbook{a}, "S", Strict)
	require.Error(t, err)

	var notFound *errors.SheetNotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "S", notFound.Sheet)
	assert.Equal(t, []string{"a.xlsx"}, notFound.Files)
}

func TestCommonSheets(t *testing.T) {
	logging.DisableLoggingForTest(t)

	a := book("a.xlsx", map[string]*tables.Table{
		"S1": sheet(t, []string{"x"}, []string{"1"}),
		"S2": sheet(t, []string{"x"}, []string{"2"}),
	}, "S1", "S2")
	b := book("b.xlsx", map[string]*tables.Table{
		"S2": sheet(t, []string{"x"}, []string{"3"}),
		"S3": sheet(t, []string{"x"}, []string{"4"}),
	}, "S2", "S3")

	assert.Equal(t, []string{"S2"}, CommonSheets([]*tables.Workbook{a, b}))

	out, err := CommonOnly([]*tables.Workbook{a, b}, Lenient)
	require.NoError(t, err)
	assert.Equal(t, []string{"S2"}, out.SheetNames())

	merged, _ := out.Sheet("S2")
	assert.Equal(t, 2, merged.NumRows())
}

func TestCommonOnlyNoOverlap(t *testing.T) {
	logging.DisableLoggingForTest(t)

	a := book("a.xlsx", map[string]*tables.Table{"S1": sheet(t, []string{"x"})}, "S1")
	b := book("b.xlsx", map[string]*tables.Table{"S2": sheet(t, []string{"x"})}, "S2")

	_, err := CommonOnly([]*tables.Workbook{a, b}, Lenient)
	require.Error(t, err)

	var noCommon *errors.NoCommonSheetsError
	require.ErrorAs(t, err, &noCommon)
	assert.Equal(t, []string{"a.xlsx", "b.xlsx"}, noCommon.Files)
}
