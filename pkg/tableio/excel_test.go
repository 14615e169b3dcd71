package tableio

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sheetsmith/sheetsmith/pkg/errors"
	"github.com/sheetsmith/sheetsmith/pkg/tables"
)

func sampleWorkbook(t *testing.T) string {
	t.Helper()

	wb := tables.NewWorkbook("test")

	people := tables.MustNew("id", "name")
	require.NoError(t, people.AppendRow([]tables.Value{tables.Number(1), tables.String("Alice")}))
	require.NoError(t, people.AppendRow([]tables.Value{tables.Number(2), tables.Missing}))
	wb.SetSheet("People", people)

	depts := tables.MustNew("dept")
	require.NoError(t, depts.AppendRow([]tables.Value{tables.String("Eng")}))
	wb.SetSheet("Depts", depts)

	path := filepath.Join(t.TempDir(), "book.xlsx")
	require.NoError(t, SaveWorkbook(wb, path))
	return path
}

func TestWorkbookRoundTrip(t *testing.T) {
	path := sampleWorkbook(t)

	names, err := SheetNames(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"People", "Depts"}, names)

	people, err := LoadSheet(path, "People")
	require.NoError(t, err)
	assert.Equal(t, []string{"id", "name"}, people.Columns())
	require.Equal(t, 2, people.NumRows())

	v, _ := people.Value(1, "name")
	assert.True(t, v.IsMissing(), "missing cell survives a round trip")
}

func TestLoadWorkbook(t *testing.T) {
	path := sampleWorkbook(t)

	wb, err := LoadWorkbook(path)
	require.NoError(t, err)
	assert.Equal(t, 2, wb.NumSheets())

	depts, ok := wb.Sheet("Depts")
	require.True(t, ok)
	assert.Equal(t, 1, depts.NumRows())
}

func TestLoadSheetIndex(t *testing.T) {
	path := sampleWorkbook(t)

	first, err := LoadSheetIndex(path, 0)
	require.NoError(t, err)
	assert.Equal(t, []string{"id", "name"}, first.Columns())

	_, err = LoadSheetIndex(path, 7)
	require.Error(t, err)
	assert.True(t, errors.IsNotFound(err))
}

func TestMissingWorkbook(t *testing.T) {
	_, err := SheetNames(filepath.Join(t.TempDir(), "nope.xlsx"))
	require.Error(t, err)

	var notFound *errors.SourceNotFoundError
	assert.ErrorAs(t, err, &notFound)
}

func TestSaveWorkbookSanitizesSheetNames(t *testing.T) {
	wb := tables.NewWorkbook("test")
	tbl := tables.MustNew("x")
	require.NoError(t, tbl.AppendRow([]tables.Value{tables.String("1")}))
	wb.SetSheet("bad/name", tbl)

	path := filepath.Join(t.TempDir(), "book.xlsx")
	require.NoError(t, SaveWorkbook(wb, path))

	names, err := SheetNames(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"bad_name"}, names)
}

func TestSaveWorkbookEmpty(t *testing.T) {
	err := SaveWorkbook(tables.NewWorkbook("x"), filepath.Join(t.TempDir(), "e.xlsx"))
	require.Error(t, err)
	assert.True(t, errors.IsEmptyInput(err))
}

func TestLoadTableDispatch(t *testing.T) {
	csvPath := writeFile(t, "t.csv", "a\n1\n")
	tbl, err := LoadTable(csvPath)
	require.NoError(t, err)
	assert.Equal(t, []string{"a"}, tbl.Columns())

	xlsxPath := sampleWorkbook(t)
	tbl, err = LoadTable(xlsxPath)
	require.NoError(t, err)
	assert.Equal(t, []string{"id", "name"}, tbl.Columns())
}

func TestCSVsToExcel(t *testing.T) {
	a := writeFile(t, "first.csv", "id\n1\n")
	b := writeFile(t, "second.csv", "id\n2\n")

	out := filepath.Join(t.TempDir(), "combined.xlsx")
	require.NoError(t, CSVsToExcel([]string{a, b}, out, nil))

	names, err := SheetNames(out)
	require.NoError(t, err)
	assert.Equal(t, []string{"first", "second"}, names)

	t.Run("name count mismatch", func(t *testing.T) {
		err := CSVsToExcel([]string{a, b}, out, []string{"only-one"})
		require.Error(t, err)
		assert.True(t, errors.IsValidationError(err))
	})

	t.Run("empty input", func(t *testing.T) {
		err := CSVsToExcel(nil, out, nil)
		assert.True(t, errors.IsEmptyInput(err))
	})
}
