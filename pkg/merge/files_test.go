package merge

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sheetsmith/sheetsmith/pkg/errors"
	"github.com/sheetsmith/sheetsmith/pkg/logging"
	"github.com/sheetsmith/sheetsmith/pkg/tableio"
	"github.com/sheetsmith/sheetsmith/pkg/tables"
)

func saveBook(t *testing.T, name string, wb *tables.Workbook) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, tableio.SaveWorkbook(wb, path))
	return path
}

func TestFiles(t *testing.T) {
	logging.DisableLoggingForTest(t)

	a := saveBook(t, "a.xlsx", book("a", map[string]*tables.Table{
		"Data": sheet(t, []string{"id", "name"}, []string{"1", "Alice"}),
	}, "Data"))
	b := saveBook(t, "b.xlsx", book("b", map[string]*tables.Table{
		"Data": sheet(t, []string{"id", "name"}, []string{"2", "Bob"}),
	}, "Data"))

	out := filepath.Join(t.TempDir(), "merged.xlsx")
	require.NoError(t, Files([]string{a, b}, out, Strict))

	merged, err := tableio.LoadSheet(out, "Data")
	require.NoError(t, err)
	assert.Equal(t, 2, merged.NumRows())
}

func TestFilesMissingInput(t *testing.T) {
	logging.DisableLoggingForTest(t)

	err := Files([]string{filepath.Join(t.TempDir(), "nope.xlsx")}, "out.xlsx", Strict)
	require.Error(t, err)

	var notFound *errors.SourceNotFoundError
	assert.ErrorAs(t, err, &notFound)
}

func TestSheetFiles(t *testing.T) {
	logging.DisableLoggingForTest(t)

	a := saveBook(t, "a.xlsx", book("a", map[string]*tables.Table{
		"Keep":  sheet(t, []string{"id"}, []string{"1"}),
		"Other": sheet(t, []string{"id"}, []string{"9"}),
	}, "Keep", "Other"))
	b := saveBook(t, "b.xlsx", book("b", map[string]*tables.Table{
		"Keep": sheet(t, []string{"id"}, []string{"2"}),
	}, "Keep"))

	out := filepath.Join(t.TempDir(), "merged.xlsx")
	require.NoError(t, SheetFiles([]string{a, b}, out, "Keep", Strict))

	names, err := tableio.SheetNames(out)
	require.NoError(t, err)
	assert.Equal(t, []string{"Keep"}, names)

	merged, err := tableio.LoadSheet(out, "Keep")
	require.NoError(t, err)
	assert.Equal(t, 2, merged.NumRows())
}
