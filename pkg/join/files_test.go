package join

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sheetsmith/sheetsmith/pkg/errors"
	"github.com/sheetsmith/sheetsmith/pkg/logging"
	"github.com/sheetsmith/sheetsmith/pkg/tableio"
	"github.com/sheetsmith/sheetsmith/pkg/tables"
)

func writeCSV(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestCSVs(t *testing.T) {
	logging.DisableLoggingForTest(t)

	left := writeCSV(t, "emp.csv", "id,name,dept_id\n1,Alice,10\n2,Bob,99\n")
	right := writeCSV(t, "dept.csv", "dept_id,dept\n10,Eng\n")
	out := filepath.Join(t.TempDir(), "out.csv")

	require.NoError(t, CSVs(left, right, out, On(Left, "dept_id")))

	result, err := tableio.LoadCSV(out)
	require.NoError(t, err)
	assert.Equal(t, []string{"id", "name", "dept_id", "dept"}, result.Columns())
	require.Equal(t, 2, result.NumRows())

	v, _ := result.Value(1, "dept")
	assert.True(t, v.IsMissing())
}

func TestCSVsMissingInput(t *testing.T) {
	logging.DisableLoggingForTest(t)

	left := writeCSV(t, "emp.csv", "id\n1\n")
	err := CSVs(left, filepath.Join(t.TempDir(), "nope.csv"), "out.csv", On(Inner, "id"))
	require.Error(t, err)

	var notFound *errors.SourceNotFoundError
	assert.ErrorAs(t, err, &notFound)
}

func TestSheetsToFile(t *testing.T) {
	logging.DisableLoggingForTest(t)

	wb := tables.NewWorkbook("in")
	emp := tables.MustNew("id", "name")
	require.NoError(t, emp.AppendRow([]tables.Value{tables.String("1"), tables.String("Alice")}))
	wb.SetSheet("Employees", emp)

	sal := tables.MustNew("id", "salary")
	require.NoError(t, sal.AppendRow([]tables.Value{tables.String("1"), tables.Number(100)}))
	wb.SetSheet("Salaries", sal)

	in := filepath.Join(t.TempDir(), "in.xlsx")
	require.NoError(t, tableio.SaveWorkbook(wb, in))

	out := filepath.Join(t.TempDir(), "out.xlsx")
	require.NoError(t, SheetsToFile(in, out, "Employees", "Salaries", "Joined", On(Inner, "id")))

	names, err := tableio.SheetNames(out)
	require.NoError(t, err)
	assert.Equal(t, []string{"Joined"}, names)

	joined, err := tableio.LoadSheet(out, "Joined")
	require.NoError(t, err)
	assert.Equal(t, []string{"id", "name", "salary"}, joined.Columns())
	require.Equal(t, 1, joined.NumRows())
}
