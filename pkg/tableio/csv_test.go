package tableio

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sheetsmith/sheetsmith/pkg/errors"
	"github.com/sheetsmith/sheetsmith/pkg/tables"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadCSV(t *testing.T) {
	path := writeFile(t, "people.csv", "id,name\n1,Alice\n2,Bob\n")

	tbl, err := LoadCSV(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"id", "name"}, tbl.Columns())
	assert.Equal(t, 2, tbl.NumRows())

	v, _ := tbl.Value(0, "name")
	assert.True(t, v.Equal(tables.String("Alice")))
}

func TestLoadCSVEmptyCellIsMissing(t *testing.T) {
	path := writeFile(t, "gaps.csv", "id,name\n1,\n")

	tbl, err := LoadCSV(path)
	require.NoError(t, err)

	v, _ := tbl.Value(0, "name")
	assert.True(t, v.IsMissing())
}

func TestLoadCSVMissingFile(t *testing.T) {
	_, err := LoadCSV(filepath.Join(t.TempDir(), "nope.csv"))
	require.Error(t, err)

	var notFound *errors.SourceNotFoundError
	assert.ErrorAs(t, err, &notFound)
}

func TestLoadCSVEmptyFile(t *testing.T) {
	path := writeFile(t, "empty.csv", "")

	_, err := LoadCSV(path)
	require.Error(t, err)

	var parseErr *errors.ParseError
	assert.ErrorAs(t, err, &parseErr)
}

func TestLoadCSVHeaderOnly(t *testing.T) {
	path := writeFile(t, "header.csv", "id,name\n")

	tbl, err := LoadCSV(path)
	require.NoError(t, err)
	assert.Equal(t, 0, tbl.NumRows())
	assert.Equal(t, []string{"id", "name"}, tbl.Columns())
}

func TestLoadCSVMalformed(t *testing.T) {
	path := writeFile(t, "bad.csv", "id,name\n1,Alice,extra\n")

	_, err := LoadCSV(path)
	require.Error(t, err)

	var parseErr *errors.ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Equal(t, 2, parseErr.Line)
}

func TestLoadCSVDuplicateHeader(t *testing.T) {
	path := writeFile(t, "dup.csv", "id,id\n1,2\n")

	_, err := LoadCSV(path)
	require.Error(t, err)

	var parseErr *errors.ParseError
	assert.ErrorAs(t, err, &parseErr)
}

func TestChunkedReading(t *testing.T) {
	path := writeFile(t, "big.csv", "id\n1\n2\n3\n4\n5\n")

	r, err := OpenCSV(path)
	require.NoError(t, err)
	defer r.Close()

	chunk, err := r.ReadChunk(2)
	require.NoError(t, err)
	assert.Equal(t, 2, chunk.NumRows())

	chunk, err = r.ReadChunk(2)
	require.NoError(t, err)
	assert.Equal(t, 2, chunk.NumRows())

	chunk, err = r.ReadChunk(2)
	assert.Equal(t, io.EOF, err)
	require.NotNil(t, chunk)
	assert.Equal(t, 1, chunk.NumRows())

	_, err = r.ReadChunk(2)
	assert.Equal(t, io.EOF, err)
}

func TestSaveCSVRoundTrip(t *testing.T) {
	tbl := tables.MustNew("id", "name")
	require.NoError(t, tbl.AppendRow([]tables.Value{tables.String("1"), tables.String("Alice")}))
	require.NoError(t, tbl.AppendRow([]tables.Value{tables.String("2"), tables.Missing}))

	path := filepath.Join(t.TempDir(), "out", "result.csv")
	require.NoError(t, SaveCSV(tbl, path, Overwrite))

	loaded, err := LoadCSV(path)
	require.NoError(t, err)
	assert.Equal(t, tbl.Columns(), loaded.Columns())
	require.Equal(t, 2, loaded.NumRows())

	v, _ := loaded.Value(1, "name")
	assert.True(t, v.IsMissing(), "missing value survives a round trip")
}

func TestSaveCSVAppend(t *testing.T) {
	tbl := tables.MustNew("id")
	require.NoError(t, tbl.AppendRow([]tables.Value{tables.String("1")}))

	path := filepath.Join(t.TempDir(), "result.csv")
	require.NoError(t, SaveCSV(tbl, path, Overwrite))
	require.NoError(t, SaveCSV(tbl, path, Append))

	loaded, err := LoadCSV(path)
	require.NoError(t, err)
	assert.Equal(t, 2, loaded.NumRows(), "append mode adds rows without a second header")
}
