// Package tableio reads and writes tables as CSV files and spreadsheet
// workbooks. It is the I/O collaborator for the union, join, merge, and
// diff engines: paths in, tables out, with the error taxonomy the engines
// propagate unmodified.
package tableio

import (
	"encoding/csv"
	"io"
	"os"
	"path/filepath"

	"github.com/sheetsmith/sheetsmith/pkg/constants"
	"github.com/sheetsmith/sheetsmith/pkg/errors"
	"github.com/sheetsmith/sheetsmith/pkg/logging"
	"github.com/sheetsmith/sheetsmith/pkg/tables"
)

// WriteMode controls how SaveCSV treats an existing output file.
type WriteMode int

const (
	// Overwrite replaces the file and writes a header row.
	Overwrite WriteMode = iota
	// Append adds rows to the end of the file without a header.
	Append
)

// LoadCSV reads an entire CSV file into a table. The first record is the
// header; empty cells load as missing values, everything else as strings.
func LoadCSV(path string) (*tables.Table, error) {
	r, err := OpenCSV(path)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	out, err := r.ReadChunk(-1)
	if err != nil && err != io.EOF {
		return nil, err
	}
	if out == nil {
		out = r.emptyTable()
	}

	logging.Debug().Str("file", path).Int("rows", out.NumRows()).Msg("Loaded CSV")
	return out, nil
}

// CSVReader reads a CSV file incrementally. Obtain one with OpenCSV;
// the header is consumed on open.
type CSVReader struct {
	path    string
	file    *os.File
	reader  *csv.Reader
	columns []string
}

// OpenCSV opens a CSV file for chunked reading and consumes the header row.
func OpenCSV(path string) (*CSVReader, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NewSourceNotFoundError(path, err)
		}
		return nil, errors.WrapIO("open", path, err)
	}

	r := csv.NewReader(f)
	header, err := r.Read()
	if err == io.EOF {
		_ = f.Close()
		return nil, errors.NewParseError("csv", path, "file is empty", err)
	}
	if err != nil {
		_ = f.Close()
		return nil, wrapCSVError(path, err)
	}
	if _, err := tables.New(header); err != nil {
		_ = f.Close()
		return nil, errors.NewParseError("csv", path, "duplicate column name in header", err)
	}

	return &CSVReader{
		path:    path,
		file:    f,
		reader:  r,
		columns: header,
	}, nil
}

// Columns returns the header columns.
func (r *CSVReader) Columns() []string {
	return append([]string(nil), r.columns...)
}

// ReadChunk reads up to n rows into a table, or all remaining rows when
// n < 0. Returns io.EOF when the file is exhausted; a non-nil table is
// still returned for the final partial chunk.
func (r *CSVReader) ReadChunk(n int) (*tables.Table, error) {
	out := r.emptyTable()

	for i := 0; n < 0 || i < n; i++ {
		record, err := r.reader.Read()
		if err == io.EOF {
			if out.NumRows() == 0 {
				return nil, io.EOF
			}
			return out, io.EOF
		}
		if err != nil {
			return nil, wrapCSVError(r.path, err)
		}
		vals := make([]tables.Value, len(r.columns))
		for j := range vals {
			if j < len(record) && record[j] != "" {
				vals[j] = tables.String(record[j])
			} else {
				vals[j] = tables.Missing
			}
		}
		if err := out.AppendRow(vals); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// Close releases the underlying file.
func (r *CSVReader) Close() error {
	return r.file.Close()
}

func (r *CSVReader) emptyTable() *tables.Table {
	t := tables.MustNew(r.columns...)
	t.SetName(r.path)
	return t
}

// SaveCSV writes a table to a CSV file. Overwrite mode writes a header;
// Append mode assumes the file already carries one. Parent directories
// are created as needed. Missing values are written as empty cells.
func SaveCSV(t *tables.Table, path string, mode WriteMode) error {
	if err := os.MkdirAll(filepath.Dir(path), constants.DirPermissions); err != nil {
		return errors.WrapIO("create", filepath.Dir(path), err)
	}

	flags := os.O_CREATE | os.O_WRONLY
	if mode == Append {
		flags |= os.O_APPEND
	} else {
		flags |= os.O_TRUNC
	}
	f, err := os.OpenFile(path, flags, constants.FilePermissions)
	if err != nil {
		return errors.WrapIO("write", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if mode == Overwrite {
		if err := w.Write(t.Columns()); err != nil {
			return errors.WrapIO("write", path, err)
		}
	}
	record := make([]string, t.NumCols())
	for i := 0; i < t.NumRows(); i++ {
		row := t.Row(i)
		for j, v := range row {
			record[j] = v.Format()
		}
		if err := w.Write(record); err != nil {
			return errors.WrapIO("write", path, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return errors.WrapIO("write", path, err)
	}

	logging.Debug().Str("file", path).Int("rows", t.NumRows()).Msg("Wrote CSV")
	return nil
}

// wrapCSVError converts encoding/csv errors into the ParseError taxonomy,
// preserving the line number when the parser reports one.
func wrapCSVError(path string, err error) error {
	if perr, ok := err.(*csv.ParseError); ok {
		return &errors.ParseError{
			Format:  "csv",
			File:    path,
			Line:    perr.Line,
			Message: perr.Err.Error(),
			Err:     err,
		}
	}
	return errors.WrapParse("csv", path, err)
}
