package tableio

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/sheetsmith/sheetsmith/pkg/constants"
	"github.com/sheetsmith/sheetsmith/pkg/errors"
	"github.com/sheetsmith/sheetsmith/pkg/logging"
	"github.com/sheetsmith/sheetsmith/pkg/tables"
)

// openWorkbook opens an xlsx file, mapping the failure modes onto the
// error taxonomy.
func openWorkbook(path string) (*excelize.File, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, errors.NewSourceNotFoundError(path, err)
	}
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, errors.WrapParse("xlsx", path, err)
	}
	return f, nil
}

// SheetNames returns the sheet names of a workbook in file order.
func SheetNames(path string) ([]string, error) {
	f, err := openWorkbook(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return f.GetSheetList(), nil
}

// LoadSheet reads one sheet of a workbook into a table. The first row is
// the header; empty cells load as missing values.
func LoadSheet(path, sheet string) (*tables.Table, error) {
	f, err := openWorkbook(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return readSheet(f, path, sheet)
}

// LoadSheetIndex reads a sheet by zero-based position.
func LoadSheetIndex(path string, index int) (*tables.Table, error) {
	f, err := openWorkbook(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	names := f.GetSheetList()
	if index < 0 || index >= len(names) {
		return nil, errors.NewSheetNotFoundError(fmt.Sprintf("#%d", index), []string{path})
	}
	return readSheet(f, path, names[index])
}

// LoadWorkbook reads every sheet of a workbook.
func LoadWorkbook(path string) (*tables.Workbook, error) {
	f, err := openWorkbook(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	wb := tables.NewWorkbook(path)
	for _, name := range f.GetSheetList() {
		t, err := readSheet(f, path, name)
		if err != nil {
			return nil, err
		}
		wb.SetSheet(name, t)
	}

	logging.Debug().Str("file", path).Int("sheets", wb.NumSheets()).Msg("Loaded workbook")
	return wb, nil
}

func readSheet(f *excelize.File, path, sheet string) (*tables.Table, error) {
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, errors.WrapParse("xlsx", path, err)
	}
	if len(rows) == 0 {
		t := tables.MustNew()
		t.SetName(path + "#" + sheet)
		return t, nil
	}

	header := rows[0]
	t, err := tables.New(header)
	if err != nil {
		return nil, errors.NewParseError("xlsx", path, "duplicate column name in sheet "+sheet, err)
	}
	t.SetName(path + "#" + sheet)

	for _, row := range rows[1:] {
		vals := make([]tables.Value, len(header))
		for j := range vals {
			if j < len(row) && row[j] != "" {
				vals[j] = tables.String(row[j])
			} else {
				vals[j] = tables.Missing
			}
		}
		if err := t.AppendRow(vals); err != nil {
			return nil, err
		}
	}
	return t, nil
}

// SaveWorkbook writes every sheet of a workbook to an xlsx file. Sheet
// names are expected to be pre-sanitized by the caller (tables.SafeSheetName);
// this writer applies the same sanitization defensively so a bad name can
// never corrupt the file.
func SaveWorkbook(wb *tables.Workbook, path string) error {
	if wb.NumSheets() == 0 {
		return errors.NewEmptyInputError("workbook save")
	}
	if err := os.MkdirAll(filepath.Dir(path), constants.DirPermissions); err != nil {
		return errors.WrapIO("create", filepath.Dir(path), err)
	}

	f := excelize.NewFile()
	defer f.Close()

	for i, name := range wb.SheetNames() {
		t, _ := wb.Sheet(name)
		safe := tables.SafeSheetName(name)

		if i == 0 {
			if err := f.SetSheetName("Sheet1", safe); err != nil {
				return errors.WrapIO("write", path, err)
			}
		} else if _, err := f.NewSheet(safe); err != nil {
			return errors.WrapIO("write", path, err)
		}

		if err := writeSheet(f, safe, t); err != nil {
			return errors.WrapIO("write", path, err)
		}
	}

	if err := f.SaveAs(path); err != nil {
		return errors.WrapIO("write", path, err)
	}

	logging.Debug().Str("file", path).Int("sheets", wb.NumSheets()).Msg("Wrote workbook")
	return nil
}

func writeSheet(f *excelize.File, sheet string, t *tables.Table) error {
	for j, col := range t.Columns() {
		cell, err := excelize.CoordinatesToCellName(j+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, col); err != nil {
			return err
		}
	}
	for i := 0; i < t.NumRows(); i++ {
		row := t.Row(i)
		for j, v := range row {
			if v.IsMissing() {
				continue
			}
			cell, err := excelize.CoordinatesToCellName(j+1, i+2)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheet, cell, cellValue(v)); err != nil {
				return err
			}
		}
	}
	return nil
}

// cellValue maps a table value onto the native cell type.
func cellValue(v tables.Value) any {
	if n, ok := v.AsNumber(); ok {
		return n
	}
	if b, ok := v.AsBool(); ok {
		return b
	}
	s, _ := v.AsString()
	return s
}

// IsCSV reports whether a path has a .csv extension.
func IsCSV(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".csv")
}

// LoadTable reads a table from a path, dispatching on the file extension:
// .csv loads as CSV, anything else as the first sheet of a workbook.
func LoadTable(path string) (*tables.Table, error) {
	if IsCSV(path) {
		return LoadCSV(path)
	}
	return LoadSheetIndex(path, 0)
}

// CSVsToExcel converts a list of CSV files into a single workbook, one
// sheet per file. Sheet names default to the sanitized file stems.
func CSVsToExcel(csvPaths []string, output string, sheetNames []string) error {
	if len(csvPaths) == 0 {
		return errors.NewEmptyInputError("convert")
	}
	if sheetNames != nil && len(sheetNames) != len(csvPaths) {
		return errors.NewValidationError("sheet-names", len(sheetNames),
			"sheet name count must match CSV file count")
	}

	wb := tables.NewWorkbook(output)
	for i, p := range csvPaths {
		t, err := LoadCSV(p)
		if err != nil {
			return err
		}
		name := ""
		if sheetNames != nil {
			name = sheetNames[i]
		} else {
			name = strings.TrimSuffix(filepath.Base(p), filepath.Ext(p))
		}
		wb.SetSheet(tables.SafeSheetName(name), t)
	}
	return SaveWorkbook(wb, output)
}
