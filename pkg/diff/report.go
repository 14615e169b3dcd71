package diff

import (
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"

	"github.com/sheetsmith/sheetsmith/pkg/constants"
	"github.com/sheetsmith/sheetsmith/pkg/errors"
	"github.com/sheetsmith/sheetsmith/pkg/logging"
	"github.com/sheetsmith/sheetsmith/pkg/tables"
)

// Status-to-fill mapping of the report. Part of the public contract.
var statusColors = map[Status]string{
	StatusMatch: "C6EFCE", // light green
	StatusDiff:  "FFEB9C", // light yellow
	StatusOnlyA: "BDD7EE", // light blue
	StatusOnlyB: "F8CBAD", // light orange
}

const headerColor = "D9D9D9" // light gray

// reportStyles holds the style IDs registered with one workbook.
type reportStyles struct {
	header int
	bold   int
	status map[Status]int
}

func newReportStyles(f *excelize.File) (*reportStyles, error) {
	header, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{headerColor}, Pattern: 1},
	})
	if err != nil {
		return nil, err
	}
	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, err
	}

	status := make(map[Status]int, len(statusColors))
	for s, color := range statusColors {
		id, err := f.NewStyle(&excelize.Style{
			Fill: excelize.Fill{Type: "pattern", Color: []string{color}, Pattern: 1},
		})
		if err != nil {
			return nil, err
		}
		status[s] = id
	}
	return &reportStyles{header: header, bold: bold, status: status}, nil
}

// WriteReport exports a comparison to a highlighted multi-sheet xlsx
// report: the full comparison with per-row status fills, a summary of
// the counts, and one sheet each isolating the ONLY_A and ONLY_B rows.
// nameA and nameB label the two inputs in sheet names and the summary.
func WriteReport(res *Result, output, nameA, nameB string) error {
	if err := os.MkdirAll(filepath.Dir(output), constants.DirPermissions); err != nil {
		return errors.WrapIO("create", filepath.Dir(output), err)
	}

	f := excelize.NewFile()
	defer f.Close()

	styles, err := newReportStyles(f)
	if err != nil {
		return errors.WrapIO("write", output, err)
	}

	if err := f.SetSheetName("Sheet1", "Comparison"); err != nil {
		return errors.WrapIO("write", output, err)
	}
	if err := writeComparison(f, "Comparison", res.Table, styles); err != nil {
		return errors.WrapIO("write", output, err)
	}
	if err := writeSummary(f, res.Stats, nameA, nameB, styles); err != nil {
		return errors.WrapIO("write", output, err)
	}
	if err := writeOnly(f, tables.SafeSheetName("Only in "+nameA), res.Table, StatusOnlyA, styles); err != nil {
		return errors.WrapIO("write", output, err)
	}
	if err := writeOnly(f, tables.SafeSheetName("Only in "+nameB), res.Table, StatusOnlyB, styles); err != nil {
		return errors.WrapIO("write", output, err)
	}

	if err := f.SaveAs(output); err != nil {
		return errors.WrapIO("write", output, err)
	}
	logging.Info().Str("output", output).Msg("Wrote diff report")
	return nil
}

// writeComparison writes the full result table, filling each data row
// by its status.
func writeComparison(f *excelize.File, sheet string, t *tables.Table, styles *reportStyles) error {
	if err := writeHeader(f, sheet, t.Columns(), styles.header); err != nil {
		return err
	}

	statusIdx, _ := t.ColumnIndex("Status")
	width := t.NumCols()
	for i := 0; i < t.NumRows(); i++ {
		row := t.Row(i)
		if err := writeRow(f, sheet, i+2, row); err != nil {
			return err
		}

		s, _ := row[statusIdx].AsString()
		styleID, ok := styles.status[Status(s)]
		if !ok {
			continue
		}
		first, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		last, err := excelize.CoordinatesToCellName(width, i+2)
		if err != nil {
			return err
		}
		if err := f.SetCellStyle(sheet, first, last, styleID); err != nil {
			return err
		}
	}
	return nil
}

// writeSummary writes the counts sheet, first column bold.
func writeSummary(f *excelize.File, stats Stats, nameA, nameB string, styles *reportStyles) error {
	if _, err := f.NewSheet("Summary"); err != nil {
		return err
	}

	rows := [][]any{
		{"Comparison Summary"},
		{},
		{"File A: " + nameA},
		{"File B: " + nameB},
		{},
		{"Statistic", "Count"},
		{"Total Rows Compared", stats.Total},
		{"Matching Rows", stats.Matching},
		{"Different Rows", stats.Different},
		{"Rows Only in " + nameA, stats.OnlyA},
		{"Rows Only in " + nameB, stats.OnlyB},
	}
	for i, row := range rows {
		for j, v := range row {
			cell, err := excelize.CoordinatesToCellName(j+1, i+1)
			if err != nil {
				return err
			}
			if err := f.SetCellValue("Summary", cell, v); err != nil {
				return err
			}
		}
		first, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetCellStyle("Summary", first, first, styles.bold); err != nil {
			return err
		}
	}
	return nil
}

// writeOnly writes the rows carrying one status onto their own sheet.
func writeOnly(f *excelize.File, sheet string, t *tables.Table, status Status, styles *reportStyles) error {
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}
	if err := writeHeader(f, sheet, t.Columns(), styles.bold); err != nil {
		return err
	}

	statusIdx, _ := t.ColumnIndex("Status")
	out := 2
	for i := 0; i < t.NumRows(); i++ {
		row := t.Row(i)
		if s, _ := row[statusIdx].AsString(); Status(s) != status {
			continue
		}
		if err := writeRow(f, sheet, out, row); err != nil {
			return err
		}
		out++
	}
	return nil
}

func writeHeader(f *excelize.File, sheet string, cols []string, styleID int) error {
	for j, col := range cols {
		cell, err := excelize.CoordinatesToCellName(j+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, col); err != nil {
			return err
		}
		if err := f.SetCellStyle(sheet, cell, cell, styleID); err != nil {
			return err
		}
	}
	return nil
}

func writeRow(f *excelize.File, sheet string, rowNum int, row []tables.Value) error {
	for j, v := range row {
		if v.IsMissing() {
			continue
		}
		cell, err := excelize.CoordinatesToCellName(j+1, rowNum)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, cellValue(v)); err != nil {
			return err
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
