package join

import (
	"github.com/sheetsmith/sheetsmith/pkg/logging"
	"github.com/sheetsmith/sheetsmith/pkg/tableio"
	"github.com/sheetsmith/sheetsmith/pkg/tables"
)

// CSVs joins two CSV files and writes the result to an output CSV.
func CSVs(leftPath, rightPath, output string, s Spec) error {
	left, err := tableio.LoadCSV(leftPath)
	if err != nil {
		return err
	}
	right, err := tableio.LoadCSV(rightPath)
	if err != nil {
		return err
	}

	logging.Info().
		Str("left", leftPath).
		Str("right", rightPath).
		Str("kind", string(s.Kind)).
		Msg("Joining CSV files")

	result, err := Tables(left, right, s)
	if err != nil {
		return err
	}
	if err := tableio.SaveCSV(result, output, tableio.Overwrite); err != nil {
		return err
	}
	logging.Info().Int("rows", result.NumRows()).Str("output", output).Msg("Wrote join result")
	return nil
}

// Sheets joins two sheets of one workbook and returns the result.
func Sheets(path, sheetLeft, sheetRight string, s Spec) (*tables.Table, error) {
	left, err := tableio.LoadSheet(path, sheetLeft)
	if err != nil {
		return nil, err
	}
	right, err := tableio.LoadSheet(path, sheetRight)
	if err != nil {
		return nil, err
	}

	logging.Info().
		Str("file", path).
		Str("left", sheetLeft).
		Str("right", sheetRight).
		Msg("Joining workbook sheets")

	return Tables(left, right, s)
}

// SheetsToFile joins two sheets of one workbook and writes the result
// as a single-sheet workbook named sheetName.
func SheetsToFile(path, output, sheetLeft, sheetRight, sheetName string, s Spec) error {
	result, err := Sheets(path, sheetLeft, sheetRight, s)
	if err != nil {
		return err
	}

	wb := tables.NewWorkbook(output)
	wb.SetSheet(sheetName, result)
	if err := tableio.SaveWorkbook(wb, output); err != nil {
		return err
	}
	logging.Info().Int("rows", result.NumRows()).Str("output", output).Msg("Wrote joined sheet")
	return nil
}
