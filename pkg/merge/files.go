package merge

import (
	"github.com/sheetsmith/sheetsmith/pkg/logging"
	"github.com/sheetsmith/sheetsmith/pkg/tableio"
	"github.com/sheetsmith/sheetsmith/pkg/tables"
)

// Files merges every sheet across the given workbook files into one
// output workbook.
func Files(paths []string, output string, policy Policy) error {
	books, err := loadAll(paths)
	if err != nil {
		return err
	}
	merged, err := Workbooks(books, policy)
	if err != nil {
		return err
	}
	return save(merged, output)
}

// SheetFiles merges one named sheet across the given workbook files,
// writing a single-sheet output workbook.
func SheetFiles(paths []string, output, sheet string, policy Policy) error {
	books, err := loadAll(paths)
	if err != nil {
		return err
	}
	merged, err := Sheet(books, sheet, policy)
	if err != nil {
		return err
	}

	wb := tables.NewWorkbook(output)
	wb.SetSheet(sheet, merged)
	return save(wb, output)
}

// CommonFiles merges only the sheets present in every workbook file.
func CommonFiles(paths []string, output string, policy Policy) error {
	books, err := loadAll(paths)
	if err != nil {
		return err
	}
	merged, err := CommonOnly(books, policy)
	if err != nil {
		return err
	}
	return save(merged, output)
}

// loadAll loads every workbook, naming each after its path so errors
// and warnings identify the offending file.
func loadAll(paths []string) ([]*tables.Workbook, error) {
	books := make([]*tables.Workbook, 0, len(paths))
	for _, p := range paths {
		wb, err := tableio.LoadWorkbook(p)
		if err != nil {
			return nil, err
		}
		books = append(books, wb)
	}
	return books, nil
}

func save(wb *tables.Workbook, output string) error {
	if err := tableio.SaveWorkbook(wb, output); err != nil {
		return err
	}
	logging.Info().Int("sheets", wb.NumSheets()).Str("output", output).Msg("Wrote merged workbook")
	return nil
}
