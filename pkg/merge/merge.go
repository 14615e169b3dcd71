// Package merge consolidates sheets that share a name across multiple
// workbooks into one workbook, concatenating each sheet's rows under a
// column reconciliation policy.
package merge

import (
	"sort"

	"github.com/sheetsmith/sheetsmith/pkg/errors"
	"github.com/sheetsmith/sheetsmith/pkg/logging"
	"github.com/sheetsmith/sheetsmith/pkg/tables"
	"github.com/sheetsmith/sheetsmith/pkg/union"
)

// Workbooks merges every sheet name occurring in at least one input.
// Sheet names are processed in sorted order so the output layout does
// not depend on input sheet ordering. Rows from each workbook keep
// their order; workbooks contribute in input order. No deduplication.
func Workbooks(books []*tables.Workbook, policy Policy) (*tables.Workbook, error) {
	if len(books) == 0 {
		return nil, errors.NewEmptyInputError("merge")
	}

	names := sheetNameUnion(books)
	logging.Info().
		Int("workbooks", len(books)).
		Int("sheets", len(names)).
		Str("policy", string(policy)).
		Msg("Merging workbooks")

	out := tables.NewWorkbook("merged")
	for _, name := range names {
		merged, err := Sheet(books, name, policy)
		if err != nil {
			return nil, err
		}
		out.SetSheet(name, merged)
	}
	return out, nil
}

// Sheet merges one named sheet across the given workbooks. Workbooks
// lacking the sheet are skipped with a warning; if none has it the
// merge fails with SheetNotFoundError.
func Sheet(books []*tables.Workbook, name string, policy Policy) (*tables.Table, error) {
	if len(books) == 0 {
		return nil, errors.NewEmptyInputError("merge")
	}

	var parts []*tables.Table
	var sources []string
	for _, wb := range books {
		t, ok := wb.Sheet(name)
		if !ok {
			logging.Warn().Str("sheet", name).Str("workbook", wb.Name()).Msg("Workbook lacks sheet, skipping")
			continue
		}
		parts = append(parts, t)
		sources = append(sources, wb.Name())
	}
	if len(parts) == 0 {
		return nil, errors.NewSheetNotFoundError(name, workbookNames(books))
	}

	if policy == Strict {
		reference := parts[0].Columns()
		for i, t := range parts[1:] {
			if !equalColumns(reference, t.Columns()) {
				return nil, errors.NewColumnMismatchError(name, sources[0], reference, sources[i+1], t.Columns())
			}
		}
	}

	merged, err := union.Tables(parts)
	if err != nil {
		return nil, err
	}
	merged.SetName(name)
	logging.Debug().Str("sheet", name).Int("rows", merged.NumRows()).Int("sources", len(parts)).Msg("Merged sheet")
	return merged, nil
}

// CommonSheets returns the sheet names present in every workbook, in
// sorted order.
func CommonSheets(books []*tables.Workbook) []string {
	if len(books) == 0 {
		return nil
	}
	var common []string
	for _, name := range books[0].SheetNames() {
		inAll := true
		for _, wb := range books[1:] {
			if !wb.HasSheet(name) {
				inAll = false
				break
			}
		}
		if inAll {
			common = append(common, name)
		}
	}
	sort.Strings(common)
	return common
}

// CommonOnly merges only the sheets present in every input workbook.
func CommonOnly(books []*tables.Workbook, policy Policy) (*tables.Workbook, error) {
	if len(books) == 0 {
		return nil, errors.NewEmptyInputError("merge")
	}

	common := CommonSheets(books)
	if len(common) == 0 {
		return nil, errors.NewNoCommonSheetsError(workbookNames(books))
	}
	logging.Info().Strs("sheets", common).Msg("Merging common sheets")

	out := tables.NewWorkbook("merged")
	for _, name := range common {
		merged, err := Sheet(books, name, policy)
		if err != nil {
			return nil, err
		}
		out.SetSheet(name, merged)
	}
	return out, nil
}

// sheetNameUnion collects every sheet name across the workbooks, sorted.
func sheetNameUnion(books []*tables.Workbook) []string {
	seen := make(map[string]bool)
	var names []string
	for _, wb := range books {
		for _, name := range wb.SheetNames() {
			if !seen[name] {
				seen[name] = true
				names = append(names, name)
			}
		}
	}
	sort.Strings(names)
	return names
}

func workbookNames(books []*tables.Workbook) []string {
	names := make([]string, 0, len(books))
	for _, wb := range books {
		names = append(names, wb.Name())
	}
	return names
}

func equalColumns(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
