package tables

// Workbook is an ordered collection of named sheets.
type Workbook struct {
	name   string
	order  []string
	sheets map[string]*Table
}

// NewWorkbook creates an empty workbook. The name is used in log and
// error context (normally the file path).
func NewWorkbook(name string) *Workbook {
	return &Workbook{
		name:   name,
		sheets: make(map[string]*Table),
	}
}

// Name returns the workbook's source name.
func (w *Workbook) Name() string {
	return w.name
}

// SheetNames returns a copy of the sheet names in order.
func (w *Workbook) SheetNames() []string {
	return append([]string(nil), w.order...)
}

// NumSheets returns the number of sheets.
func (w *Workbook) NumSheets() int {
	return len(w.order)
}

// HasSheet reports whether the named sheet exists.
func (w *Workbook) HasSheet(name string) bool {
	_, ok := w.sheets[name]
	return ok
}

// Sheet returns the named sheet.
func (w *Workbook) Sheet(name string) (*Table, bool) {
	t, ok := w.sheets[name]
	return t, ok
}

// SetSheet adds or replaces a sheet, preserving insertion order for new names.
func (w *Workbook) SetSheet(name string, t *Table) {
	if _, exists := w.sheets[name]; !exists {
		w.order = append(w.order, name)
	}
	w.sheets[name] = t
}
