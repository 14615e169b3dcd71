package diff

// Option is a functional option for configuring a comparison.
type Option func(*differ)

// ByKey aligns rows by the given key columns instead of by position.
// The columns must exist in both tables.
func ByKey(columns ...string) Option {
	return func(d *differ) {
		d.keys = append([]string(nil), columns...)
	}
}

// IgnoreWhitespace trims leading and trailing whitespace from string
// values before comparison. Returned data keeps the original values.
func IgnoreWhitespace() Option {
	return func(d *differ) {
		d.ignoreWhitespace = true
	}
}

// IgnoreCase folds string values before comparison, so "Alice" and
// "ALICE" compare equal. Returned data keeps the original values.
func IgnoreCase() Option {
	return func(d *differ) {
		d.ignoreCase = true
	}
}

// IgnoreColumnOrder compares only the columns present in both tables,
// matched by name. Without it the left table's column order governs,
// extended with any right-only columns.
func IgnoreColumnOrder() Option {
	return func(d *differ) {
		d.ignoreColumnOrder = true
	}
}

// OnlyDiffs drops MATCH rows from the result table. Statistics still
// count every aligned pair.
func OnlyDiffs() Option {
	return func(d *differ) {
		d.onlyDiffs = true
	}
}

// MaxRows truncates each input to its first n rows before alignment.
// Truncation is logged, never an error.
func MaxRows(n int) Option {
	return func(d *differ) {
		d.maxRows = n
	}
}
