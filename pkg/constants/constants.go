// Package constants provides shared constants used throughout the sheetsmith codebase.
// This includes file permissions, spreadsheet limits, and default sizes that
// should be consistent across the application.
package constants

// File permission constants define standard Unix file permissions
const (
	// DirPermissions is the default permission for created directories (rwxr-xr-x)
	DirPermissions = 0755

	// FilePermissions is the default permission for created files (rw-r--r--)
	FilePermissions = 0644
)

// Spreadsheet limit constants
const (
	// MaxSheetNameLength is the maximum length of a worksheet name
	MaxSheetNameLength = 31

	// DefaultSheetName is used when a sheet name sanitizes to nothing
	DefaultSheetName = "Sheet1"
)

// Processing defaults
const (
	// DefaultChunkSize is the default number of rows per chunk when
	// streaming large CSV files
	DefaultChunkSize = 50000

	// MaxPreviewRows is the number of rows shown by preview-style output
	MaxPreviewRows = 20
)

// SheetNameInvalidChars are the characters a worksheet name may not contain.
const SheetNameInvalidChars = `/\?*[]`
