package tables

import (
	"strings"

	"github.com/sheetsmith/sheetsmith/pkg/constants"
)

// SafeSheetName converts a string into a valid worksheet name.
// Worksheet names are limited to 31 characters and may not contain
// / \ ? * [ or ]. Invalid characters are replaced with underscores and
// the result is truncated; an empty result falls back to "Sheet1".
// Engines apply this before handing programmatic sheet names to any writer.
func SafeSheetName(name string) string {
	if name == "" {
		return constants.DefaultSheetName
	}

	var b strings.Builder
	for _, r := range name {
		if strings.ContainsRune(constants.SheetNameInvalidChars, r) {
			b.WriteByte('_')
		} else {
			b.WriteRune(r)
		}
	}
	out := b.String()

	// The 31-character limit counts characters, not bytes
	if runes := []rune(out); len(runes) > constants.MaxSheetNameLength {
		out = string(runes[:constants.MaxSheetNameLength])
	}
	if strings.TrimSpace(out) == "" {
		return constants.DefaultSheetName
	}
	return out
}
