package merge

import (
	"strings"

	"github.com/sheetsmith/sheetsmith/pkg/errors"
)

// Policy governs column reconciliation when consolidating sheets that
// share a name across workbooks.
type Policy string

const (
	// Strict requires identical columns, in identical order, on every
	// occurrence of a sheet; any deviation aborts the merge.
	Strict Policy = "strict"
	// Lenient takes the union of all column sets, padding absent
	// columns with missing values.
	Lenient Policy = "lenient"
)

// Policies lists the valid merge policies.
func Policies() []string {
	return []string{string(Strict), string(Lenient)}
}

// ParsePolicy converts a user-supplied string into a Policy.
func ParsePolicy(s string) (Policy, error) {
	switch Policy(strings.ToLower(strings.TrimSpace(s))) {
	case Strict:
		return Strict, nil
	case Lenient:
		return Lenient, nil
	}
	return "", errors.NewInvalidPolicyError(s, Policies())
}
