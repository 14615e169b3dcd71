package join

import (
	"strings"

	"github.com/sheetsmith/sheetsmith/pkg/errors"
)

// Kind selects the relational join semantics.
type Kind string

const (
	// Inner keeps only rows whose keys match on both sides.
	Inner Kind = "inner"
	// Left keeps every left row, missing-filling right columns when unmatched.
	Left Kind = "left"
	// Right keeps every right row, missing-filling left columns when unmatched.
	Right Kind = "right"
	// Outer keeps every row of both sides, missing-filling the unmatched side.
	Outer Kind = "outer"
	// Cross pairs every left row with every right row; keys are ignored.
	Cross Kind = "cross"
)

// Kinds lists every valid join kind, in documentation order.
func Kinds() []string {
	return []string{string(Inner), string(Left), string(Right), string(Outer), string(Cross)}
}

// ParseKind converts a user-supplied string into a Kind.
func ParseKind(s string) (Kind, error) {
	switch Kind(strings.ToLower(strings.TrimSpace(s))) {
	case Inner:
		return Inner, nil
	case Left:
		return Left, nil
	case Right:
		return Right, nil
	case Outer:
		return Outer, nil
	case Cross:
		return Cross, nil
	}
	return "", errors.NewInvalidJoinKindError(s, Kinds())
}
