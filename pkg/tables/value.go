// Package tables provides the in-memory tabular data model shared by all
// sheetsmith engines: tagged cell values with an explicit missing variant,
// ordered-column tables, and named-sheet workbooks.
package tables

import (
	"strconv"
	"strings"
)

// Kind identifies the variant held by a Value.
type Kind uint8

const (
	// KindMissing means no value is present. Distinct from an empty string or zero.
	KindMissing Kind = iota
	// KindString is a text value.
	KindString
	// KindNumber is a float64 value.
	KindNumber
	// KindBool is a boolean value.
	KindBool
)

// Value is a tagged union over the cell types a table can hold.
// The zero Value is missing.
type Value struct {
	kind Kind
	str  string
	num  float64
	b    bool
}

// Missing is the sentinel for an absent cell.
var Missing = Value{}

// String returns a string Value.
func String(s string) Value {
	return Value{kind: KindString, str: s}
}

// Number returns a numeric Value.
func Number(f float64) Value {
	return Value{kind: KindNumber, num: f}
}

// Bool returns a boolean Value.
func Bool(b bool) Value {
	return Value{kind: KindBool, b: b}
}

// Kind returns the variant of the value.
func (v Value) Kind() Kind {
	return v.kind
}

// IsMissing reports whether the value is the missing sentinel.
func (v Value) IsMissing() bool {
	return v.kind == KindMissing
}

// AsString returns the string content and whether the value is a string.
func (v Value) AsString() (string, bool) {
	return v.str, v.kind == KindString
}

// AsNumber returns the numeric content and whether the value is a number.
func (v Value) AsNumber() (float64, bool) {
	return v.num, v.kind == KindNumber
}

// AsBool returns the boolean content and whether the value is a boolean.
func (v Value) AsBool() (bool, bool) {
	return v.b, v.kind == KindBool
}

// Equal compares two values. Missing equals missing; values of different
// kinds are never equal; values of the same kind compare natively.
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case KindMissing:
		return true
	case KindString:
		return v.str == o.str
	case KindNumber:
		return v.num == o.num
	case KindBool:
		return v.b == o.b
	}
	return false
}

// Format renders the value for display and CSV output.
// Missing renders as the empty string.
func (v Value) Format() string {
	switch v.kind {
	case KindString:
		return v.str
	case KindNumber:
		return strconv.FormatFloat(v.num, 'f', -1, 64)
	case KindBool:
		return strconv.FormatBool(v.b)
	}
	return ""
}

// appendKey writes an unambiguous encoding of the value to b.
// Each value is tagged with its kind and length-prefixed, so no two
// distinct rows encode to the same key.
func (v Value) appendKey(b *strings.Builder) {
	switch v.kind {
	case KindMissing:
		b.WriteByte('m')
	case KindString:
		b.WriteByte('s')
		b.WriteString(strconv.Itoa(len(v.str)))
		b.WriteByte(':')
		b.WriteString(v.str)
	case KindNumber:
		b.WriteByte('n')
		b.WriteString(strconv.FormatFloat(v.num, 'g', -1, 64))
	case KindBool:
		b.WriteByte('b')
		if v.b {
			b.WriteByte('1')
		} else {
			b.WriteByte('0')
		}
	}
	b.WriteByte(';')
}

// RowKey encodes a sequence of values into a string usable as a map key.
// Two value sequences produce the same key exactly when they are pairwise
// Equal, including the missing-equals-missing rule. Used by deduplication
// and composite join keys.
func RowKey(vals []Value) string {
	var b strings.Builder
	for _, v := range vals {
		v.appendKey(&b)
	}
	return b.String()
}
