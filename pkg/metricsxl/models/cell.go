// Package models defines data structures for QC metrics report checking.
package models

import "strconv"

// CellKind discriminates the variants of a CellValue.
type CellKind int

const (
	// KindNA is the "not applicable" sentinel. It disables any range check
	// involving it and is distinct from a numeric zero or empty text.
	KindNA CellKind = iota
	// KindNumber is a numeric cell value.
	KindNumber
	// KindText is a textual cell value.
	KindText
)

// NAToken is the exact source-report spelling of the NA sentinel.
const NAToken = "NA"

// CellValue is a tagged union of number, text, and the NA sentinel.
// Ordering comparisons are only meaningful between numbers; text and NA
// are not comparable and must never be coerced.
type CellValue struct {
	Kind CellKind
	Num  float64
	Text string
}

// NA returns the NA sentinel value.
func NA() CellValue {
	return CellValue{Kind: KindNA}
}

// Number returns a numeric cell value.
func Number(v float64) CellValue {
	return CellValue{Kind: KindNumber, Num: v}
}

// Text returns a textual cell value.
func Text(s string) CellValue {
	return CellValue{Kind: KindText, Text: s}
}

// Coerce interprets a raw source field the way the report loader does:
// the NA token becomes the sentinel, a parseable number becomes a Number,
// anything else stays Text. Blank fields stay Text("") so the written
// artifact preserves empty cells.
func Coerce(field string) CellValue {
	if field == NAToken {
		return NA()
	}
	if f, err := strconv.ParseFloat(field, 64); err == nil {
		return Number(f)
	}
	return Text(field)
}

// IsNA reports whether the value is the NA sentinel.
func (v CellValue) IsNA() bool {
	return v.Kind == KindNA
}

// IsNumber reports whether the value is numeric.
func (v CellValue) IsNumber() bool {
	return v.Kind == KindNumber
}

// Missing reports whether the value carries no measurement: either the NA
// sentinel or empty text (a blank source field).
func (v CellValue) Missing() bool {
	return v.Kind == KindNA || (v.Kind == KindText && v.Text == "")
}

// EqualsText reports whether the value is text exactly equal to s.
func (v CellValue) EqualsText(s string) bool {
	return v.Kind == KindText && v.Text == s
}

// Less reports v < u. The second result is false when the comparison is
// not meaningful (either side non-numeric).
func (v CellValue) Less(u CellValue) (bool, bool) {
	if v.Kind != KindNumber || u.Kind != KindNumber {
		return false, false
	}
	return v.Num < u.Num, true
}

// Greater reports v > u. The second result is false when the comparison is
// not meaningful (either side non-numeric).
func (v CellValue) Greater(u CellValue) (bool, bool) {
	if v.Kind != KindNumber || u.Kind != KindNumber {
		return false, false
	}
	return v.Num > u.Num, true
}

// String renders the value in source-report form: numbers without
// trailing zeros, NA as the NA token.
func (v CellValue) String() string {
	switch v.Kind {
	case KindNumber:
		return strconv.FormatFloat(v.Num, 'f', -1, 64)
	case KindText:
		return v.Text
	default:
		return NAToken
	}
}
