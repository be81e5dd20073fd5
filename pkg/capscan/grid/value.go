// Package grid provides a uniform, read-only view over one spreadsheet sheet,
// with adapters for xlsx and legacy xls workbooks.
package grid

import (
	"strconv"
	"strings"
)

// Kind discriminates cell value representations.
type Kind int

const (
	// KindEmpty is an absent cell.
	KindEmpty Kind = iota
	// KindNumber is a numeric cell.
	KindNumber
	// KindText is a string cell.
	KindText
)

// Value is a single cell value: empty, a number, or text.
// The zero Value is empty.
type Value struct {
	kind Kind
	num  float64
	text string
}

// Blank returns the empty Value.
func Blank() Value {
	return Value{}
}

// Number returns a numeric Value.
func Number(f float64) Value {
	return Value{kind: KindNumber, num: f}
}

// Text returns a string Value.
func Text(s string) Value {
	return Value{kind: KindText, text: s}
}

// Kind returns the value's kind.
func (v Value) Kind() Kind {
	return v.kind
}

// IsEmpty reports whether the cell holds no data: it is absent or its
// text is whitespace only. Numeric zero is data, not emptiness.
func (v Value) IsEmpty() bool {
	switch v.kind {
	case KindEmpty:
		return true
	case KindText:
		return strings.TrimSpace(v.text) == ""
	}
	return false
}

// IsText reports whether the cell holds a string.
func (v Value) IsText() bool {
	return v.kind == KindText
}

// Float returns the numeric value and whether the cell is numeric.
func (v Value) Float() (float64, bool) {
	return v.num, v.kind == KindNumber
}

// String returns the display form of the value. Numbers use the shortest
// exact decimal representation; empty cells return "".
func (v Value) String() string {
	switch v.kind {
	case KindNumber:
		return strconv.FormatFloat(v.num, 'f', -1, 64)
	case KindText:
		return v.text
	}
	return ""
}
