package grid

import "strconv"

// Sheet is an in-memory Grid backed by a dense row slice. Rows may be
// ragged; missing cells read as empty.
type Sheet struct {
	rows   [][]Value
	maxCol int
}

// NewSheet builds a Sheet from 1-indexed-in-spirit row data: rows[0] is
// sheet row 1, rows[0][0] is cell A1.
func NewSheet(rows [][]Value) *Sheet {
	maxCol := 0
	for _, r := range rows {
		if len(r) > maxCol {
			maxCol = len(r)
		}
	}
	return &Sheet{rows: rows, maxCol: maxCol}
}

// Cell returns the value at (row, col), 1-based. Out-of-range access
// returns the empty Value.
func (s *Sheet) Cell(row, col int) Value {
	if row < 1 || row > len(s.rows) {
		return Value{}
	}
	r := s.rows[row-1]
	if col < 1 || col > len(r) {
		return Value{}
	}
	return r[col-1]
}

// MaxRow returns the number of rows in the sheet.
func (s *Sheet) MaxRow() int {
	return len(s.rows)
}

// MaxCol returns the widest row length in the sheet.
func (s *Sheet) MaxCol() int {
	return s.maxCol
}

// fromStrings converts raw string cells, as produced by both workbook
// readers, into typed values: empty string to Blank, parseable number
// to Number, anything else to Text.
func fromStrings(rows [][]string) *Sheet {
	converted := make([][]Value, len(rows))
	for i, row := range rows {
		cells := make([]Value, len(row))
		for j, raw := range row {
			cells[j] = classify(raw)
		}
		converted[i] = cells
	}
	return NewSheet(converted)
}

func classify(raw string) Value {
	if raw == "" {
		return Blank()
	}
	if f, err := strconv.ParseFloat(raw, 64); err == nil {
		return Number(f)
	}
	return Text(raw)
}
