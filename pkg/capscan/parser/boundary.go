package parser

import "github.com/knakagawa/capscan-go/pkg/capscan/grid"

// boundary is the resolved rectangular extent of one table's data block,
// all bounds 1-based and inclusive.
type boundary struct {
	startCol  int
	dataStart int
	endRow    int
	endCol    int
}

// resolveBoundaries computes the data block extent below a validated
// header. It reports false when no data row exists beneath the header.
func resolveBoundaries(g grid.Grid, headerRow, headerCol int) (boundary, bool) {
	// Skip blank spacer rows between the header and its data.
	dataStart := headerRow + 1
	for dataStart <= g.MaxRow() && rowEmpty(g, dataStart) {
		dataStart++
	}
	if dataStart > g.MaxRow() {
		return boundary{}, false
	}

	// The data block ends just before the first fully-empty row or the
	// first row that itself opens another table.
	endRow := dataStart
	for endRow <= g.MaxRow() {
		if rowStartsTable(g, endRow) || rowEmpty(g, endRow) {
			break
		}
		endRow++
	}
	endRow--

	// Extend rightward while columns carry data in the block's row range.
	// The header's own column is always included.
	endCol := headerCol
	for c := headerCol; c <= g.MaxCol(); c++ {
		if !columnHasData(g, c, dataStart, endRow) {
			break
		}
		endCol = c
	}

	return boundary{startCol: headerCol, dataStart: dataStart, endRow: endRow, endCol: endCol}, true
}

func rowEmpty(g grid.Grid, row int) bool {
	for c := 1; c <= g.MaxCol(); c++ {
		if !g.Cell(row, c).IsEmpty() {
			return false
		}
	}
	return true
}

// rowStartsTable reports whether any cell in the row is a valid table
// header. It is what keeps adjacent tables from bleeding into each other.
func rowStartsTable(g grid.Grid, row int) bool {
	for c := 1; c <= g.MaxCol(); c++ {
		if _, ok := headerName(g.Cell(row, c)); !ok {
			continue
		}
		if IsValidHeader(g, row, c) {
			return true
		}
	}
	return false
}

func columnHasData(g grid.Grid, col, fromRow, toRow int) bool {
	for r := fromRow; r <= toRow; r++ {
		if !g.Cell(r, col).IsEmpty() {
			return true
		}
	}
	return false
}
