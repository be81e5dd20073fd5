package parser

import (
	"strings"

	"github.com/knakagawa/capscan-go/pkg/capscan/grid"
)

// rightPaddingWindow is how many columns to the right of a candidate are
// inspected for empty padding.
const rightPaddingWindow = 3

// minRightPadding is how many consecutive empty cells must precede the
// first non-empty cell in that window.
const minRightPadding = 2

// headerName returns the trimmed candidate header text if the value is a
// non-empty string already equal to its own uppercased form. Strings
// without letters (pure punctuation) qualify too.
func headerName(v grid.Value) (string, bool) {
	if !v.IsText() {
		return "", false
	}
	trimmed := strings.TrimSpace(v.String())
	if trimmed == "" || trimmed != strings.ToUpper(trimmed) {
		return "", false
	}
	return trimmed, true
}

// IsValidHeader reports whether the cell at (row, col) opens a table:
// it is isolated on its left, padded by empty cells on its right, and
// has data somewhere beneath it.
func IsValidHeader(g grid.Grid, row, col int) bool {
	_, ok := validateHeader(g, row, col)
	return ok
}

// validateHeader applies the structural header rules and names the first
// rule violated, for diagnostic traces.
func validateHeader(g grid.Grid, row, col int) (Rule, bool) {
	if col > 1 && !g.Cell(row, col-1).IsEmpty() {
		return RuleLeftNeighbor, false
	}

	limit := col + rightPaddingWindow
	if m := g.MaxCol(); limit > m {
		limit = m
	}
	padding := 0
	for c := col + 1; c <= limit; c++ {
		if !g.Cell(row, c).IsEmpty() {
			break
		}
		padding++
	}
	if padding < minRightPadding {
		return RuleRightPadding, false
	}

	for r := row + 1; r <= g.MaxRow(); r++ {
		if !rowEmpty(g, r) {
			return "", true
		}
	}
	return RuleNoDataBelow, false
}
