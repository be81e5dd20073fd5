package models

import "strconv"

// Table represents one detected table: its rectangular extent and the
// named rows extracted from it.
type Table struct {
	// Name is the trimmed header cell text.
	Name string `json:"name"`
	// Sheet is the owning sheet name.
	Sheet string `json:"sheet"`
	// StartRow is the first data row (1-based; strictly below the header).
	StartRow int `json:"start_row"`
	// EndRow is the last data row (1-based, inclusive).
	EndRow int `json:"end_row"`
	// StartCol is the leftmost column in letter form, e.g. "A".
	StartCol string `json:"start_col"`
	// EndCol is the rightmost populated column in letter form.
	EndCol string `json:"end_col"`
	// Rows maps row name to its extracted data. A later row with a
	// duplicate name overwrites an earlier one.
	Rows map[string]Row `json:"rows"`
}

// Location returns the table's data range in A1 notation, e.g. "A3:C4".
func (t Table) Location() string {
	return t.StartCol + strconv.Itoa(t.StartRow) + ":" + t.EndCol + strconv.Itoa(t.EndRow)
}
