// Package models defines data structures for extracted tables.
package models

// Row represents one named data row of a detected table.
type Row struct {
	// Name is the trimmed string value of the row's first cell.
	Name string `json:"name"`
	// Values holds the coerced numeric values of the remaining cells, in
	// column order. Entries are nil where coercion failed or the cell was
	// blank.
	Values []*float64 `json:"values"`
	// Location addresses the row's first cell in original sheet
	// coordinates, e.g. "A3".
	Location string `json:"location"`
}
