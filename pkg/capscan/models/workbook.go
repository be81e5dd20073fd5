package models

import "sort"

// Workbook represents the file-level extraction result.
type Workbook struct {
	// Filename is the workbook file name (no path).
	Filename string `json:"filename"`
	// ContentHash is the sha256 hex digest of the raw workbook bytes.
	ContentHash string `json:"content_hash"`
	// Sheets lists sheet names in workbook order.
	Sheets []string `json:"sheets"`
	// Tables maps table name to its extracted data. When two sheets
	// produce same-named tables, the later sheet's table wins.
	Tables map[string]Table `json:"tables"`
}

// TableNames returns the names of all extracted tables, sorted.
func (w *Workbook) TableNames() []string {
	names := make([]string, 0, len(w.Tables))
	for name := range w.Tables {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
