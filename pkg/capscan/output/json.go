// Package output serializes extraction results to JSON.
package output

import (
	"encoding/json"

	"github.com/knakagawa/capscan-go/pkg/capscan/models"
)

// ToJSON serializes a workbook result to JSON.
func ToJSON(wb *models.Workbook, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(wb, "", "  ")
	}
	return json.Marshal(wb)
}

// TableToJSON serializes a single table to JSON.
func TableToJSON(t *models.Table, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(t, "", "  ")
	}
	return json.Marshal(t)
}
