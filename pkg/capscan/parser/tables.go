package parser

import (
	"strconv"
	"strings"

	"github.com/knakagawa/capscan-go/pkg/capscan/grid"
	"github.com/knakagawa/capscan-go/pkg/capscan/models"
)

// ExtractTables scans one sheet for ALL-CAPS-headed tables and extracts
// their rows. The scan is row-major; every candidate is validated and
// resolved independently, so detection does not depend on scan order.
// Tables are keyed by trimmed header text; a later same-named table
// overwrites an earlier one. tr may be nil.
func ExtractTables(g grid.Grid, sheetName string, tr *Trace) map[string]models.Table {
	tables := make(map[string]models.Table)

	for r := 1; r <= g.MaxRow(); r++ {
		for c := 1; c <= g.MaxCol(); c++ {
			name, ok := headerName(g.Cell(r, c))
			if !ok {
				continue
			}
			if rule, valid := validateHeader(g, r, c); !valid {
				tr.reject(sheetName, r, c, rule)
				continue
			}

			b, ok := resolveBoundaries(g, r, c)
			if !ok {
				tr.reject(sheetName, r, c, RuleNoDataRows)
				continue
			}

			rows := extractRows(g, b)
			if len(rows) == 0 {
				tr.reject(sheetName, r, c, RuleNoNamedRows)
				continue
			}

			tables[name] = models.Table{
				Name:     name,
				Sheet:    sheetName,
				StartRow: b.dataStart,
				EndRow:   b.endRow,
				StartCol: grid.ColumnName(b.startCol),
				EndCol:   grid.ColumnName(b.endCol),
				Rows:     rows,
			}
		}
	}

	return tables
}

// extractRows materializes the rows of a resolved data block. Rows whose
// first cell trims to empty are dropped entirely.
func extractRows(g grid.Grid, b boundary) map[string]models.Row {
	rows := make(map[string]models.Row)
	for r := b.dataStart; r <= b.endRow; r++ {
		name := strings.TrimSpace(g.Cell(r, b.startCol).String())
		if name == "" {
			continue
		}

		values := make([]*float64, 0, b.endCol-b.startCol)
		for c := b.startCol + 1; c <= b.endCol; c++ {
			values = append(values, Coerce(g.Cell(r, c)))
		}

		rows[name] = models.Row{
			Name:     name,
			Values:   values,
			Location: grid.ColumnName(b.startCol) + strconv.Itoa(r),
		}
	}
	return rows
}
