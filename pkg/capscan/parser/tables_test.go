package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/knakagawa/capscan-go/pkg/capscan/grid"
)

func TestExtractTablesSingleTable(t *testing.T) {
	sheet := grid.NewSheet([][]grid.Value{
		{txt("REVENUE")},
		nil,
		{txt("Q1"), num(100), num(200)},
		{txt("Q2"), num(150)},
		nil,
	})

	tables := ExtractTables(sheet, "Sheet1", nil)
	require.Len(t, tables, 1)

	table, ok := tables["REVENUE"]
	require.True(t, ok)
	assert.Equal(t, "Sheet1", table.Sheet)
	assert.Equal(t, 3, table.StartRow)
	assert.Equal(t, 4, table.EndRow)
	assert.Equal(t, "A", table.StartCol)
	assert.Equal(t, "C", table.EndCol)
	assert.Equal(t, "A3:C4", table.Location())

	require.Len(t, table.Rows, 2)

	q1 := table.Rows["Q1"]
	assert.Equal(t, "A3", q1.Location)
	require.Len(t, q1.Values, 2)
	assert.Equal(t, 100.0, *q1.Values[0])
	assert.Equal(t, 200.0, *q1.Values[1])

	q2 := table.Rows["Q2"]
	assert.Equal(t, "A4", q2.Location)
	require.Len(t, q2.Values, 2)
	assert.Equal(t, 150.0, *q2.Values[0])
	assert.Nil(t, q2.Values[1])
}

func TestExtractTablesAdjacentTables(t *testing.T) {
	sheet := grid.NewSheet([][]grid.Value{
		{txt("REVENUE")},
		nil,
		{txt("Q1"), num(100), num(200)},
		{txt("Q2"), num(150), num(250)},
		nil,
		{txt("COSTS")},
		{txt("Opex"), num(50), num(25)},
	})

	tables := ExtractTables(sheet, "Sheet1", nil)
	require.Len(t, tables, 2)

	revenue := tables["REVENUE"]
	assert.Equal(t, 3, revenue.StartRow)
	// Stops exactly one row before the blank separator, never crossing
	// into the COSTS block.
	assert.Equal(t, 4, revenue.EndRow)

	costs := tables["COSTS"]
	assert.Equal(t, 7, costs.StartRow)
	assert.Equal(t, 7, costs.EndRow)
	require.Len(t, costs.Rows, 1)
	assert.Equal(t, 50.0, *costs.Rows["Opex"].Values[0])
}

func TestExtractTablesInsufficientPadding(t *testing.T) {
	// Scenario C: one blank cell, then content. Not a table.
	sheet := grid.NewSheet([][]grid.Value{
		{txt("CAPTION"), blank(), txt("note")},
		{txt("a"), num(1), num(2)},
	})

	tr := &Trace{}
	tables := ExtractTables(sheet, "Sheet1", tr)
	assert.Empty(t, tables)

	require.Len(t, tr.Rejections, 1)
	assert.Equal(t, Rejection{Sheet: "Sheet1", Row: 1, Col: 1, Rule: RuleRightPadding}, tr.Rejections[0])
}

func TestExtractTablesDropsUnnamedRows(t *testing.T) {
	// Scenario D: a data row with a blank first cell is dropped entirely,
	// but it does not terminate the block.
	sheet := grid.NewSheet([][]grid.Value{
		{txt("REVENUE")},
		nil,
		{txt("Q1"), num(1), num(2)},
		{blank(), num(5), num(6)},
		{txt("Q3"), num(3), num(4)},
	})

	tables := ExtractTables(sheet, "Sheet1", nil)
	table := tables["REVENUE"]
	require.NotNil(t, table.Rows)
	assert.Equal(t, 5, table.EndRow)
	require.Len(t, table.Rows, 2)
	assert.Contains(t, table.Rows, "Q1")
	assert.Contains(t, table.Rows, "Q3")
}

func TestExtractTablesWhitespaceRowNameDropped(t *testing.T) {
	sheet := grid.NewSheet([][]grid.Value{
		{txt("REVENUE")},
		{txt("   "), num(1), num(2)},
		{txt("Q1"), num(3), num(4)},
	})

	tables := ExtractTables(sheet, "Sheet1", nil)
	table := tables["REVENUE"]
	require.Len(t, table.Rows, 1)
	assert.Contains(t, table.Rows, "Q1")
}

func TestExtractTablesAllRowsDropped(t *testing.T) {
	sheet := grid.NewSheet([][]grid.Value{
		{txt("REVENUE")},
		{blank(), num(1), num(2)},
	})

	tr := &Trace{}
	tables := ExtractTables(sheet, "Sheet1", tr)
	assert.Empty(t, tables)

	require.Len(t, tr.Rejections, 1)
	assert.Equal(t, RuleNoNamedRows, tr.Rejections[0].Rule)
}

func TestExtractTablesPunctuationHeader(t *testing.T) {
	// A header without letters equals its own uppercase form; the
	// breadth is deliberate.
	sheet := grid.NewSheet([][]grid.Value{
		{txt("===")},
		{txt("a"), num(1), num(2)},
	})

	tables := ExtractTables(sheet, "Sheet1", nil)
	require.Len(t, tables, 1)
	assert.Contains(t, tables, "===")
}

func TestExtractTablesLeftNeighborRejected(t *testing.T) {
	sheet := grid.NewSheet([][]grid.Value{
		{txt("intro"), txt("TOTALS"), blank(), blank()},
		{txt("a"), num(1)},
	})

	tr := &Trace{}
	tables := ExtractTables(sheet, "Sheet1", tr)
	assert.Empty(t, tables)

	require.Len(t, tr.Rejections, 1)
	assert.Equal(t, RuleLeftNeighbor, tr.Rejections[0].Rule)
}

func TestExtractTablesDuplicateRowNameOverwrites(t *testing.T) {
	sheet := grid.NewSheet([][]grid.Value{
		{txt("REVENUE")},
		{txt("Q1"), num(1), num(2)},
		{txt("Q1"), num(3), num(4)},
	})

	tables := ExtractTables(sheet, "Sheet1", nil)
	table := tables["REVENUE"]
	require.Len(t, table.Rows, 1)
	require.Len(t, table.Rows["Q1"].Values, 2)
	assert.Equal(t, 3.0, *table.Rows["Q1"].Values[0])
	assert.Equal(t, "A3", table.Rows["Q1"].Location)
}

func TestExtractTablesDuplicateTableNameLaterWins(t *testing.T) {
	sheet := grid.NewSheet([][]grid.Value{
		{txt("REVENUE")},
		{txt("Q1"), num(1), num(2)},
		nil,
		{txt("REVENUE")},
		{txt("Q9"), num(9), num(10)},
	})

	tables := ExtractTables(sheet, "Sheet1", nil)
	require.Len(t, tables, 1)
	table := tables["REVENUE"]
	assert.Equal(t, 5, table.StartRow)
	assert.Contains(t, table.Rows, "Q9")
}

func TestExtractTablesTrimmedHeaderName(t *testing.T) {
	sheet := grid.NewSheet([][]grid.Value{
		{txt("  MARGINS  ")},
		{txt("gross"), txt("45%"), blank()},
	})

	tables := ExtractTables(sheet, "Sheet1", nil)
	require.Contains(t, tables, "MARGINS")
	row := tables["MARGINS"].Rows["gross"]
	require.Len(t, row.Values, 1)
	assert.InDelta(t, 0.45, *row.Values[0], 1e-9)
}

func TestExtractTablesTraceDoesNotChangeResult(t *testing.T) {
	sheet := grid.NewSheet([][]grid.Value{
		{txt("REVENUE")},
		{txt("Q1"), num(100), num(200)},
		{txt("TOTAL"), num(300), num(400)},
	})

	plain := ExtractTables(sheet, "Sheet1", nil)
	traced := ExtractTables(sheet, "Sheet1", &Trace{})
	assert.Equal(t, plain, traced)
}
