package grid

import (
	"io"

	"github.com/extrame/xls"
)

// OpenXLS loads a legacy (BIFF) workbook into an in-memory Book, so the
// same extraction engine serves both container formats.
func OpenXLS(rs io.ReadSeeker) (*Book, error) {
	wb, err := xls.OpenReader(rs, "utf-8")
	if err != nil {
		return nil, err
	}

	book := newBook()
	for i := 0; i < wb.NumSheets(); i++ {
		sheet := wb.GetSheet(i)
		if sheet == nil {
			continue
		}
		rows := make([][]string, 0, int(sheet.MaxRow)+1)
		for r := 0; r <= int(sheet.MaxRow); r++ {
			row := sheet.Row(r)
			if row == nil {
				rows = append(rows, nil)
				continue
			}
			cols := make([]string, row.LastCol())
			for c := 0; c < row.LastCol(); c++ {
				cols[c] = row.Col(c)
			}
			rows = append(rows, cols)
		}
		book.add(sheet.Name, fromStrings(rows))
	}
	return book, nil
}
