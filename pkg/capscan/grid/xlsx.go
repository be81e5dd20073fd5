package grid

import (
	"io"

	"github.com/xuri/excelize/v2"
)

// OpenXLSX loads a modern (OOXML) workbook into an in-memory Book.
// Cell values are read in their formatted string form and classified
// into typed values.
func OpenXLSX(r io.Reader) (*Book, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	book := newBook()
	for _, name := range f.GetSheetList() {
		rows, err := f.GetRows(name)
		if err != nil {
			return nil, err
		}
		book.add(name, fromStrings(rows))
	}
	return book, nil
}
