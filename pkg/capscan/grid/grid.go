package grid

// Grid is a read-only, 1-indexed view over one sheet's cells.
// Out-of-range access returns the empty Value.
type Grid interface {
	// Cell returns the value at (row, col), both 1-based.
	Cell(row, col int) Value
	// MaxRow returns the last populated row index.
	MaxRow() int
	// MaxCol returns the last populated column index.
	MaxCol() int
}

// Book is a loaded workbook: an ordered list of sheet names and one
// in-memory Sheet per name.
type Book struct {
	names  []string
	sheets map[string]*Sheet
}

// SheetNames returns sheet names in workbook order.
func (b *Book) SheetNames() []string {
	return b.names
}

// Sheet returns the named sheet's grid.
func (b *Book) Sheet(name string) (*Sheet, bool) {
	s, ok := b.sheets[name]
	return s, ok
}

func (b *Book) add(name string, s *Sheet) {
	b.names = append(b.names, name)
	b.sheets[name] = s
}

func newBook() *Book {
	return &Book{sheets: make(map[string]*Sheet)}
}
