package grid

// ColumnName converts a 1-based column index to its spreadsheet letter
// form: 1 -> "A", 26 -> "Z", 27 -> "AA".
func ColumnName(col int) string {
	name := make([]byte, 0, 3)
	for col > 0 {
		col--
		name = append(name, byte('A'+col%26))
		col /= 26
	}
	for i, j := 0, len(name)-1; i < j; i, j = i+1, j-1 {
		name[i], name[j] = name[j], name[i]
	}
	return string(name)
}
