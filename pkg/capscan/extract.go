package capscan

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/knakagawa/capscan-go/pkg/capscan/grid"
	"github.com/knakagawa/capscan-go/pkg/capscan/models"
	"github.com/knakagawa/capscan-go/pkg/capscan/parser"
)

// Extract loads the workbook at path and extracts every detected table.
func Extract(path string, opts Options) (*models.Workbook, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return nil, err
	}
	return ExtractData(content, filepath.Base(path), opts)
}

// ExtractData extracts every detected table from raw workbook bytes.
// The container format is chosen by filename extension (.xlsx or .xls).
// Extraction is a pure function of the input: the same bytes always
// yield the same result.
func ExtractData(content []byte, filename string, opts Options) (*models.Workbook, error) {
	if len(content) == 0 {
		return nil, ErrEmptyFile
	}

	var (
		book *grid.Book
		err  error
	)
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".xlsx":
		book, err = grid.OpenXLSX(bytes.NewReader(content))
	case ".xls":
		book, err = grid.OpenXLS(bytes.NewReader(content))
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, filename)
	}
	if err != nil {
		return nil, &ParseError{Filename: filename, Err: err}
	}

	// Sheets are independent; the file-level catalog is their union,
	// with later sheets overwriting same-named tables.
	tables := make(map[string]models.Table)
	for _, name := range book.SheetNames() {
		sheet, ok := book.Sheet(name)
		if !ok {
			continue
		}
		for tableName, table := range parser.ExtractTables(sheet, name, opts.Trace) {
			tables[tableName] = table
		}
	}

	return &models.Workbook{
		Filename:    filename,
		ContentHash: Fingerprint(content),
		Sheets:      book.SheetNames(),
		Tables:      tables,
	}, nil
}

// Fingerprint returns the sha256 hex digest of raw workbook bytes, used
// as the file identity for dedup and lookup.
func Fingerprint(content []byte) string {
	sum := sha256.Sum256(content)
	return hex.EncodeToString(sum[:])
}
