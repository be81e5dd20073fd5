package capscan

import (
	"errors"
	"fmt"
)

// ErrFileNotFound indicates the input file does not exist.
var ErrFileNotFound = errors.New("file not found")

// ErrEmptyFile indicates the input contained no bytes.
var ErrEmptyFile = errors.New("empty file")

// ErrUnsupportedFormat indicates the file is neither .xlsx nor .xls.
var ErrUnsupportedFormat = errors.New("unsupported workbook format")

// ParseError represents a failure to decode a workbook container.
type ParseError struct {
	Filename string
	Err      error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse workbook %q: %v", e.Filename, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
