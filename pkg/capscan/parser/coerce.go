// Package parser implements detection and extraction of ALL-CAPS-headed
// tables embedded in free-form sheet grids.
package parser

import (
	"strconv"
	"strings"

	"github.com/knakagawa/capscan-go/pkg/capscan/grid"
)

// Coerce converts a cell value to an optional float64. Blank cells,
// malformed numeric strings, and non-numeric text all coerce to nil;
// this is a lossy normalization, never an error. Percent strings are
// divided by 100, currency strings are stripped of "$" and thousands
// separators.
func Coerce(v grid.Value) *float64 {
	if f, ok := v.Float(); ok {
		return &f
	}
	if !v.IsText() {
		return nil
	}

	s := strings.TrimSpace(v.String())
	switch {
	case s == "":
		return nil
	case strings.Contains(s, "%"):
		f, err := strconv.ParseFloat(strings.ReplaceAll(s, "%", ""), 64)
		if err != nil {
			return nil
		}
		f /= 100
		return &f
	case strings.Contains(s, "$"):
		cleaned := strings.ReplaceAll(strings.ReplaceAll(s, "$", ""), ",", "")
		f, err := strconv.ParseFloat(cleaned, 64)
		if err != nil {
			return nil
		}
		return &f
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return &f
}
