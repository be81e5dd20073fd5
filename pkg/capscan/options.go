// Package capscan extracts ALL-CAPS-headed tables from Excel workbooks.
package capscan

import "github.com/knakagawa/capscan-go/pkg/capscan/parser"

// Options configures extraction behavior.
type Options struct {
	// Trace, when non-nil, collects every rejected header candidate and
	// the rule that rejected it. The extracted catalog is identical with
	// or without a trace.
	Trace *parser.Trace
}

// DefaultOptions returns default extraction options.
func DefaultOptions() Options {
	return Options{}
}
