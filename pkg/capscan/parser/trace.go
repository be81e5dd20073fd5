package parser

// Rule identifies the validation or resolution rule that rejected a
// header candidate.
type Rule string

const (
	// RuleLeftNeighbor rejects a candidate preceded by a non-empty cell.
	RuleLeftNeighbor Rule = "left_neighbor"
	// RuleRightPadding rejects a candidate without two consecutive empty
	// cells to its right.
	RuleRightPadding Rule = "right_padding"
	// RuleNoDataBelow rejects a candidate with no data anywhere beneath it.
	RuleNoDataBelow Rule = "no_data_below"
	// RuleNoDataRows marks a validated header whose boundary resolution
	// found no data block.
	RuleNoDataRows Rule = "no_data_rows"
	// RuleNoNamedRows marks a resolved table whose rows were all dropped
	// for lacking a row name.
	RuleNoNamedRows Rule = "no_named_rows"
)

// Rejection records one header candidate and the rule that rejected it.
type Rejection struct {
	Sheet string `json:"sheet"`
	Row   int    `json:"row"`
	Col   int    `json:"col"`
	Rule  Rule   `json:"rule"`
}

// Trace collects rejected header candidates during extraction. A nil
// Trace disables collection; extraction results are unaffected either way.
type Trace struct {
	Rejections []Rejection
}

func (t *Trace) reject(sheet string, row, col int, rule Rule) {
	if t == nil {
		return
	}
	t.Rejections = append(t.Rejections, Rejection{Sheet: sheet, Row: row, Col: col, Rule: rule})
}
