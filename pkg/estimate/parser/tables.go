package parser

import (
	"strings"

	"github.com/lpfevents/catering-mvp/pkg/estimate/models"
)

// Hand-maintained templates interleave blank spacer rows inside a table
// but always end with a long run of blank rows or unrelated trailing
// notes. A blank row only terminates the scan when most of the rows
// behind it are blank too.
const (
	blankLookahead = 8
	blankRunMin    = 6
)

// FindHeaderRow returns the index of the first row containing a string
// cell whose text case-insensitively contains needle, or -1.
func FindHeaderRow(g models.Grid, needle string) int {
	needle = strings.ToLower(needle)
	for i, row := range g {
		for _, c := range row {
			s, ok := c.(string)
			if ok && strings.Contains(strings.ToLower(s), needle) {
				return i
			}
		}
	}
	return -1
}

// trailingBlankRun reports whether the table ends at row i: within the
// next blankLookahead rows, the consecutive run of blank rows starting
// at i (per the extractor's own predicate) reaches blankRunMin. A data
// row breaks the run, so a lone spacer row inside a table is an internal
// gap the caller skips over.
func trailingBlankRun(g models.Grid, i int, blank func(row []models.Cell) bool) bool {
	end := i + blankLookahead
	if end > len(g) {
		end = len(g)
	}
	streak := 0
	for k := i; k < end; k++ {
		if !blank(g[k]) {
			break
		}
		streak++
	}
	return streak >= blankRunMin
}
