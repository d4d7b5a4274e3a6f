// Package estimate recovers structured event records from hand-maintained
// budget-estimate workbooks. The templates have no fixed schema, so
// extraction is best-effort: unknown sheets are skipped, missing headers
// yield empty collections, and malformed cells coerce to zero values.
package estimate

import (
	"github.com/lpfevents/catering-mvp/pkg/estimate/models"
	"github.com/lpfevents/catering-mvp/pkg/estimate/parser"
)

// metaSheetName is the designated sheet for event-level metadata.
const metaSheetName = "Main"

// Parse runs every matching extractor over the workbook and merges their
// output into one bundle. It is a pure function of the workbook contents:
// no I/O, no error path, and re-running it on the same workbook yields a
// structurally identical result.
func Parse(wb models.Workbook) *models.ParsedWorkbook {
	res := &models.ParsedWorkbook{}
	res.Meta = parser.ParseMeta(wb.Sheet(metaSheetName))
	for _, name := range wb.SheetNames() {
		g := wb.Sheet(name)
		for _, rt := range routes {
			if rt.match(name) {
				rt.handler(res, name, g)
				break
			}
		}
	}
	return res
}

// Extract opens an .xlsx file and parses it in one call.
func Extract(path string) (*models.ParsedWorkbook, error) {
	wb, err := Open(path)
	if err != nil {
		return nil, err
	}
	return Parse(wb), nil
}
