// Package models defines the record types produced by estimate extraction
// and the in-memory workbook contract it consumes.
package models

// Cell is a raw cell value as delivered by the workbook reader: a number,
// string, bool, time.Time, or nil for an empty cell.
type Cell = any

// Grid is a rectangular view of one sheet: rows of raw cell values.
// Rows may be ragged; accessors treat missing cells as empty.
type Grid [][]Cell

// Workbook is the in-memory spreadsheet representation the extraction
// engine operates on. Implementations own all file I/O; the engine never
// opens anything itself.
type Workbook interface {
	// SheetNames returns sheet names in workbook order.
	SheetNames() []string
	// Sheet returns the named sheet's grid, or an empty grid if the
	// sheet does not exist. A missing sheet is not an error.
	Sheet(name string) Grid
}

// GridWorkbook is a plain map-backed Workbook.
type GridWorkbook struct {
	// Names holds sheet names in workbook order.
	Names []string
	// Sheets maps sheet name to grid.
	Sheets map[string]Grid
}

// SheetNames returns sheet names in workbook order.
func (w *GridWorkbook) SheetNames() []string {
	return w.Names
}

// Sheet returns the named grid, or nil if absent.
func (w *GridWorkbook) Sheet(name string) Grid {
	return w.Sheets[name]
}
