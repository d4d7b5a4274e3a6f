package estimate

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/xuri/excelize/v2"

	"github.com/lpfevents/catering-mvp/pkg/estimate/models"
)

// Open reads an .xlsx file into the in-memory workbook the engine
// consumes. All file I/O lives here; Parse itself never touches disk.
func Open(path string) (models.Workbook, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
	}
	f, err := excelize.OpenFile(path, rawValues())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}
	defer f.Close()
	return gridsFrom(f), nil
}

// OpenReader reads an .xlsx stream into an in-memory workbook.
func OpenReader(r io.Reader) (models.Workbook, error) {
	f, err := excelize.OpenReader(r, rawValues())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}
	defer f.Close()
	return gridsFrom(f), nil
}

// rawValues keeps cell values unformatted: numbers arrive locale-free
// and time-of-day cells arrive as Excel day fractions, which is what the
// timing extractor expects.
func rawValues() excelize.Options {
	return excelize.Options{RawCellValue: true}
}

func gridsFrom(f *excelize.File) *models.GridWorkbook {
	wb := &models.GridWorkbook{Sheets: make(map[string]models.Grid)}
	for _, name := range f.GetSheetList() {
		rows, err := f.GetRows(name)
		if err != nil {
			// unreadable sheet contributes an empty grid
			rows = nil
		}
		g := make(models.Grid, len(rows))
		for i, row := range rows {
			cells := make([]models.Cell, len(row))
			for j, s := range row {
				cells[j] = cellValue(s)
			}
			g[i] = cells
		}
		wb.Names = append(wb.Names, name)
		wb.Sheets[name] = g
	}
	return wb
}

// cellValue maps excelize's string cell to a typed value so numeric
// cells reach the extractors as numbers.
func cellValue(s string) models.Cell {
	if s == "" {
		return nil
	}
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	return s
}
