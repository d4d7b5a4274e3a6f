package parser

import "github.com/lpfevents/catering-mvp/pkg/estimate/models"

// at returns the cell at column i, or nil when the row is shorter. Grids
// coming from real templates are ragged, so every column access goes
// through here.
func at(row []models.Cell, i int) models.Cell {
	if i < 0 || i >= len(row) {
		return nil
	}
	return row[i]
}

func text(row []models.Cell, i int) string {
	return Text(at(row, i))
}

func num(row []models.Cell, i int) float64 {
	return Number(at(row, i))
}
