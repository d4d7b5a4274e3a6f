package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lpfevents/catering-mvp/pkg/estimate/models"
)

func TestFindHeaderRow(t *testing.T) {
	g := models.Grid{
		{"Some title"},
		nil,
		{"#", "Position", "Unit"},
		{int64(1), "Tent"},
	}
	assert.Equal(t, 2, FindHeaderRow(g, "position"))
	assert.Equal(t, -1, FindHeaderRow(g, "категория"))
}

func TestFindHeaderRowIgnoresNonStringCells(t *testing.T) {
	// numeric cells never match, even when their text would
	g := models.Grid{
		{int64(404), 404.0},
		{"404 Position"},
	}
	assert.Equal(t, 1, FindHeaderRow(g, "404"))
}

func TestTrailingBlankRun(t *testing.T) {
	blank := func(row []models.Cell) bool { return len(row) == 0 }

	run := func(rows ...[]models.Cell) models.Grid { return rows }
	data := []models.Cell{"x"}

	// single gap followed by data does not end the table
	g := run(nil, data, nil, nil, nil, nil, nil, nil, nil)
	assert.False(t, trailingBlankRun(g, 0, blank))

	// six consecutive blanks do
	g = run(nil, nil, nil, nil, nil, nil)
	assert.True(t, trailingBlankRun(g, 0, blank))

	// a data row inside the window breaks the run
	g = run(nil, nil, nil, data, nil, nil, nil, nil)
	assert.False(t, trailingBlankRun(g, 0, blank))
}
